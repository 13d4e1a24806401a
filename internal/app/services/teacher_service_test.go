package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/config"
	"github.com/emre/collegehub/internal/pkg/apperrors"
)

func seedPendingTeacher(store *fakeStore, email string) *models.Teacher {
	user := store.addUser(&models.User{
		Name:  "Pending Teacher",
		Email: email,
		Role:  models.RoleTeacher,
	})
	teacher := &models.Teacher{
		ID:         store.id(),
		UserID:     user.ID,
		TeacherID:  "T100",
		Department: "Math",
		Status:     models.TeacherStatusPending,
	}
	store.teachers[teacher.ID] = teacher
	return teacher
}

func TestApproveTeacherIsIdempotent(t *testing.T) {
	store := newFakeStore()
	teacher := seedPendingTeacher(store, "pending@college.com")

	service := NewTeacherService(store, config.RejectModeFlag, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if err := service.ApproveTeacher(context.Background(), teacher.ID); err != nil {
			t.Fatalf("approve %d error: %v", i+1, err)
		}
		if store.teachers[teacher.ID].Status != models.TeacherStatusActive {
			t.Fatalf("expected active status after approve %d", i+1)
		}
	}
	if len(store.teachers) != 1 {
		t.Fatalf("expected one teacher record, got %d", len(store.teachers))
	}
}

func TestApproveUnknownTeacher(t *testing.T) {
	service := NewTeacherService(newFakeStore(), config.RejectModeFlag, zerolog.Nop())

	err := service.ApproveTeacher(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Fatalf("expected teacher not found, got %v", err)
	}
}

func TestRejectTeacherFlagMode(t *testing.T) {
	store := newFakeStore()
	teacher := seedPendingTeacher(store, "pending@college.com")

	service := NewTeacherService(store, config.RejectModeFlag, zerolog.Nop())

	if err := service.RejectTeacher(context.Background(), teacher.ID); err != nil {
		t.Fatalf("reject error: %v", err)
	}

	kept, ok := store.teachers[teacher.ID]
	if !ok {
		t.Fatal("flag mode must keep the teacher record")
	}
	if kept.Status != models.TeacherStatusRejected {
		t.Fatalf("expected rejected status, got %s", kept.Status)
	}
	if _, ok := store.users[teacher.UserID]; !ok {
		t.Fatal("flag mode must keep the owning user")
	}
}

func TestRejectTeacherDeleteMode(t *testing.T) {
	store := newFakeStore()
	teacher := seedPendingTeacher(store, "pending@college.com")

	service := NewTeacherService(store, config.RejectModeDelete, zerolog.Nop())

	if err := service.RejectTeacher(context.Background(), teacher.ID); err != nil {
		t.Fatalf("reject error: %v", err)
	}

	if _, ok := store.teachers[teacher.ID]; ok {
		t.Fatal("delete mode must remove the teacher record")
	}
	if _, ok := store.users[teacher.UserID]; ok {
		t.Fatal("delete mode must remove the owning user")
	}
}

func TestGetPendingTeachersJoinsIdentityFields(t *testing.T) {
	store := newFakeStore()
	seedPendingTeacher(store, "pending@college.com")

	active := seedPendingTeacher(store, "active@college.com")
	active.Status = models.TeacherStatusActive

	service := NewTeacherService(store, config.RejectModeFlag, zerolog.Nop())

	pending, err := service.GetPendingTeachers(context.Background())
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one pending teacher, got %d", len(pending))
	}
	if pending[0].Email != "pending@college.com" || pending[0].Name == "" {
		t.Fatalf("listing must include the owning user's identity fields: %+v", pending[0])
	}
}
