package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emre/collegehub/internal/app/models/dto"
	"github.com/emre/collegehub/internal/pkg/apperrors"
)

func newCourseService(store *fakeStore) *CourseService {
	return NewCourseService(&fakeCourses{store: store}, zerolog.Nop())
}

func TestCreateCourseRoundTrip(t *testing.T) {
	service := newCourseService(newFakeStore())

	created, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:        "Computer Science",
		Code:        "CS101",
		Duration:    "4 years",
		Description: "Undergraduate program",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	courses, err := service.GetAllCourses(context.Background())
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected exactly one course, got %d", len(courses))
	}
	if *courses[0] != *created {
		t.Fatalf("fetched course differs from created: %+v vs %+v", courses[0], created)
	}
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	service := newCourseService(newFakeStore())

	req := &dto.CreateCourseRequest{Name: "CS", Code: "CS101", Duration: "4 years"}
	if _, err := service.CreateCourse(context.Background(), req); err != nil {
		t.Fatalf("first create error: %v", err)
	}

	_, err := service.CreateCourse(context.Background(), req)
	if !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
		t.Fatalf("expected duplicate code error, got %v", err)
	}
}

func TestUpdateCourse(t *testing.T) {
	store := newFakeStore()
	service := newCourseService(store)

	created, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name: "CS", Code: "CS101", Duration: "4 years",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	updated, err := service.UpdateCourse(context.Background(), created.ID, &dto.UpdateCourseRequest{
		Name: "Computer Science", Code: "CS102", Duration: "3 years",
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Name != "Computer Science" || updated.Code != "CS102" {
		t.Fatalf("unexpected updated course: %+v", updated)
	}
}

func TestUpdateUnknownCourse(t *testing.T) {
	service := newCourseService(newFakeStore())

	_, err := service.UpdateCourse(context.Background(), 42, &dto.UpdateCourseRequest{
		Name: "CS", Code: "CS101", Duration: "4 years",
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected course not found, got %v", err)
	}
}

func TestDeleteCourse(t *testing.T) {
	store := newFakeStore()
	service := newCourseService(store)

	created, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name: "CS", Code: "CS101", Duration: "4 years",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if err := service.DeleteCourse(context.Background(), created.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	if err := service.DeleteCourse(context.Background(), created.ID); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected course not found on second delete, got %v", err)
	}
}
