package services

import (
	"context"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/pkg/apperrors"
)

// In-memory stores so the services can be exercised without a live database.

type fakeStore struct {
	nextID   int64
	users    map[int64]*models.User
	teachers map[int64]*models.Teacher
	students map[int64]*models.Student
	courses  map[int64]*models.Course
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:   1,
		users:    make(map[int64]*models.User),
		teachers: make(map[int64]*models.Teacher),
		students: make(map[int64]*models.Student),
		courses:  make(map[int64]*models.Course),
	}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) addUser(user *models.User) *models.User {
	user.ID = f.id()
	f.users[user.ID] = user
	return user
}

// GetByEmail implements UserReader
func (f *fakeStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// CreateAccount implements TeacherAccountStore
func (f *fakeStore) CreateAccount(_ context.Context, user *models.User, teacher *models.Teacher) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = f.id()
	f.users[user.ID] = user
	teacher.ID = f.id()
	teacher.UserID = user.ID
	f.teachers[teacher.ID] = teacher
	return nil
}

// GetByUserID implements TeacherAccountStore
func (f *fakeStore) GetByUserID(_ context.Context, userID int64) (*models.Teacher, error) {
	for _, teacher := range f.teachers {
		if teacher.UserID == userID {
			return teacher, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

// GetAll implements TeacherStore
func (f *fakeStore) GetAll(_ context.Context) ([]*models.Teacher, error) {
	var teachers []*models.Teacher
	for _, teacher := range f.teachers {
		joined := *teacher
		joined.User = f.users[teacher.UserID]
		teachers = append(teachers, &joined)
	}
	return teachers, nil
}

// GetPending implements TeacherStore
func (f *fakeStore) GetPending(_ context.Context) ([]*models.Teacher, error) {
	var teachers []*models.Teacher
	for _, teacher := range f.teachers {
		if teacher.Status == models.TeacherStatusPending {
			joined := *teacher
			joined.User = f.users[teacher.UserID]
			teachers = append(teachers, &joined)
		}
	}
	return teachers, nil
}

// UpdateStatus implements TeacherStore
func (f *fakeStore) UpdateStatus(_ context.Context, id int64, status models.TeacherStatus) error {
	teacher, ok := f.teachers[id]
	if !ok {
		return apperrors.ErrTeacherNotFound
	}
	teacher.Status = status
	return nil
}

// DeleteAccount implements TeacherStore
func (f *fakeStore) DeleteAccount(_ context.Context, id int64) error {
	teacher, ok := f.teachers[id]
	if !ok {
		return apperrors.ErrTeacherNotFound
	}
	delete(f.users, teacher.UserID)
	delete(f.teachers, id)
	return nil
}

type fakeStudents struct {
	store *fakeStore
}

// CreateAccount implements StudentStore
func (f *fakeStudents) CreateAccount(_ context.Context, user *models.User, student *models.Student) error {
	for _, existing := range f.store.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	for _, existing := range f.store.students {
		if existing.StudentID == student.StudentID {
			return apperrors.ErrStudentIDAlreadyExists
		}
	}
	user.ID = f.store.id()
	f.store.users[user.ID] = user
	student.ID = f.store.id()
	student.UserID = user.ID
	f.store.students[student.ID] = student
	return nil
}

// GetAll implements StudentStore
func (f *fakeStudents) GetAll(_ context.Context) ([]*models.Student, error) {
	var students []*models.Student
	for _, student := range f.store.students {
		joined := *student
		joined.User = f.store.users[student.UserID]
		students = append(students, &joined)
	}
	return students, nil
}

// Update implements StudentStore
func (f *fakeStudents) Update(_ context.Context, id int64, status string, courseID *int64) (*models.Student, error) {
	student, ok := f.store.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	student.Status = status
	student.CourseID = courseID
	return student, nil
}

// DeleteAccount implements StudentStore
func (f *fakeStudents) DeleteAccount(_ context.Context, id int64) error {
	student, ok := f.store.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.store.users, student.UserID)
	delete(f.store.students, id)
	return nil
}

type fakeCourses struct {
	store *fakeStore
}

// Create implements CourseStore
func (f *fakeCourses) Create(_ context.Context, course *models.Course) error {
	for _, existing := range f.store.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}
	course.ID = f.store.id()
	f.store.courses[course.ID] = course
	return nil
}

// GetAll implements CourseStore
func (f *fakeCourses) GetAll(_ context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	for _, course := range f.store.courses {
		courses = append(courses, course)
	}
	return courses, nil
}

// GetByID implements CourseStore and CourseReader
func (f *fakeCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.store.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// Update implements CourseStore
func (f *fakeCourses) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.store.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.store.courses[course.ID] = course
	return nil
}

// Delete implements CourseStore
func (f *fakeCourses) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.store.courses, id)
	return nil
}
