package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harmonylane/studio-admin-api/internal/models"
	"github.com/harmonylane/studio-admin-api/internal/store"
	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
)

// CreateStudentRequest holds payload for creating students.
type CreateStudentRequest struct {
	Name     string               `json:"name" validate:"required"`
	Email    string               `json:"email" validate:"required"`
	Status   models.StudentStatus `json:"status"`
	Phone    string               `json:"phone"`
	Notes    string               `json:"notes"`
	JoinDate string               `json:"join_date"`
	Courses  []int                `json:"courses"`
}

// UpdateStudentRequest holds payload for updating students. A nil Courses
// slice keeps the current course set.
type UpdateStudentRequest struct {
	Name     string               `json:"name" validate:"required"`
	Email    string               `json:"email" validate:"required"`
	Status   models.StudentStatus `json:"status"`
	Phone    string               `json:"phone"`
	Notes    string               `json:"notes"`
	JoinDate string               `json:"join_date"`
	Courses  []int                `json:"courses"`
}

// StudentService handles student roster use-cases. Deletion lives on the
// EnrollmentService because it cascades into batch membership.
type StudentService struct {
	students  *store.StudentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(students *store.StudentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, validator: validate, logger: logger}
}

// List returns students, filtered by a case-insensitive name/email substring
// search when term is non-empty.
func (s *StudentService) List(ctx context.Context, term string) []models.Student {
	if term == "" {
		return s.students.List()
	}
	return s.students.Search(term)
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id int) (models.Student, error) {
	student, err := s.students.Get(id)
	if err != nil {
		return models.Student{}, translateStoreError(err, "student not found")
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.students.Add(store.StudentInput{
		Name:     req.Name,
		Email:    req.Email,
		Status:   req.Status,
		Phone:    req.Phone,
		Notes:    req.Notes,
		JoinDate: req.JoinDate,
		Courses:  req.Courses,
	})
	if err != nil {
		return models.Student{}, translateStoreError(err, "student not found")
	}
	s.logger.Info("student created", zap.Int("student_id", student.ID))
	return student, nil
}

// Update modifies an existing student record.
func (s *StudentService) Update(ctx context.Context, id int, req UpdateStudentRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, err := s.students.Update(id, store.StudentInput{
		Name:     req.Name,
		Email:    req.Email,
		Status:   req.Status,
		Phone:    req.Phone,
		Notes:    req.Notes,
		JoinDate: req.JoinDate,
		Courses:  req.Courses,
	})
	if err != nil {
		return models.Student{}, translateStoreError(err, "student not found")
	}
	return student, nil
}
