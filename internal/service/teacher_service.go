package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harmonylane/studio-admin-api/internal/models"
	"github.com/harmonylane/studio-admin-api/internal/store"
	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
)

// CreateTeacherRequest holds payload for creating teachers.
type CreateTeacherRequest struct {
	Name      string               `json:"name" validate:"required"`
	Email     string               `json:"email" validate:"required"`
	Specialty string               `json:"specialty" validate:"required"`
	Status    models.StudentStatus `json:"status"`
	Phone     string               `json:"phone"`
	Bio       string               `json:"bio"`
	JoinDate  string               `json:"join_date"`
}

// UpdateTeacherRequest holds payload for updating teachers.
type UpdateTeacherRequest struct {
	Name      string               `json:"name" validate:"required"`
	Email     string               `json:"email" validate:"required"`
	Specialty string               `json:"specialty" validate:"required"`
	Status    models.StudentStatus `json:"status"`
	Phone     string               `json:"phone"`
	Bio       string               `json:"bio"`
	JoinDate  string               `json:"join_date"`
}

// TeacherService handles teacher roster use-cases.
type TeacherService struct {
	teachers  *store.TeacherStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(teachers *store.TeacherStore, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{teachers: teachers, validator: validate, logger: logger}
}

// List returns teachers, filtered by a case-insensitive substring search over
// name, email and specialty when term is non-empty.
func (s *TeacherService) List(ctx context.Context, term string) []models.Teacher {
	if term == "" {
		return s.teachers.List()
	}
	return s.teachers.Search(term)
}

// Get returns a single teacher.
func (s *TeacherService) Get(ctx context.Context, id int) (models.Teacher, error) {
	teacher, err := s.teachers.Get(id)
	if err != nil {
		return models.Teacher{}, translateStoreError(err, "teacher not found")
	}
	return teacher, nil
}

// Create registers a new teacher with a zero course count.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Teacher{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	teacher, err := s.teachers.Add(store.TeacherInput{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Status:    req.Status,
		Phone:     req.Phone,
		Bio:       req.Bio,
		JoinDate:  req.JoinDate,
	})
	if err != nil {
		return models.Teacher{}, translateStoreError(err, "teacher not found")
	}
	s.logger.Info("teacher created", zap.Int("teacher_id", teacher.ID))
	return teacher, nil
}

// Update modifies an existing teacher record.
func (s *TeacherService) Update(ctx context.Context, id int, req UpdateTeacherRequest) (models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Teacher{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	teacher, err := s.teachers.Update(id, store.TeacherInput{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Status:    req.Status,
		Phone:     req.Phone,
		Bio:       req.Bio,
		JoinDate:  req.JoinDate,
	})
	if err != nil {
		return models.Teacher{}, translateStoreError(err, "teacher not found")
	}
	return teacher, nil
}

// Delete removes a teacher. Teachers are referenced by nothing else, so no
// cascade is needed.
func (s *TeacherService) Delete(ctx context.Context, id int) error {
	if err := s.teachers.Remove(id); err != nil {
		return translateStoreError(err, "teacher not found")
	}
	s.logger.Info("teacher deleted", zap.Int("teacher_id", id))
	return nil
}
