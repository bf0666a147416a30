package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harmonylane/studio-admin-api/internal/models"
	"github.com/harmonylane/studio-admin-api/internal/store"
	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
)

// enrollmentNotifier receives fire-and-forget enrollment events. The course
// directory implements it; the service never inspects an outcome.
type enrollmentNotifier interface {
	NotifyEnrollment(courseID, studentID int)
}

// AssignCourseRequest describes a direct course assignment.
type AssignCourseRequest struct {
	CourseID int `json:"course_id" validate:"required"`
}

// CreateBatchRequest describes batch creation together with its initial
// member set.
type CreateBatchRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	CourseID    int    `json:"course_id" validate:"required"`
	StudentIDs  []int  `json:"student_ids"`
}

// AddStudentsRequest describes a membership merge into an existing batch.
type AddStudentsRequest struct {
	StudentIDs []int `json:"student_ids" validate:"required,min=1"`
}

// EnrollmentService is the consistency core: it executes the cross-store
// workflows that keep each student's course set and each batch's member set
// in agreement, and forwards enrollment events to the course directory. It
// holds no state of its own.
type EnrollmentService struct {
	students  *store.StudentStore
	batches   *store.BatchStore
	notifier  enrollmentNotifier
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(students *store.StudentStore, batches *store.BatchStore, notifier enrollmentNotifier, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{students: students, batches: batches, notifier: notifier, metrics: metrics, validator: validate, logger: logger}
}

// AssignCourse adds a course to a student's set and notifies the directory.
// The course id is not validated here: unknown ids resolve to the catalog
// sentinel at display time. The notification fires on every call, even when
// the course was already assigned, so directory counts can exceed distinct
// enrollments.
func (s *EnrollmentService) AssignCourse(ctx context.Context, studentID int, req AssignCourseRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	added, err := s.students.AddCourse(studentID, req.CourseID)
	if err != nil {
		return models.Student{}, translateStoreError(err, "student not found")
	}
	s.notify(req.CourseID, studentID)
	if added {
		s.logger.Info("course assigned", zap.Int("student_id", studentID), zap.Int("course_id", req.CourseID))
	}

	return s.students.Get(studentID)
}

// CreateBatchWithStudents creates a batch and enrolls its initial members in
// the batch's course. Members already holding the course are left untouched
// and, unlike AssignCourse, are NOT re-notified. The initial member set is
// stored as supplied (deduplicated only); ids of unknown students simply do
// not participate in the enrollment pass.
func (s *EnrollmentService) CreateBatchWithStudents(ctx context.Context, req CreateBatchRequest) (models.Batch, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Batch{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch payload")
	}

	batch, err := s.batches.Add(store.BatchInput{
		Name:        req.Name,
		Description: req.Description,
		CourseID:    req.CourseID,
		StudentIDs:  req.StudentIDs,
	})
	if err != nil {
		return models.Batch{}, translateStoreError(err, "batch not found")
	}

	s.enrollMembers(batch.StudentIDs, batch.CourseID)
	s.logger.Info("batch created", zap.Int("batch_id", batch.ID), zap.Int("course_id", batch.CourseID), zap.Int("members", len(batch.StudentIDs)))
	return batch, nil
}

// AddStudentsToBatch merges students into an existing batch and enrolls the
// newcomers in the batch's course under the same notify-only-on-first-add
// rule as batch creation.
func (s *EnrollmentService) AddStudentsToBatch(ctx context.Context, batchID int, req AddStudentsRequest) (models.Batch, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Batch{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid membership payload")
	}

	batch, err := s.batches.AddStudents(batchID, req.StudentIDs)
	if err != nil {
		return models.Batch{}, translateStoreError(err, "batch not found")
	}

	s.enrollMembers(req.StudentIDs, batch.CourseID)
	return batch, nil
}

// DeleteStudent removes a student and strips their id from every batch. Both
// steps complete inside this call, so callers never observe the intermediate
// state.
func (s *EnrollmentService) DeleteStudent(ctx context.Context, studentID int) error {
	if _, err := s.students.Get(studentID); err != nil {
		return translateStoreError(err, "student not found")
	}

	s.batches.RemoveStudent(studentID)
	if err := s.students.Remove(studentID); err != nil {
		return translateStoreError(err, "student not found")
	}
	s.logger.Info("student deleted", zap.Int("student_id", studentID))
	return nil
}

// enrollMembers applies the batch enrollment rule: add the course to each
// existing member that lacks it and notify once per actual addition.
func (s *EnrollmentService) enrollMembers(studentIDs []int, courseID int) {
	for _, studentID := range studentIDs {
		added, err := s.students.AddCourse(studentID, courseID)
		if err != nil || !added {
			continue
		}
		s.notify(courseID, studentID)
	}
}

func (s *EnrollmentService) notify(courseID, studentID int) {
	if s.notifier != nil {
		s.notifier.NotifyEnrollment(courseID, studentID)
	}
	s.metrics.IncEnrollmentNotification()
}
