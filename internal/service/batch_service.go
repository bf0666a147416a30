package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/harmonylane/studio-admin-api/internal/models"
	"github.com/harmonylane/studio-admin-api/internal/store"
)

// BatchDetail is a batch expanded with its resolved course title and member
// records for the detail view.
type BatchDetail struct {
	models.Batch
	CourseTitle string           `json:"course_title"`
	Students    []models.Student `json:"students"`
}

// BatchService serves batch read paths. Creation and membership writes run
// through the EnrollmentService, which owns the cross-store consistency
// rules.
type BatchService struct {
	batches   *store.BatchStore
	students  *store.StudentStore
	directory *store.CourseDirectory
	logger    *zap.Logger
}

// NewBatchService constructs the batch read service.
func NewBatchService(batches *store.BatchStore, students *store.StudentStore, directory *store.CourseDirectory, logger *zap.Logger) *BatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{batches: batches, students: students, directory: directory, logger: logger}
}

// List returns batches, filtered by a case-insensitive name/description
// substring search when term is non-empty.
func (s *BatchService) List(ctx context.Context, term string) []models.Batch {
	if term == "" {
		return s.batches.List()
	}
	return s.batches.Search(term)
}

// Get returns a batch expanded with its course title and member records.
// Members whose student record has meanwhile disappeared are skipped, and an
// unknown course id resolves to the catalog sentinel.
func (s *BatchService) Get(ctx context.Context, id int) (BatchDetail, error) {
	batch, err := s.batches.Get(id)
	if err != nil {
		return BatchDetail{}, translateStoreError(err, "batch not found")
	}

	detail := BatchDetail{
		Batch:       batch,
		CourseTitle: s.directory.Lookup(batch.CourseID).Title,
		Students:    make([]models.Student, 0, len(batch.StudentIDs)),
	}
	for _, studentID := range batch.StudentIDs {
		student, err := s.students.Get(studentID)
		if err != nil {
			continue
		}
		detail.Students = append(detail.Students, student)
	}
	return detail, nil
}
