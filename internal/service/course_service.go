package service

import (
	"context"

	"github.com/harmonylane/studio-admin-api/internal/models"
	"github.com/harmonylane/studio-admin-api/internal/store"
)

// CourseService exposes the read-only catalog to the HTTP layer.
type CourseService struct {
	directory *store.CourseDirectory
}

// NewCourseService constructs the course service.
func NewCourseService(directory *store.CourseDirectory) *CourseService {
	return &CourseService{directory: directory}
}

// List returns the catalog in its insertion order.
func (s *CourseService) List(ctx context.Context) []models.Course {
	return s.directory.ListAll()
}

// Stats returns the catalog annotated with enrollment notification counts.
func (s *CourseService) Stats(ctx context.Context) []models.CourseStats {
	return s.directory.Stats()
}

// Get resolves a course id. Unknown ids resolve to the sentinel record with a
// zero id rather than an error.
func (s *CourseService) Get(ctx context.Context, id int) models.Course {
	return s.directory.Lookup(id)
}
