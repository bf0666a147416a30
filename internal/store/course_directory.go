package store

import (
	"sync"

	"github.com/harmonylane/studio-admin-api/internal/models"
)

// CourseDirectory is the read-only course catalog owned by the
// course-authoring flow. The admin panel only looks courses up by id and
// forwards enrollment notifications; it never mutates the catalog itself.
type CourseDirectory struct {
	mu          sync.RWMutex
	courses     []models.Course
	enrollments map[int]int
}

// NewCourseDirectory builds a directory over the given catalog. Catalog order
// is preserved for listing.
func NewCourseDirectory(courses []models.Course) *CourseDirectory {
	return &CourseDirectory{
		courses:     append([]models.Course(nil), courses...),
		enrollments: make(map[int]int),
	}
}

// Lookup resolves a course id. Unknown ids resolve to the sentinel record
// instead of failing; display-layer leniency wins over referential strictness
// here.
func (d *CourseDirectory) Lookup(id int) models.Course {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, course := range d.courses {
		if course.ID == id {
			return course
		}
	}
	return models.Course{Title: models.UnknownCourseTitle}
}

// ListAll returns the catalog in its insertion order.
func (d *CourseDirectory) ListAll() []models.Course {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Course, len(d.courses))
	copy(out, d.courses)
	return out
}

// Stats returns the catalog annotated with enrollment notification counts.
func (d *CourseDirectory) Stats() []models.CourseStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.CourseStats, 0, len(d.courses))
	for _, course := range d.courses {
		out = append(out, models.CourseStats{Course: course, EnrolledCount: d.enrollments[course.ID]})
	}
	return out
}

// NotifyEnrollment records that a student was enrolled in a course. It is
// fire-and-forget: unknown course ids are counted nowhere and nothing is
// reported back to the caller.
func (d *CourseDirectory) NotifyEnrollment(courseID, studentID int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, course := range d.courses {
		if course.ID == courseID {
			d.enrollments[courseID]++
			return
		}
	}
}
