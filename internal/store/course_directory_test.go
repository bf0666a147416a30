package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harmonylane/studio-admin-api/internal/models"
)

func demoDirectory() *CourseDirectory {
	return NewCourseDirectory([]models.Course{
		{ID: 1, Title: "Music Theory Fundamentals"},
		{ID: 3, Title: "Electric Guitar Masterclass"},
	})
}

func TestCourseDirectoryLookupKnown(t *testing.T) {
	d := demoDirectory()

	course := d.Lookup(3)
	assert.Equal(t, "Electric Guitar Masterclass", course.Title)
}

func TestCourseDirectoryLookupUnknownReturnsSentinel(t *testing.T) {
	d := demoDirectory()

	course := d.Lookup(99)
	assert.Equal(t, models.UnknownCourseTitle, course.Title)
	assert.Equal(t, 0, course.ID)
}

func TestCourseDirectoryListAllPreservesOrder(t *testing.T) {
	d := demoDirectory()

	courses := d.ListAll()
	assert.Equal(t, []int{1, 3}, []int{courses[0].ID, courses[1].ID})
}

func TestCourseDirectoryNotifyEnrollmentCounts(t *testing.T) {
	d := demoDirectory()

	d.NotifyEnrollment(1, 10)
	d.NotifyEnrollment(1, 11)
	d.NotifyEnrollment(3, 10)

	stats := d.Stats()
	byID := map[int]int{}
	for _, s := range stats {
		byID[s.ID] = s.EnrolledCount
	}
	assert.Equal(t, 2, byID[1])
	assert.Equal(t, 1, byID[3])
}

func TestCourseDirectoryNotifyUnknownCourseIgnored(t *testing.T) {
	d := demoDirectory()

	d.NotifyEnrollment(99, 10)

	for _, s := range d.Stats() {
		assert.Equal(t, 0, s.EnrolledCount)
	}
}

func TestCourseDirectoryDuplicateNotificationsAccumulate(t *testing.T) {
	d := demoDirectory()

	d.NotifyEnrollment(1, 10)
	d.NotifyEnrollment(1, 10)

	stats := d.Stats()
	assert.Equal(t, 2, stats[0].EnrolledCount)
}
