package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonylane/studio-admin-api/internal/models"
)

func TestStudentStoreAddAssignsSequentialIDs(t *testing.T) {
	s := NewStudentStore()

	first, err := s.Add(StudentInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	second, err := s.Add(StudentInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestStudentStoreAddDefaults(t *testing.T) {
	s := NewStudentStore()

	student, err := s.Add(StudentInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	assert.Equal(t, models.StudentStatusActive, student.Status)
	assert.NotEmpty(t, student.JoinDate)
	assert.Equal(t, 0, student.EnrolledCourses)
}

func TestStudentStoreAddRequiresNameAndEmail(t *testing.T) {
	s := NewStudentStore()

	_, err := s.Add(StudentInput{Email: "alice@example.com"})
	assert.True(t, errors.Is(err, ErrInvalid))

	_, err = s.Add(StudentInput{Name: "Alice", Email: "   "})
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestStudentStoreAddDeduplicatesCourses(t *testing.T) {
	s := NewStudentStore()

	student, err := s.Add(StudentInput{Name: "Alice", Email: "alice@example.com", Courses: []int{1, 3, 1, 3}})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, student.Courses)
	assert.Equal(t, 2, student.EnrolledCourses)
}

func TestStudentStoreIDReuseAfterDelete(t *testing.T) {
	s := NewStudentStore()

	first, _ := s.Add(StudentInput{Name: "Alice", Email: "alice@example.com"})
	second, _ := s.Add(StudentInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, s.Remove(second.ID))

	third, err := s.Add(StudentInput{Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)

	// Max existing id is 1 again, so id 2 is handed out a second time.
	assert.Equal(t, first.ID+1, third.ID)
}

func TestStudentStoreUpdateKeepsCoursesWhenNil(t *testing.T) {
	s := NewStudentStore()
	student, _ := s.Add(StudentInput{Name: "Alice", Email: "alice@example.com", Courses: []int{1, 3}})

	updated, err := s.Update(student.ID, StudentInput{Name: "Alice B.", Email: "alice@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Alice B.", updated.Name)
	assert.Equal(t, []int{1, 3}, updated.Courses)
	assert.Equal(t, 2, updated.EnrolledCourses)
}

func TestStudentStoreUpdateReplacesCourses(t *testing.T) {
	s := NewStudentStore()
	student, _ := s.Add(StudentInput{Name: "Alice", Email: "alice@example.com", Courses: []int{1, 3}})

	updated, err := s.Update(student.ID, StudentInput{Name: "Alice", Email: "alice@example.com", Courses: []int{5}})
	require.NoError(t, err)

	assert.Equal(t, []int{5}, updated.Courses)
	assert.Equal(t, 1, updated.EnrolledCourses)
}

func TestStudentStoreUpdateUnknownID(t *testing.T) {
	s := NewStudentStore()

	_, err := s.Update(42, StudentInput{Name: "Ghost", Email: "ghost@example.com"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStudentStoreAddCourseIdempotent(t *testing.T) {
	s := NewStudentStore()
	student, _ := s.Add(StudentInput{Name: "Alice", Email: "alice@example.com"})

	added, err := s.AddCourse(student.ID, 7)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddCourse(student.ID, 7)
	require.NoError(t, err)
	assert.False(t, added)

	got, _ := s.Get(student.ID)
	assert.Equal(t, []int{7}, got.Courses)
	assert.Equal(t, 1, got.EnrolledCourses)
}

func TestStudentStoreAddCourseUnknownStudent(t *testing.T) {
	s := NewStudentStore()

	_, err := s.AddCourse(99, 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStudentStoreSearchMatchesNameAndEmail(t *testing.T) {
	s := NewStudentStore()
	s.Add(StudentInput{Name: "Alice Johnson", Email: "alice@example.com"})
	s.Add(StudentInput{Name: "Bob Smith", Email: "bob@school.org"})

	assert.Len(t, s.Search("ALICE"), 1)
	assert.Len(t, s.Search("school.org"), 1)
	assert.Len(t, s.Search("nobody"), 0)
}

func TestStudentStoreGetReturnsCopy(t *testing.T) {
	s := NewStudentStore()
	student, _ := s.Add(StudentInput{Name: "Alice", Email: "alice@example.com", Courses: []int{1}})

	got, _ := s.Get(student.ID)
	got.Courses[0] = 99

	fresh, _ := s.Get(student.ID)
	assert.Equal(t, []int{1}, fresh.Courses)
}
