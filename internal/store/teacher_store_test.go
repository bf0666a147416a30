package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeacherStoreAddRequiresSpecialty(t *testing.T) {
	s := NewTeacherStore()

	_, err := s.Add(TeacherInput{Name: "Dr. Adams", Email: "adams@example.com"})
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestTeacherStoreAddForcesZeroCourseCount(t *testing.T) {
	s := NewTeacherStore()

	teacher, err := s.Add(TeacherInput{Name: "Dr. Adams", Email: "adams@example.com", Specialty: "Piano"})
	require.NoError(t, err)

	assert.Equal(t, 0, teacher.CoursesCount)
}

func TestTeacherStoreUpdatePreservesCourseCount(t *testing.T) {
	s := NewTeacherStore()
	teacher, _ := s.Add(TeacherInput{Name: "Dr. Adams", Email: "adams@example.com", Specialty: "Piano"})

	updated, err := s.Update(teacher.ID, TeacherInput{Name: "Dr. J. Adams", Email: "adams@example.com", Specialty: "Piano"})
	require.NoError(t, err)

	assert.Equal(t, "Dr. J. Adams", updated.Name)
	assert.Equal(t, teacher.CoursesCount, updated.CoursesCount)
}

func TestTeacherStoreSearchIncludesSpecialty(t *testing.T) {
	s := NewTeacherStore()
	s.Add(TeacherInput{Name: "Dr. Adams", Email: "adams@example.com", Specialty: "Piano"})
	s.Add(TeacherInput{Name: "Prof. Wang", Email: "wang@example.com", Specialty: "Music Theory"})

	assert.Len(t, s.Search("piano"), 1)
	assert.Len(t, s.Search("theory"), 1)
	assert.Len(t, s.Search("wang"), 1)
}

func TestTeacherStoreRemoveUnknownID(t *testing.T) {
	s := NewTeacherStore()

	err := s.Remove(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}
