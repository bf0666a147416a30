package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchStoreAddRequiresNameAndCourse(t *testing.T) {
	s := NewBatchStore()

	_, err := s.Add(BatchInput{CourseID: 1})
	assert.True(t, errors.Is(err, ErrInvalid))

	_, err = s.Add(BatchInput{Name: "Theory 2023"})
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestBatchStoreAddStampsCreatedDateAndDedupes(t *testing.T) {
	s := NewBatchStore()

	batch, err := s.Add(BatchInput{Name: "Theory 2023", CourseID: 1, StudentIDs: []int{1, 2, 1}})
	require.NoError(t, err)

	assert.Equal(t, 1, batch.ID)
	assert.NotEmpty(t, batch.CreatedDate)
	assert.Equal(t, []int{1, 2}, batch.StudentIDs)
}

func TestBatchStoreAddStudentsIsSetUnion(t *testing.T) {
	s := NewBatchStore()
	batch, _ := s.Add(BatchInput{Name: "Theory 2023", CourseID: 1, StudentIDs: []int{1, 2}})

	updated, err := s.AddStudents(batch.ID, []int{2, 3, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, updated.StudentIDs)
}

func TestBatchStoreAddStudentsUnknownBatch(t *testing.T) {
	s := NewBatchStore()

	_, err := s.AddStudents(42, []int{1})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBatchStoreRemoveStudentStripsEveryBatch(t *testing.T) {
	s := NewBatchStore()
	first, _ := s.Add(BatchInput{Name: "Theory 2023", CourseID: 1, StudentIDs: []int{1, 2, 3}})
	second, _ := s.Add(BatchInput{Name: "Guitar Beginners", CourseID: 3, StudentIDs: []int{3, 5}})

	s.RemoveStudent(3)

	gotFirst, _ := s.Get(first.ID)
	gotSecond, _ := s.Get(second.ID)
	assert.Equal(t, []int{1, 2}, gotFirst.StudentIDs)
	assert.Equal(t, []int{5}, gotSecond.StudentIDs)
}

func TestBatchStoreRemoveStudentAbsentIsNoop(t *testing.T) {
	s := NewBatchStore()
	batch, _ := s.Add(BatchInput{Name: "Theory 2023", CourseID: 1, StudentIDs: []int{1, 2}})

	s.RemoveStudent(99)

	got, _ := s.Get(batch.ID)
	assert.Equal(t, []int{1, 2}, got.StudentIDs)
}

func TestBatchStoreSearchMatchesNameAndDescription(t *testing.T) {
	s := NewBatchStore()
	s.Add(BatchInput{Name: "Theory 2023", Description: "Spring cohort", CourseID: 1})
	s.Add(BatchInput{Name: "Guitar Beginners", Description: "Evening group", CourseID: 3})

	assert.Len(t, s.Search("theory"), 1)
	assert.Len(t, s.Search("EVENING"), 1)
	assert.Len(t, s.Search("piano"), 0)
}
