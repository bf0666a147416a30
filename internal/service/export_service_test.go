package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonylane/studio-admin-api/internal/models"
	"github.com/harmonylane/studio-admin-api/internal/store"
	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
)

func newExportFixture(t *testing.T) (*ExportService, *store.StudentStore, *store.BatchStore) {
	t.Helper()
	students := store.NewStudentStore()
	batches := store.NewBatchStore()
	directory := store.NewCourseDirectory([]models.Course{{ID: 1, Title: "Music Theory Fundamentals"}})
	return NewExportService(students, batches, directory, nil), students, batches
}

func TestStudentRosterCSV(t *testing.T) {
	svc, students, _ := newExportFixture(t)
	students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com", Courses: []int{1, 99}})

	result, err := svc.StudentRoster(context.Background(), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	body := string(result.Data)
	assert.Contains(t, body, "alice@example.com")
	assert.Contains(t, body, "Music Theory Fundamentals")
	// Unknown course ids surface the sentinel title.
	assert.Contains(t, body, models.UnknownCourseTitle)
}

func TestStudentRosterPDF(t *testing.T) {
	svc, students, _ := newExportFixture(t)
	students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})

	result, err := svc.StudentRoster(context.Background(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestBatchRosterSkipsMissingMembers(t *testing.T) {
	svc, students, batches := newExportFixture(t)
	member, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})
	batch, _ := batches.Add(store.BatchInput{Name: "Theory 2023", CourseID: 1, StudentIDs: []int{member.ID, 99}})

	result, err := svc.BatchRoster(context.Background(), batch.ID, FormatCSV)
	require.NoError(t, err)

	body := string(result.Data)
	assert.Contains(t, body, "alice@example.com")
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(body), "\n")+1)
}

func TestBatchRosterUnknownBatch(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	_, err := svc.BatchRoster(context.Background(), 42, FormatCSV)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestUnsupportedFormat(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	_, err := svc.StudentRoster(context.Background(), ExportFormat("xlsx"))

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
