package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonylane/studio-admin-api/internal/store"
	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
)

type notification struct {
	courseID  int
	studentID int
}

type recordingNotifier struct {
	events []notification
}

func (r *recordingNotifier) NotifyEnrollment(courseID, studentID int) {
	r.events = append(r.events, notification{courseID: courseID, studentID: studentID})
}

func newEnrollmentFixture(t *testing.T) (*EnrollmentService, *store.StudentStore, *store.BatchStore, *recordingNotifier) {
	t.Helper()
	students := store.NewStudentStore()
	batches := store.NewBatchStore()
	notifier := &recordingNotifier{}
	svc := NewEnrollmentService(students, batches, notifier, nil, nil, nil)
	return svc, students, batches, notifier
}

func TestAssignCourseNotifiesEveryCall(t *testing.T) {
	svc, students, _, notifier := newEnrollmentFixture(t)
	student, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})

	_, err := svc.AssignCourse(context.Background(), student.ID, AssignCourseRequest{CourseID: 7})
	require.NoError(t, err)
	got, err := svc.AssignCourse(context.Background(), student.ID, AssignCourseRequest{CourseID: 7})
	require.NoError(t, err)

	// The course set stays a set, but the directory hears about both calls.
	assert.Equal(t, []int{7}, got.Courses)
	assert.Equal(t, 1, got.EnrolledCourses)
	assert.Len(t, notifier.events, 2)
}

func TestAssignCourseUnknownStudent(t *testing.T) {
	svc, _, _, notifier := newEnrollmentFixture(t)

	_, err := svc.AssignCourse(context.Background(), 42, AssignCourseRequest{CourseID: 7})

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Empty(t, notifier.events)
}

func TestAssignCourseValidation(t *testing.T) {
	svc, students, _, _ := newEnrollmentFixture(t)
	student, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})

	_, err := svc.AssignCourse(context.Background(), student.ID, AssignCourseRequest{})

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCreateBatchEnrollsOnlyMissingMembers(t *testing.T) {
	svc, students, _, notifier := newEnrollmentFixture(t)
	holder, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com", Courses: []int{1}})
	newcomer, _ := students.Add(store.StudentInput{Name: "Bob", Email: "bob@example.com"})

	batch, err := svc.CreateBatchWithStudents(context.Background(), CreateBatchRequest{
		Name:       "Theory 2023",
		CourseID:   1,
		StudentIDs: []int{holder.ID, newcomer.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{holder.ID, newcomer.ID}, batch.StudentIDs)
	// Only the newcomer triggers a notification; the existing holder is silent.
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notification{courseID: 1, studentID: newcomer.ID}, notifier.events[0])

	got, _ := students.Get(newcomer.ID)
	assert.Equal(t, []int{1}, got.Courses)
}

func TestCreateBatchSkipsUnknownStudents(t *testing.T) {
	svc, students, _, notifier := newEnrollmentFixture(t)
	known, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})

	batch, err := svc.CreateBatchWithStudents(context.Background(), CreateBatchRequest{
		Name:       "Theory 2023",
		CourseID:   1,
		StudentIDs: []int{known.ID, 99},
	})
	require.NoError(t, err)

	// Membership keeps the unknown id; only the real student gets enrolled.
	assert.Equal(t, []int{known.ID, 99}, batch.StudentIDs)
	assert.Len(t, notifier.events, 1)
}

func TestAddStudentsToBatchUnionAndEnrollment(t *testing.T) {
	svc, students, batches, notifier := newEnrollmentFixture(t)
	first, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com", Courses: []int{3}})
	second, _ := students.Add(store.StudentInput{Name: "Bob", Email: "bob@example.com"})
	batch, _ := batches.Add(store.BatchInput{Name: "Guitar Beginners", CourseID: 3, StudentIDs: []int{first.ID}})

	updated, err := svc.AddStudentsToBatch(context.Background(), batch.ID, AddStudentsRequest{StudentIDs: []int{first.ID, second.ID}})
	require.NoError(t, err)

	assert.Equal(t, []int{first.ID, second.ID}, updated.StudentIDs)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, second.ID, notifier.events[0].studentID)
}

func TestAddStudentsToBatchUnknownBatch(t *testing.T) {
	svc, _, _, _ := newEnrollmentFixture(t)

	_, err := svc.AddStudentsToBatch(context.Background(), 42, AddStudentsRequest{StudentIDs: []int{1}})

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestDeleteStudentCascadesBatchMembership(t *testing.T) {
	svc, students, batches, _ := newEnrollmentFixture(t)
	victim, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})
	other, _ := students.Add(store.StudentInput{Name: "Bob", Email: "bob@example.com"})
	batch, _ := batches.Add(store.BatchInput{Name: "Theory 2023", CourseID: 1, StudentIDs: []int{victim.ID, other.ID}})

	require.NoError(t, svc.DeleteStudent(context.Background(), victim.ID))

	_, err := students.Get(victim.ID)
	assert.Error(t, err)
	got, _ := batches.Get(batch.ID)
	assert.Equal(t, []int{other.ID}, got.StudentIDs)
}

func TestDeleteStudentUnknownLeavesBatchesUntouched(t *testing.T) {
	svc, students, batches, _ := newEnrollmentFixture(t)
	member, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})
	batch, _ := batches.Add(store.BatchInput{Name: "Theory 2023", CourseID: 1, StudentIDs: []int{member.ID}})

	err := svc.DeleteStudent(context.Background(), 99)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	got, _ := batches.Get(batch.ID)
	assert.Equal(t, []int{member.ID}, got.StudentIDs)
}
