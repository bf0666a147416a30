package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonylane/studio-admin-api/internal/service"
	"github.com/harmonylane/studio-admin-api/internal/store"
)

func newStudentRouter(t *testing.T) (*gin.Engine, *store.StudentStore, *store.BatchStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	students := store.NewStudentStore()
	batches := store.NewBatchStore()
	studentSvc := service.NewStudentService(students, nil, nil)
	enrollmentSvc := service.NewEnrollmentService(students, batches, nil, nil, nil, nil)
	h := NewStudentHandler(studentSvc, enrollmentSvc)

	r := gin.New()
	r.GET("/students", h.List)
	r.GET("/students/:id", h.Get)
	r.POST("/students", h.Create)
	r.PUT("/students/:id", h.Update)
	r.DELETE("/students/:id", h.Delete)
	r.POST("/students/:id/courses", h.AssignCourse)
	return r, students, batches
}

func TestStudentHandlerCreateAndGet(t *testing.T) {
	r, _, _ := newStudentRouter(t)

	rec := httptest.NewRecorder()
	body := `{"name":"Alice","email":"alice@example.com","courses":[1,3]}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			ID              int    `json:"id"`
			Email           string `json:"email"`
			EnrolledCourses int    `json:"enrolled_courses"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.ID)
	assert.Equal(t, "alice@example.com", envelope.Data.Email)
	assert.Equal(t, 2, envelope.Data.EnrolledCourses)
}

func TestStudentHandlerCreateMissingName(t *testing.T) {
	r, _, _ := newStudentRouter(t)

	rec := httptest.NewRecorder()
	body := `{"email":"alice@example.com"}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentHandlerGetUnknown(t *testing.T) {
	r, _, _ := newStudentRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentHandlerNonNumericID(t *testing.T) {
	r, _, _ := newStudentRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentHandlerDeleteCascades(t *testing.T) {
	r, students, batches := newStudentRouter(t)
	student, _ := students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})
	batch, _ := batches.Add(store.BatchInput{Name: "Theory 2023", CourseID: 1, StudentIDs: []int{student.ID}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/students/1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	got, _ := batches.Get(batch.ID)
	assert.Empty(t, got.StudentIDs)
}

func TestStudentHandlerAssignCourse(t *testing.T) {
	r, students, _ := newStudentRouter(t)
	students.Add(store.StudentInput{Name: "Alice", Email: "alice@example.com"})

	rec := httptest.NewRecorder()
	body := `{"course_id":7}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/students/1/courses", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Courses []int `json:"courses"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, []int{7}, envelope.Data.Courses)
}

func TestStudentHandlerSearch(t *testing.T) {
	r, students, _ := newStudentRouter(t)
	students.Add(store.StudentInput{Name: "Alice Johnson", Email: "alice@example.com"})
	students.Add(store.StudentInput{Name: "Bob Smith", Email: "bob@example.com"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students?search=alice", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Alice Johnson", envelope.Data[0].Name)
}
