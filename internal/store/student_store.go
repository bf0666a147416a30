package store

import (
	"strings"
	"sync"

	"github.com/harmonylane/studio-admin-api/internal/models"
)

// StudentInput is the write payload for creating or updating a student.
// A nil Courses slice on update means "keep the existing course set".
type StudentInput struct {
	Name     string
	Email    string
	Status   models.StudentStatus
	Phone    string
	Notes    string
	JoinDate string
	Courses  []int
}

// StudentStore owns the student collection. Insertion order is preserved for
// listing; it carries no semantic meaning.
type StudentStore struct {
	mu       sync.RWMutex
	students []models.Student
}

// NewStudentStore returns an empty student store.
func NewStudentStore() *StudentStore {
	return &StudentStore{}
}

// Add creates a student with a fresh id. Name and email are required.
func (s *StudentStore) Add(input StudentInput) (models.Student, error) {
	if strings.TrimSpace(input.Name) == "" {
		return models.Student{}, invalidf("name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return models.Student{}, invalidf("email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	courses := dedupeIDs(input.Courses)
	student := models.Student{
		ID:              s.nextIDLocked(),
		Name:            input.Name,
		Email:           input.Email,
		Status:          input.Status,
		Phone:           input.Phone,
		Notes:           input.Notes,
		JoinDate:        input.JoinDate,
		Courses:         courses,
		EnrolledCourses: len(courses),
	}
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}
	if student.JoinDate == "" {
		student.JoinDate = today()
	}

	s.students = append(s.students, student)
	return copyStudent(student), nil
}

// Update merges the input over the existing record and recomputes the
// derived enrollment count.
func (s *StudentStore) Update(id int, input StudentInput) (models.Student, error) {
	if strings.TrimSpace(input.Name) == "" {
		return models.Student{}, invalidf("name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return models.Student{}, invalidf("email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Student{}, ErrNotFound
	}

	student := &s.students[idx]
	student.Name = input.Name
	student.Email = input.Email
	student.Phone = input.Phone
	student.Notes = input.Notes
	if input.Status != "" {
		student.Status = input.Status
	}
	if input.JoinDate != "" {
		student.JoinDate = input.JoinDate
	}
	if input.Courses != nil {
		student.Courses = dedupeIDs(input.Courses)
	}
	student.EnrolledCourses = len(student.Courses)

	return copyStudent(*student), nil
}

// Remove deletes the student record. The caller is responsible for cascading
// the removal into batch membership.
func (s *StudentStore) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.students = append(s.students[:idx], s.students[idx+1:]...)
	return nil
}

// AddCourse inserts courseID into the student's course set. It reports
// whether the id was newly added; re-adding an existing id is a no-op.
func (s *StudentStore) AddCourse(studentID, courseID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(studentID)
	if idx < 0 {
		return false, ErrNotFound
	}

	student := &s.students[idx]
	if containsID(student.Courses, courseID) {
		return false, nil
	}
	student.Courses = append(student.Courses, courseID)
	student.EnrolledCourses = len(student.Courses)
	return true, nil
}

// Get returns the student with the given id.
func (s *StudentStore) Get(id int) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Student{}, ErrNotFound
	}
	return copyStudent(s.students[idx]), nil
}

// List returns all students in insertion order.
func (s *StudentStore) List() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, 0, len(s.students))
	for _, student := range s.students {
		out = append(out, copyStudent(student))
	}
	return out
}

// Search returns students whose name or email contains the term,
// case-insensitively.
func (s *StudentStore) Search(term string) []models.Student {
	needle := strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, 0)
	for _, student := range s.students {
		if strings.Contains(strings.ToLower(student.Name), needle) ||
			strings.Contains(strings.ToLower(student.Email), needle) {
			out = append(out, copyStudent(student))
		}
	}
	return out
}

// Count returns the number of students on the roster.
func (s *StudentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students)
}

func (s *StudentStore) indexLocked(id int) int {
	for i := range s.students {
		if s.students[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *StudentStore) nextIDLocked() int {
	max := 0
	for i := range s.students {
		if s.students[i].ID > max {
			max = s.students[i].ID
		}
	}
	return max + 1
}

func copyStudent(student models.Student) models.Student {
	cp := student
	cp.Courses = append([]int(nil), student.Courses...)
	return cp
}
