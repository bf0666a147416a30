package store

import (
	"strings"
	"sync"

	"github.com/harmonylane/studio-admin-api/internal/models"
)

// TeacherInput is the write payload for creating or updating a teacher.
type TeacherInput struct {
	Name      string
	Email     string
	Specialty string
	Status    models.StudentStatus
	Phone     string
	Bio       string
	JoinDate  string
}

// TeacherStore owns the teacher collection. Teachers reference no other
// entities, so there are no cascade concerns.
type TeacherStore struct {
	mu       sync.RWMutex
	teachers []models.Teacher
}

// NewTeacherStore returns an empty teacher store.
func NewTeacherStore() *TeacherStore {
	return &TeacherStore{}
}

// Add creates a teacher with a fresh id and a zero course count. Name, email
// and specialty are required.
func (s *TeacherStore) Add(input TeacherInput) (models.Teacher, error) {
	if err := validateTeacherInput(input); err != nil {
		return models.Teacher{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := models.Teacher{
		ID:        s.nextIDLocked(),
		Name:      input.Name,
		Email:     input.Email,
		Specialty: input.Specialty,
		Status:    input.Status,
		Phone:     input.Phone,
		Bio:       input.Bio,
		JoinDate:  input.JoinDate,
	}
	if teacher.Status == "" {
		teacher.Status = models.StudentStatusActive
	}
	if teacher.JoinDate == "" {
		teacher.JoinDate = today()
	}

	s.teachers = append(s.teachers, teacher)
	return teacher, nil
}

// Update merges the input over the existing record. CoursesCount is owned by
// the course-authoring flow and passes through untouched.
func (s *TeacherStore) Update(id int, input TeacherInput) (models.Teacher, error) {
	if err := validateTeacherInput(input); err != nil {
		return models.Teacher{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Teacher{}, ErrNotFound
	}

	teacher := &s.teachers[idx]
	teacher.Name = input.Name
	teacher.Email = input.Email
	teacher.Specialty = input.Specialty
	teacher.Phone = input.Phone
	teacher.Bio = input.Bio
	if input.Status != "" {
		teacher.Status = input.Status
	}
	if input.JoinDate != "" {
		teacher.JoinDate = input.JoinDate
	}

	return *teacher, nil
}

// Remove deletes the teacher record.
func (s *TeacherStore) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.teachers = append(s.teachers[:idx], s.teachers[idx+1:]...)
	return nil
}

// Get returns the teacher with the given id.
func (s *TeacherStore) Get(id int) (models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Teacher{}, ErrNotFound
	}
	return s.teachers[idx], nil
}

// List returns all teachers in insertion order.
func (s *TeacherStore) List() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Teacher, len(s.teachers))
	copy(out, s.teachers)
	return out
}

// Search matches name, email or specialty case-insensitively.
func (s *TeacherStore) Search(term string) []models.Teacher {
	needle := strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Teacher, 0)
	for _, teacher := range s.teachers {
		if strings.Contains(strings.ToLower(teacher.Name), needle) ||
			strings.Contains(strings.ToLower(teacher.Email), needle) ||
			strings.Contains(strings.ToLower(teacher.Specialty), needle) {
			out = append(out, teacher)
		}
	}
	return out
}

// Count returns the number of teachers on the roster.
func (s *TeacherStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teachers)
}

func validateTeacherInput(input TeacherInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return invalidf("name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return invalidf("email is required")
	}
	if strings.TrimSpace(input.Specialty) == "" {
		return invalidf("specialty is required")
	}
	return nil
}

func (s *TeacherStore) indexLocked(id int) int {
	for i := range s.teachers {
		if s.teachers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TeacherStore) nextIDLocked() int {
	max := 0
	for i := range s.teachers {
		if s.teachers[i].ID > max {
			max = s.teachers[i].ID
		}
	}
	return max + 1
}
