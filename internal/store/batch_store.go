package store

import (
	"strings"
	"sync"

	"github.com/harmonylane/studio-admin-api/internal/models"
)

// BatchInput is the write payload for creating a batch. StudentIDs may
// contain duplicates; they are collapsed on write.
type BatchInput struct {
	Name        string
	Description string
	CourseID    int
	StudentIDs  []int
}

// BatchStore owns the batch collection. Every id in a batch's StudentIDs must
// refer to an existing student; the enrollment service keeps that true by
// cascading student deletions through RemoveStudent.
type BatchStore struct {
	mu      sync.RWMutex
	batches []models.Batch
}

// NewBatchStore returns an empty batch store.
func NewBatchStore() *BatchStore {
	return &BatchStore{}
}

// Add creates a batch with a fresh id and stamps its creation date. Name and
// course are required.
func (s *BatchStore) Add(input BatchInput) (models.Batch, error) {
	if strings.TrimSpace(input.Name) == "" {
		return models.Batch{}, invalidf("name is required")
	}
	if input.CourseID == 0 {
		return models.Batch{}, invalidf("course is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := models.Batch{
		ID:          s.nextIDLocked(),
		Name:        input.Name,
		Description: input.Description,
		CourseID:    input.CourseID,
		StudentIDs:  dedupeIDs(input.StudentIDs),
		CreatedDate: today(),
	}

	s.batches = append(s.batches, batch)
	return copyBatch(batch), nil
}

// AddStudents merges the given ids into the batch membership as a set union.
// Re-adding a present id is a no-op for that id.
func (s *BatchStore) AddStudents(batchID int, studentIDs []int) (models.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(batchID)
	if idx < 0 {
		return models.Batch{}, ErrNotFound
	}

	batch := &s.batches[idx]
	for _, id := range studentIDs {
		if !containsID(batch.StudentIDs, id) {
			batch.StudentIDs = append(batch.StudentIDs, id)
		}
	}
	return copyBatch(*batch), nil
}

// RemoveStudent strips the student id from every batch. It is the cascade
// hook for student deletion and is idempotent when the id is absent.
func (s *BatchStore) RemoveStudent(studentID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.batches {
		ids := s.batches[i].StudentIDs
		kept := ids[:0]
		for _, id := range ids {
			if id != studentID {
				kept = append(kept, id)
			}
		}
		s.batches[i].StudentIDs = kept
	}
}

// Get returns the batch with the given id.
func (s *BatchStore) Get(id int) (models.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Batch{}, ErrNotFound
	}
	return copyBatch(s.batches[idx]), nil
}

// List returns all batches in insertion order.
func (s *BatchStore) List() []models.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Batch, 0, len(s.batches))
	for _, batch := range s.batches {
		out = append(out, copyBatch(batch))
	}
	return out
}

// Search matches name or description case-insensitively.
func (s *BatchStore) Search(term string) []models.Batch {
	needle := strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Batch, 0)
	for _, batch := range s.batches {
		if strings.Contains(strings.ToLower(batch.Name), needle) ||
			strings.Contains(strings.ToLower(batch.Description), needle) {
			out = append(out, copyBatch(batch))
		}
	}
	return out
}

// Count returns the number of batches.
func (s *BatchStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.batches)
}

func (s *BatchStore) indexLocked(id int) int {
	for i := range s.batches {
		if s.batches[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *BatchStore) nextIDLocked() int {
	max := 0
	for i := range s.batches {
		if s.batches[i].ID > max {
			max = s.batches[i].ID
		}
	}
	return max + 1
}

func copyBatch(batch models.Batch) models.Batch {
	cp := batch
	cp.StudentIDs = append([]int(nil), batch.StudentIDs...)
	return cp
}
