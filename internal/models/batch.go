package models

// Batch is a named cohort of students attached to exactly one catalog course.
// StudentIDs is a duplicate-free set; CreatedDate is stamped at creation and
// immutable afterwards.
type Batch struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CourseID    int    `json:"course_id"`
	StudentIDs  []int  `json:"student_ids"`
	CreatedDate string `json:"created_date"`
}
