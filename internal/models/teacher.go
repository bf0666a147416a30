package models

// Teacher represents an instructor record. CoursesCount is maintained by the
// course-authoring flow, never recomputed here.
type Teacher struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Status       StudentStatus `json:"status"`
	Specialty    string        `json:"specialty"`
	Phone        string        `json:"phone,omitempty"`
	Bio          string        `json:"bio,omitempty"`
	JoinDate     string        `json:"join_date"`
	CoursesCount int           `json:"courses_count"`
}
