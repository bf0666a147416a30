package models

// StudentStatus enumerates roster states for a student.
type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
)

// Student represents a music-school student. Courses holds the ids of the
// catalog courses the student is enrolled in; EnrolledCourses is derived and
// kept equal to len(Courses) by the store on every write.
type Student struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Status          StudentStatus `json:"status"`
	Phone           string        `json:"phone,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	JoinDate        string        `json:"join_date"`
	Courses         []int         `json:"courses"`
	EnrolledCourses int           `json:"enrolled_courses"`
}
