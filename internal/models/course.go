package models

// UnknownCourseTitle is the sentinel title returned when a course id does not
// resolve against the catalog. Lookups degrade to this instead of failing.
const UnknownCourseTitle = "Unknown Course"

// Course is a read-only catalog record owned by the course-authoring flow.
type Course struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// CourseStats pairs a course with its enrollment notification count.
type CourseStats struct {
	Course
	EnrolledCount int `json:"enrolled_count"`
}
