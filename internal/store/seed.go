package store

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonylane/studio-admin-api/internal/models"
)

// DemoCatalog is the course catalog served by the demo directory.
func DemoCatalog() []models.Course {
	return []models.Course{
		{ID: 1, Title: "Music Theory Fundamentals"},
		{ID: 2, Title: "Jazz Improvisation"},
		{ID: 3, Title: "Electric Guitar Masterclass"},
		{ID: 4, Title: "Classical Piano Technique"},
		{ID: 5, Title: "Vocal Performance"},
		{ID: 6, Title: "Songwriting Workshop"},
		{ID: 7, Title: "Advanced Music Theory"},
		{ID: 8, Title: "Drum Fundamentals"},
	}
}

// SeedDemo fills the stores with the demo roster used by the admin panel in
// development. Errors are impossible with this fixed dataset, so they are
// swallowed.
func SeedDemo(students *StudentStore, teachers *TeacherStore, batches *BatchStore) {
	demoStudents := []StudentInput{
		{Name: "Alice Johnson", Email: "alice@example.com", Status: models.StudentStatusActive, JoinDate: "2023-01-15", Phone: "555-123-4567", Notes: "Exceptional student with good musical ear.", Courses: []int{1, 3}},
		{Name: "Bob Smith", Email: "bob@example.com", Status: models.StudentStatusActive, JoinDate: "2023-02-20", Phone: "555-234-5678", Notes: "Needs additional practice time.", Courses: []int{1, 5}},
		{Name: "Carol Williams", Email: "carol@example.com", Status: models.StudentStatusInactive, JoinDate: "2022-11-10", Phone: "555-345-6789", Notes: "On leave until next semester.", Courses: []int{2}},
		{Name: "David Brown", Email: "david@example.com", Status: models.StudentStatusActive, JoinDate: "2023-03-05", Phone: "555-456-7890", Notes: "Interested in advanced theory classes.", Courses: []int{1, 2, 4, 7}},
		{Name: "Eva Garcia", Email: "eva@example.com", Status: models.StudentStatusActive, JoinDate: "2023-01-30", Phone: "555-567-8901", Notes: "Considering private piano lessons.", Courses: []int{3, 6}},
	}
	for _, input := range demoStudents {
		_, _ = students.Add(input)
	}

	demoTeachers := []TeacherInput{
		{Name: "Dr. John Adams", Email: "john.adams@example.com", Status: models.StudentStatusActive, Specialty: "Piano", JoinDate: "2022-01-15", Bio: "Concert pianist with over 15 years of teaching experience. PhD in Music from Juilliard.", Phone: "555-123-4567"},
		{Name: "Prof. Lisa Wang", Email: "lisa.wang@example.com", Status: models.StudentStatusActive, Specialty: "Music Theory", JoinDate: "2022-03-20", Bio: "Professor of Music Theory with expertise in contemporary composition. Author of multiple textbooks.", Phone: "555-234-5678"},
		{Name: "James Miller", Email: "james.miller@example.com", Status: models.StudentStatusInactive, Specialty: "Guitar", JoinDate: "2021-11-10", Bio: "Professional guitarist specializing in jazz and classical styles. On sabbatical until next term.", Phone: "555-345-6789"},
		{Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Status: models.StudentStatusActive, Specialty: "Violin", JoinDate: "2022-06-05", Bio: "Concert violinist with the National Symphony Orchestra. Specializes in teaching advanced students.", Phone: "555-456-7890"},
	}
	for _, input := range demoTeachers {
		_, _ = teachers.Add(input)
	}

	demoBatches := []BatchInput{
		{Name: "Music Theory 2023", Description: "Students enrolled in Music Theory for Spring 2023", CourseID: 1, StudentIDs: []int{1, 2, 4}},
		{Name: "Guitar Beginners", Description: "Beginner guitarists group", CourseID: 3, StudentIDs: []int{3, 5}},
	}
	for _, input := range demoBatches {
		_, _ = batches.Add(input)
	}
}

// SeedAdmin provisions the administrator account used to sign in.
func SeedAdmin(users *UserStore, email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	return users.Create(models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Studio Administrator",
		Role:         models.RoleAdmin,
		Status:       models.StudentStatusActive,
		PasswordHash: string(hash),
	})
}
