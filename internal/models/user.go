package models

// User is a staff account able to sign in to the admin panel.
type User struct {
	ID              string        `json:"id"`
	Email           string        `json:"email"`
	Name            string        `json:"name"`
	Role            string        `json:"role"`
	Status          StudentStatus `json:"status"`
	Phone           string        `json:"phone,omitempty"`
	Bio             string        `json:"bio,omitempty"`
	Address         string        `json:"address,omitempty"`
	MusicPreference string        `json:"music_preference,omitempty"`
	MusicGoals      string        `json:"music_goals,omitempty"`
	AvatarURL       string        `json:"avatar_url,omitempty"`
	JoinedDate      string        `json:"joined_date"`
	PasswordHash    string        `json:"-"`
}

// RoleAdmin is the only role provisioned by the demo seed.
const RoleAdmin = "admin"
