package models

// UserRole represents the available account roles.
type UserRole string

const (
	RoleTeacher UserRole = "teacher"
	RoleParent  UserRole = "parent"
	RoleStudent UserRole = "student"
)

// User is an account record keyed by username in the document. The password
// field mirrors the persisted layout (plaintext, legacy contract) and is never
// serialized into API responses; handlers work with PublicUser instead.
type User struct {
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	Role           UserRole `json:"role"`
	Name           string   `json:"name"`
	Subject        string   `json:"subject,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	StudentID      string   `json:"studentId,omitempty"`
}

// PublicUser is a User with the password stripped.
type PublicUser struct {
	Username       string   `json:"username"`
	Role           UserRole `json:"role"`
	Name           string   `json:"name"`
	Subject        string   `json:"subject,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	StudentID      string   `json:"studentId,omitempty"`
}

// Public returns the user without its password.
func (u User) Public() PublicUser {
	return PublicUser{
		Username:       u.Username,
		Role:           u.Role,
		Name:           u.Name,
		Subject:        u.Subject,
		ProfilePicture: u.ProfilePicture,
		StudentID:      u.StudentID,
	}
}
