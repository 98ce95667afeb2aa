package models

// Role classifies a caller for access control decisions.
type Role string

const (
	// RoleGuest is the resolution for an email with no user record.
	RoleGuest Role = "guest"
	// RolePatient is the default role for a registered user.
	RolePatient Role = "patient"
	// RoleAdmin grants access to doctor management and user promotion.
	RoleAdmin Role = "admin"
)

// User is a registered account. Role is stored only when elevated; a missing
// role field means a regular patient.
type User struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
}
