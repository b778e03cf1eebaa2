package entity

import "time"

// Role replaces the numeric role codes of older revisions with named
// variants checked via IsAdmin.
type Role string

const (
	RoleReader Role = "READER"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) Valid() bool {
	return r == RoleReader || r == RoleAdmin
}

type User struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Username          string     `json:"username"`
	Password          string     `json:"-"`
	Role              Role       `json:"role"`
	FirstName         string     `json:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"`
	ProfilePictureURL string     `json:"profile_picture_url,omitempty"`
	IsActive          bool       `json:"is_active"`
	RegistrationDate  time.Time  `json:"registration_date"`
	LastLoginDate     *time.Time `json:"last_login_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
