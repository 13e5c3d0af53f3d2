package domain

import "time"

// UserRole represents the role of a registered user
type UserRole string

const (
	RoleDriver UserRole = "DRIVER"
	RoleAdmin  UserRole = "ADMIN"
)

// User represents a registered account. The booking engine itself never
// references users: driver name and vehicle number on a booking are free
// text supplied by the API surface.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
