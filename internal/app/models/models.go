package models

// Role is the integer role identifier carried in JWT claims and the users table.
type Role int64

const (
	RoleAdmin   Role = 1
	RoleStudent Role = 2
	RoleTeacher Role = 3
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleTeacher:
		return true
	}
	return false
}

// String returns the conventional role name.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleStudent:
		return "STUDENT"
	case RoleTeacher:
		return "TEACHER"
	}
	return "UNKNOWN"
}
