package domain

// Role роль пользователя
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User пользователь в том виде, в котором его возвращает auth API
type User struct {
	ID    string
	Email string
	Role  Role
}

// IsAdmin returns true for administrators
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
