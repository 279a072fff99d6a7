package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleWorker  = "worker"
)

// IsValidUserRole verifica si s es un rol válido.
func IsValidUserRole(s string) bool {
	return s == RoleAdmin || s == RoleManager || s == RoleWorker
}

// User representa un usuario del sistema (dueño de proyectos).
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Role           string // admin, manager, worker
	ProfilePicture string // opcional
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
