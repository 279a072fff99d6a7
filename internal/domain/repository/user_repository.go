package repository

import "github.com/jhoicas/Obras-api/internal/domain/entity"

// UserFilter parámetros opcionales para listar usuarios. Campos vacíos no restringen.
type UserFilter struct {
	Role string
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(filter UserFilter) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) (bool, error)
}
