package repository

import "github.com/jhoicas/Obras-api/internal/domain/entity"

// ProjectFilter parámetros opcionales para listar proyectos. Campos vacíos no restringen.
type ProjectFilter struct {
	Status  string
	OwnerID string
}

// ProjectRepository define el puerto de persistencia para Project (DIP).
// GetByID y List devuelven el proyecto con Owner resuelto (un nivel); si el
// usuario referenciado no existe, Owner queda en nil.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(filter ProjectFilter) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) (bool, error)
}
