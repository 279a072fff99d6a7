package repository

import "github.com/jhoicas/Obras-api/internal/domain/entity"

// WorkItemFilter parámetros opcionales para listar partidas de trabajo.
type WorkItemFilter struct {
	ProjectID string
	WorkerID  string
}

// WorkItemRepository define el puerto de persistencia para WorkItem (DIP).
// Las lecturas resuelven Project (un nivel); huérfano queda en nil.
type WorkItemRepository interface {
	Create(item *entity.WorkItem) error
	GetByID(id string) (*entity.WorkItem, error)
	List(filter WorkItemFilter) ([]*entity.WorkItem, error)
	Update(item *entity.WorkItem) error
	Delete(id string) (bool, error)
}
