package repository

import (
	"time"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// EventFilter parámetros opcionales para listar eventos. Todos conjuntivos (AND).
// StartDate y EndDate forman una ventana cerrada de contención: el evento
// completo debe caber dentro (start >= StartDate AND end <= EndDate), no basta
// con solaparse.
type EventFilter struct {
	ProjectID string
	WorkType  string
	WorkerID  string
	StartDate *time.Time
	EndDate   *time.Time
}

// EventRepository define el puerto de persistencia para Event (DIP).
// Las lecturas resuelven Project y Workers (un nivel); huérfanos se omiten.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	List(filter EventFilter) ([]*entity.Event, error)
	Update(event *entity.Event) error
	Delete(id string) (bool, error)
}
