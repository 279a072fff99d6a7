package repository

import "github.com/jhoicas/Obras-api/internal/domain/entity"

// WorkerFilter parámetros opcionales para listar trabajadores.
// ProjectID filtra por pertenencia en el conjunto de proyectos del trabajador.
type WorkerFilter struct {
	ProjectID string
}

// WorkerRepository define el puerto de persistencia para Worker (DIP).
// Las lecturas resuelven Projects (un nivel); referencias huérfanas se omiten.
type WorkerRepository interface {
	Create(worker *entity.Worker) error
	GetByID(id string) (*entity.Worker, error)
	List(filter WorkerFilter) ([]*entity.Worker, error)
	Update(worker *entity.Worker) error
	Delete(id string) (bool, error)
	// TogglePaid invierte is_paid en una sola sentencia del store (sin carrera
	// read-modify-write). Devuelve false si el trabajador no existe.
	TogglePaid(id string) (bool, error)
}
