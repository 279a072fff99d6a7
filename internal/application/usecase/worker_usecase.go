package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// WorkerUseCase casos de uso CRUD para trabajadores, incluido el flip de pago.
type WorkerUseCase struct {
	repo        repository.WorkerRepository
	projectRepo repository.ProjectRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository, projectRepo repository.ProjectRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo, projectRepo: projectRepo}
}

// Create crea un trabajador. name, role y hourlyRate son obligatorios; cada
// proyecto referenciado debe existir.
func (uc *WorkerUseCase) Create(in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	verr := domain.NewValidationError()
	if in.Name == "" {
		verr.Add("name", "es requerido")
	}
	if in.Role == "" {
		verr.Add("role", "es requerido")
	}
	if in.HourlyRate.IsZero() {
		verr.Add("hourlyRate", "es requerido")
	} else if in.HourlyRate.IsNegative() {
		verr.Add("hourlyRate", "debe ser mayor o igual a cero")
	}
	hoursWorked := decimal.Zero
	if in.HoursWorked != nil {
		if in.HoursWorked.IsNegative() {
			verr.Add("hoursWorked", "debe ser mayor o igual a cero")
		} else {
			hoursWorked = *in.HoursWorked
		}
	}
	for _, s := range in.Specialty {
		if !entity.IsValidWorkType(s) {
			verr.Add("specialty", fmt.Sprintf("%q no es un tipo de trabajo válido", s))
		}
	}
	uc.validateProjectRefs(in.Projects, verr)
	if verr.HasErrors() {
		return nil, verr
	}

	isPaid := false
	if in.IsPaid != nil {
		isPaid = *in.IsPaid
	}
	now := time.Now()
	worker := &entity.Worker{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Role:        in.Role,
		HourlyRate:  in.HourlyRate,
		HoursWorked: hoursWorked,
		Specialty:   in.Specialty,
		IsPaid:      isPaid,
		ProjectIDs:  in.Projects,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(worker); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(worker.ID)
	if err != nil {
		return nil, err
	}
	return toWorkerResponse(created), nil
}

// GetByID obtiene un trabajador por ID con sus proyectos resueltos.
func (uc *WorkerUseCase) GetByID(id string) (*dto.WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	return toWorkerResponse(worker), nil
}

// List lista trabajadores, opcionalmente los asignados a un proyecto.
func (uc *WorkerUseCase) List(filter repository.WorkerFilter) ([]dto.WorkerResponse, error) {
	if filter.ProjectID != "" {
		if _, err := uuid.Parse(filter.ProjectID); err != nil {
			return nil, domain.ErrInvalidID
		}
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return items, nil
}

// Update aplica una actualización parcial y revalida los campos tocados.
func (uc *WorkerUseCase) Update(id string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}

	verr := domain.NewValidationError()
	if in.Name != nil {
		worker.Name = *in.Name
	}
	if in.Role != nil {
		worker.Role = *in.Role
	}
	if in.HourlyRate != nil {
		if in.HourlyRate.IsNegative() {
			verr.Add("hourlyRate", "debe ser mayor o igual a cero")
		} else {
			worker.HourlyRate = *in.HourlyRate
		}
	}
	if in.HoursWorked != nil {
		if in.HoursWorked.IsNegative() {
			verr.Add("hoursWorked", "debe ser mayor o igual a cero")
		} else {
			worker.HoursWorked = *in.HoursWorked
		}
	}
	if in.Specialty != nil {
		for _, s := range *in.Specialty {
			if !entity.IsValidWorkType(s) {
				verr.Add("specialty", fmt.Sprintf("%q no es un tipo de trabajo válido", s))
			}
		}
		if _, bad := verr.Fields["specialty"]; !bad {
			worker.Specialty = *in.Specialty
		}
	}
	if in.IsPaid != nil {
		worker.IsPaid = *in.IsPaid
	}
	if in.Projects != nil {
		uc.validateProjectRefs(*in.Projects, verr)
		if _, bad := verr.Fields["projects"]; !bad {
			worker.ProjectIDs = *in.Projects
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	worker.UpdatedAt = time.Now()
	if err := uc.repo.Update(worker); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toWorkerResponse(updated), nil
}

// Delete elimina un trabajador por ID (hard delete, sin cascada).
func (uc *WorkerUseCase) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// TogglePayment invierte isPaid de forma atómica en el store y devuelve el
// trabajador actualizado. Dos llamadas consecutivas dejan el flag como estaba.
func (uc *WorkerUseCase) TogglePayment(id string) (*dto.WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	toggled, err := uc.repo.TogglePaid(id)
	if err != nil {
		return nil, err
	}
	if !toggled {
		return nil, nil
	}
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// validateProjectRefs verifica que cada proyecto referenciado exista.
func (uc *WorkerUseCase) validateProjectRefs(ids []string, verr *domain.ValidationError) {
	for _, pid := range ids {
		if _, err := uuid.Parse(pid); err != nil {
			verr.Add("projects", fmt.Sprintf("%q no es un identificador válido", pid))
			continue
		}
		project, err := uc.projectRepo.GetByID(pid)
		if err != nil {
			continue // la falla de store se reporta al persistir
		}
		if project == nil {
			verr.Add("projects", fmt.Sprintf("el proyecto %s no existe", pid))
		}
	}
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	specialty := w.Specialty
	if specialty == nil {
		specialty = []string{}
	}
	projects := make([]dto.ProjectResponse, 0, len(w.Projects))
	for _, p := range w.Projects {
		projects = append(projects, *toProjectResponse(p))
	}
	return &dto.WorkerResponse{
		ID:          w.ID,
		Name:        w.Name,
		Role:        w.Role,
		HourlyRate:  w.HourlyRate,
		HoursWorked: w.HoursWorked,
		Specialty:   specialty,
		IsPaid:      w.IsPaid,
		Projects:    projects,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
