package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD para proyectos.
type ProjectUseCase struct {
	repo     repository.ProjectRepository
	userRepo repository.UserRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, userRepo: userRepo}
}

// Create crea un proyecto atribuido al actor de la petición (actorID pasa a ser
// el owner). Rechaza presupuesto negativo y endDate anterior a startDate.
func (uc *ProjectUseCase) Create(actorID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	verr := domain.NewValidationError()
	if in.Name == "" {
		verr.Add("name", "es requerido")
	}
	if in.Description == "" {
		verr.Add("description", "es requerido")
	}
	if in.StartDate.IsZero() {
		verr.Add("startDate", "es requerido")
	}
	if in.EndDate.IsZero() {
		verr.Add("endDate", "es requerido")
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		verr.Add("endDate", "debe ser igual o posterior a startDate")
	}
	if in.Budget.IsZero() {
		verr.Add("budget", "es requerido")
	} else if in.Budget.IsNegative() {
		verr.Add("budget", "debe ser mayor o igual a cero")
	}
	if in.Location == "" {
		verr.Add("location", "es requerido")
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPlanning
	}
	if !entity.IsValidProjectStatus(status) {
		verr.Add("status", "valor fuera del conjunto planning, in_progress, on_hold, completed")
	}
	progress := 0
	if in.Progress != nil {
		progress = *in.Progress
		if progress < 0 || progress > 100 {
			verr.Add("progress", "debe estar entre 0 y 100")
		}
	}
	if actorID == "" {
		verr.Add("owner", "actor de la petición no identificado")
	} else if _, err := uuid.Parse(actorID); err != nil {
		verr.Add("owner", "identificador inválido")
	} else {
		owner, err := uc.userRepo.GetByID(actorID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			verr.Add("owner", "el usuario referenciado no existe")
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     actorID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Status:      status,
		Location:    in.Location,
		Progress:    progress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	// Relectura con referencias resueltas
	created, err := uc.repo.GetByID(project.ID)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(created), nil
}

// GetByID obtiene un proyecto por ID con el owner resuelto.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return toProjectResponse(project), nil
}

// List lista proyectos filtrando por status y/u owner, orden ascendente por startDate.
func (uc *ProjectUseCase) List(filter repository.ProjectFilter) ([]dto.ProjectResponse, error) {
	verr := domain.NewValidationError()
	if filter.Status != "" && !entity.IsValidProjectStatus(filter.Status) {
		verr.Add("status", "valor fuera del conjunto planning, in_progress, on_hold, completed")
	}
	if filter.OwnerID != "" {
		if _, err := uuid.Parse(filter.OwnerID); err != nil {
			return nil, domain.ErrInvalidID
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProjectResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial y revalida los campos tocados junto
// con el invariante de fechas sobre el documento ya fusionado.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}

	verr := domain.NewValidationError()
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.StartDate != nil {
		project.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = *in.EndDate
	}
	if (in.StartDate != nil || in.EndDate != nil) && project.EndDate.Before(project.StartDate) {
		verr.Add("endDate", "debe ser igual o posterior a startDate")
	}
	if in.Budget != nil {
		if in.Budget.IsNegative() {
			verr.Add("budget", "debe ser mayor o igual a cero")
		} else {
			project.Budget = *in.Budget
		}
	}
	if in.Status != nil {
		if !entity.IsValidProjectStatus(*in.Status) {
			verr.Add("status", "valor fuera del conjunto planning, in_progress, on_hold, completed")
		} else {
			project.Status = *in.Status
		}
	}
	if in.Location != nil {
		project.Location = *in.Location
	}
	if in.Progress != nil {
		if *in.Progress < 0 || *in.Progress > 100 {
			verr.Add("progress", "debe estar entre 0 y 100")
		} else {
			project.Progress = *in.Progress
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina un proyecto por ID. No hay cascada: eventos y partidas que lo
// referencien quedan con referencia huérfana que la lectura resuelve a nulo.
func (uc *ProjectUseCase) Delete(id string) error {
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

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Owner:       toUserResponse(p.Owner),
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Budget:      p.Budget,
		Status:      p.Status,
		Location:    p.Location,
		Progress:    p.Progress,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
