package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// WorkItemUseCase casos de uso CRUD para partidas de trabajo.
type WorkItemUseCase struct {
	repo        repository.WorkItemRepository
	projectRepo repository.ProjectRepository
	workerRepo  repository.WorkerRepository
}

// NewWorkItemUseCase construye el caso de uso.
func NewWorkItemUseCase(repo repository.WorkItemRepository, projectRepo repository.ProjectRepository, workerRepo repository.WorkerRepository) *WorkItemUseCase {
	return &WorkItemUseCase{repo: repo, projectRepo: projectRepo, workerRepo: workerRepo}
}

// Create crea una partida. project, item, type y location son obligatorios; el
// proyecto (y el worker si viene) deben existir.
func (uc *WorkItemUseCase) Create(in dto.CreateWorkItemRequest) (*dto.WorkItemResponse, error) {
	verr := domain.NewValidationError()
	if in.Item == "" {
		verr.Add("item", "es requerido")
	}
	if in.Location == "" {
		verr.Add("location", "es requerido")
	}
	if in.Type == "" {
		verr.Add("type", "es requerido")
	} else if !entity.IsValidWorkType(in.Type) {
		verr.Add("type", "valor fuera del conjunto plumbing, electrical, carpentry, general")
	}
	status := in.Status
	if status == "" {
		status = entity.WorkItemStatusPending
	}
	if !entity.IsValidWorkItemStatus(status) {
		verr.Add("status", "valor fuera del conjunto pending, in_progress, completed")
	}
	costEstimate := decimal.Zero
	if in.CostEstimate != nil {
		if in.CostEstimate.IsNegative() {
			verr.Add("costEstimate", "debe ser mayor o igual a cero")
		} else {
			costEstimate = *in.CostEstimate
		}
	}
	if in.Project == "" {
		verr.Add("project", "es requerido")
	} else if _, err := uuid.Parse(in.Project); err != nil {
		verr.Add("project", "identificador inválido")
	} else {
		project, err := uc.projectRepo.GetByID(in.Project)
		if err != nil {
			return nil, err
		}
		if project == nil {
			verr.Add("project", "el proyecto referenciado no existe")
		}
	}
	if in.Worker != "" {
		if _, err := uuid.Parse(in.Worker); err != nil {
			verr.Add("worker", "identificador inválido")
		} else {
			worker, err := uc.workerRepo.GetByID(in.Worker)
			if err != nil {
				return nil, err
			}
			if worker == nil {
				verr.Add("worker", "el trabajador referenciado no existe")
			}
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	now := time.Now()
	dateAdded := now
	if in.DateAdded != nil {
		dateAdded = *in.DateAdded
	}
	item := &entity.WorkItem{
		ID:            uuid.New().String(),
		Item:          in.Item,
		CostEstimate:  costEstimate,
		Status:        status,
		Type:          in.Type,
		Location:      in.Location,
		Notes:         in.Notes,
		DateAdded:     dateAdded,
		DateCompleted: in.DateCompleted,
		ProjectID:     in.Project,
		WorkerID:      in.Worker,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(item.ID)
	if err != nil {
		return nil, err
	}
	return toWorkItemResponse(created), nil
}

// GetByID obtiene una partida por ID con su proyecto resuelto.
func (uc *WorkItemUseCase) GetByID(id string) (*dto.WorkItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toWorkItemResponse(item), nil
}

// List lista partidas por proyecto y/o trabajador, orden descendente por fecha de alta.
func (uc *WorkItemUseCase) List(filter repository.WorkItemFilter) ([]dto.WorkItemResponse, error) {
	if filter.ProjectID != "" {
		if _, err := uuid.Parse(filter.ProjectID); err != nil {
			return nil, domain.ErrInvalidID
		}
	}
	if filter.WorkerID != "" {
		if _, err := uuid.Parse(filter.WorkerID); err != nil {
			return nil, domain.ErrInvalidID
		}
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toWorkItemResponse(it))
	}
	return items, nil
}

// Update aplica una actualización parcial. El proyecto de la partida es inmutable.
func (uc *WorkItemUseCase) Update(id string, in dto.UpdateWorkItemRequest) (*dto.WorkItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	verr := domain.NewValidationError()
	if in.Item != nil {
		item.Item = *in.Item
	}
	if in.CostEstimate != nil {
		if in.CostEstimate.IsNegative() {
			verr.Add("costEstimate", "debe ser mayor o igual a cero")
		} else {
			item.CostEstimate = *in.CostEstimate
		}
	}
	if in.Status != nil {
		if !entity.IsValidWorkItemStatus(*in.Status) {
			verr.Add("status", "valor fuera del conjunto pending, in_progress, completed")
		} else {
			item.Status = *in.Status
		}
	}
	if in.Type != nil {
		if !entity.IsValidWorkType(*in.Type) {
			verr.Add("type", "valor fuera del conjunto plumbing, electrical, carpentry, general")
		} else {
			item.Type = *in.Type
		}
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	if in.DateCompleted != nil {
		item.DateCompleted = in.DateCompleted
	}
	if in.Worker != nil {
		if *in.Worker == "" {
			item.WorkerID = ""
		} else if _, err := uuid.Parse(*in.Worker); err != nil {
			verr.Add("worker", "identificador inválido")
		} else {
			worker, err := uc.workerRepo.GetByID(*in.Worker)
			if err != nil {
				return nil, err
			}
			if worker == nil {
				verr.Add("worker", "el trabajador referenciado no existe")
			} else {
				item.WorkerID = *in.Worker
			}
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toWorkItemResponse(updated), nil
}

// Delete elimina una partida por ID (hard delete).
func (uc *WorkItemUseCase) Delete(id string) error {
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

func toWorkItemResponse(it *entity.WorkItem) *dto.WorkItemResponse {
	if it == nil {
		return nil
	}
	return &dto.WorkItemResponse{
		ID:            it.ID,
		Item:          it.Item,
		CostEstimate:  it.CostEstimate,
		Status:        it.Status,
		Type:          it.Type,
		Location:      it.Location,
		Notes:         it.Notes,
		DateAdded:     it.DateAdded,
		DateCompleted: it.DateCompleted,
		ProjectID:     it.ProjectID,
		Project:       toProjectResponse(it.Project),
		Worker:        it.WorkerID,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
