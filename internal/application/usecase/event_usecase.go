package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// EventUseCase casos de uso CRUD para eventos agendados.
type EventUseCase struct {
	repo        repository.EventRepository
	projectRepo repository.ProjectRepository
	workerRepo  repository.WorkerRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository, projectRepo repository.ProjectRepository, workerRepo repository.WorkerRepository) *EventUseCase {
	return &EventUseCase{repo: repo, projectRepo: projectRepo, workerRepo: workerRepo}
}

// Create crea un evento. title, start, end, project, location, workers y
// workType son obligatorios; end debe ser posterior a start y cada referencia
// debe existir. Un evento con end <= start jamás se persiste.
func (uc *EventUseCase) Create(in dto.CreateEventRequest) (*dto.EventResponse, error) {
	verr := domain.NewValidationError()
	if in.Title == "" {
		verr.Add("title", "es requerido")
	}
	if in.Start == nil {
		verr.Add("start", "es requerido")
	}
	if in.End == nil {
		verr.Add("end", "es requerido")
	}
	if in.Start != nil && in.End != nil && !in.End.After(*in.Start) {
		verr.Add("end", "debe ser posterior a start")
	}
	if in.Location == "" {
		verr.Add("location", "es requerido")
	}
	if in.WorkType == "" {
		verr.Add("workType", "es requerido")
	} else if !entity.IsValidWorkType(in.WorkType) {
		verr.Add("workType", "valor fuera del conjunto plumbing, electrical, carpentry, general")
	}
	if in.Workers == nil {
		verr.Add("workers", "es requerido")
	} else {
		uc.validateWorkerRefs(in.Workers, verr)
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
	if verr.HasErrors() {
		return nil, verr
	}

	now := time.Now()
	event := &entity.Event{
		ID:               uuid.New().String(),
		Title:            in.Title,
		Start:            *in.Start,
		End:              *in.End,
		ProjectID:        in.Project,
		Location:         in.Location,
		WorkerIDs:        in.Workers,
		WorkType:         in.WorkType,
		Description:      in.Description,
		TravelTimeBefore: in.TravelTimeBefore,
		TravelTimeAfter:  in.TravelTimeAfter,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(event.ID)
	if err != nil {
		return nil, err
	}
	return toEventResponse(created), nil
}

// GetByID obtiene un evento por ID con proyecto y trabajadores resueltos.
func (uc *EventUseCase) GetByID(id string) (*dto.EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	return toEventResponse(event), nil
}

// List lista eventos en orden ascendente por start. La ventana de fechas es de
// contención cerrada: solo entran eventos que caben completos en [startDate, endDate].
func (uc *EventUseCase) List(filter repository.EventFilter) ([]dto.EventResponse, error) {
	verr := domain.NewValidationError()
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
	if filter.WorkType != "" && !entity.IsValidWorkType(filter.WorkType) {
		verr.Add("workType", "valor fuera del conjunto plumbing, electrical, carpentry, general")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventResponse(e))
	}
	return items, nil
}

// Update aplica una actualización parcial y revalida end > start sobre el
// documento fusionado. El proyecto del evento es inmutable.
func (uc *EventUseCase) Update(id string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	verr := domain.NewValidationError()
	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Start != nil {
		event.Start = *in.Start
	}
	if in.End != nil {
		event.End = *in.End
	}
	if (in.Start != nil || in.End != nil) && !event.End.After(event.Start) {
		verr.Add("end", "debe ser posterior a start")
	}
	if in.Location != nil {
		event.Location = *in.Location
	}
	if in.WorkType != nil {
		if !entity.IsValidWorkType(*in.WorkType) {
			verr.Add("workType", "valor fuera del conjunto plumbing, electrical, carpentry, general")
		} else {
			event.WorkType = *in.WorkType
		}
	}
	if in.Workers != nil {
		uc.validateWorkerRefs(*in.Workers, verr)
		if _, bad := verr.Fields["workers"]; !bad {
			event.WorkerIDs = *in.Workers
		}
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.TravelTimeBefore != nil {
		event.TravelTimeBefore = in.TravelTimeBefore
	}
	if in.TravelTimeAfter != nil {
		event.TravelTimeAfter = in.TravelTimeAfter
	}
	if verr.HasErrors() {
		return nil, verr
	}

	event.UpdatedAt = time.Now()
	if err := uc.repo.Update(event); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toEventResponse(updated), nil
}

// Delete elimina un evento por ID (hard delete).
func (uc *EventUseCase) Delete(id string) error {
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

// validateWorkerRefs verifica que cada trabajador referenciado exista.
func (uc *EventUseCase) validateWorkerRefs(ids []string, verr *domain.ValidationError) {
	for _, wid := range ids {
		if _, err := uuid.Parse(wid); err != nil {
			verr.Add("workers", fmt.Sprintf("%q no es un identificador válido", wid))
			continue
		}
		worker, err := uc.workerRepo.GetByID(wid)
		if err != nil {
			continue // la falla de store se reporta al persistir
		}
		if worker == nil {
			verr.Add("workers", fmt.Sprintf("el trabajador %s no existe", wid))
		}
	}
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	workers := make([]dto.WorkerResponse, 0, len(e.Workers))
	for _, w := range e.Workers {
		workers = append(workers, *toWorkerResponse(w))
	}
	return &dto.EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Start:            e.Start,
		End:              e.End,
		ProjectID:        e.ProjectID,
		Project:          toProjectResponse(e.Project),
		Location:         e.Location,
		Workers:          workers,
		WorkType:         e.WorkType,
		Description:      e.Description,
		TravelTimeBefore: e.TravelTimeBefore,
		TravelTimeAfter:  e.TravelTimeAfter,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
