package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
// El conjunto de trabajadores vive en event_workers; las lecturas lo resuelven
// con una segunda consulta y omiten trabajadores ya eliminados.
type EventRepo struct {
	pool *pgxpool.Pool
}

// NewEventRepository construye el adaptador de persistencia para eventos.
func NewEventRepository(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create persiste un evento y su conjunto de trabajadores.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, start_time, end_time, project_id, location,
		                    work_type, description, travel_time_before, travel_time_after,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		event.ID, event.Title, event.Start, event.End, event.ProjectID, event.Location,
		event.WorkType, nullIfEmpty(event.Description), event.TravelTimeBefore,
		event.TravelTimeAfter, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return r.replaceWorkers(event.ID, event.WorkerIDs)
}

// GetByID obtiene un evento por ID con proyecto y trabajadores resueltos.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := eventSelect + ` WHERE e.id = $1`
	e, err := scanEvent(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err := r.loadWorkers([]*entity.Event{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// List lista eventos según el filtro, orden ascendente por start_time.
func (r *EventRepo) List(filter repository.EventFilter) ([]*entity.Event, error) {
	query, args := eventListQuery(filter)
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadWorkers(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update actualiza un evento y reemplaza su conjunto de trabajadores.
// project_id no se toca: el evento pertenece a una obra de por vida.
func (r *EventRepo) Update(event *entity.Event) error {
	query := `
		UPDATE events SET title = $2, start_time = $3, end_time = $4, location = $5,
		       work_type = $6, description = $7, travel_time_before = $8,
		       travel_time_after = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		event.ID, event.Title, event.Start, event.End, event.Location, event.WorkType,
		nullIfEmpty(event.Description), event.TravelTimeBefore, event.TravelTimeAfter,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return r.replaceWorkers(event.ID, event.WorkerIDs)
}

// Delete elimina un evento y sus filas de event_workers. Devuelve false si no existía.
func (r *EventRepo) Delete(id string) (bool, error) {
	ctx := context.Background()
	if _, err := r.pool.Exec(ctx, `DELETE FROM event_workers WHERE event_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete event workers: %w", err)
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// replaceWorkers reescribe las filas de event_workers del evento.
func (r *EventRepo) replaceWorkers(eventID string, workerIDs []string) error {
	ctx := context.Background()
	if _, err := r.pool.Exec(ctx, `DELETE FROM event_workers WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("clear event workers: %w", err)
	}
	for _, wid := range workerIDs {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO event_workers (event_id, worker_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			eventID, wid,
		)
		if err != nil {
			return fmt.Errorf("insert event worker: %w", err)
		}
	}
	return nil
}

// loadWorkers resuelve WorkerIDs y Workers para un lote de eventos. Una
// referencia cuyo trabajador fue eliminado conserva el ID pero no aporta
// trabajador poblado.
func (r *EventRepo) loadWorkers(events []*entity.Event) error {
	if len(events) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		e.WorkerIDs = []string{}
		e.Workers = nil
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}
	query := `
		SELECT ew.event_id, ew.worker_id,
		       w.id, w.name, w.role, w.hourly_rate, w.hours_worked, w.specialty,
		       w.is_paid, w.created_at, w.updated_at
		FROM event_workers ew
		LEFT JOIN workers w ON w.id = ew.worker_id
		WHERE ew.event_id = ANY($1)
		ORDER BY ew.worker_id`
	rows, err := r.pool.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("load event workers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var eventID, workerID string
		var wID, wName, wRole *string
		var wRate, wHours *decimal.Decimal
		var wSpecialty []string
		var wPaid *bool
		var wCreated, wUpdated *time.Time
		err := rows.Scan(&eventID, &workerID,
			&wID, &wName, &wRole, &wRate, &wHours, &wSpecialty,
			&wPaid, &wCreated, &wUpdated,
		)
		if err != nil {
			return fmt.Errorf("scan event worker: %w", err)
		}
		e := byID[eventID]
		if e == nil {
			continue
		}
		e.WorkerIDs = append(e.WorkerIDs, workerID)
		if wID != nil {
			e.Workers = append(e.Workers, &entity.Worker{
				ID:          *wID,
				Name:        derefStr(wName),
				Role:        derefStr(wRole),
				HourlyRate:  *wRate,
				HoursWorked: *wHours,
				Specialty:   wSpecialty,
				IsPaid:      *wPaid,
				CreatedAt:   *wCreated,
				UpdatedAt:   *wUpdated,
			})
		}
	}
	return rows.Err()
}

// scanEvent lee una fila de eventSelect (evento + proyecto nullable).
func scanEvent(row rowScanner) (*entity.Event, error) {
	var e entity.Event
	var desc *string
	var pID, pName, pDesc, pOwner, pStatus, pLoc *string
	var pStart, pEnd, pCreated, pUpdated *time.Time
	var pBudget *decimal.Decimal
	var pProgress *int
	err := row.Scan(
		&e.ID, &e.Title, &e.Start, &e.End, &e.ProjectID, &e.Location,
		&e.WorkType, &desc, &e.TravelTimeBefore, &e.TravelTimeAfter,
		&e.CreatedAt, &e.UpdatedAt,
		&pID, &pName, &pDesc, &pOwner, &pStart, &pEnd,
		&pBudget, &pStatus, &pLoc, &pProgress, &pCreated, &pUpdated,
	)
	if err != nil {
		return nil, err
	}
	e.Description = derefStr(desc)
	e.Project = scanJoinedProject(pID, pName, pDesc, pOwner, pStart, pEnd, pBudget, pStatus, pLoc, pProgress, pCreated, pUpdated)
	return &e, nil
}
