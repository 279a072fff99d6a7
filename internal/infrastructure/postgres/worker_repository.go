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

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL.
// La asignación a proyectos vive en worker_projects; las lecturas la resuelven
// con una segunda consulta y omiten proyectos ya eliminados.
type WorkerRepo struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadores.
func NewWorkerRepository(pool *pgxpool.Pool) *WorkerRepo {
	return &WorkerRepo{pool: pool}
}

// Create persiste un trabajador y sus asignaciones de proyecto.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO workers (id, name, role, hourly_rate, hours_worked, specialty, is_paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		worker.ID, worker.Name, worker.Role, worker.HourlyRate, worker.HoursWorked,
		worker.Specialty, worker.IsPaid, worker.CreatedAt, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert worker: %w", err)
	}
	return r.replaceProjects(worker.ID, worker.ProjectIDs)
}

// GetByID obtiene un trabajador por ID con sus proyectos resueltos.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := workerSelect + ` WHERE w.id = $1`
	w, err := scanWorker(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	if err := r.loadProjects([]*entity.Worker{w}); err != nil {
		return nil, err
	}
	return w, nil
}

// List lista trabajadores según el filtro, orden descendente por alta.
func (r *WorkerRepo) List(filter repository.WorkerFilter) ([]*entity.Worker, error) {
	query, args := workerListQuery(filter)
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadProjects(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update actualiza un trabajador y reemplaza sus asignaciones de proyecto.
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `
		UPDATE workers SET name = $2, role = $3, hourly_rate = $4, hours_worked = $5,
		       specialty = $6, is_paid = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		worker.ID, worker.Name, worker.Role, worker.HourlyRate, worker.HoursWorked,
		worker.Specialty, worker.IsPaid, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	return r.replaceProjects(worker.ID, worker.ProjectIDs)
}

// Delete elimina un trabajador y sus asignaciones. Devuelve false si no existía.
func (r *WorkerRepo) Delete(id string) (bool, error) {
	ctx := context.Background()
	if _, err := r.pool.Exec(ctx, `DELETE FROM worker_projects WHERE worker_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete worker projects: %w", err)
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete worker: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// TogglePaid invierte is_paid en una sola sentencia: el flip es atómico en el
// store y no hay carrera read-modify-write entre peticiones concurrentes.
func (r *WorkerRepo) TogglePaid(id string) (bool, error) {
	query := `UPDATE workers SET is_paid = NOT is_paid, updated_at = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id, time.Now())
	if err != nil {
		return false, fmt.Errorf("toggle worker payment: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// replaceProjects reescribe las filas de worker_projects del trabajador.
func (r *WorkerRepo) replaceProjects(workerID string, projectIDs []string) error {
	ctx := context.Background()
	if _, err := r.pool.Exec(ctx, `DELETE FROM worker_projects WHERE worker_id = $1`, workerID); err != nil {
		return fmt.Errorf("clear worker projects: %w", err)
	}
	for _, pid := range projectIDs {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO worker_projects (worker_id, project_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			workerID, pid,
		)
		if err != nil {
			return fmt.Errorf("insert worker project: %w", err)
		}
	}
	return nil
}

// loadProjects resuelve ProjectIDs y Projects para un lote de trabajadores.
// Una asignación cuyo proyecto fue eliminado conserva el ID pero no aporta
// proyecto poblado.
func (r *WorkerRepo) loadProjects(workers []*entity.Worker) error {
	if len(workers) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Worker, len(workers))
	ids := make([]string, 0, len(workers))
	for _, w := range workers {
		w.ProjectIDs = []string{}
		w.Projects = nil
		byID[w.ID] = w
		ids = append(ids, w.ID)
	}
	query := `
		SELECT wp.worker_id, wp.project_id,
		       p.id, p.name, p.description, p.owner_id, p.start_date, p.end_date,
		       p.budget, p.status, p.location, p.progress, p.created_at, p.updated_at
		FROM worker_projects wp
		LEFT JOIN projects p ON p.id = wp.project_id
		WHERE wp.worker_id = ANY($1)
		ORDER BY wp.project_id`
	rows, err := r.pool.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("load worker projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var workerID, projectID string
		var pID, pName, pDesc, pOwner, pStatus, pLoc *string
		var pStart, pEnd, pCreated, pUpdated *time.Time
		var pBudget *decimal.Decimal
		var pProgress *int
		err := rows.Scan(&workerID, &projectID,
			&pID, &pName, &pDesc, &pOwner, &pStart, &pEnd,
			&pBudget, &pStatus, &pLoc, &pProgress, &pCreated, &pUpdated,
		)
		if err != nil {
			return fmt.Errorf("scan worker project: %w", err)
		}
		w := byID[workerID]
		if w == nil {
			continue
		}
		w.ProjectIDs = append(w.ProjectIDs, projectID)
		if p := scanJoinedProject(pID, pName, pDesc, pOwner, pStart, pEnd, pBudget, pStatus, pLoc, pProgress, pCreated, pUpdated); p != nil {
			w.Projects = append(w.Projects, p)
		}
	}
	return rows.Err()
}

func scanWorker(row rowScanner) (*entity.Worker, error) {
	var w entity.Worker
	if err := row.Scan(&w.ID, &w.Name, &w.Role, &w.HourlyRate, &w.HoursWorked,
		&w.Specialty, &w.IsPaid, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
