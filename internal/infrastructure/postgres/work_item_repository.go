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

var _ repository.WorkItemRepository = (*WorkItemRepo)(nil)

// WorkItemRepo implementación del puerto WorkItemRepository sobre PostgreSQL.
type WorkItemRepo struct {
	pool *pgxpool.Pool
}

// NewWorkItemRepository construye el adaptador de persistencia para partidas.
func NewWorkItemRepository(pool *pgxpool.Pool) *WorkItemRepo {
	return &WorkItemRepo{pool: pool}
}

// Create persiste una nueva partida de trabajo.
func (r *WorkItemRepo) Create(item *entity.WorkItem) error {
	query := `
		INSERT INTO work_items (id, item, cost_estimate, status, type, location, notes,
		                        date_added, date_completed, project_id, worker_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Item, item.CostEstimate, item.Status, item.Type, item.Location,
		nullIfEmpty(item.Notes), item.DateAdded, item.DateCompleted,
		item.ProjectID, nullIfEmpty(item.WorkerID), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work item: %w", err)
	}
	return nil
}

// GetByID obtiene una partida por ID con su proyecto resuelto.
func (r *WorkItemRepo) GetByID(id string) (*entity.WorkItem, error) {
	query := workItemSelect + ` WHERE wi.id = $1`
	it, err := scanWorkItem(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work item: %w", err)
	}
	return it, nil
}

// List lista partidas según el filtro, orden descendente por date_added.
func (r *WorkItemRepo) List(filter repository.WorkItemFilter) ([]*entity.WorkItem, error) {
	query, args := workItemListQuery(filter)
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work items: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkItem
	for rows.Next() {
		it, err := scanWorkItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update actualiza una partida existente. project_id no se toca: es inmutable.
func (r *WorkItemRepo) Update(item *entity.WorkItem) error {
	query := `
		UPDATE work_items SET item = $2, cost_estimate = $3, status = $4, type = $5,
		       location = $6, notes = $7, date_completed = $8, worker_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Item, item.CostEstimate, item.Status, item.Type, item.Location,
		nullIfEmpty(item.Notes), item.DateCompleted, nullIfEmpty(item.WorkerID), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work item: %w", err)
	}
	return nil
}

// Delete elimina una partida por ID. Devuelve false si no existía.
func (r *WorkItemRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM work_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete work item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// scanWorkItem lee una fila de workItemSelect (partida + proyecto nullable).
func scanWorkItem(row rowScanner) (*entity.WorkItem, error) {
	var it entity.WorkItem
	var notes, workerID *string
	var pID, pName, pDesc, pOwner, pStatus, pLoc *string
	var pStart, pEnd, pCreated, pUpdated *time.Time
	var pBudget *decimal.Decimal
	var pProgress *int
	err := row.Scan(
		&it.ID, &it.Item, &it.CostEstimate, &it.Status, &it.Type, &it.Location,
		&notes, &it.DateAdded, &it.DateCompleted, &it.ProjectID, &workerID,
		&it.CreatedAt, &it.UpdatedAt,
		&pID, &pName, &pDesc, &pOwner, &pStart, &pEnd,
		&pBudget, &pStatus, &pLoc, &pProgress, &pCreated, &pUpdated,
	)
	if err != nil {
		return nil, err
	}
	it.Notes = derefStr(notes)
	it.WorkerID = derefStr(workerID)
	it.Project = scanJoinedProject(pID, pName, pDesc, pOwner, pStart, pEnd, pBudget, pStatus, pLoc, pProgress, pCreated, pUpdated)
	return &it, nil
}
