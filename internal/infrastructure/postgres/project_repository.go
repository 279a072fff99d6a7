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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
// Las lecturas resuelven el owner con LEFT JOIN: si el usuario fue eliminado la
// fila sigue saliendo y Owner queda en nil (referencia blanda).
type ProjectRepo struct {
	pool *pgxpool.Pool
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, name, description, owner_id, start_date, end_date,
		                      budget, status, location, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		project.ID, project.Name, project.Description, project.OwnerID,
		project.StartDate, project.EndDate, project.Budget, project.Status,
		project.Location, project.Progress, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID con el owner resuelto.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := projectSelect + ` WHERE p.id = $1`
	p, err := scanProjectWithOwner(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// List lista proyectos según el filtro, orden ascendente por start_date.
func (r *ProjectRepo) List(filter repository.ProjectFilter) ([]*entity.Project, error) {
	query, args := projectListQuery(filter)
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProjectWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un proyecto existente.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, description = $3, start_date = $4, end_date = $5,
		       budget = $6, status = $7, location = $8, progress = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		project.ID, project.Name, project.Description, project.StartDate, project.EndDate,
		project.Budget, project.Status, project.Location, project.Progress, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete elimina un proyecto por ID. Sin cascada: eventos, partidas y
// asignaciones que lo referencien quedan con referencia huérfana.
func (r *ProjectRepo) Delete(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// scanProjectWithOwner lee una fila de projectSelect (proyecto + owner nullable).
func scanProjectWithOwner(row rowScanner) (*entity.Project, error) {
	var p entity.Project
	var uID, uName, uEmail, uHash, uRole, uPic *string
	var uCreated, uUpdated *time.Time
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.StartDate, &p.EndDate,
		&p.Budget, &p.Status, &p.Location, &p.Progress, &p.CreatedAt, &p.UpdatedAt,
		&uID, &uName, &uEmail, &uHash, &uRole, &uPic, &uCreated, &uUpdated,
	)
	if err != nil {
		return nil, err
	}
	if uID != nil {
		p.Owner = &entity.User{
			ID:             *uID,
			Name:           derefStr(uName),
			Email:          derefStr(uEmail),
			PasswordHash:   derefStr(uHash),
			Role:           derefStr(uRole),
			ProfilePicture: derefStr(uPic),
			CreatedAt:      *uCreated,
			UpdatedAt:      *uUpdated,
		}
	}
	return &p, nil
}

// scanJoinedProject lee las columnas nullable de un proyecto unido por LEFT JOIN
// (población un nivel desde otro recurso: el owner no se resuelve).
func scanJoinedProject(
	pID, pName, pDesc, pOwner *string,
	pStart, pEnd *time.Time,
	pBudget *decimal.Decimal,
	pStatus, pLoc *string,
	pProgress *int,
	pCreated, pUpdated *time.Time,
) *entity.Project {
	if pID == nil {
		return nil
	}
	return &entity.Project{
		ID:          *pID,
		Name:        derefStr(pName),
		Description: derefStr(pDesc),
		OwnerID:     derefStr(pOwner),
		StartDate:   *pStart,
		EndDate:     *pEnd,
		Budget:      *pBudget,
		Status:      derefStr(pStatus),
		Location:    derefStr(pLoc),
		Progress:    *pProgress,
		CreatedAt:   *pCreated,
		UpdatedAt:   *pUpdated,
	}
}
