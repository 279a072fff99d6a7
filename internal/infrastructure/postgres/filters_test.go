package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

func TestProjectListQuery_SinFiltros(t *testing.T) {
	sql, args := projectListQuery(repository.ProjectFilter{})

	assert.NotContains(t, sql, "WHERE", "sin filtros no hay cláusula WHERE")
	assert.Contains(t, sql, "ORDER BY p.start_date ASC")
	assert.Empty(t, args)
}

func TestProjectListQuery_FiltrosConjuntivos(t *testing.T) {
	sql, args := projectListQuery(repository.ProjectFilter{
		Status:  "in_progress",
		OwnerID: "owner-1",
	})

	assert.Contains(t, sql, "WHERE p.status = $1 AND p.owner_id = $2")
	assert.Equal(t, []interface{}{"in_progress", "owner-1"}, args)
}

func TestEventListQuery_VentanaDeContencion(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	sql, args := eventListQuery(repository.EventFilter{StartDate: &from, EndDate: &to})

	// Contención cerrada: el evento completo debe caber en la ventana.
	assert.Contains(t, sql, "e.start_time >= $1")
	assert.Contains(t, sql, "e.end_time <= $2")
	assert.Contains(t, sql, " AND ")
	assert.Equal(t, []interface{}{from, to}, args)
}

func TestEventListQuery_SoloInicioDeVentana(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	sql, args := eventListQuery(repository.EventFilter{StartDate: &from})

	assert.Contains(t, sql, "e.start_time >= $1")
	assert.NotContains(t, sql, "e.end_time")
	assert.Equal(t, []interface{}{from}, args)
}

func TestEventListQuery_TodosLosFiltros(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	sql, args := eventListQuery(repository.EventFilter{
		ProjectID: "p-1",
		StartDate: &from,
		EndDate:   &to,
		WorkType:  "plumbing",
		WorkerID:  "w-1",
	})

	// La numeración de placeholders sigue el orden de los argumentos.
	assert.Contains(t, sql, "e.project_id = $1")
	assert.Contains(t, sql, "e.start_time >= $2")
	assert.Contains(t, sql, "e.end_time <= $3")
	assert.Contains(t, sql, "e.work_type = $4")
	assert.Contains(t, sql, "ew.worker_id = $5")
	assert.Contains(t, sql, "ORDER BY e.start_time ASC")
	require.Len(t, args, 5)
	assert.Equal(t, "p-1", args[0])
	assert.Equal(t, "w-1", args[4])
}

func TestWorkItemListQuery_OrdenDescendente(t *testing.T) {
	sql, args := workItemListQuery(repository.WorkItemFilter{})

	assert.Contains(t, sql, "ORDER BY wi.date_added DESC")
	assert.Empty(t, args)
}

func TestWorkItemListQuery_PorProyectoYTrabajador(t *testing.T) {
	sql, args := workItemListQuery(repository.WorkItemFilter{
		ProjectID: "p-1",
		WorkerID:  "w-1",
	})

	assert.Contains(t, sql, "wi.project_id = $1 AND wi.worker_id = $2")
	assert.Equal(t, []interface{}{"p-1", "w-1"}, args)
}

func TestWorkerListQuery_PorProyectoUsaSubconsulta(t *testing.T) {
	sql, args := workerListQuery(repository.WorkerFilter{ProjectID: "p-1"})

	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM worker_projects wp")
	assert.Contains(t, sql, "wp.project_id = $1")
	assert.Contains(t, sql, "ORDER BY w.created_at DESC")
	assert.Equal(t, []interface{}{"p-1"}, args)
}

func TestWhereBuilder_ClausulaVacia(t *testing.T) {
	b := &whereBuilder{}
	assert.Empty(t, b.clause())

	b.add("x = $%d", 1)
	b.add("y = $%d", 2)
	assert.Equal(t, " WHERE x = $1 AND y = $2", b.clause())
}
