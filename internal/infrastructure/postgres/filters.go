package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// Construcción de los SELECT de listado: filtros conjuntivos (AND) y orden por
// defecto de cada recurso. Parámetros omitidos no agregan condición.

// whereBuilder acumula condiciones y argumentos posicionales.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// add agrega una condición con un argumento; el placeholder $N se numera solo.
func (b *whereBuilder) add(cond string, arg interface{}) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

// clause devuelve el WHERE completo o cadena vacía si no hay condiciones.
func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

const projectSelect = `
	SELECT p.id, p.name, p.description, p.owner_id, p.start_date, p.end_date,
	       p.budget, p.status, p.location, p.progress, p.created_at, p.updated_at,
	       u.id, u.name, u.email, u.password_hash, u.role, u.profile_picture, u.created_at, u.updated_at
	FROM projects p
	LEFT JOIN users u ON u.id = p.owner_id`

// projectListQuery arma el listado de proyectos: orden ascendente por fecha de inicio.
func projectListQuery(f repository.ProjectFilter) (string, []interface{}) {
	b := &whereBuilder{}
	if f.Status != "" {
		b.add("p.status = $%d", f.Status)
	}
	if f.OwnerID != "" {
		b.add("p.owner_id = $%d", f.OwnerID)
	}
	return projectSelect + b.clause() + " ORDER BY p.start_date ASC", b.args
}

const eventSelect = `
	SELECT e.id, e.title, e.start_time, e.end_time, e.project_id, e.location,
	       e.work_type, e.description, e.travel_time_before, e.travel_time_after,
	       e.created_at, e.updated_at,
	       p.id, p.name, p.description, p.owner_id, p.start_date, p.end_date,
	       p.budget, p.status, p.location, p.progress, p.created_at, p.updated_at
	FROM events e
	LEFT JOIN projects p ON p.id = e.project_id`

// eventListQuery arma el listado de eventos: orden ascendente por inicio.
// La ventana de fechas es de contención cerrada (start >= $from AND end <= $to),
// no de solapamiento: un evento que desborda la ventana queda fuera.
func eventListQuery(f repository.EventFilter) (string, []interface{}) {
	b := &whereBuilder{}
	if f.ProjectID != "" {
		b.add("e.project_id = $%d", f.ProjectID)
	}
	if f.StartDate != nil {
		b.add("e.start_time >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		b.add("e.end_time <= $%d", *f.EndDate)
	}
	if f.WorkType != "" {
		b.add("e.work_type = $%d", f.WorkType)
	}
	if f.WorkerID != "" {
		b.add("EXISTS (SELECT 1 FROM event_workers ew WHERE ew.event_id = e.id AND ew.worker_id = $%d)", f.WorkerID)
	}
	return eventSelect + b.clause() + " ORDER BY e.start_time ASC", b.args
}

const workItemSelect = `
	SELECT wi.id, wi.item, wi.cost_estimate, wi.status, wi.type, wi.location,
	       wi.notes, wi.date_added, wi.date_completed, wi.project_id, wi.worker_id,
	       wi.created_at, wi.updated_at,
	       p.id, p.name, p.description, p.owner_id, p.start_date, p.end_date,
	       p.budget, p.status, p.location, p.progress, p.created_at, p.updated_at
	FROM work_items wi
	LEFT JOIN projects p ON p.id = wi.project_id`

// workItemListQuery arma el listado de partidas: orden descendente por fecha de alta.
func workItemListQuery(f repository.WorkItemFilter) (string, []interface{}) {
	b := &whereBuilder{}
	if f.ProjectID != "" {
		b.add("wi.project_id = $%d", f.ProjectID)
	}
	if f.WorkerID != "" {
		b.add("wi.worker_id = $%d", f.WorkerID)
	}
	return workItemSelect + b.clause() + " ORDER BY wi.date_added DESC", b.args
}

const workerSelect = `
	SELECT w.id, w.name, w.role, w.hourly_rate, w.hours_worked, w.specialty,
	       w.is_paid, w.created_at, w.updated_at
	FROM workers w`

// workerListQuery arma el listado de trabajadores: orden descendente por alta.
func workerListQuery(f repository.WorkerFilter) (string, []interface{}) {
	b := &whereBuilder{}
	if f.ProjectID != "" {
		b.add("EXISTS (SELECT 1 FROM worker_projects wp WHERE wp.worker_id = w.id AND wp.project_id = $%d)", f.ProjectID)
	}
	return workerSelect + b.clause() + " ORDER BY w.created_at DESC", b.args
}
