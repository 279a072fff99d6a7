package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Obras-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia, con el mismo contrato que
// los adaptadores reales: (nil, nil) si no existe, referencias blandas resueltas
// en lectura y orden por defecto en listados.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	users    map[string]*entity.User
	projects map[string]*entity.Project
	workers  map[string]*entity.Worker
	items    map[string]*entity.WorkItem
	events   map[string]*entity.Event
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*entity.User{},
		projects: map[string]*entity.Project{},
		workers:  map[string]*entity.Worker{},
		items:    map[string]*entity.WorkItem{},
		events:   map[string]*entity.Event{},
	}
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(u *entity.User) error { cp := *u; r.s.users[u.ID] = &cp; return nil }
func (r memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r memUserRepo) List(f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		if f.Role == "" || u.Role == f.Role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r memUserRepo) Update(u *entity.User) error { cp := *u; r.s.users[u.ID] = &cp; return nil }
func (r memUserRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	return true, nil
}

type memProjectRepo struct{ s *memStore }

func (r memProjectRepo) Create(p *entity.Project) error {
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}
func (r memProjectRepo) GetByID(id string) (*entity.Project, error) {
	p, ok := r.s.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Owner, _ = memUserRepo{r.s}.GetByID(cp.OwnerID)
	return &cp, nil
}
func (r memProjectRepo) List(f repository.ProjectFilter) ([]*entity.Project, error) {
	var out []*entity.Project
	for id, p := range r.s.projects {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.OwnerID != "" && p.OwnerID != f.OwnerID {
			continue
		}
		resolved, _ := r.GetByID(id)
		out = append(out, resolved)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}
func (r memProjectRepo) Update(p *entity.Project) error {
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}
func (r memProjectRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.projects[id]; !ok {
		return false, nil
	}
	delete(r.s.projects, id)
	return true, nil
}

type memWorkerRepo struct{ s *memStore }

func (r memWorkerRepo) Create(w *entity.Worker) error {
	cp := *w
	r.s.workers[w.ID] = &cp
	return nil
}
func (r memWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	w, ok := r.s.workers[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	cp.Projects = nil
	for _, pid := range cp.ProjectIDs {
		if p, _ := (memProjectRepo{r.s}).GetByID(pid); p != nil {
			cp.Projects = append(cp.Projects, p)
		}
	}
	return &cp, nil
}
func (r memWorkerRepo) List(f repository.WorkerFilter) ([]*entity.Worker, error) {
	var out []*entity.Worker
	for id, w := range r.s.workers {
		if f.ProjectID != "" {
			member := false
			for _, pid := range w.ProjectIDs {
				if pid == f.ProjectID {
					member = true
				}
			}
			if !member {
				continue
			}
		}
		resolved, _ := r.GetByID(id)
		out = append(out, resolved)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
func (r memWorkerRepo) Update(w *entity.Worker) error {
	cp := *w
	r.s.workers[w.ID] = &cp
	return nil
}
func (r memWorkerRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.workers[id]; !ok {
		return false, nil
	}
	delete(r.s.workers, id)
	return true, nil
}
func (r memWorkerRepo) TogglePaid(id string) (bool, error) {
	w, ok := r.s.workers[id]
	if !ok {
		return false, nil
	}
	w.IsPaid = !w.IsPaid
	return true, nil
}

type memWorkItemRepo struct{ s *memStore }

func (r memWorkItemRepo) Create(it *entity.WorkItem) error {
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}
func (r memWorkItemRepo) GetByID(id string) (*entity.WorkItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	cp.Project, _ = memProjectRepo{r.s}.GetByID(cp.ProjectID)
	return &cp, nil
}
func (r memWorkItemRepo) List(f repository.WorkItemFilter) ([]*entity.WorkItem, error) {
	var out []*entity.WorkItem
	for id, it := range r.s.items {
		if f.ProjectID != "" && it.ProjectID != f.ProjectID {
			continue
		}
		if f.WorkerID != "" && it.WorkerID != f.WorkerID {
			continue
		}
		resolved, _ := r.GetByID(id)
		out = append(out, resolved)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateAdded.After(out[j].DateAdded) })
	return out, nil
}
func (r memWorkItemRepo) Update(it *entity.WorkItem) error {
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}
func (r memWorkItemRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.items[id]; !ok {
		return false, nil
	}
	delete(r.s.items, id)
	return true, nil
}

type memEventRepo struct{ s *memStore }

func (r memEventRepo) Create(e *entity.Event) error { cp := *e; r.s.events[e.ID] = &cp; return nil }
func (r memEventRepo) GetByID(id string) (*entity.Event, error) {
	e, ok := r.s.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	cp.Project, _ = memProjectRepo{r.s}.GetByID(cp.ProjectID)
	cp.Workers = nil
	for _, wid := range cp.WorkerIDs {
		if w, _ := (memWorkerRepo{r.s}).GetByID(wid); w != nil {
			cp.Workers = append(cp.Workers, w)
		}
	}
	return &cp, nil
}
func (r memEventRepo) List(f repository.EventFilter) ([]*entity.Event, error) {
	var out []*entity.Event
	for id, e := range r.s.events {
		if f.ProjectID != "" && e.ProjectID != f.ProjectID {
			continue
		}
		if f.WorkType != "" && e.WorkType != f.WorkType {
			continue
		}
		if f.StartDate != nil && e.Start.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && e.End.After(*f.EndDate) {
			continue
		}
		if f.WorkerID != "" {
			assigned := false
			for _, wid := range e.WorkerIDs {
				if wid == f.WorkerID {
					assigned = true
				}
			}
			if !assigned {
				continue
			}
		}
		resolved, _ := r.GetByID(id)
		out = append(out, resolved)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
func (r memEventRepo) Update(e *entity.Event) error { cp := *e; r.s.events[e.ID] = &cp; return nil }
func (r memEventRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.events[id]; !ok {
		return false, nil
	}
	delete(r.s.events, id)
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testApp aplicación Fiber completa sobre fakes, con un usuario por defecto
// precargado como owner de fallback.
type testApp struct {
	app            *fiber.App
	store          *memStore
	defaultOwnerID string
}

func buildTestApp(t *testing.T) *testApp {
	t.Helper()
	store := newMemStore()

	// Owner por defecto, el fallback cuando la petición no trae X-Actor-Id.
	defaultOwnerID := uuid.New().String()
	now := time.Now()
	store.users[defaultOwnerID] = &entity.User{
		ID: defaultOwnerID, Name: "Owner por defecto", Email: "owner@obras.test",
		PasswordHash: "hash", Role: "admin", CreatedAt: now, UpdatedAt: now,
	}

	userRepo := memUserRepo{store}
	projectRepo := memProjectRepo{store}
	workerRepo := memWorkerRepo{store}
	itemRepo := memWorkItemRepo{store}
	eventRepo := memEventRepo{store}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:         usecase.NewUserUseCase(userRepo),
		ProjectUC:      usecase.NewProjectUseCase(projectRepo, userRepo),
		WorkerUC:       usecase.NewWorkerUseCase(workerRepo, projectRepo),
		WorkItemUC:     usecase.NewWorkItemUseCase(itemRepo, projectRepo, workerRepo),
		EventUC:        usecase.NewEventUseCase(eventRepo, projectRepo, workerRepo),
		DefaultOwnerID: defaultOwnerID,
	})
	return &testApp{app: app, store: store, defaultOwnerID: defaultOwnerID}
}

// do lanza una petición JSON y devuelve status + body decodificado en un mapa.
func (ta *testApp) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded), "el body siempre es un envelope JSON: %s", raw)
	return resp.StatusCode, decoded
}

// seedProject crea un proyecto vía API y devuelve su ID.
func (ta *testApp) seedProject(t *testing.T) string {
	t.Helper()
	status, body := ta.do(t, http.MethodPost, "/api/projects", map[string]interface{}{
		"name":        "Torre Norte",
		"description": "Edificio residencial",
		"startDate":   "2026-03-01T00:00:00Z",
		"endDate":     "2027-09-30T00:00:00Z",
		"budget":      2500000,
		"location":    "Bogotá",
	}, nil)
	require.Equal(t, http.StatusCreated, status, "seed de proyecto: %v", body)
	return body["data"].(map[string]interface{})["_id"].(string)
}

// seedWorker crea un trabajador vía API y devuelve su ID.
func (ta *testApp) seedWorker(t *testing.T, name string) string {
	t.Helper()
	status, body := ta.do(t, http.MethodPost, "/api/workers", map[string]interface{}{
		"name":       name,
		"role":       "Oficial",
		"hourlyRate": 25,
	}, nil)
	require.Equal(t, http.StatusCreated, status, "seed de trabajador: %v", body)
	return body["data"].(map[string]interface{})["_id"].(string)
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "data debe ser un objeto: %v", body)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Envelope y taxonomía de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_EnvelopeDeExito(t *testing.T) {
	ta := buildTestApp(t)

	status, body := ta.do(t, http.MethodGet, "/api/workers", nil, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	_, hasData := body["data"]
	assert.True(t, hasData, "el envelope de éxito siempre trae data")
}

func TestAPI_BodyMalformado(t *testing.T) {
	ta := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/workers", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_IDMalformado(t *testing.T) {
	ta := buildTestApp(t)

	for _, path := range []string{
		"/api/users/no-es-uuid",
		"/api/projects/no-es-uuid",
		"/api/workers/no-es-uuid",
		"/api/work-items/no-es-uuid",
		"/api/events/no-es-uuid",
	} {
		status, body := ta.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.Equal(t, false, body["success"], path)
	}
}

func TestAPI_RecursoInexistente(t *testing.T) {
	ta := buildTestApp(t)

	ghost := uuid.New().String()
	status, body := ta.do(t, http.MethodGet, "/api/projects/"+ghost, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestAPI_ErrorDeValidacionConDetalle(t *testing.T) {
	ta := buildTestApp(t)

	status, body := ta.do(t, http.MethodPost, "/api/workers", map[string]interface{}{}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])

	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok, "errors trae el detalle por campo")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "hourlyRate")
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUsersAPI_CreateNoExponePassword(t *testing.T) {
	ta := buildTestApp(t)

	status, body := ta.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"name":     "Ana Gómez",
		"email":    "ana@obras.test",
		"password": "secreto123",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	d := data(t, body)
	assert.NotEmpty(t, d["_id"])
	assert.Equal(t, "worker", d["role"])
	_, hasPassword := d["password"]
	assert.False(t, hasPassword, "el password jamás se serializa")
	_, hasHash := d["passwordHash"]
	assert.False(t, hasHash, "el hash jamás se serializa")
}

func TestUsersAPI_EmailDuplicado(t *testing.T) {
	ta := buildTestApp(t)

	in := map[string]interface{}{"name": "Ana", "email": "ana@obras.test", "password": "x"}
	status, _ := ta.do(t, http.MethodPost, "/api/users", in, nil)
	require.Equal(t, http.StatusCreated, status)

	status, body := ta.do(t, http.MethodPost, "/api/users", in, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Projects y actor de la petición
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectsAPI_OwnerPorDefecto(t *testing.T) {
	ta := buildTestApp(t)

	id := ta.seedProject(t)
	status, body := ta.do(t, http.MethodGet, "/api/projects/"+id, nil, nil)
	require.Equal(t, http.StatusOK, status)

	d := data(t, body)
	assert.Equal(t, ta.defaultOwnerID, d["ownerId"], "sin header el owner es el de configuración")

	owner, ok := d["owner"].(map[string]interface{})
	require.True(t, ok, "el owner viene poblado")
	assert.Equal(t, "Owner por defecto", owner["name"])
}

func TestProjectsAPI_HeaderDeActor(t *testing.T) {
	ta := buildTestApp(t)

	// Actor explícito distinto del owner por defecto.
	status, body := ta.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Gerente", "email": "gerente@obras.test", "password": "x", "role": "manager",
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	actorID := data(t, body)["_id"].(string)

	status, body = ta.do(t, http.MethodPost, "/api/projects", map[string]interface{}{
		"name":        "Obra atribuida",
		"description": "Con actor explícito",
		"startDate":   "2026-03-01T00:00:00Z",
		"endDate":     "2026-12-01T00:00:00Z",
		"budget":      100000,
		"location":    "Medellín",
	}, map[string]string{"X-Actor-Id": actorID})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, actorID, data(t, body)["ownerId"])
}

func TestProjectsAPI_ActorInexistente(t *testing.T) {
	ta := buildTestApp(t)

	status, body := ta.do(t, http.MethodPost, "/api/projects", map[string]interface{}{
		"name":        "Obra huérfana",
		"description": "Actor fantasma",
		"startDate":   "2026-03-01T00:00:00Z",
		"endDate":     "2026-12-01T00:00:00Z",
		"budget":      100000,
		"location":    "Cali",
	}, map[string]string{"X-Actor-Id": uuid.New().String()})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestProjectsAPI_DeleteYLuego404(t *testing.T) {
	ta := buildTestApp(t)

	id := ta.seedProject(t)
	status, _ := ta.do(t, http.MethodDelete, "/api/projects/"+id, nil, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = ta.do(t, http.MethodGet, "/api/projects/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Borrar dos veces: la segunda es 404.
	status, _ = ta.do(t, http.MethodDelete, "/api/projects/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Workers y toggle de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkersAPI_TogglePayment(t *testing.T) {
	ta := buildTestApp(t)
	id := ta.seedWorker(t, "Carlos")

	status, body := ta.do(t, http.MethodPut, "/api/workers/"+id+"/toggle-payment", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, data(t, body)["isPaid"])

	// Segundo flip: vuelve a false.
	status, body = ta.do(t, http.MethodPut, "/api/workers/"+id+"/toggle-payment", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, data(t, body)["isPaid"])
}

func TestWorkersAPI_TogglePaymentInexistente(t *testing.T) {
	ta := buildTestApp(t)

	status, _ := ta.do(t, http.MethodPut, "/api/workers/"+uuid.New().String()+"/toggle-payment", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestWorkersAPI_ListasVaciasNoNulas(t *testing.T) {
	ta := buildTestApp(t)
	id := ta.seedWorker(t, "Carlos")

	status, body := ta.do(t, http.MethodGet, "/api/workers/"+id, nil, nil)
	require.Equal(t, http.StatusOK, status)

	d := data(t, body)
	specialty, ok := d["specialty"].([]interface{})
	require.True(t, ok, "specialty se serializa como arreglo, no null: %v", d["specialty"])
	assert.Empty(t, specialty)
	projects, ok := d["projects"].([]interface{})
	require.True(t, ok, "projects se serializa como arreglo, no null: %v", d["projects"])
	assert.Empty(t, projects)
}

// ──────────────────────────────────────────────────────────────────────────────
// Work items
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkItemsAPI_CreateConDefaults(t *testing.T) {
	ta := buildTestApp(t)
	projectID := ta.seedProject(t)

	status, body := ta.do(t, http.MethodPost, "/api/work-items", map[string]interface{}{
		"project":  projectID,
		"item":     "Acometida eléctrica",
		"type":     "electrical",
		"location": "Piso 2",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	d := data(t, body)
	assert.Equal(t, "pending", d["status"])
	assert.Equal(t, projectID, d["projectId"])
	project, ok := d["project"].(map[string]interface{})
	require.True(t, ok, "el proyecto viene poblado")
	assert.Equal(t, projectID, project["_id"])
}

func TestWorkItemsAPI_FiltroPorTrabajador(t *testing.T) {
	ta := buildTestApp(t)
	projectID := ta.seedProject(t)
	workerID := ta.seedWorker(t, "Asignado")

	status, _ := ta.do(t, http.MethodPost, "/api/work-items", map[string]interface{}{
		"project": projectID, "item": "Con trabajador", "type": "general",
		"location": "Obra", "worker": workerID,
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	status, _ = ta.do(t, http.MethodPost, "/api/work-items", map[string]interface{}{
		"project": projectID, "item": "Sin trabajador", "type": "general", "location": "Obra",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	status, body := ta.do(t, http.MethodGet, "/api/work-items?workerId="+workerID, nil, nil)
	require.Equal(t, http.StatusOK, status)
	list, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "Con trabajador", list[0].(map[string]interface{})["item"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Events: coerción de workers, ventana de fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestEventsAPI_WorkersAceptaStringSuelto(t *testing.T) {
	ta := buildTestApp(t)
	projectID := ta.seedProject(t)
	workerID := ta.seedWorker(t, "Solo")

	// El campo workers llega como string singular; se normaliza a lista.
	status, body := ta.do(t, http.MethodPost, "/api/events", map[string]interface{}{
		"title":    "Visita técnica",
		"start":    "2026-05-04T08:00:00Z",
		"end":      "2026-05-04T12:00:00Z",
		"project":  projectID,
		"location": "Obra",
		"workers":  workerID,
		"workType": "general",
	}, nil)
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	workers, ok := data(t, body)["workers"].([]interface{})
	require.True(t, ok)
	require.Len(t, workers, 1)
	assert.Equal(t, workerID, workers[0].(map[string]interface{})["_id"])
}

func TestEventsAPI_FinAntesDelInicio(t *testing.T) {
	ta := buildTestApp(t)
	projectID := ta.seedProject(t)

	status, body := ta.do(t, http.MethodPost, "/api/events", map[string]interface{}{
		"title":    "Imposible",
		"start":    "2026-05-04T12:00:00Z",
		"end":      "2026-05-04T08:00:00Z",
		"project":  projectID,
		"location": "Obra",
		"workers":  []string{},
		"workType": "general",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "end")
}

func TestEventsAPI_VentanaDeFechas(t *testing.T) {
	ta := buildTestApp(t)
	projectID := ta.seedProject(t)

	crear := func(title, start, end string) {
		status, body := ta.do(t, http.MethodPost, "/api/events", map[string]interface{}{
			"title": title, "start": start, "end": end,
			"project": projectID, "location": "Obra",
			"workers": []string{}, "workType": "general",
		}, nil)
		require.Equal(t, http.StatusCreated, status, "crear %s: %v", title, body)
	}
	crear("Dentro", "2026-05-12T08:00:00Z", "2026-05-12T12:00:00Z")
	crear("Desborda", "2026-05-19T08:00:00Z", "2026-05-21T08:00:00Z")

	path := fmt.Sprintf("/api/events?startDate=%s&endDate=%s",
		"2026-05-10T00:00:00Z", "2026-05-20T23:59:59Z")
	status, body := ta.do(t, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, status)

	list, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1, "solo el evento contenido por completo en la ventana")
	assert.Equal(t, "Dentro", list[0].(map[string]interface{})["title"])
}

func TestEventsAPI_FechaDeVentanaInvalida(t *testing.T) {
	ta := buildTestApp(t)

	status, body := ta.do(t, http.MethodGet,
		"/api/events?startDate=ayer&endDate=2026-05-20T00:00:00Z", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "startDate")
}

func TestEventsAPI_VentanaIncompletaSeIgnora(t *testing.T) {
	ta := buildTestApp(t)
	projectID := ta.seedProject(t)

	status, body := ta.do(t, http.MethodPost, "/api/events", map[string]interface{}{
		"title": "Único", "start": "2026-05-04T08:00:00Z", "end": "2026-05-04T12:00:00Z",
		"project": projectID, "location": "Obra",
		"workers": []string{}, "workType": "general",
	}, nil)
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	// Solo startDate: la ventana no aplica y el evento aparece.
	status, body = ta.do(t, http.MethodGet, "/api/events?startDate=2027-01-01T00:00:00Z", nil, nil)
	require.Equal(t, http.StatusOK, status)
	list, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 1)
}
