package usecase_test

import (
	"sort"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// adaptadores reales: (nil, nil) cuando el documento no existe, resolución de
// referencias blandas en lectura y orden por defecto en los listados.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
	userRepo *fakeUserRepo
}

func newFakeProjectRepo(userRepo *fakeUserRepo) *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project), userRepo: userRepo}
}

var _ repository.ProjectRepository = (*fakeProjectRepo)(nil)

func (r *fakeProjectRepo) Create(p *entity.Project) error {
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	if r.userRepo != nil {
		cp.Owner, _ = r.userRepo.GetByID(cp.OwnerID)
	}
	return &cp, nil
}

func (r *fakeProjectRepo) List(f repository.ProjectFilter) ([]*entity.Project, error) {
	var out []*entity.Project
	for id, p := range r.projects {
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

func (r *fakeProjectRepo) Update(p *entity.Project) error {
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Delete(id string) (bool, error) {
	if _, ok := r.projects[id]; !ok {
		return false, nil
	}
	delete(r.projects, id)
	return true, nil
}

type fakeWorkerRepo struct {
	workers     map[string]*entity.Worker
	projectRepo *fakeProjectRepo
}

func newFakeWorkerRepo(projectRepo *fakeProjectRepo) *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[string]*entity.Worker), projectRepo: projectRepo}
}

var _ repository.WorkerRepository = (*fakeWorkerRepo)(nil)

func (r *fakeWorkerRepo) Create(w *entity.Worker) error {
	cp := *w
	r.workers[w.ID] = &cp
	return nil
}

func (r *fakeWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	if r.projectRepo != nil {
		cp.Projects = nil
		for _, pid := range cp.ProjectIDs {
			if p, _ := r.projectRepo.GetByID(pid); p != nil {
				cp.Projects = append(cp.Projects, p)
			}
		}
	}
	return &cp, nil
}

func (r *fakeWorkerRepo) List(f repository.WorkerFilter) ([]*entity.Worker, error) {
	var out []*entity.Worker
	for id, w := range r.workers {
		if f.ProjectID != "" {
			member := false
			for _, pid := range w.ProjectIDs {
				if pid == f.ProjectID {
					member = true
					break
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

func (r *fakeWorkerRepo) Update(w *entity.Worker) error {
	cp := *w
	r.workers[w.ID] = &cp
	return nil
}

func (r *fakeWorkerRepo) Delete(id string) (bool, error) {
	if _, ok := r.workers[id]; !ok {
		return false, nil
	}
	delete(r.workers, id)
	return true, nil
}

func (r *fakeWorkerRepo) TogglePaid(id string) (bool, error) {
	w, ok := r.workers[id]
	if !ok {
		return false, nil
	}
	w.IsPaid = !w.IsPaid
	return true, nil
}

type fakeWorkItemRepo struct {
	items       map[string]*entity.WorkItem
	projectRepo *fakeProjectRepo
}

func newFakeWorkItemRepo(projectRepo *fakeProjectRepo) *fakeWorkItemRepo {
	return &fakeWorkItemRepo{items: make(map[string]*entity.WorkItem), projectRepo: projectRepo}
}

var _ repository.WorkItemRepository = (*fakeWorkItemRepo)(nil)

func (r *fakeWorkItemRepo) Create(it *entity.WorkItem) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeWorkItemRepo) GetByID(id string) (*entity.WorkItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	if r.projectRepo != nil {
		cp.Project, _ = r.projectRepo.GetByID(cp.ProjectID)
	}
	return &cp, nil
}

func (r *fakeWorkItemRepo) List(f repository.WorkItemFilter) ([]*entity.WorkItem, error) {
	var out []*entity.WorkItem
	for id, it := range r.items {
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

func (r *fakeWorkItemRepo) Update(it *entity.WorkItem) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeWorkItemRepo) Delete(id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeEventRepo struct {
	events      map[string]*entity.Event
	projectRepo *fakeProjectRepo
	workerRepo  *fakeWorkerRepo
}

func newFakeEventRepo(projectRepo *fakeProjectRepo, workerRepo *fakeWorkerRepo) *fakeEventRepo {
	return &fakeEventRepo{
		events:      make(map[string]*entity.Event),
		projectRepo: projectRepo,
		workerRepo:  workerRepo,
	}
}

var _ repository.EventRepository = (*fakeEventRepo)(nil)

func (r *fakeEventRepo) Create(e *entity.Event) error {
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) GetByID(id string) (*entity.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	if r.projectRepo != nil {
		cp.Project, _ = r.projectRepo.GetByID(cp.ProjectID)
	}
	if r.workerRepo != nil {
		cp.Workers = nil
		for _, wid := range cp.WorkerIDs {
			if w, _ := r.workerRepo.GetByID(wid); w != nil {
				cp.Workers = append(cp.Workers, w)
			}
		}
	}
	return &cp, nil
}

func (r *fakeEventRepo) List(f repository.EventFilter) ([]*entity.Event, error) {
	var out []*entity.Event
	for id, e := range r.events {
		if f.ProjectID != "" && e.ProjectID != f.ProjectID {
			continue
		}
		if f.WorkType != "" && e.WorkType != f.WorkType {
			continue
		}
		// Ventana cerrada de contención: el evento completo debe caber dentro.
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
					break
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

func (r *fakeEventRepo) Update(e *entity.Event) error {
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) Delete(id string) (bool, error) {
	if _, ok := r.events[id]; !ok {
		return false, nil
	}
	delete(r.events, id)
	return true, nil
}
