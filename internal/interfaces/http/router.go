package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC         *usecase.UserUseCase
	ProjectUC      *usecase.ProjectUseCase
	WorkerUC       *usecase.WorkerUseCase
	WorkItemUC     *usecase.WorkItemUseCase
	EventUC        *usecase.EventUseCase
	DefaultOwnerID string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", ActorMiddleware(deps.DefaultOwnerID))

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Projects
	projects := api.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)

	// Events
	events := api.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetByID)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	// Workers
	workers := api.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Post("/", workerHandler.Create)
	workers.Get("/", workerHandler.List)
	workers.Get("/:id", workerHandler.GetByID)
	workers.Put("/:id/toggle-payment", workerHandler.TogglePayment)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", workerHandler.Delete)

	// Work items
	workItems := api.Group("/work-items")
	workItemHandler := NewWorkItemHandler(deps.WorkItemUC)
	workItems.Post("/", workItemHandler.Create)
	workItems.Get("/", workItemHandler.List)
	workItems.Get("/:id", workItemHandler.GetByID)
	workItems.Put("/:id", workItemHandler.Update)
	workItems.Delete("/:id", workItemHandler.Delete)
}
