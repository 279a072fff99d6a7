package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// EventHandler maneja las peticiones HTTP para Event.
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Create godoc
// @Summary      Crear evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out, "evento creado")
}

// GetByID godoc
// @Summary      Obtener evento por ID
// @Tags         events
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "evento no encontrado")
	}
	return respondOK(c, out, "")
}

// List godoc
// @Summary      Listar eventos
// @Tags         events
// @Produce      json
// @Param        projectId  query  string  false  "ID del proyecto"
// @Param        startDate  query  string  false  "Inicio de la ventana (RFC 3339)"
// @Param        endDate    query  string  false  "Fin de la ventana (RFC 3339)"
// @Param        workType   query  string  false  "Tipo de trabajo"
// @Param        workerId   query  string  false  "ID del trabajador"
// @Success      200        {object}  dto.SuccessResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	filter := repository.EventFilter{
		ProjectID: c.Query("projectId"),
		WorkType:  c.Query("workType"),
		WorkerID:  c.Query("workerId"),
	}
	// La ventana solo aplica cuando vienen ambos extremos, igual que el resto
	// de filtros es opcional.
	startRaw, endRaw := c.Query("startDate"), c.Query("endDate")
	if startRaw != "" && endRaw != "" {
		start, err := time.Parse(time.RFC3339, startRaw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("error de validación",
				map[string]string{"startDate": "fecha inválida, se espera RFC 3339"}))
		}
		end, err := time.Parse(time.RFC3339, endRaw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("error de validación",
				map[string]string{"endDate": "fecha inválida, se espera RFC 3339"}))
		}
		filter.StartDate = &start
		filter.EndDate = &end
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "")
}

// Update godoc
// @Summary      Actualizar evento (parcial)
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del evento"
// @Param        body  body  dto.UpdateEventRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "evento no encontrado")
	}
	return respondOK(c, out, "evento actualizado")
}

// Delete godoc
// @Summary      Eliminar evento
// @Tags         events
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, nil, "evento eliminado")
}
