package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// WorkerHandler maneja las peticiones HTTP para Worker.
type WorkerHandler struct {
	uc *usecase.WorkerUseCase
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(uc *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear trabajador
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkerRequest  true  "Datos del trabajador"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workers [post]
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out, "trabajador creado")
}

// GetByID godoc
// @Summary      Obtener trabajador por ID
// @Tags         workers
// @Produce      json
// @Param        id   path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workers/{id} [get]
func (h *WorkerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "trabajador no encontrado")
	}
	return respondOK(c, out, "")
}

// List godoc
// @Summary      Listar trabajadores
// @Tags         workers
// @Produce      json
// @Param        projectId  query  string  false  "ID del proyecto asignado"
// @Success      200        {object}  dto.SuccessResponse
// @Router       /api/workers [get]
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	filter := repository.WorkerFilter{
		ProjectID: c.Query("projectId"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "")
}

// Update godoc
// @Summary      Actualizar trabajador (parcial)
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del trabajador"
// @Param        body  body  dto.UpdateWorkerRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/workers/{id} [put]
func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "trabajador no encontrado")
	}
	return respondOK(c, out, "trabajador actualizado")
}

// Delete godoc
// @Summary      Eliminar trabajador
// @Tags         workers
// @Produce      json
// @Param        id   path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workers/{id} [delete]
func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, nil, "trabajador eliminado")
}

// TogglePayment godoc
// @Summary      Invertir el estado de pago del trabajador
// @Tags         workers
// @Produce      json
// @Param        id   path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workers/{id}/toggle-payment [put]
func (h *WorkerHandler) TogglePayment(c *fiber.Ctx) error {
	out, err := h.uc.TogglePayment(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "trabajador no encontrado")
	}
	return respondOK(c, out, "estado de pago actualizado")
}
