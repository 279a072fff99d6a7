package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// WorkItemHandler maneja las peticiones HTTP para WorkItem.
type WorkItemHandler struct {
	uc *usecase.WorkItemUseCase
}

// NewWorkItemHandler construye el handler.
func NewWorkItemHandler(uc *usecase.WorkItemUseCase) *WorkItemHandler {
	return &WorkItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear partida de trabajo
// @Tags         work-items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkItemRequest  true  "Datos de la partida"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/work-items [post]
func (h *WorkItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out, "partida creada")
}

// GetByID godoc
// @Summary      Obtener partida por ID
// @Tags         work-items
// @Produce      json
// @Param        id   path  string  true  "ID de la partida"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-items/{id} [get]
func (h *WorkItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "partida no encontrada")
	}
	return respondOK(c, out, "")
}

// List godoc
// @Summary      Listar partidas de trabajo
// @Tags         work-items
// @Produce      json
// @Param        projectId  query  string  false  "ID del proyecto"
// @Param        workerId   query  string  false  "ID del trabajador"
// @Success      200        {object}  dto.SuccessResponse
// @Router       /api/work-items [get]
func (h *WorkItemHandler) List(c *fiber.Ctx) error {
	filter := repository.WorkItemFilter{
		ProjectID: c.Query("projectId"),
		WorkerID:  c.Query("workerId"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "")
}

// Update godoc
// @Summary      Actualizar partida (parcial)
// @Tags         work-items
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la partida"
// @Param        body  body  dto.UpdateWorkItemRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/work-items/{id} [put]
func (h *WorkItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "partida no encontrada")
	}
	return respondOK(c, out, "partida actualizada")
}

// Delete godoc
// @Summary      Eliminar partida
// @Tags         work-items
// @Produce      json
// @Param        id   path  string  true  "ID de la partida"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-items/{id} [delete]
func (h *WorkItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, nil, "partida eliminada")
}
