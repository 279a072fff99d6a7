package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// respondOK serializa el envelope de éxito con status 200.
func respondOK(c *fiber.Ctx, data interface{}, message string) error {
	return c.JSON(dto.OK(data, message))
}

// respondCreated serializa el envelope de éxito con status 201.
func respondCreated(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data, message))
}

// respondNotFound serializa el envelope de error con status 404.
func respondNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fail(message))
}

// respondError traduce la taxonomía de errores del dominio a status + envelope.
// Ningún error de repositorio llega al cliente sin traducir: las fallas de
// store se loguean completas y el cliente solo ve un mensaje genérico.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("error de validación", verr.Fields))
	case errors.Is(err, domain.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("identificador inválido"))
	case errors.Is(err, domain.ErrNotFound):
		return respondNotFound(c, "recurso no encontrado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("el email ya está registrado"))
	}
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error de store")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno del servidor"))
}

// respondBadBody serializa el 400 estándar para un body JSON que no parsea.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
}
