package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
)

// respondData respuesta exitosa con la envolvente {success, data}.
func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.OK(data))
}

// respondMessage respuesta exitosa solo con mensaje (p. ej. tras un borrado).
func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{Success: true, Message: message})
}

// respondValidation respuesta 400 con errores por campo.
func respondValidation(c *fiber.Ctx, errs []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("error de validación", errs...))
}

// respondDomainError mapea los errores de dominio a estados HTTP. Cualquier
// otro error es un fallo interno y su detalle no se expone al cliente.
func respondDomainError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(notFoundMsg))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(domain.ErrDuplicate.Error()))
	case errors.Is(err, domain.ErrInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(domain.ErrInUse.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(domain.ErrInvalidInput.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno del servidor"))
	}
}
