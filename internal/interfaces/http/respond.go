// Package http expone la API REST sobre Fiber: handlers por recurso,
// middleware de autenticación JWT con roles y el router.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecocycle/ecocycle-ims/internal/application/dto"
	"github.com/ecocycle/ecocycle-ims/internal/domain"
)

// respondData responde {success:true, data} con el status dado.
func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.DataResponse{Success: true, Data: data})
}

// respondList responde {success:true, data, pagination} para búsquedas.
func respondList(c *fiber.Ctx, data any, pagination dto.Pagination) error {
	return c.JSON(dto.ListResponse{Success: true, Data: data, Pagination: pagination})
}

// respondError responde {success:false, error:{code, message}}.
func respondError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Error:   dto.ErrorBody{Code: code, Message: message},
	})
}

// respondDomainError traduce los errores de dominio a HTTP.
// Los no reconocidos caen en 500 con el mensaje del error.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return respondError(c, fiber.StatusBadRequest, "VALIDATION", "datos de entrada inválidos")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return respondError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado")
	case errors.Is(err, domain.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respondError(c, fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado")
	case errors.Is(err, domain.ErrDuplicate):
		return respondError(c, fiber.StatusConflict, "DUPLICATE", "el recurso ya existe")
	case errors.Is(err, domain.ErrInsufficientStock):
		return respondError(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", "stock disponible insuficiente")
	case errors.Is(err, domain.ErrInvalidTransition):
		return respondError(c, fiber.StatusConflict, "INVALID_TRANSITION", "transición de estado no permitida")
	case errors.Is(err, domain.ErrTransferImmutable):
		return respondError(c, fiber.StatusConflict, "TRANSFER_FINAL", "el traslado ya está en un estado final")
	case errors.Is(err, domain.ErrConflict):
		return respondError(c, fiber.StatusConflict, "CONFLICT", "conflicto con el estado actual")
	}
	return respondError(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
}
