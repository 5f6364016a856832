package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/domain"
)

// fail mapeia o erro de domínio para o status HTTP e responde o envelope
// padrão de erro.
func fail(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrItemIndex):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrOutOfStock):
		status, code = fiber.StatusConflict, "OUT_OF_STOCK"
	case errors.Is(err, domain.ErrEmptyCart):
		status, code = fiber.StatusConflict, "EMPTY_CART"
	case errors.Is(err, domain.ErrNoActiveSale):
		status, code = fiber.StatusConflict, "NO_ACTIVE_SALE"
	case errors.Is(err, domain.ErrCustomerHasOpenSales):
		status, code = fiber.StatusConflict, "OPEN_SALES"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
