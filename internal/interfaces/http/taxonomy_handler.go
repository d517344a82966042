package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/pkg/logger"
)

// TaxonomyHandler maneja categorías de gasto y tipos de operación personalizados.
type TaxonomyHandler struct {
	uc  *usecase.TaxonomyUseCase
	log *logger.Logger
}

// NewTaxonomyHandler construye el handler.
func NewTaxonomyHandler(uc *usecase.TaxonomyUseCase, log *logger.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{uc: uc, log: log}
}

// ListCategories GET /api/expense-categories
func (h *TaxonomyHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateCategory POST /api/expense-categories (solo admin)
func (h *TaxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateTaxonomyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCategory(CurrentUser(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCategory PUT /api/expense-categories/:id
func (h *TaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateTaxonomyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCategory(CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteCategory DELETE /api/expense-categories/:id
func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada"})
}

// ListTypes GET /api/operation-types
func (h *TaxonomyHandler) ListTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListTypes(CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateType POST /api/operation-types (solo admin)
func (h *TaxonomyHandler) CreateType(c *fiber.Ctx) error {
	var in dto.CreateTaxonomyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateType(CurrentUser(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateType PUT /api/operation-types/:id
func (h *TaxonomyHandler) UpdateType(c *fiber.Ctx) error {
	var in dto.UpdateTaxonomyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateType(CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteType DELETE /api/operation-types/:id
func (h *TaxonomyHandler) DeleteType(c *fiber.Ctx) error {
	if err := h.uc.DeleteType(CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tipo eliminado"})
}
