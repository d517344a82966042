package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/pkg/logger"
)

// ExpenseHandler maneja las peticiones HTTP de gastos (protegido, finanzas).
type ExpenseHandler struct {
	uc  *usecase.ExpenseUseCase
	log *logger.Logger
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, log *logger.Logger) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, log: log}
}

// List GET /api/expenses?profile=pj exige canViewFinance.
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(CurrentUser(c), c.Query("profile"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/expenses/:id
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "gasto eliminado"})
}
