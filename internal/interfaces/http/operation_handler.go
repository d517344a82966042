package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/pkg/logger"
)

// OperationHandler maneja las peticiones HTTP de operaciones (protegido).
type OperationHandler struct {
	uc  *usecase.OperationUseCase
	log *logger.Logger
}

// NewOperationHandler construye el handler.
func NewOperationHandler(uc *usecase.OperationUseCase, log *logger.Logger) *OperationHandler {
	return &OperationHandler{uc: uc, log: log}
}

// List GET /api/operations?profile=pf lista dentro del alcance del caller.
func (h *OperationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(CurrentUser(c), c.Query("profile"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create POST /api/operations
func (h *OperationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/operations/:id
func (h *OperationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/operations/:id
func (h *OperationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "operación eliminada"})
}
