package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/pkg/logger"
)

// ClientHandler maneja las peticiones HTTP de contactos CRM (protegido).
type ClientHandler struct {
	uc  *usecase.ClientUseCase
	log *logger.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// List GET /api/clients?profile=pj
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(CurrentUser(c), c.Query("profile"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}
