package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/pkg/logger"
)

// TaskHandler maneja las peticiones HTTP de tareas (protegido).
type TaskHandler struct {
	uc  *usecase.TaskUseCase
	log *logger.Logger
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase, log *logger.Logger) *TaskHandler {
	return &TaskHandler{uc: uc, log: log}
}

// List GET /api/tasks?profile=pf
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(CurrentUser(c), c.Query("profile"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tarea eliminada"})
}
