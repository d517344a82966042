package dto

import "time"

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time"`
	OperationID string    `json:"operationId"`
	Priority    string    `json:"priority" validate:"required,oneof=baixa media alta"`
	Profile     string    `json:"profile" validate:"required,oneof=pf pj"`
}

// UpdateTaskRequest actualización parcial.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	OperationID *string    `json:"operationId"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority"`
	Profile     *string    `json:"profile"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	OperationID string    `json:"operationId,omitempty"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	Profile     string    `json:"profile"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
