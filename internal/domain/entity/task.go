package entity

import "time"

// Prioridades de tarea.
const (
	TaskPriorityBaixa = "baixa"
	TaskPriorityMedia = "media"
	TaskPriorityAlta  = "alta"
)

// Task representa una tarea de agenda, opcionalmente ligada a una operación.
type Task struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Time        string // HH:MM opcional
	OperationID string // opcional
	Completed   bool
	Priority    string // baixa, media, alta
	Profile     string // pf | pj
	CreatedBy   string
	CreatedAt   time.Time
}

// ValidTaskPriority valida la prioridad.
func ValidTaskPriority(p string) bool {
	switch p {
	case TaskPriorityBaixa, TaskPriorityMedia, TaskPriorityAlta:
		return true
	}
	return false
}
