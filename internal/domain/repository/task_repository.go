package repository

import (
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/policy"
)

// TaskRepository puerto de persistencia para Task.
type TaskRepository interface {
	Create(t *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	Update(t *entity.Task) error
	Delete(id string) error
	List(scope policy.Scope, profile string) ([]*entity.Task, error)
	ClearOperationRef(operationID string) error
}
