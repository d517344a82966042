package repository

import (
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/policy"
)

// OperationRepository puerto de persistencia para Operation.
// List aplica el alcance calculado por policy.ListScope y, si profile no es
// vacío, filtra también por perfil (pf/pj) en la consulta.
type OperationRepository interface {
	Create(op *entity.Operation) error
	GetByID(id string) (*entity.Operation, error)
	Update(op *entity.Operation) error
	Delete(id string) error
	List(scope policy.Scope, profile string) ([]*entity.Operation, error)
	// ListIDsByOwner devuelve los ids de operaciones creadas por el usuario;
	// insumo para policy.ListScope.
	ListIDsByOwner(ownerID string) ([]string, error)
}
