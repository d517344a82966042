package repository

import "github.com/tu-usuario/gestion-ops/internal/domain/entity"

// ExpenseCategoryRepository puerto para el vocabulario propio de categorías.
// El listado es universal (configuración), sin filtro de alcance.
type ExpenseCategoryRepository interface {
	Create(c *entity.ExpenseCategoryEntry) error
	GetByID(id string) (*entity.ExpenseCategoryEntry, error)
	Update(c *entity.ExpenseCategoryEntry) error
	Delete(id string) error
	List() ([]*entity.ExpenseCategoryEntry, error)
}

// OperationTypeRepository puerto para el vocabulario propio de tipos.
type OperationTypeRepository interface {
	Create(t *entity.OperationTypeEntry) error
	GetByID(id string) (*entity.OperationTypeEntry, error)
	Update(t *entity.OperationTypeEntry) error
	Delete(id string) error
	List() ([]*entity.OperationTypeEntry, error)
}
