package repository

import (
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/policy"
)

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Update(e *entity.Expense) error
	Delete(id string) error
	List(scope policy.Scope, profile string) ([]*entity.Expense, error)
	// ClearOperationRef anula operation_id en los gastos que referencian la
	// operación borrada (cascade-null).
	ClearOperationRef(operationID string) error
}
