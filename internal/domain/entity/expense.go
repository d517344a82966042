package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías base de gastos. El catálogo es extensible vía ExpenseCategory.
const (
	ExpenseCategoryInfra       = "infra"
	ExpenseCategoryEquipe      = "equipe"
	ExpenseCategoryFerramentas = "ferramentas"
	ExpenseCategoryMarketing   = "marketing"
	ExpenseCategoryJuridico    = "juridico"
	ExpenseCategoryOutro       = "outro"
)

// Expense representa un gasto. OperationID es una referencia suave a una
// Operation; al borrar la operación la referencia se anula (cascade-null).
type Expense struct {
	ID          string
	Value       decimal.Decimal // no negativo
	Date        time.Time
	Time        string // HH:MM opcional
	Category    string
	OperationID string // opcional
	Description string
	Profile     string // pf | pj
	CreatedBy   string
	CreatedAt   time.Time
}
