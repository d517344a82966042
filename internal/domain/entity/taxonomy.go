package entity

import "time"

// ExpenseCategoryEntry entrada de vocabulario propio para categorías de gasto.
type ExpenseCategoryEntry struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

// OperationTypeEntry entrada de vocabulario propio para tipos de operación.
type OperationTypeEntry struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}
