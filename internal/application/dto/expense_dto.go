package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para crear un gasto.
type CreateExpenseRequest struct {
	Value       decimal.Decimal `json:"value"`
	Date        time.Time       `json:"date" validate:"required"`
	Time        string          `json:"time"`
	Category    string          `json:"category" validate:"required"`
	OperationID string          `json:"operationId"`
	Description string          `json:"description"`
	Profile     string          `json:"profile" validate:"required,oneof=pf pj"`
}

// UpdateExpenseRequest actualización parcial.
type UpdateExpenseRequest struct {
	Value       *decimal.Decimal `json:"value"`
	Date        *time.Time       `json:"date"`
	Time        *string          `json:"time"`
	Category    *string          `json:"category"`
	OperationID *string          `json:"operationId"`
	Description *string          `json:"description"`
	Profile     *string          `json:"profile"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Value       decimal.Decimal `json:"value"`
	Date        time.Time       `json:"date"`
	Time        string          `json:"time,omitempty"`
	Category    string          `json:"category"`
	OperationID string          `json:"operationId,omitempty"`
	Description string          `json:"description"`
	Profile     string          `json:"profile"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}
