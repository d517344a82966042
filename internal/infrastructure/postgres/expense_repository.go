package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/policy"
	"github.com/tu-usuario/gestion-ops/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, value, date, time_of_day, category, operation_id,
		description, profile, created_by, created_at`

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
// value es NUMERIC y se mapea a shopspring/decimal vía el codec del pool.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, value, date, time_of_day, category, operation_id,
			description, profile, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Value, e.Date, e.Time, e.Category, e.OperationID,
		e.Description, e.Profile, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID. (nil, nil) si no existe.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	var e entity.Expense
	var opID *string
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Value, &e.Date, &e.Time, &e.Category, &opID,
		&e.Description, &e.Profile, &e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	if opID != nil {
		e.OperationID = *opID
	}
	return &e, nil
}

// Update actualiza un gasto.
func (r *ExpenseRepo) Update(e *entity.Expense) error {
	query := `
		UPDATE expenses SET value = $2, date = $3, time_of_day = $4, category = $5,
			operation_id = NULLIF($6, ''), description = $7, profile = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Value, e.Date, e.Time, e.Category, e.OperationID, e.Description, e.Profile,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// List devuelve gastos según el alcance: todos, o propios ∪ ligados a
// operaciones accesibles.
func (r *ExpenseRepo) List(scope policy.Scope, profile string) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	var args []any
	if scope.All {
		if profile != "" {
			query += ` WHERE profile = $1`
			args = append(args, profile)
		}
	} else {
		query += ` WHERE (created_by = $1 OR operation_id = ANY($2))`
		args = append(args, scope.OwnerID, scope.OperationIDs)
		if profile != "" {
			query += ` AND profile = $3`
			args = append(args, profile)
		}
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		var opID *string
		if err := rows.Scan(
			&e.ID, &e.Value, &e.Date, &e.Time, &e.Category, &opID,
			&e.Description, &e.Profile, &e.CreatedBy, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if opID != nil {
			e.OperationID = *opID
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ClearOperationRef anula operation_id en los gastos de la operación borrada.
func (r *ExpenseRepo) ClearOperationRef(operationID string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE expenses SET operation_id = NULL WHERE operation_id = $1`, operationID)
	if err != nil {
		return fmt.Errorf("clear expense operation ref: %w", err)
	}
	return nil
}
