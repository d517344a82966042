package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/gestion-ops/internal/domain"
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/repository"
)

var (
	_ repository.ExpenseCategoryRepository = (*ExpenseCategoryRepo)(nil)
	_ repository.OperationTypeRepository   = (*OperationTypeRepo)(nil)
)

// ExpenseCategoryRepo vocabulario propio de categorías de gasto.
type ExpenseCategoryRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseCategoryRepository construye el adaptador.
func NewExpenseCategoryRepository(pool *pgxpool.Pool) *ExpenseCategoryRepo {
	return &ExpenseCategoryRepo{pool: pool}
}

// Create persiste una categoría. Nombre duplicado -> ErrDuplicate.
func (r *ExpenseCategoryRepo) Create(c *entity.ExpenseCategoryEntry) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO expense_categories (id, name, created_by, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.CreatedBy, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *ExpenseCategoryRepo) GetByID(id string) (*entity.ExpenseCategoryEntry, error) {
	var c entity.ExpenseCategoryEntry
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM expense_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría.
func (r *ExpenseCategoryRepo) Update(c *entity.ExpenseCategoryEntry) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE expense_categories SET name = $2 WHERE id = $1`, c.ID, c.Name)
	if err != nil {
		return fmt.Errorf("update expense category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *ExpenseCategoryRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete expense category: %w", err)
	}
	return nil
}

// List devuelve todas las categorías (configuración universal).
func (r *ExpenseCategoryRepo) List() ([]*entity.ExpenseCategoryEntry, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, name, created_by, created_at FROM expense_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseCategoryEntry
	for rows.Next() {
		var c entity.ExpenseCategoryEntry
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// OperationTypeRepo vocabulario propio de tipos de operación.
type OperationTypeRepo struct {
	pool *pgxpool.Pool
}

// NewOperationTypeRepository construye el adaptador.
func NewOperationTypeRepository(pool *pgxpool.Pool) *OperationTypeRepo {
	return &OperationTypeRepo{pool: pool}
}

// Create persiste un tipo. Nombre duplicado -> ErrDuplicate.
func (r *OperationTypeRepo) Create(t *entity.OperationTypeEntry) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO operation_types (id, name, created_by, created_at) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Name, t.CreatedBy, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert operation type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID. (nil, nil) si no existe.
func (r *OperationTypeRepo) GetByID(id string) (*entity.OperationTypeEntry, error) {
	var t entity.OperationTypeEntry
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, name, created_by, created_at FROM operation_types WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation type: %w", err)
	}
	return &t, nil
}

// Update actualiza un tipo.
func (r *OperationTypeRepo) Update(t *entity.OperationTypeEntry) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE operation_types SET name = $2 WHERE id = $1`, t.ID, t.Name)
	if err != nil {
		return fmt.Errorf("update operation type: %w", err)
	}
	return nil
}

// Delete elimina un tipo por ID.
func (r *OperationTypeRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM operation_types WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete operation type: %w", err)
	}
	return nil
}

// List devuelve todos los tipos (configuración universal).
func (r *OperationTypeRepo) List() ([]*entity.OperationTypeEntry, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, name, created_by, created_at FROM operation_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list operation types: %w", err)
	}
	defer rows.Close()
	var list []*entity.OperationTypeEntry
	for rows.Next() {
		var t entity.OperationTypeEntry
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan operation type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
