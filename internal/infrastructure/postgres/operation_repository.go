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

var _ repository.OperationRepository = (*OperationRepo)(nil)

const operationColumns = `id, name, type, status,
		link_drive, link_notion, link_domain, link_other,
		notes, profile, created_by, created_at`

// OperationRepo implementación de OperationRepository sobre PostgreSQL.
type OperationRepo struct {
	pool *pgxpool.Pool
}

// NewOperationRepository construye el adaptador.
func NewOperationRepository(pool *pgxpool.Pool) *OperationRepo {
	return &OperationRepo{pool: pool}
}

// Create persiste una nueva operación.
func (r *OperationRepo) Create(op *entity.Operation) error {
	query := `
		INSERT INTO operations (id, name, type, status,
			link_drive, link_notion, link_domain, link_other,
			notes, profile, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		op.ID, op.Name, op.Type, op.Status,
		op.Links.Drive, op.Links.Notion, op.Links.Domain, op.Links.Other,
		op.Notes, op.Profile, op.CreatedBy, op.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// GetByID obtiene una operación por ID. (nil, nil) si no existe.
func (r *OperationRepo) GetByID(id string) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1`
	var op entity.Operation
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&op.ID, &op.Name, &op.Type, &op.Status,
		&op.Links.Drive, &op.Links.Notion, &op.Links.Domain, &op.Links.Other,
		&op.Notes, &op.Profile, &op.CreatedBy, &op.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	return &op, nil
}

// Update actualiza una operación.
func (r *OperationRepo) Update(op *entity.Operation) error {
	query := `
		UPDATE operations SET name = $2, type = $3, status = $4,
			link_drive = $5, link_notion = $6, link_domain = $7, link_other = $8,
			notes = $9, profile = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		op.ID, op.Name, op.Type, op.Status,
		op.Links.Drive, op.Links.Notion, op.Links.Domain, op.Links.Other,
		op.Notes, op.Profile,
	)
	if err != nil {
		return fmt.Errorf("update operation: %w", err)
	}
	return nil
}

// Delete elimina una operación por ID.
func (r *OperationRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM operations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete operation: %w", err)
	}
	return nil
}

// List devuelve operaciones según el alcance: todas, o propias ∪ asignadas.
// El filtro de perfil se empuja a la consulta para no transferir de más.
func (r *OperationRepo) List(scope policy.Scope, profile string) ([]*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations`
	var args []any
	if scope.All {
		if profile != "" {
			query += ` WHERE profile = $1`
			args = append(args, profile)
		}
	} else {
		query += ` WHERE (created_by = $1 OR id = ANY($2))`
		args = append(args, scope.OwnerID, scope.OperationIDs)
		if profile != "" {
			query += ` AND profile = $3`
			args = append(args, profile)
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operation
	for rows.Next() {
		var op entity.Operation
		if err := rows.Scan(
			&op.ID, &op.Name, &op.Type, &op.Status,
			&op.Links.Drive, &op.Links.Notion, &op.Links.Domain, &op.Links.Other,
			&op.Notes, &op.Profile, &op.CreatedBy, &op.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		list = append(list, &op)
	}
	return list, rows.Err()
}

// ListIDsByOwner devuelve los ids de operaciones creadas por el usuario.
func (r *OperationRepo) ListIDsByOwner(ownerID string) ([]string, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id FROM operations WHERE created_by = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list operation ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan operation id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
