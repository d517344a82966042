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

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, operation_id, observations, contact, profile,
		created_by, created_at`

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepository construye el adaptador.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Create persiste un nuevo contacto.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, operation_id, observations, contact, profile,
			created_by, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Name, c.OperationID, c.Observations, c.Contact, c.Profile,
		c.CreatedBy, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto por ID. (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	var opID *string
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &opID, &c.Observations, &c.Contact, &c.Profile,
		&c.CreatedBy, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	if opID != nil {
		c.OperationID = *opID
	}
	return &c, nil
}

// Update actualiza un contacto.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, operation_id = NULLIF($3, ''), observations = $4,
			contact = $5, profile = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Name, c.OperationID, c.Observations, c.Contact, c.Profile,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un contacto por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// List devuelve contactos según el alcance.
func (r *ClientRepo) List(scope policy.Scope, profile string) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
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
	query += ` ORDER BY name`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		var opID *string
		if err := rows.Scan(
			&c.ID, &c.Name, &opID, &c.Observations, &c.Contact, &c.Profile,
			&c.CreatedBy, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		if opID != nil {
			c.OperationID = *opID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ClearOperationRef anula operation_id en los contactos de la operación borrada.
func (r *ClientRepo) ClearOperationRef(operationID string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE clients SET operation_id = NULL WHERE operation_id = $1`, operationID)
	if err != nil {
		return fmt.Errorf("clear client operation ref: %w", err)
	}
	return nil
}
