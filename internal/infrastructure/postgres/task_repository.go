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

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, title, description, date, time_of_day, operation_id,
		completed, priority, profile, created_by, created_at`

// TaskRepo implementación de TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(t *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, date, time_of_day, operation_id,
			completed, priority, profile, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.Title, t.Description, t.Date, t.Time, t.OperationID,
		t.Completed, t.Priority, t.Profile, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. (nil, nil) si no existe.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t entity.Task
	var opID *string
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Date, &t.Time, &opID,
		&t.Completed, &t.Priority, &t.Profile, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	if opID != nil {
		t.OperationID = *opID
	}
	return &t, nil
}

// Update actualiza una tarea.
func (r *TaskRepo) Update(t *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, date = $4, time_of_day = $5,
			operation_id = NULLIF($6, ''), completed = $7, priority = $8, profile = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.Title, t.Description, t.Date, t.Time, t.OperationID,
		t.Completed, t.Priority, t.Profile,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// List devuelve tareas según el alcance.
func (r *TaskRepo) List(scope policy.Scope, profile string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
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
	query += ` ORDER BY date, created_at`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		var opID *string
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Date, &t.Time, &opID,
			&t.Completed, &t.Priority, &t.Profile, &t.CreatedBy, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if opID != nil {
			t.OperationID = *opID
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ClearOperationRef anula operation_id en las tareas de la operación borrada.
func (r *TaskRepo) ClearOperationRef(operationID string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE tasks SET operation_id = NULL WHERE operation_id = $1`, operationID)
	if err != nil {
		return fmt.Errorf("clear task operation ref: %w", err)
	}
	return nil
}
