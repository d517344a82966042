package usecase_test

import (
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/policy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

func inScope(scope policy.Scope, createdBy, operationID string) bool {
	if scope.All {
		return true
	}
	if createdBy == scope.OwnerID {
		return true
	}
	for _, id := range scope.OperationIDs {
		if operationID != "" && operationID == id {
			return true
		}
	}
	return false
}

type memOperationRepo struct {
	ops map[string]*entity.Operation
}

func newMemOperationRepo(ops ...*entity.Operation) *memOperationRepo {
	r := &memOperationRepo{ops: make(map[string]*entity.Operation)}
	for _, op := range ops {
		r.ops[op.ID] = op
	}
	return r
}

func (r *memOperationRepo) Create(op *entity.Operation) error {
	r.ops[op.ID] = op
	return nil
}

func (r *memOperationRepo) GetByID(id string) (*entity.Operation, error) {
	return r.ops[id], nil
}

func (r *memOperationRepo) Update(op *entity.Operation) error {
	r.ops[op.ID] = op
	return nil
}

func (r *memOperationRepo) Delete(id string) error {
	delete(r.ops, id)
	return nil
}

func (r *memOperationRepo) List(scope policy.Scope, profile string) ([]*entity.Operation, error) {
	var out []*entity.Operation
	for _, op := range r.ops {
		if profile != "" && op.Profile != profile {
			continue
		}
		if inScope(scope, op.CreatedBy, op.ID) {
			out = append(out, op)
		}
	}
	return out, nil
}

func (r *memOperationRepo) ListIDsByOwner(ownerID string) ([]string, error) {
	var ids []string
	for _, op := range r.ops {
		if op.CreatedBy == ownerID {
			ids = append(ids, op.ID)
		}
	}
	return ids, nil
}

type memExpenseRepo struct {
	expenses map[string]*entity.Expense
}

func newMemExpenseRepo(expenses ...*entity.Expense) *memExpenseRepo {
	r := &memExpenseRepo{expenses: make(map[string]*entity.Expense)}
	for _, e := range expenses {
		r.expenses[e.ID] = e
	}
	return r
}

func (r *memExpenseRepo) Create(e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *memExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	return r.expenses[id], nil
}

func (r *memExpenseRepo) Update(e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *memExpenseRepo) Delete(id string) error {
	delete(r.expenses, id)
	return nil
}

func (r *memExpenseRepo) List(scope policy.Scope, profile string) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if profile != "" && e.Profile != profile {
			continue
		}
		if inScope(scope, e.CreatedBy, e.OperationID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memExpenseRepo) ClearOperationRef(operationID string) error {
	for _, e := range r.expenses {
		if e.OperationID == operationID {
			e.OperationID = ""
		}
	}
	return nil
}

type memTaskRepo struct {
	tasks map[string]*entity.Task
}

func newMemTaskRepo(tasks ...*entity.Task) *memTaskRepo {
	r := &memTaskRepo{tasks: make(map[string]*entity.Task)}
	for _, tk := range tasks {
		r.tasks[tk.ID] = tk
	}
	return r
}

func (r *memTaskRepo) Create(t *entity.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *memTaskRepo) GetByID(id string) (*entity.Task, error) {
	return r.tasks[id], nil
}

func (r *memTaskRepo) Update(t *entity.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *memTaskRepo) Delete(id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) List(scope policy.Scope, profile string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if profile != "" && t.Profile != profile {
			continue
		}
		if inScope(scope, t.CreatedBy, t.OperationID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) ClearOperationRef(operationID string) error {
	for _, t := range r.tasks {
		if t.OperationID == operationID {
			t.OperationID = ""
		}
	}
	return nil
}

type memClientRepo struct {
	clients map[string]*entity.Client
}

func newMemClientRepo(clients ...*entity.Client) *memClientRepo {
	r := &memClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *memClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

func (r *memClientRepo) List(scope policy.Scope, profile string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if profile != "" && c.Profile != profile {
			continue
		}
		if inScope(scope, c.CreatedBy, c.OperationID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memClientRepo) ClearOperationRef(operationID string) error {
	for _, c := range r.clients {
		if c.OperationID == operationID {
			c.OperationID = ""
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios de prueba
// ──────────────────────────────────────────────────────────────────────────────

func adminUser() *entity.User {
	return &entity.User{
		ID:          "admin-1",
		Name:        "Admin",
		Role:        entity.RoleAdmin,
		Permissions: entity.DefaultPermissions(entity.RoleAdmin),
	}
}

func gestorUser(id string) *entity.User {
	return &entity.User{
		ID:          id,
		Name:        "Gestor " + id,
		Role:        entity.RoleGestor,
		Permissions: entity.DefaultPermissions(entity.RoleGestor),
	}
}

func colaboradorUser(id string, assigned ...string) *entity.User {
	u := &entity.User{
		ID:          id,
		Name:        "Colaborador " + id,
		Role:        entity.RoleColaborador,
		Permissions: entity.DefaultPermissions(entity.RoleColaborador),
	}
	u.Permissions.AssignedOperations = assigned
	return u
}
