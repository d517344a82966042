package client

import (
	"context"
	"net/http"
)

// Mutaciones por recurso. Ninguna actualiza el espejo de forma optimista:
// el estado local solo cambia con la representación que devuelve el servidor.

// CreateOperation POST /api/operations
func (c *Client) CreateOperation(ctx context.Context, payload map[string]any) (*Operation, error) {
	var out Operation
	if err := c.do(ctx, http.MethodPost, "/api/operations", payload, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.state.operations = append(c.state.operations, out)
	c.mu.Unlock()
	return &out, nil
}

// UpdateOperation PUT /api/operations/:id con campos parciales.
func (c *Client) UpdateOperation(ctx context.Context, id string, partial map[string]any) (*Operation, error) {
	var out Operation
	if err := c.do(ctx, http.MethodPut, "/api/operations/"+id, partial, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	for i := range c.state.operations {
		if c.state.operations[i].ID == id {
			c.state.operations[i] = out
			break
		}
	}
	c.mu.Unlock()
	return &out, nil
}

// DeleteOperation DELETE /api/operations/:id
func (c *Client) DeleteOperation(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/operations/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.state.operations = removeByID(c.state.operations, id, func(o Operation) string { return o.ID })
	c.mu.Unlock()
	return nil
}

// CreateExpense POST /api/expenses
func (c *Client) CreateExpense(ctx context.Context, payload map[string]any) (*Expense, error) {
	var out Expense
	if err := c.do(ctx, http.MethodPost, "/api/expenses", payload, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.state.expenses = append(c.state.expenses, out)
	c.mu.Unlock()
	return &out, nil
}

// UpdateExpense PUT /api/expenses/:id
func (c *Client) UpdateExpense(ctx context.Context, id string, partial map[string]any) (*Expense, error) {
	var out Expense
	if err := c.do(ctx, http.MethodPut, "/api/expenses/"+id, partial, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	for i := range c.state.expenses {
		if c.state.expenses[i].ID == id {
			c.state.expenses[i] = out
			break
		}
	}
	c.mu.Unlock()
	return &out, nil
}

// DeleteExpense DELETE /api/expenses/:id
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/expenses/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.state.expenses = removeByID(c.state.expenses, id, func(e Expense) string { return e.ID })
	c.mu.Unlock()
	return nil
}

// CreateTask POST /api/tasks
func (c *Client) CreateTask(ctx context.Context, payload map[string]any) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", payload, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.state.tasks = append(c.state.tasks, out)
	c.mu.Unlock()
	return &out, nil
}

// UpdateTask PUT /api/tasks/:id
func (c *Client) UpdateTask(ctx context.Context, id string, partial map[string]any) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, partial, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	for i := range c.state.tasks {
		if c.state.tasks[i].ID == id {
			c.state.tasks[i] = out
			break
		}
	}
	c.mu.Unlock()
	return &out, nil
}

// DeleteTask DELETE /api/tasks/:id
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.state.tasks = removeByID(c.state.tasks, id, func(t Task) string { return t.ID })
	c.mu.Unlock()
	return nil
}

// CreateClient POST /api/clients
func (c *Client) CreateClient(ctx context.Context, payload map[string]any) (*ClientRecord, error) {
	var out ClientRecord
	if err := c.do(ctx, http.MethodPost, "/api/clients", payload, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.state.clients = append(c.state.clients, out)
	c.mu.Unlock()
	return &out, nil
}

// UpdateClient PUT /api/clients/:id
func (c *Client) UpdateClient(ctx context.Context, id string, partial map[string]any) (*ClientRecord, error) {
	var out ClientRecord
	if err := c.do(ctx, http.MethodPut, "/api/clients/"+id, partial, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	for i := range c.state.clients {
		if c.state.clients[i].ID == id {
			c.state.clients[i] = out
			break
		}
	}
	c.mu.Unlock()
	return &out, nil
}

// DeleteClient DELETE /api/clients/:id
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/clients/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.state.clients = removeByID(c.state.clients, id, func(cl ClientRecord) string { return cl.ID })
	c.mu.Unlock()
	return nil
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := items[:0]
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}
