package client

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Snapshot vista derivada del espejo. Con profile "pf" o "pj" filtra en
// memoria; con profile vacío devuelve las colecciones completas.
type Snapshot struct {
	Operations []Operation
	Expenses   []Expense
	Tasks      []Task
	Clients    []ClientRecord
}

// Refresh descarga las cuatro colecciones en paralelo y reemplaza el espejo
// completo. No hay fusión incremental: si alguna descarga falla el espejo
// queda intacto.
func (c *Client) Refresh(ctx context.Context) error {
	var (
		operations []Operation
		expenses   []Expense
		tasks      []Task
		clients    []ClientRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/operations", nil, &operations) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/expenses", nil, &expenses) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/tasks", nil, &tasks) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/clients", nil, &clients) })
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	c.state = state{operations: operations, expenses: expenses, tasks: tasks, clients: clients}
	c.mu.Unlock()
	return nil
}

// Snapshot devuelve una copia filtrada por perfil del estado en memoria.
func (c *Client) Snapshot(profile string) Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{}
	for _, op := range c.state.operations {
		if profile == "" || op.Profile == profile {
			snap.Operations = append(snap.Operations, op)
		}
	}
	for _, e := range c.state.expenses {
		if profile == "" || e.Profile == profile {
			snap.Expenses = append(snap.Expenses, e)
		}
	}
	for _, t := range c.state.tasks {
		if profile == "" || t.Profile == profile {
			snap.Tasks = append(snap.Tasks, t)
		}
	}
	for _, cl := range c.state.clients {
		if profile == "" || cl.Profile == profile {
			snap.Clients = append(snap.Clients, cl)
		}
	}
	return snap
}
