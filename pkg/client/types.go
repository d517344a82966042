package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de intercambio del API, espejo del JSON del servidor.

// User usuario autenticado.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	Permissions Permissions `json:"permissions"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastLogin   *time.Time  `json:"lastLogin,omitempty"`
}

// Permissions banderas de acceso del usuario.
type Permissions struct {
	CanViewFinance       bool     `json:"canViewFinance"`
	CanEditOperations    bool     `json:"canEditOperations"`
	CanManageUsers       bool     `json:"canManageUsers"`
	CanAccessAllProjects bool     `json:"canAccessAllProjects"`
	AssignedOperations   []string `json:"assignedOperations"`
}

// OperationLinks enlaces externos de la operación.
type OperationLinks struct {
	Drive  string `json:"drive"`
	Notion string `json:"notion"`
	Domain string `json:"domain"`
	Other  string `json:"other"`
}

// Operation operación o proyecto de negocio.
type Operation struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Status    string         `json:"status"`
	Links     OperationLinks `json:"links"`
	Notes     string         `json:"notes"`
	Profile   string         `json:"profile"`
	CreatedBy string         `json:"createdBy"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Expense gasto registrado.
type Expense struct {
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

// Task tarea pendiente.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	OperationID string    `json:"operationId,omitempty"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	Profile     string    `json:"profile"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClientRecord contacto CRM.
type ClientRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OperationID  string    `json:"operationId,omitempty"`
	Observations string    `json:"observations"`
	Contact      string    `json:"contact"`
	Profile      string    `json:"profile"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
