package entity

import "time"

// Client representa un contacto CRM, opcionalmente ligado a una operación.
type Client struct {
	ID           string
	Name         string
	OperationID  string // opcional
	Observations string
	Contact      string
	Profile      string // pf | pj
	CreatedBy    string
	CreatedAt    time.Time
}
