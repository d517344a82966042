package dto

import "time"

// CreateClientRequest entrada para crear un contacto CRM.
type CreateClientRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	OperationID  string `json:"operationId"`
	Observations string `json:"observations"`
	Contact      string `json:"contact"`
	Profile      string `json:"profile" validate:"required,oneof=pf pj"`
}

// UpdateClientRequest actualización parcial.
type UpdateClientRequest struct {
	Name         *string `json:"name"`
	OperationID  *string `json:"operationId"`
	Observations *string `json:"observations"`
	Contact      *string `json:"contact"`
	Profile      *string `json:"profile"`
}

// ClientResponse salida de un contacto.
type ClientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OperationID  string    `json:"operationId,omitempty"`
	Observations string    `json:"observations"`
	Contact      string    `json:"contact"`
	Profile      string    `json:"profile"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
