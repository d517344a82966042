package dto

import "time"

// OperationLinksDTO URLs asociadas, todas opcionales.
type OperationLinksDTO struct {
	Drive  string `json:"drive"`
	Notion string `json:"notion"`
	Domain string `json:"domain"`
	Other  string `json:"other"`
}

// CreateOperationRequest entrada para crear una operación. El owner lo fija el
// servidor con el usuario autenticado; cualquier createdBy del payload se ignora.
type CreateOperationRequest struct {
	Name    string            `json:"name" validate:"required,min=1,max=200"`
	Type    string            `json:"type" validate:"required"`
	Status  string            `json:"status" validate:"required"`
	Links   OperationLinksDTO `json:"links"`
	Notes   string            `json:"notes"`
	Profile string            `json:"profile" validate:"required,oneof=pf pj"`
}

// UpdateOperationRequest actualización parcial (merge: solo campos presentes).
type UpdateOperationRequest struct {
	Name    *string            `json:"name"`
	Type    *string            `json:"type"`
	Status  *string            `json:"status"`
	Links   *OperationLinksDTO `json:"links"`
	Notes   *string            `json:"notes"`
	Profile *string            `json:"profile"`
}

// OperationResponse salida de una operación.
type OperationResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Status    string            `json:"status"`
	Links     OperationLinksDTO `json:"links"`
	Notes     string            `json:"notes"`
	Profile   string            `json:"profile"`
	CreatedBy string            `json:"createdBy"`
	CreatedAt time.Time         `json:"createdAt"`
}
