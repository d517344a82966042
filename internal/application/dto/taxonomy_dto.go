package dto

import "time"

// CreateTaxonomyRequest entrada para crear una entrada de vocabulario
// (categoría de gasto o tipo de operación).
type CreateTaxonomyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateTaxonomyRequest actualización parcial.
type UpdateTaxonomyRequest struct {
	Name *string `json:"name"`
}

// TaxonomyResponse salida de una entrada de vocabulario.
type TaxonomyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
