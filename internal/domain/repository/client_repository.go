package repository

import (
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/policy"
)

// ClientRepository puerto de persistencia para Client (contactos CRM).
type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(c *entity.Client) error
	Delete(id string) error
	List(scope policy.Scope, profile string) ([]*entity.Client, error)
	ClearOperationRef(operationID string) error
}
