package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/domain"
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/policy"
	"github.com/tu-usuario/gestion-ops/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para contactos CRM.
type ClientUseCase struct {
	repo   repository.ClientRepository
	opRepo repository.OperationRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, opRepo repository.OperationRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, opRepo: opRepo}
}

// List devuelve los contactos dentro del alcance del usuario.
func (uc *ClientUseCase) List(u *entity.User, profile string) ([]*dto.ClientResponse, error) {
	if profile != "" && !entity.ValidProfile(profile) {
		return nil, domain.ErrInvalidInput
	}
	scope, err := scopeFor(u, uc.opRepo)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(scope, profile)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Create crea un contacto con owner forzado al usuario autenticado.
func (uc *ClientUseCase) Create(u *entity.User, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || !entity.ValidProfile(in.Profile) {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		OperationID:  in.OperationID,
		Observations: in.Observations,
		Contact:      in.Contact,
		Profile:      in.Profile,
		CreatedBy:    u.ID,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Update aplica una actualización parcial. NotFound antes que el permiso.
func (uc *ClientUseCase) Update(u *entity.User, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: c.ID, CreatedBy: c.CreatedBy, OperationID: c.OperationID}, policy.KindClient) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Name = *in.Name
	}
	if in.OperationID != nil {
		c.OperationID = *in.OperationID
	}
	if in.Observations != nil {
		c.Observations = *in.Observations
	}
	if in.Contact != nil {
		c.Contact = *in.Contact
	}
	if in.Profile != nil {
		if !entity.ValidProfile(*in.Profile) {
			return nil, domain.ErrInvalidInput
		}
		c.Profile = *in.Profile
	}
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Delete borra un contacto. Un segundo delete devuelve ErrNotFound.
func (uc *ClientUseCase) Delete(u *entity.User, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: c.ID, CreatedBy: c.CreatedBy, OperationID: c.OperationID}, policy.KindClient) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		OperationID:  c.OperationID,
		Observations: c.Observations,
		Contact:      c.Contact,
		Profile:      c.Profile,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
	}
}
