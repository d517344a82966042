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

// OperationUseCase casos de uso CRUD para operaciones (proyectos).
// El borrado anula la referencia operationId en gastos, tareas y clientes
// dependientes para no dejar referencias colgantes.
type OperationUseCase struct {
	repo        repository.OperationRepository
	expenseRepo repository.ExpenseRepository
	taskRepo    repository.TaskRepository
	clientRepo  repository.ClientRepository
}

// NewOperationUseCase construye el caso de uso.
func NewOperationUseCase(
	repo repository.OperationRepository,
	expenseRepo repository.ExpenseRepository,
	taskRepo repository.TaskRepository,
	clientRepo repository.ClientRepository,
) *OperationUseCase {
	return &OperationUseCase{repo: repo, expenseRepo: expenseRepo, taskRepo: taskRepo, clientRepo: clientRepo}
}

// List devuelve las operaciones dentro del alcance del usuario.
// profile vacío trae ambos perfiles; "pf"/"pj" filtra en la consulta.
func (uc *OperationUseCase) List(u *entity.User, profile string) ([]*dto.OperationResponse, error) {
	if profile != "" && !entity.ValidProfile(profile) {
		return nil, domain.ErrInvalidInput
	}
	scope, err := scopeFor(u, uc.repo)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(scope, profile)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OperationResponse, 0, len(list))
	for _, op := range list {
		out = append(out, toOperationResponse(op))
	}
	return out, nil
}

// Create crea una operación. Exige canEditOperations; el owner es siempre el
// usuario autenticado, ignorando cualquier createdBy del payload.
func (uc *OperationUseCase) Create(u *entity.User, in dto.CreateOperationRequest) (*dto.OperationResponse, error) {
	if !policy.CanCreate(u, policy.KindOperation) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || !entity.ValidOperationType(in.Type) || !entity.ValidOperationStatus(in.Status) || !entity.ValidProfile(in.Profile) {
		return nil, domain.ErrInvalidInput
	}
	op := &entity.Operation{
		ID:     uuid.New().String(),
		Name:   in.Name,
		Type:   in.Type,
		Status: in.Status,
		Links: entity.OperationLinks{
			Drive:  in.Links.Drive,
			Notion: in.Links.Notion,
			Domain: in.Links.Domain,
			Other:  in.Links.Other,
		},
		Notes:     in.Notes,
		Profile:   in.Profile,
		CreatedBy: u.ID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(op); err != nil {
		return nil, err
	}
	return toOperationResponse(op), nil
}

// Update aplica una actualización parcial (merge). NotFound se evalúa antes
// que el permiso: un id inexistente responde 404 aunque el caller no tuviera
// acceso al registro.
func (uc *OperationUseCase) Update(u *entity.User, id string, in dto.UpdateOperationRequest) (*dto.OperationResponse, error) {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: op.ID, CreatedBy: op.CreatedBy}, policy.KindOperation) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		op.Name = *in.Name
	}
	if in.Type != nil {
		if !entity.ValidOperationType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		op.Type = *in.Type
	}
	if in.Status != nil {
		// Las transiciones de estado no están restringidas.
		if !entity.ValidOperationStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		op.Status = *in.Status
	}
	if in.Links != nil {
		op.Links = entity.OperationLinks{
			Drive:  in.Links.Drive,
			Notion: in.Links.Notion,
			Domain: in.Links.Domain,
			Other:  in.Links.Other,
		}
	}
	if in.Notes != nil {
		op.Notes = *in.Notes
	}
	if in.Profile != nil {
		if !entity.ValidProfile(*in.Profile) {
			return nil, domain.ErrInvalidInput
		}
		op.Profile = *in.Profile
	}
	if err := uc.repo.Update(op); err != nil {
		return nil, err
	}
	return toOperationResponse(op), nil
}

// Delete borra una operación y anula operationId en sus dependientes.
// Un segundo delete del mismo id devuelve ErrNotFound.
func (uc *OperationUseCase) Delete(u *entity.User, id string) error {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: op.ID, CreatedBy: op.CreatedBy}, policy.KindOperation) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	// Cascade-null: los dependientes quedan sin referencia, no se borran.
	if err := uc.expenseRepo.ClearOperationRef(id); err != nil {
		return err
	}
	if err := uc.taskRepo.ClearOperationRef(id); err != nil {
		return err
	}
	return uc.clientRepo.ClearOperationRef(id)
}

func toOperationResponse(op *entity.Operation) *dto.OperationResponse {
	return &dto.OperationResponse{
		ID:     op.ID,
		Name:   op.Name,
		Type:   op.Type,
		Status: op.Status,
		Links: dto.OperationLinksDTO{
			Drive:  op.Links.Drive,
			Notion: op.Links.Notion,
			Domain: op.Links.Domain,
			Other:  op.Links.Other,
		},
		Notes:     op.Notes,
		Profile:   op.Profile,
		CreatedBy: op.CreatedBy,
		CreatedAt: op.CreatedAt,
	}
}
