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

// ExpenseUseCase casos de uso CRUD para gastos. Listar exige canViewFinance
// además del alcance por propiedad.
type ExpenseUseCase struct {
	repo   repository.ExpenseRepository
	opRepo repository.OperationRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, opRepo repository.OperationRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, opRepo: opRepo}
}

// List devuelve los gastos dentro del alcance del usuario.
// Sin canViewFinance la petición completa se niega, incluso con acceso global.
func (uc *ExpenseUseCase) List(u *entity.User, profile string) ([]*dto.ExpenseResponse, error) {
	if !policy.CanList(u, policy.KindExpense) {
		return nil, domain.ErrForbidden
	}
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
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Create crea un gasto con owner forzado al usuario autenticado.
func (uc *ExpenseUseCase) Create(u *entity.User, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Value.IsNegative() || in.Category == "" || in.Date.IsZero() || !entity.ValidProfile(in.Profile) {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Expense{
		ID:          uuid.New().String(),
		Value:       in.Value,
		Date:        in.Date,
		Time:        in.Time,
		Category:    in.Category,
		OperationID: in.OperationID,
		Description: in.Description,
		Profile:     in.Profile,
		CreatedBy:   u.ID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Update aplica una actualización parcial. NotFound antes que el permiso.
func (uc *ExpenseUseCase) Update(u *entity.User, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: e.ID, CreatedBy: e.CreatedBy, OperationID: e.OperationID}, policy.KindExpense) {
		return nil, domain.ErrForbidden
	}
	if in.Value != nil {
		if in.Value.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		e.Value = *in.Value
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.Time != nil {
		e.Time = *in.Time
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, domain.ErrInvalidInput
		}
		e.Category = *in.Category
	}
	if in.OperationID != nil {
		e.OperationID = *in.OperationID
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Profile != nil {
		if !entity.ValidProfile(*in.Profile) {
			return nil, domain.ErrInvalidInput
		}
		e.Profile = *in.Profile
	}
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Delete borra un gasto. Un segundo delete devuelve ErrNotFound.
func (uc *ExpenseUseCase) Delete(u *entity.User, id string) error {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: e.ID, CreatedBy: e.CreatedBy, OperationID: e.OperationID}, policy.KindExpense) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Value:       e.Value,
		Date:        e.Date,
		Time:        e.Time,
		Category:    e.Category,
		OperationID: e.OperationID,
		Description: e.Description,
		Profile:     e.Profile,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}
