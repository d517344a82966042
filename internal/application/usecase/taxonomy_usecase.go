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

// TaxonomyUseCase casos de uso para los vocabularios propios: categorías de
// gasto y tipos de operación. El listado es universal (son configuración);
// crear es solo admin; update/delete admin u owner.
type TaxonomyUseCase struct {
	categoryRepo repository.ExpenseCategoryRepository
	typeRepo     repository.OperationTypeRepository
}

// NewTaxonomyUseCase construye el caso de uso.
func NewTaxonomyUseCase(categoryRepo repository.ExpenseCategoryRepository, typeRepo repository.OperationTypeRepository) *TaxonomyUseCase {
	return &TaxonomyUseCase{categoryRepo: categoryRepo, typeRepo: typeRepo}
}

// ── Categorías de gasto ──

// ListCategories devuelve todas las categorías.
func (uc *TaxonomyUseCase) ListCategories(u *entity.User) ([]*dto.TaxonomyResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaxonomyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.TaxonomyResponse{ID: c.ID, Name: c.Name, CreatedBy: c.CreatedBy, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

// CreateCategory crea una categoría (solo admin).
func (uc *TaxonomyUseCase) CreateCategory(u *entity.User, in dto.CreateTaxonomyRequest) (*dto.TaxonomyResponse, error) {
	if !policy.CanCreate(u, policy.KindTaxonomy) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.ExpenseCategoryEntry{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedBy: u.ID,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.TaxonomyResponse{ID: c.ID, Name: c.Name, CreatedBy: c.CreatedBy, CreatedAt: c.CreatedAt}, nil
}

// UpdateCategory renombra una categoría (admin u owner).
func (uc *TaxonomyUseCase) UpdateCategory(u *entity.User, id string, in dto.UpdateTaxonomyRequest) (*dto.TaxonomyResponse, error) {
	c, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: c.ID, CreatedBy: c.CreatedBy}, policy.KindTaxonomy) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Name = *in.Name
	}
	if err := uc.categoryRepo.Update(c); err != nil {
		return nil, err
	}
	return &dto.TaxonomyResponse{ID: c.ID, Name: c.Name, CreatedBy: c.CreatedBy, CreatedAt: c.CreatedAt}, nil
}

// DeleteCategory borra una categoría (admin u owner).
func (uc *TaxonomyUseCase) DeleteCategory(u *entity.User, id string) error {
	c, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: c.ID, CreatedBy: c.CreatedBy}, policy.KindTaxonomy) {
		return domain.ErrForbidden
	}
	return uc.categoryRepo.Delete(id)
}

// ── Tipos de operación ──

// ListTypes devuelve todos los tipos de operación.
func (uc *TaxonomyUseCase) ListTypes(u *entity.User) ([]*dto.TaxonomyResponse, error) {
	list, err := uc.typeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaxonomyResponse, 0, len(list))
	for _, t := range list {
		out = append(out, &dto.TaxonomyResponse{ID: t.ID, Name: t.Name, CreatedBy: t.CreatedBy, CreatedAt: t.CreatedAt})
	}
	return out, nil
}

// CreateType crea un tipo de operación (solo admin).
func (uc *TaxonomyUseCase) CreateType(u *entity.User, in dto.CreateTaxonomyRequest) (*dto.TaxonomyResponse, error) {
	if !policy.CanCreate(u, policy.KindTaxonomy) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.OperationTypeEntry{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedBy: u.ID,
		CreatedAt: time.Now(),
	}
	if err := uc.typeRepo.Create(t); err != nil {
		return nil, err
	}
	return &dto.TaxonomyResponse{ID: t.ID, Name: t.Name, CreatedBy: t.CreatedBy, CreatedAt: t.CreatedAt}, nil
}

// UpdateType renombra un tipo (admin u owner).
func (uc *TaxonomyUseCase) UpdateType(u *entity.User, id string, in dto.UpdateTaxonomyRequest) (*dto.TaxonomyResponse, error) {
	t, err := uc.typeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: t.ID, CreatedBy: t.CreatedBy}, policy.KindTaxonomy) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Name = *in.Name
	}
	if err := uc.typeRepo.Update(t); err != nil {
		return nil, err
	}
	return &dto.TaxonomyResponse{ID: t.ID, Name: t.Name, CreatedBy: t.CreatedBy, CreatedAt: t.CreatedAt}, nil
}

// DeleteType borra un tipo (admin u owner).
func (uc *TaxonomyUseCase) DeleteType(u *entity.User, id string) error {
	t, err := uc.typeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: t.ID, CreatedBy: t.CreatedBy}, policy.KindTaxonomy) {
		return domain.ErrForbidden
	}
	return uc.typeRepo.Delete(id)
}
