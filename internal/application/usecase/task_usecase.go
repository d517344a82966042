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

// TaskUseCase casos de uso CRUD para tareas.
type TaskUseCase struct {
	repo   repository.TaskRepository
	opRepo repository.OperationRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, opRepo repository.OperationRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, opRepo: opRepo}
}

// List devuelve las tareas dentro del alcance del usuario.
func (uc *TaskUseCase) List(u *entity.User, profile string) ([]*dto.TaskResponse, error) {
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
	out := make([]*dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// Create crea una tarea con owner forzado al usuario autenticado.
func (uc *TaskUseCase) Create(u *entity.User, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" || in.Date.IsZero() || !entity.ValidTaskPriority(in.Priority) || !entity.ValidProfile(in.Profile) {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		OperationID: in.OperationID,
		Priority:    in.Priority,
		Profile:     in.Profile,
		CreatedBy:   u.ID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

// Update aplica una actualización parcial. NotFound antes que el permiso.
func (uc *TaskUseCase) Update(u *entity.User, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: t.ID, CreatedBy: t.CreatedBy, OperationID: t.OperationID}, policy.KindTask) {
		return nil, domain.ErrForbidden
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Date != nil {
		t.Date = *in.Date
	}
	if in.Time != nil {
		t.Time = *in.Time
	}
	if in.OperationID != nil {
		t.OperationID = *in.OperationID
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if in.Priority != nil {
		if !entity.ValidTaskPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		t.Priority = *in.Priority
	}
	if in.Profile != nil {
		if !entity.ValidProfile(*in.Profile) {
			return nil, domain.ErrInvalidInput
		}
		t.Profile = *in.Profile
	}
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

// Delete borra una tarea. Un segundo delete devuelve ErrNotFound.
func (uc *TaskUseCase) Delete(u *entity.User, id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if !policy.CanMutate(u, policy.RecordMeta{ID: t.ID, CreatedBy: t.CreatedBy, OperationID: t.OperationID}, policy.KindTask) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		Time:        t.Time,
		OperationID: t.OperationID,
		Completed:   t.Completed,
		Priority:    t.Priority,
		Profile:     t.Profile,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}
}
