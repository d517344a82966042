package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/gestion-ops/internal/application/auth"
	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/domain"
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/repository"
)

// UserUseCase administración de usuarios, solo admin (la ruta ya pasa por
// RequireAdmin; aquí se vuelve a verificar por si cambia el cableado).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(caller *entity.User, limit, offset int) ([]*dto.UserResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Create alta directa de un usuario por un admin. Igual que el registro
// público deriva los permisos iniciales del rol, pero no emite token: la
// persona invitada inicia sesión con sus propias credenciales.
func (uc *UserUseCase) Create(caller *entity.User, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Permissions:  entity.DefaultPermissions(in.Role),
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update actualización parcial de nombre, email o rol.
func (uc *UserUseCase) Update(caller *entity.User, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdatePermissions reemplaza las banderas presentes en la petición e
// incrementa TokenEpoch: los tokens emitidos antes del cambio quedan
// revocados de inmediato.
func (uc *UserUseCase) UpdatePermissions(caller *entity.User, id string, in dto.UpdatePermissionsRequest) (*dto.UserResponse, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.CanViewFinance != nil {
		user.Permissions.CanViewFinance = *in.CanViewFinance
	}
	if in.CanEditOperations != nil {
		user.Permissions.CanEditOperations = *in.CanEditOperations
	}
	if in.CanManageUsers != nil {
		user.Permissions.CanManageUsers = *in.CanManageUsers
	}
	if in.CanAccessAllProjects != nil {
		user.Permissions.CanAccessAllProjects = *in.CanAccessAllProjects
	}
	if in.AssignedOperations != nil {
		user.Permissions.AssignedOperations = *in.AssignedOperations
	}
	user.TokenEpoch++
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete borra un usuario. La sesión queda invalidada por ausencia: el
// middleware re-resuelve el usuario vivo en cada petición y responde 401.
func (uc *UserUseCase) Delete(caller *entity.User, id string) error {
	if caller.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
