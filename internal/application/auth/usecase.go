package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/domain"
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/repository"
	"github.com/tu-usuario/gestion-ops/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens. RememberExpMinutes aplica
// cuando el login pide sesión persistente; el contenido del token es idéntico.
type JWTConfig struct {
	Secret             string
	ExpMinutes         int
	RememberExpMinutes int
	Issuer             string
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt, deriva los permisos
// iniciales del rol y emite un token de sesión normal.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
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
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.TokenEpoch, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Login verifica email/password y emite un JWT. El mismo error cubre email
// inexistente y password incorrecto para no revelar si la cuenta existe.
// RememberMe solo cambia la duración del token.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	now := time.Now()
	user.LastLogin = &now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	expMinutes := uc.jwtCfg.ExpMinutes
	if in.RememberMe {
		expMinutes = uc.jwtCfg.RememberExpMinutes
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.TokenEpoch, uc.jwtCfg.Issuer, expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// ToUserResponse mapea la entidad al DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	assigned := u.Permissions.AssignedOperations
	if assigned == nil {
		assigned = []string{}
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Permissions: dto.PermissionsDTO{
			CanViewFinance:       u.Permissions.CanViewFinance,
			CanEditOperations:    u.Permissions.CanEditOperations,
			CanManageUsers:       u.Permissions.CanManageUsers,
			CanAccessAllProjects: u.Permissions.CanAccessAllProjects,
			AssignedOperations:   assigned,
		},
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
