package dto

import "time"

// PermissionsDTO banderas de acceso en el wire (camelCase, contrato del frontend).
type PermissionsDTO struct {
	CanViewFinance       bool     `json:"canViewFinance"`
	CanEditOperations    bool     `json:"canEditOperations"`
	CanManageUsers       bool     `json:"canManageUsers"`
	CanAccessAllProjects bool     `json:"canAccessAllProjects"`
	AssignedOperations   []string `json:"assignedOperations"`
}

// RegisterRequest entrada para registro: name, email, password, role.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin gestor colaborador"`
}

// LoginRequest entrada para login. RememberMe alarga la vida del token.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Role        string         `json:"role"`
	Permissions PermissionsDTO `json:"permissions"`
	CreatedAt   time.Time      `json:"createdAt"`
	LastLogin   *time.Time     `json:"lastLogin,omitempty"`
}

// AuthResponse salida de registro y login: token + usuario.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest actualización parcial de un usuario (solo admin).
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// UpdatePermissionsRequest reemplazo del conjunto de permisos (solo admin).
type UpdatePermissionsRequest struct {
	CanViewFinance       *bool     `json:"canViewFinance"`
	CanEditOperations    *bool     `json:"canEditOperations"`
	CanManageUsers       *bool     `json:"canManageUsers"`
	CanAccessAllProjects *bool     `json:"canAccessAllProjects"`
	AssignedOperations   *[]string `json:"assignedOperations"`
}
