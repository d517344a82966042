package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleGestor      = "gestor"
	RoleColaborador = "colaborador"
)

// Permissions banderas de acceso del usuario. AssignedOperations amplía el
// alcance de un no-admin más allá de lo que él mismo creó.
type Permissions struct {
	CanViewFinance       bool
	CanEditOperations    bool
	CanManageUsers       bool
	CanAccessAllProjects bool
	AssignedOperations   []string
}

// DefaultPermissions devuelve las banderas iniciales según el rol.
func DefaultPermissions(role string) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{
			CanViewFinance:       true,
			CanEditOperations:    true,
			CanManageUsers:       true,
			CanAccessAllProjects: true,
			AssignedOperations:   []string{},
		}
	case RoleGestor:
		return Permissions{
			CanViewFinance:     true,
			CanEditOperations:  true,
			AssignedOperations: []string{},
		}
	default:
		return Permissions{AssignedOperations: []string{}}
	}
}

// User representa un usuario del sistema.
// TokenEpoch se incrementa al cambiar permisos o password: los tokens emitidos
// con un epoch anterior dejan de ser válidos de inmediato.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, gestor, colaborador
	Permissions  Permissions
	TokenEpoch   int
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// HasAssignedOperation indica si el id está en la lista de operaciones asignadas.
func (u *User) HasAssignedOperation(operationID string) bool {
	for _, id := range u.Permissions.AssignedOperations {
		if id == operationID {
			return true
		}
	}
	return false
}

// ValidRole valida el rol contra el catálogo.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleGestor, RoleColaborador:
		return true
	}
	return false
}
