// Package policy centraliza el predicado de autorización por recurso.
//
// Reglas:
//   - Lectura en lista: canAccessAllProjects ve todo; el resto ve lo propio
//     más lo ligado a operaciones accesibles (propias o asignadas).
//   - Creación: cualquier usuario autenticado; el owner se fija en el servidor.
//   - Update/Delete: admin, owner, o (solo operaciones) operación asignada.
//   - Gastos: listar exige canViewFinance además del alcance.
//   - Operaciones: cualquier mutación exige canEditOperations.
//
// Las funciones son puras: reciben el usuario ya resuelto por el middleware de
// auth y los metadatos del registro ya cargado; no hacen I/O.
package policy

import "github.com/tu-usuario/gestion-ops/internal/domain/entity"

// Kind identifica el tipo de recurso sobre el que se decide.
type Kind string

const (
	KindOperation Kind = "operation"
	KindExpense   Kind = "expense"
	KindTask      Kind = "task"
	KindClient    Kind = "client"
	KindTaxonomy  Kind = "taxonomy"
)

// RecordMeta metadatos mínimos de un registro para decidir acceso.
type RecordMeta struct {
	ID          string
	CreatedBy   string
	OperationID string // vacío si el registro no referencia una operación
}

// Scope describe el subconjunto de registros que un usuario puede listar.
// Si All es true, OwnerID y OperationIDs no aplican.
type Scope struct {
	All          bool
	OwnerID      string
	OperationIDs []string // operaciones accesibles: propias ∪ asignadas
}

// ListScope calcula el alcance de lectura del usuario. ownedOperationIDs son
// las operaciones creadas por el usuario, ya consultadas por el caso de uso.
func ListScope(u *entity.User, ownedOperationIDs []string) Scope {
	if u.Permissions.CanAccessAllProjects {
		return Scope{All: true}
	}
	ids := make([]string, 0, len(ownedOperationIDs)+len(u.Permissions.AssignedOperations))
	ids = append(ids, ownedOperationIDs...)
	for _, id := range u.Permissions.AssignedOperations {
		if !contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return Scope{OwnerID: u.ID, OperationIDs: ids}
}

// CanList indica si el usuario puede siquiera pedir el listado del recurso.
// Solo los gastos tienen una compuerta adicional (canViewFinance); el alcance
// por propiedad se aplica después vía ListScope.
func CanList(u *entity.User, kind Kind) bool {
	if kind == KindExpense {
		return u.Permissions.CanViewFinance
	}
	return true
}

// CanCreate indica si el usuario puede crear un registro del tipo dado.
func CanCreate(u *entity.User, kind Kind) bool {
	switch kind {
	case KindOperation:
		return u.Permissions.CanEditOperations
	case KindTaxonomy:
		return u.Role == entity.RoleAdmin
	default:
		return true
	}
}

// CanMutate decide update/delete sobre un registro ya cargado.
func CanMutate(u *entity.User, rec RecordMeta, kind Kind) bool {
	if kind == KindOperation && !u.Permissions.CanEditOperations {
		return false
	}
	if u.Role == entity.RoleAdmin {
		return true
	}
	if rec.CreatedBy == u.ID {
		return true
	}
	if kind == KindOperation && u.HasAssignedOperation(rec.ID) {
		return true
	}
	return false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
