package usecase

import (
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	"github.com/tu-usuario/gestion-ops/internal/domain/policy"
	"github.com/tu-usuario/gestion-ops/internal/domain/repository"
)

// scopeFor resuelve el alcance de lectura del usuario. Con acceso global no
// hay consulta; en caso contrario se cargan las operaciones propias para
// unirlas a las asignadas.
func scopeFor(u *entity.User, opRepo repository.OperationRepository) (policy.Scope, error) {
	if u.Permissions.CanAccessAllProjects {
		return policy.ListScope(u, nil), nil
	}
	owned, err := opRepo.ListIDsByOwner(u.ID)
	if err != nil {
		return policy.Scope{}, err
	}
	return policy.ListScope(u, owned), nil
}
