package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/internal/domain"
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
)

func buildOperationUC(opRepo *memOperationRepo, expRepo *memExpenseRepo, taskRepo *memTaskRepo, clientRepo *memClientRepo) *usecase.OperationUseCase {
	if expRepo == nil {
		expRepo = newMemExpenseRepo()
	}
	if taskRepo == nil {
		taskRepo = newMemTaskRepo()
	}
	if clientRepo == nil {
		clientRepo = newMemClientRepo()
	}
	return usecase.NewOperationUseCase(opRepo, expRepo, taskRepo, clientRepo)
}

func sampleOperation(id, owner, profile string) *entity.Operation {
	return &entity.Operation{
		ID:        id,
		Name:      "Operación " + id,
		Type:      entity.OperationTypeSaaS,
		Status:    entity.OperationStatusExecucao,
		Profile:   profile,
		CreatedBy: owner,
		CreatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// El owner es siempre el usuario autenticado, no lo que diga el payload.
func TestOperationCreate_OwnerForzadoAlCaller(t *testing.T) {
	repo := newMemOperationRepo()
	uc := buildOperationUC(repo, nil, nil, nil)
	gestor := gestorUser("gestor-1")

	out, err := uc.Create(gestor, dto.CreateOperationRequest{
		Name: "Mi SaaS", Type: "saas", Status: "planejamento", Profile: "pj",
	})
	require.NoError(t, err)

	assert.Equal(t, "gestor-1", out.CreatedBy)
	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "gestor-1", stored.CreatedBy)
}

func TestOperationCreate_SinCanEditOperations_Forbidden(t *testing.T) {
	repo := newMemOperationRepo()
	uc := buildOperationUC(repo, nil, nil, nil)
	colab := colaboradorUser("colab-1")

	_, err := uc.Create(colab, dto.CreateOperationRequest{
		Name: "Intento", Type: "saas", Status: "planejamento", Profile: "pj",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOperationCreate_TipoInvalido_Validacion(t *testing.T) {
	repo := newMemOperationRepo()
	uc := buildOperationUC(repo, nil, nil, nil)

	_, err := uc.Create(gestorUser("g1"), dto.CreateOperationRequest{
		Name: "X", Type: "franquicia", Status: "planejamento", Profile: "pj",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestOperationList_AdminVeTodo(t *testing.T) {
	repo := newMemOperationRepo(
		sampleOperation("op-1", "gestor-1", "pj"),
		sampleOperation("op-2", "gestor-2", "pf"),
	)
	uc := buildOperationUC(repo, nil, nil, nil)

	out, err := uc.List(adminUser(), "")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestOperationList_GestorSoloVeLoPropioYAsignado(t *testing.T) {
	repo := newMemOperationRepo(
		sampleOperation("op-propia", "gestor-1", "pj"),
		sampleOperation("op-ajena", "gestor-2", "pj"),
		sampleOperation("op-asignada", "gestor-2", "pj"),
	)
	uc := buildOperationUC(repo, nil, nil, nil)

	gestor := gestorUser("gestor-1")
	gestor.Permissions.AssignedOperations = []string{"op-asignada"}

	out, err := uc.List(gestor, "")
	require.NoError(t, err)
	require.Len(t, out, 2)

	ids := []string{out[0].ID, out[1].ID}
	assert.Contains(t, ids, "op-propia")
	assert.Contains(t, ids, "op-asignada")
	assert.NotContains(t, ids, "op-ajena")
}

func TestOperationList_FiltraPorPerfil(t *testing.T) {
	repo := newMemOperationRepo(
		sampleOperation("op-pf", "gestor-1", "pf"),
		sampleOperation("op-pj", "gestor-1", "pj"),
	)
	uc := buildOperationUC(repo, nil, nil, nil)

	out, err := uc.List(gestorUser("gestor-1"), "pf")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "op-pf", out[0].ID)
}

func TestOperationList_PerfilInvalido_Validacion(t *testing.T) {
	uc := buildOperationUC(newMemOperationRepo(), nil, nil, nil)

	_, err := uc.List(adminUser(), "empresa")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Un id inexistente responde NotFound antes de evaluar el permiso.
func TestOperationUpdate_IdInexistente_NotFoundAntesQuePermiso(t *testing.T) {
	uc := buildOperationUC(newMemOperationRepo(), nil, nil, nil)
	colab := colaboradorUser("colab-1")

	name := "Nuevo nombre"
	_, err := uc.Update(colab, "no-existe", dto.UpdateOperationRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOperationUpdate_NoOwnerSinAsignacion_Forbidden(t *testing.T) {
	repo := newMemOperationRepo(sampleOperation("op-1", "gestor-1", "pj"))
	uc := buildOperationUC(repo, nil, nil, nil)

	name := "Robada"
	_, err := uc.Update(gestorUser("gestor-2"), "op-1", dto.UpdateOperationRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Una operación asignada amplía el permiso de mutación aunque no sea propia.
func TestOperationUpdate_AsignadaConCanEdit_Permitido(t *testing.T) {
	repo := newMemOperationRepo(sampleOperation("op-1", "gestor-1", "pj"))
	uc := buildOperationUC(repo, nil, nil, nil)

	gestor2 := gestorUser("gestor-2")
	gestor2.Permissions.AssignedOperations = []string{"op-1"}

	status := "finalizado"
	out, err := uc.Update(gestor2, "op-1", dto.UpdateOperationRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "finalizado", out.Status)
}

// El merge parcial solo toca los campos presentes.
func TestOperationUpdate_MergeParcial(t *testing.T) {
	op := sampleOperation("op-1", "gestor-1", "pj")
	op.Notes = "notas originales"
	repo := newMemOperationRepo(op)
	uc := buildOperationUC(repo, nil, nil, nil)

	name := "Renombrada"
	out, err := uc.Update(gestorUser("gestor-1"), "op-1", dto.UpdateOperationRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renombrada", out.Name)
	assert.Equal(t, "notas originales", out.Notes, "los campos ausentes no deben cambiar")
	assert.Equal(t, "execucao", out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete y cascade-null
// ──────────────────────────────────────────────────────────────────────────────

func TestOperationDelete_AnulaReferenciasDependientes(t *testing.T) {
	opRepo := newMemOperationRepo(sampleOperation("op-1", "gestor-1", "pj"))
	expRepo := newMemExpenseRepo(&entity.Expense{ID: "e1", OperationID: "op-1", CreatedBy: "gestor-1", Profile: "pj"})
	taskRepo := newMemTaskRepo(&entity.Task{ID: "t1", OperationID: "op-1", CreatedBy: "gestor-1", Profile: "pj"})
	clientRepo := newMemClientRepo(&entity.Client{ID: "c1", OperationID: "op-1", CreatedBy: "gestor-1", Profile: "pj"})
	uc := buildOperationUC(opRepo, expRepo, taskRepo, clientRepo)

	require.NoError(t, uc.Delete(gestorUser("gestor-1"), "op-1"))

	e, _ := expRepo.GetByID("e1")
	tk, _ := taskRepo.GetByID("t1")
	cl, _ := clientRepo.GetByID("c1")
	assert.Empty(t, e.OperationID, "el gasto debe quedar sin referencia")
	assert.Empty(t, tk.OperationID, "la tarea debe quedar sin referencia")
	assert.Empty(t, cl.OperationID, "el cliente debe quedar sin referencia")
}

// Delete no es idempotente: el segundo intento responde NotFound.
func TestOperationDelete_SegundoDelete_NotFound(t *testing.T) {
	opRepo := newMemOperationRepo(sampleOperation("op-1", "gestor-1", "pj"))
	uc := buildOperationUC(opRepo, nil, nil, nil)
	gestor := gestorUser("gestor-1")

	require.NoError(t, uc.Delete(gestor, "op-1"))
	assert.ErrorIs(t, uc.Delete(gestor, "op-1"), domain.ErrNotFound)
}
