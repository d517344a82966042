package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-ops/internal/application/dto"
	"github.com/tu-usuario/gestion-ops/internal/application/usecase"
	"github.com/tu-usuario/gestion-ops/internal/domain"
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
)

func sampleExpense(id, owner, operationID string) *entity.Expense {
	return &entity.Expense{
		ID:          id,
		Value:       decimal.NewFromInt(100),
		Date:        time.Now(),
		Category:    entity.ExpenseCategoryInfra,
		OperationID: operationID,
		Profile:     "pj",
		CreatedBy:   owner,
		CreatedAt:   time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// List — compuerta de finanzas
// ──────────────────────────────────────────────────────────────────────────────

// Sin canViewFinance el listado completo se niega, sin importar la propiedad.
func TestExpenseList_SinCanViewFinance_Forbidden(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newMemExpenseRepo(), newMemOperationRepo())
	colab := colaboradorUser("colab-1")

	_, err := uc.List(colab, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// canAccessAllProjects no sustituye la compuerta de finanzas.
func TestExpenseList_AccesoGlobalSinFinanzas_Forbidden(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newMemExpenseRepo(), newMemOperationRepo())
	colab := colaboradorUser("colab-1")
	colab.Permissions.CanAccessAllProjects = true

	_, err := uc.List(colab, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestExpenseList_GestorVeLoPropio(t *testing.T) {
	repo := newMemExpenseRepo(
		sampleExpense("e-propia", "gestor-1", ""),
		sampleExpense("e-ajena", "gestor-2", ""),
	)
	uc := usecase.NewExpenseUseCase(repo, newMemOperationRepo())

	out, err := uc.List(gestorUser("gestor-1"), "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "e-propia", out[0].ID)
}

// Un gasto ligado a una operación asignada entra en el alcance aunque lo haya
// creado otro usuario.
func TestExpenseList_OperacionAsignadaAmpliaAlcance(t *testing.T) {
	repo := newMemExpenseRepo(sampleExpense("e-1", "gestor-2", "op-compartida"))
	uc := usecase.NewExpenseUseCase(repo, newMemOperationRepo())

	gestor := gestorUser("gestor-1")
	gestor.Permissions.AssignedOperations = []string{"op-compartida"}

	out, err := uc.List(gestor, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "e-1", out[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseCreate_OwnerForzado(t *testing.T) {
	repo := newMemExpenseRepo()
	uc := usecase.NewExpenseUseCase(repo, newMemOperationRepo())

	out, err := uc.Create(colaboradorUser("colab-1"), dto.CreateExpenseRequest{
		Value: decimal.NewFromFloat(49.90), Date: time.Now(), Category: "ferramentas", Profile: "pj",
	})
	require.NoError(t, err)
	assert.Equal(t, "colab-1", out.CreatedBy)
}

func TestExpenseCreate_ValorNegativo_Validacion(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newMemExpenseRepo(), newMemOperationRepo())

	_, err := uc.Create(gestorUser("g1"), dto.CreateExpenseRequest{
		Value: decimal.NewFromInt(-10), Date: time.Now(), Category: "infra", Profile: "pf",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseUpdate_NoOwner_Forbidden(t *testing.T) {
	repo := newMemExpenseRepo(sampleExpense("e-1", "gestor-1", ""))
	uc := usecase.NewExpenseUseCase(repo, newMemOperationRepo())

	v := decimal.NewFromInt(1)
	_, err := uc.Update(gestorUser("gestor-2"), "e-1", dto.UpdateExpenseRequest{Value: &v})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// La asignación de operaciones NO amplía la mutación de gastos: solo aplica a
// las operaciones mismas.
func TestExpenseUpdate_OperacionAsignadaNoPermiteMutar(t *testing.T) {
	repo := newMemExpenseRepo(sampleExpense("e-1", "gestor-2", "op-compartida"))
	uc := usecase.NewExpenseUseCase(repo, newMemOperationRepo())

	gestor := gestorUser("gestor-1")
	gestor.Permissions.AssignedOperations = []string{"op-compartida"}

	v := decimal.NewFromInt(1)
	_, err := uc.Update(gestor, "e-1", dto.UpdateExpenseRequest{Value: &v})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestExpenseUpdate_AdminPuedeTodo(t *testing.T) {
	repo := newMemExpenseRepo(sampleExpense("e-1", "gestor-1", ""))
	uc := usecase.NewExpenseUseCase(repo, newMemOperationRepo())

	desc := "ajustado por admin"
	out, err := uc.Update(adminUser(), "e-1", dto.UpdateExpenseRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "ajustado por admin", out.Description)
}

func TestExpenseDelete_IdInexistente_NotFound(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newMemExpenseRepo(), newMemOperationRepo())

	err := uc.Delete(adminUser(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseDelete_Owner_Borra(t *testing.T) {
	repo := newMemExpenseRepo(sampleExpense("e-1", "colab-1", ""))
	uc := usecase.NewExpenseUseCase(repo, newMemOperationRepo())

	require.NoError(t, uc.Delete(colaboradorUser("colab-1"), "e-1"))
	e, _ := repo.GetByID("e-1")
	assert.Nil(t, e)
}
