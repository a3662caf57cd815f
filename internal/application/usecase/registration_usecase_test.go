package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/application/usecase"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	actorID   = "00000000-0000-0000-0000-0000000000aa"
	actorName = "maria"
	productID = "00000000-0000-0000-0000-0000000000p1"
	storeID   = "00000000-0000-0000-0000-0000000000s1"
)

func newRegFixture() (*fakeRegistrationRepo, *fakeAuditRepo, *fakeStoreRepo) {
	audits := &fakeAuditRepo{}
	regs := &fakeRegistrationRepo{
		audits: audits,
		knownProducts: map[string]*entity.Product{
			productID: {ID: productID, Code: "1001", Description: "Banana Prata", Unit: "kg"},
		},
		knownStores: map[string]*entity.Store{
			storeID: {ID: storeID, Name: "Loja 1", CreatedAt: time.Now()},
		},
	}
	stores := &fakeStoreRepo{stores: []*entity.Store{{ID: storeID, Name: "Loja 1"}}}
	return regs, audits, stores
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterBlind
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterBlind_CreaRegistroConSnapshotDelActor(t *testing.T) {
	regs, _, stores := newRegFixture()
	uc := usecase.NewRegistrationUseCase(regs, stores)

	out, err := uc.RegisterBlind(actorID, actorName, dto.RegisterBlindRequest{
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, actorID, out.RegisteredBy)
	assert.Equal(t, actorName, out.RegisteredByName,
		"el username se guarda como snapshot para la atribución histórica")
	assert.False(t, out.CreatedAt.IsZero(), "el timestamp lo pone el servidor")
	require.Len(t, regs.registrations, 1)
}

func TestRegisterBlind_CantidadNegativa_NoCreaFila(t *testing.T) {
	regs, _, stores := newRegFixture()
	uc := usecase.NewRegistrationUseCase(regs, stores)

	_, err := uc.RegisterBlind(actorID, actorName, dto.RegisterBlindRequest{
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  decimal.NewFromInt(-5),
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
	assert.Empty(t, regs.registrations, "el rechazo no debe dejar fila alguna")
}

func TestRegisterBlind_CantidadCero_EsValida(t *testing.T) {
	regs, _, stores := newRegFixture()
	uc := usecase.NewRegistrationUseCase(regs, stores)

	out, err := uc.RegisterBlind(actorID, actorName, dto.RegisterBlindRequest{
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, out.Quantity.IsZero())
}

func TestRegisterBlind_ProductoInexistente_RetornaNotFound(t *testing.T) {
	regs, _, stores := newRegFixture()
	uc := usecase.NewRegistrationUseCase(regs, stores)

	_, err := uc.RegisterBlind(actorID, actorName, dto.RegisterBlindRequest{
		ProductID: "00000000-0000-0000-0000-0000000000ff",
		StoreID:   storeID,
		Quantity:  decimal.NewFromInt(3),
	})
	assert.Equal(t, domain.ErrNotFound, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListUnaudited — el estado se deriva de la existencia de auditoría
// ──────────────────────────────────────────────────────────────────────────────

func TestListUnaudited_ExcluyeAuditados(t *testing.T) {
	regs, audits, stores := newRegFixture()
	uc := usecase.NewRegistrationUseCase(regs, stores)
	auditUC := usecase.NewAuditUseCase(audits, regs)

	first, err := uc.RegisterBlind(actorID, actorName, dto.RegisterBlindRequest{
		ProductID: productID, StoreID: storeID, Quantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	_, err = uc.RegisterBlind(actorID, actorName, dto.RegisterBlindRequest{
		ProductID: productID, StoreID: storeID, Quantity: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	_, err = auditUC.Audit("auditor-1", "jose", dto.AuditRequest{
		RegistrationID: first.ID,
		ActualQuantity: decimal.NewFromInt(9),
	})
	require.NoError(t, err)

	out, err := uc.ListUnaudited()
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "el registro auditado debe desaparecer de los pendientes")
	assert.Equal(t, "Banana Prata", out.Items[0].ProductDescription)
	assert.Equal(t, "Loja 1", out.Items[0].StoreName)
	assert.Equal(t, actorName, out.Items[0].RegisteredByName)
}

func TestListStores(t *testing.T) {
	regs, _, stores := newRegFixture()
	uc := usecase.NewRegistrationUseCase(regs, stores)

	out, err := uc.ListStores()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Loja 1", out.Items[0].Name)
}
