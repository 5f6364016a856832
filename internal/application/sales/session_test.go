package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcaexpert/pdv-api/internal/application/sales"
	"github.com/barcaexpert/pdv-api/internal/domain"
)

func newSession(store *fakeStore) *sales.SessionUseCase {
	checkout := sales.NewCheckoutUseCase(&fakeTxRunner{store: store})
	return sales.NewSessionUseCase(
		&fakeProductRepo{store: store},
		&fakeCustomerRepo{store: store},
		checkout,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo da sessão
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_SemVendaAberta(t *testing.T) {
	uc := newSession(newFakeStore())

	assert.ErrorIs(t, uc.AddItem("1", 1), domain.ErrNoActiveSale)
	assert.ErrorIs(t, uc.RemoveItem(0), domain.ErrNoActiveSale)
	assert.ErrorIs(t, uc.SetCustomer(nil), domain.ErrNoActiveSale)
	assert.ErrorIs(t, uc.Cancel(), domain.ErrNoActiveSale)

	_, _, _, _, err := uc.Peek()
	assert.ErrorIs(t, err, domain.ErrNoActiveSale)

	_, _, err = uc.Commit(context.Background(), 1, "dinheiro")
	assert.ErrorIs(t, err, domain.ErrNoActiveSale)
}

func TestSession_Begin_SubstituiVendaAbandonada(t *testing.T) {
	store := newFakeStore()
	store.addProduct(1, "Revista", "8.00", 10)
	uc := newSession(store)

	first := uc.Begin()
	require.NoError(t, uc.AddItem("1", 2))

	second := uc.Begin()
	assert.NotEqual(t, first, second, "cada venda tem um token próprio")

	sessionID, _, lines, total, err := uc.Peek()
	require.NoError(t, err)
	assert.Equal(t, second, sessionID)
	assert.Empty(t, lines, "o carrinho da venda abandonada é descartado")
	assert.True(t, total.IsZero())
}

func TestSession_AddItem_PorIDOuBarras(t *testing.T) {
	store := newFakeStore()
	p := store.addProduct(1, "Refrigerante", "4.50", 10)
	p.Barcode = "7891000100103"
	uc := newSession(store)
	uc.Begin()

	require.NoError(t, uc.AddItem("1", 1))
	require.NoError(t, uc.AddItem("7891000100103", 2))

	_, _, lines, total, err := uc.Peek()
	require.NoError(t, err)
	require.Len(t, lines, 1, "ID e código de barras resolvem o mesmo produto")
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, total.Equal(decimal.RequireFromString("13.50")))
}

func TestSession_AddItem_ProdutoDesconhecido(t *testing.T) {
	uc := newSession(newFakeStore())
	uc.Begin()

	assert.ErrorIs(t, uc.AddItem("999", 1), domain.ErrNotFound)
}

func TestSession_SetCustomer_ValidaClienteAtivo(t *testing.T) {
	store := newFakeStore()
	store.addCustomer(3, "João", "100.00")
	uc := newSession(store)
	uc.Begin()

	id := int64(3)
	require.NoError(t, uc.SetCustomer(&id))

	_, customerID, _, _, err := uc.Peek()
	require.NoError(t, err)
	require.NotNil(t, customerID)
	assert.Equal(t, id, *customerID)

	// Cliente inexistente é recusado; o vínculo anterior permanece.
	missing := int64(99)
	assert.ErrorIs(t, uc.SetCustomer(&missing), domain.ErrNotFound)

	// nil desvincula.
	require.NoError(t, uc.SetCustomer(nil))
	_, customerID, _, _, _ = uc.Peek()
	assert.Nil(t, customerID)
}

func TestSession_Commit_EncerraASessao(t *testing.T) {
	store := newFakeStore()
	store.addProduct(1, "Revista", "8.00", 10)
	uc := newSession(store)
	uc.Begin()
	require.NoError(t, uc.AddItem("1", 2))

	saleID, total, err := uc.Commit(context.Background(), 1, "pix")
	require.NoError(t, err)
	assert.NotZero(t, saleID)
	assert.True(t, total.Equal(decimal.RequireFromString("16.00")))

	_, _, _, _, err = uc.Peek()
	assert.ErrorIs(t, err, domain.ErrNoActiveSale, "após o commit não há venda em andamento")
}

// Forma de pagamento não reconhecida cai em dinheiro; não é erro.
func TestSession_Commit_FormaDePagamentoDesconhecida(t *testing.T) {
	store := newFakeStore()
	store.addProduct(1, "Doce", "3.00", 10)
	uc := newSession(store)
	uc.Begin()
	require.NoError(t, uc.AddItem("1", 1))

	saleID, _, err := uc.Commit(context.Background(), 1, "cheque")
	require.NoError(t, err)
	assert.Equal(t, "dinheiro", string(store.sales[saleID].PaymentMethod))
}

func TestSession_Commit_FalhaMantemASessao(t *testing.T) {
	store := newFakeStore()
	store.addProduct(1, "Revista", "8.00", 10)
	store.failDecrementOn = 1
	uc := newSession(store)
	uc.Begin()
	require.NoError(t, uc.AddItem("1", 1))

	_, _, err := uc.Commit(context.Background(), 1, "dinheiro")
	require.Error(t, err)

	_, _, lines, _, peekErr := uc.Peek()
	require.NoError(t, peekErr, "a sessão sobrevive à falha de persistência")
	assert.Len(t, lines, 1, "carrinho intocado para retry")
}

func TestSession_Cancel_DescartaSemTocarNoBanco(t *testing.T) {
	store := newFakeStore()
	store.addProduct(1, "Revista", "8.00", 10)
	uc := newSession(store)
	uc.Begin()
	require.NoError(t, uc.AddItem("1", 3))

	require.NoError(t, uc.Cancel())

	assert.Empty(t, store.sales, "cancelamento não persiste nada")
	assert.Equal(t, 10, store.products[1].Stock, "estoque intacto")

	_, _, _, _, err := uc.Peek()
	assert.ErrorIs(t, err, domain.ErrNoActiveSale)
}
