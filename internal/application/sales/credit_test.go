package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcaexpert/pdv-api/internal/application/sales"
	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
)

// fiado registra uma venda fiado concluída direto no store.
func fiado(store *fakeStore, customerID int64, total string) {
	repo := &fakeSaleRepo{store: store}
	_, _ = repo.Create(&entity.Sale{
		CustomerID:    &customerID,
		OperatorID:    1,
		Total:         decimal.RequireFromString(total),
		PaymentMethod: entity.PaymentOnAccount,
		Status:        entity.SaleCompleted,
		SoldAt:        time.Now(),
	})
}

func TestCreditLedger_Outstanding_SemVendasEhZero(t *testing.T) {
	store := newFakeStore()
	store.addCustomer(1, "Maria", "100.00")
	ledger := sales.NewCreditLedger(&fakeSaleRepo{store: store}, &fakeCustomerRepo{store: store})

	out, err := ledger.Outstanding(1)
	require.NoError(t, err)
	assert.True(t, out.IsZero(), "cliente sem fiado deve zero, não erro")
}

func TestCreditLedger_Outstanding_SomaApenasFiadoDoCliente(t *testing.T) {
	store := newFakeStore()
	store.addCustomer(1, "Maria", "100.00")
	store.addCustomer(2, "José", "50.00")
	fiado(store, 1, "30.00")
	fiado(store, 1, "12.50")
	fiado(store, 2, "99.00")

	ledger := sales.NewCreditLedger(&fakeSaleRepo{store: store}, &fakeCustomerRepo{store: store})

	out, err := ledger.Outstanding(1)
	require.NoError(t, err)
	assert.True(t, out.Equal(decimal.RequireFromString("42.50")))
}

func TestCreditLedger_Available_LimiteMenosSaldo(t *testing.T) {
	store := newFakeStore()
	store.addCustomer(1, "Maria", "100.00")
	fiado(store, 1, "80.00")

	ledger := sales.NewCreditLedger(&fakeSaleRepo{store: store}, &fakeCustomerRepo{store: store})

	avail, err := ledger.Available(1)
	require.NoError(t, err)
	assert.True(t, avail.Equal(decimal.RequireFromString("20.00")))
}

// Disponível pode ficar negativo: o valor é reportado como está, sem truncar,
// para dar visibilidade de cliente estourado.
func TestCreditLedger_Available_PodeSerNegativo(t *testing.T) {
	store := newFakeStore()
	store.addCustomer(1, "Maria", "100.00")
	fiado(store, 1, "80.00")
	fiado(store, 1, "50.00")

	ledger := sales.NewCreditLedger(&fakeSaleRepo{store: store}, &fakeCustomerRepo{store: store})

	avail, err := ledger.Available(1)
	require.NoError(t, err)
	assert.True(t, avail.Equal(decimal.RequireFromString("-30.00")),
		"disponível = 100 - 130 = -30")
}

func TestCreditLedger_Available_ClienteInexistente(t *testing.T) {
	store := newFakeStore()
	ledger := sales.NewCreditLedger(&fakeSaleRepo{store: store}, &fakeCustomerRepo{store: store})

	_, err := ledger.Available(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreditLedger_HasOpenSales(t *testing.T) {
	store := newFakeStore()
	store.addCustomer(1, "Maria", "100.00")
	ledger := sales.NewCreditLedger(&fakeSaleRepo{store: store}, &fakeCustomerRepo{store: store})

	open, err := ledger.HasOpenSales(1)
	require.NoError(t, err)
	assert.False(t, open)

	fiado(store, 1, "10.00")

	open, err = ledger.HasOpenSales(1)
	require.NoError(t, err)
	assert.True(t, open)
}
