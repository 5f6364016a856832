package fiscal_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/infrastructure/fiscal"
)

func vendaExemplo() (*entity.Sale, []*entity.SaleItem, map[int64]*entity.Product) {
	sale := &entity.Sale{
		ID:            42,
		OperatorID:    1,
		Total:         decimal.RequireFromString("19.00"),
		PaymentMethod: entity.PaymentCash,
		Status:        entity.SaleCompleted,
		SoldAt:        time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
		CustomerName:  "Maria",
	}
	items := []*entity.SaleItem{
		{ID: 1, SaleID: 42, ProductID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("8.00"), Subtotal: decimal.RequireFromString("16.00"), ProductName: "Revista"},
		{ID: 2, SaleID: 42, ProductID: 9, Quantity: 1, UnitPrice: decimal.RequireFromString("3.00"), Subtotal: decimal.RequireFromString("3.00"), ProductName: "Doce"},
	}
	products := map[int64]*entity.Product{
		7: {ID: 7, Name: "Revista", TaxCode: "4902.10.00", TaxSubCode: "28.064.00", Unit: "UN"},
		9: {ID: 9, Name: "Doce", Unit: "UN"},
	}
	return sale, items, products
}

func TestCupomBuilder_Build_ConteudoDoXML(t *testing.T) {
	builder := fiscal.NewCupomBuilder("Banca Teste")
	sale, items, products := vendaExemplo()

	xmlBytes, digest, err := builder.Build(sale, items, products)
	require.NoError(t, err)
	require.NotEmpty(t, xmlBytes)
	require.Len(t, digest, 64, "digest SHA-256 em hex tem 64 caracteres")

	out := string(xmlBytes)
	assert.Contains(t, out, "<Numero>42</Numero>")
	assert.Contains(t, out, "<FormaPagamento>dinheiro</FormaPagamento>")
	assert.Contains(t, out, "<Cliente>Maria</Cliente>")
	assert.Contains(t, out, "<NCM>4902.10.00</NCM>")
	assert.Contains(t, out, "<CEST>28.064.00</CEST>")
	assert.Contains(t, out, "<ValorTotal>19.00</ValorTotal>")
	assert.Contains(t, out, "<CodigoVerificacao>"+digest+"</CodigoVerificacao>")
}

// A mesma venda produz sempre o mesmo código de verificação.
func TestCupomBuilder_Build_DigestDeterministico(t *testing.T) {
	builder := fiscal.NewCupomBuilder("Banca Teste")
	sale, items, products := vendaExemplo()

	_, first, err := builder.Build(sale, items, products)
	require.NoError(t, err)
	_, second, err := builder.Build(sale, items, products)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCupomBuilder_Build_VendaDiferenteDigestDiferente(t *testing.T) {
	builder := fiscal.NewCupomBuilder("Banca Teste")
	sale, items, products := vendaExemplo()

	_, first, err := builder.Build(sale, items, products)
	require.NoError(t, err)

	sale.Total = decimal.RequireFromString("99.00")
	_, second, err := builder.Build(sale, items, products)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// Produto desativado após a venda: cupom sai sem os dados fiscais da linha.
func TestCupomBuilder_Build_ProdutoAusenteDoCatalogo(t *testing.T) {
	builder := fiscal.NewCupomBuilder("Banca Teste")
	sale, items, _ := vendaExemplo()

	xmlBytes, _, err := builder.Build(sale, items, map[int64]*entity.Product{})
	require.NoError(t, err)
	assert.NotContains(t, string(xmlBytes), "<NCM>")
}

func TestCupomBuilder_Build_VendaAusente(t *testing.T) {
	builder := fiscal.NewCupomBuilder("Banca Teste")
	_, _, err := builder.Build(nil, nil, nil)
	assert.Error(t, err)
}
