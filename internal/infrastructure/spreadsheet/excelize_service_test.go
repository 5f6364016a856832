package spreadsheet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/barcaexpert/pdv-api/internal/infrastructure/spreadsheet"
)

// planilhaProdutos monta um .xlsx de importação em memória com o cabeçalho
// padrão e as linhas dadas.
func planilhaProdutos(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []any{
		"Codigo de Barras", "Nome", "Descricao", "Categoria ID",
		"Preco de Custo", "Preco de Venda", "Estoque", "Estoque Minimo",
		"NCM", "CEST", "Unidade",
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// Linha malformada não derruba a leitura: as válidas voltam e a falha sai na
// lista, com o número da linha.
func TestParseProducts_LinhaMalformadaNaoDerrubaAsValidas(t *testing.T) {
	data := planilhaProdutos(t, [][]any{
		{"", "Revista", "", 1, "5.00", "9.50", 10, 2, "", "", "UN"},
		{"", "Doce", "", 2, "abc", "3.00", 5, 1, "", "", "UN"},
		{"", "Jornal", "", 1, "2.00", "4.00", 20, 5, "", "", "UN"},
	})

	svc := spreadsheet.NewExcelizeService()
	rows, failures, err := svc.ParseProducts(data)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Revista", rows[0].Name)
	assert.Equal(t, "Jornal", rows[1].Name)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "linha 3")
	assert.Contains(t, failures[0], "preco de custo")
}

// Vírgula e ponto valem como separador decimal; linhas vazias são ignoradas.
func TestParseProducts_SeparadorDecimalELinhasVazias(t *testing.T) {
	data := planilhaProdutos(t, [][]any{
		{"", "Revista", "", 1, "5,50", "9.90", 10, 2, "", "", "UN"},
		{"", "", "", "", "", "", "", "", "", "", ""},
	})

	svc := spreadsheet.NewExcelizeService()
	rows, failures, err := svc.ParseProducts(data)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Empty(t, failures)
	assert.True(t, rows[0].CostPrice.Equal(decimal.RequireFromString("5.50")))
	assert.True(t, rows[0].SalePrice.Equal(decimal.RequireFromString("9.90")))
}

// A planilha modelo gerada é aceita pela própria importação.
func TestParseProducts_AceitaAPlanilhaModelo(t *testing.T) {
	svc := spreadsheet.NewExcelizeService()
	data, err := svc.BuildProductTemplate()
	require.NoError(t, err)

	rows, failures, err := svc.ParseProducts(data)
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, rows, 1)
	assert.Equal(t, "Revista Exemplo", rows[0].Name)
	assert.Equal(t, "7891234567890", rows[0].Barcode)
}
