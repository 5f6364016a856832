// Package spreadsheet implementa a troca de dados em planilha .xlsx do menu
// importar/exportar do terminal.
package spreadsheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
)

const productSheet = "Produtos"
const salesSheet = "Vendas"

var productHeaders = []string{
	"Codigo de Barras", "Nome", "Descricao", "Categoria ID",
	"Preco de Custo", "Preco de Venda", "Estoque", "Estoque Minimo",
	"NCM", "CEST", "Unidade",
}

// ExcelizeService implementa reports.SpreadsheetService.
type ExcelizeService struct{}

// NewExcelizeService constrói o serviço.
func NewExcelizeService() *ExcelizeService { return &ExcelizeService{} }

// BuildProductTemplate planilha modelo com uma linha de exemplo.
func (s *ExcelizeService) BuildProductTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := prepareSheet(f, productSheet, productHeaders); err != nil {
		return nil, err
	}
	example := []any{
		"7891234567890", "Revista Exemplo", "Edicao mensal", 1,
		"5.00", "9.50", 10, 2, "4902.10.00", "28.064.00", "UN",
	}
	if err := f.SetSheetRow(productSheet, "A2", &example); err != nil {
		return nil, fmt.Errorf("planilha: linha exemplo: %w", err)
	}
	return writeBytes(f)
}

// ExportProducts planilha com o catálogo ativo.
func (s *ExcelizeService) ExportProducts(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := prepareSheet(f, productSheet, productHeaders); err != nil {
		return nil, err
	}
	for i, p := range products {
		row := []any{
			p.Barcode, p.Name, p.Description, p.CategoryID,
			p.CostPrice.StringFixed(2), p.SalePrice.StringFixed(2),
			p.Stock, p.MinStock, p.TaxCode, p.TaxSubCode, p.Unit,
		}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(productSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("planilha: linha %d: %w", i+2, err)
		}
	}
	return writeBytes(f)
}

// ParseProducts lê a planilha de importação. A primeira linha é cabeçalho;
// linhas totalmente vazias são ignoradas. Linha malformada entra na lista de
// falhas e a leitura segue para a próxima.
func (s *ExcelizeService) ParseProducts(data []byte) ([]dto.CreateProductRequest, []string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("planilha: abrir arquivo: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("planilha: ler linhas: %w", err)
	}

	var result []dto.CreateProductRequest
	var failures []string
	for i, row := range rows {
		if i == 0 || emptyRow(row) {
			continue
		}
		req, err := parseProductRow(row)
		if err != nil {
			failures = append(failures, fmt.Sprintf("linha %d: %v", i+1, err))
			continue
		}
		result = append(result, req)
	}
	return result, failures, nil
}

// ExportSalesReport planilha com o histórico de vendas.
func (s *ExcelizeService) ExportSalesReport(sales []*entity.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Venda", "Data", "Cliente", "Operador", "Forma de Pagamento", "Situacao", "Total"}
	if err := prepareSheet(f, salesSheet, headers); err != nil {
		return nil, err
	}
	for i, v := range sales {
		row := []any{
			v.ID, v.SoldAt.Format("02/01/2006 15:04"),
			v.CustomerName, v.OperatorName,
			string(v.PaymentMethod), string(v.Status),
			v.Total.StringFixed(2),
		}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(salesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("planilha: linha %d: %w", i+2, err)
		}
	}
	return writeBytes(f)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func prepareSheet(f *excelize.File, name string, headers []string) error {
	idx, err := f.NewSheet(name)
	if err != nil {
		return fmt.Errorf("planilha: criar aba: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("planilha: remover aba padrao: %w", err)
	}
	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &hdr); err != nil {
		return fmt.Errorf("planilha: cabecalho: %w", err)
	}
	return nil
}

func writeBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("planilha: gravar arquivo: %w", err)
	}
	return buf.Bytes(), nil
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseProductRow(row []string) (dto.CreateProductRequest, error) {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	var req dto.CreateProductRequest
	req.Barcode = get(0)
	req.Name = get(1)
	req.Description = get(2)
	req.TaxCode = get(8)
	req.TaxSubCode = get(9)
	req.Unit = get(10)

	if v := get(3); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("categoria invalida: %q", v)
		}
		req.CategoryID = id
	}
	var err error
	if req.CostPrice, err = parseDecimal(get(4)); err != nil {
		return req, fmt.Errorf("preco de custo invalido: %q", get(4))
	}
	if req.SalePrice, err = parseDecimal(get(5)); err != nil {
		return req, fmt.Errorf("preco de venda invalido: %q", get(5))
	}
	if v := get(6); v != "" {
		if req.Stock, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("estoque invalido: %q", v)
		}
	}
	if v := get(7); v != "" {
		if req.MinStock, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("estoque minimo invalido: %q", v)
		}
	}
	return req, nil
}

// parseDecimal aceita vírgula ou ponto como separador decimal.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}
