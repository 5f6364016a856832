package reports

import (
	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
)

// SpreadsheetService geração e leitura de planilhas .xlsx.
type SpreadsheetService interface {
	// BuildProductTemplate planilha modelo com linhas de exemplo para importação.
	BuildProductTemplate() ([]byte, error)
	// ExportProducts planilha com o catálogo ativo.
	ExportProducts(products []*entity.Product) ([]byte, error)
	// ParseProducts lê a planilha de importação e devolve os cadastros das
	// linhas válidas. Linha malformada não aborta a leitura: sai na lista de
	// falhas, uma mensagem por linha.
	ParseProducts(data []byte) ([]dto.CreateProductRequest, []string, error)
	// ExportSalesReport planilha com o histórico de vendas.
	ExportSalesReport(sales []*entity.Sale) ([]byte, error)
}
