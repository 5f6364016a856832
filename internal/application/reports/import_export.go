package reports

import (
	"github.com/barcaexpert/pdv-api/internal/application/usecase"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// ImportExportUseCase importação e exportação de dados via planilha, como o
// menu importar/exportar do terminal.
type ImportExportUseCase struct {
	productUC    *usecase.ProductUseCase
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	saleRepo     repository.SaleRepository
	sheet        SpreadsheetService
}

// NewImportExportUseCase constrói o caso de uso.
func NewImportExportUseCase(productUC *usecase.ProductUseCase, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, saleRepo repository.SaleRepository, sheet SpreadsheetService) *ImportExportUseCase {
	return &ImportExportUseCase{productUC: productUC, productRepo: productRepo, categoryRepo: categoryRepo, saleRepo: saleRepo, sheet: sheet}
}

// ImportResult resumo de uma importação de produtos.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// ProductTemplate planilha modelo para importação.
func (uc *ImportExportUseCase) ProductTemplate() ([]byte, error) {
	return uc.sheet.BuildProductTemplate()
}

// ExportProducts catálogo ativo em .xlsx.
func (uc *ImportExportUseCase) ExportProducts() ([]byte, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.sheet.ExportProducts(products)
}

// ImportProducts cadastra cada linha válida da planilha. Linha inválida não
// aborta a importação: entra no resumo de falhas, seja na leitura, seja no
// cadastro. Linha sem categoria recebe a categoria padrão Diversos.
func (uc *ImportExportUseCase) ImportProducts(data []byte) (*ImportResult, error) {
	rows, parseErrs, err := uc.sheet.ParseProducts(data)
	if err != nil {
		return nil, err
	}
	result := &ImportResult{
		Failed: len(parseErrs),
		Errors: parseErrs,
	}
	fallback := uc.fallbackCategoryID()
	for _, row := range rows {
		if row.CategoryID == 0 && fallback != 0 {
			row.CategoryID = fallback
		}
		if _, err := uc.productUC.Create(row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, row.Name+": "+err.Error())
			continue
		}
		result.Imported++
	}
	return result, nil
}

// fallbackCategoryID id da categoria Diversos (semeada no bootstrap); zero
// quando ausente, e a linha sem categoria falha na validação do cadastro.
func (uc *ImportExportUseCase) fallbackCategoryID() int64 {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return 0
	}
	for _, c := range categories {
		if c.Name == defaultCategoryName {
			return c.ID
		}
	}
	return 0
}

const defaultCategoryName = "Diversos"

// ExportSalesReport histórico recente de vendas em .xlsx.
func (uc *ImportExportUseCase) ExportSalesReport() ([]byte, error) {
	salesList, err := uc.saleRepo.ListRecent(salesReportLimit)
	if err != nil {
		return nil, err
	}
	return uc.sheet.ExportSalesReport(salesList)
}

const salesReportLimit = 500
