package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// Tamanho do histórico exibido no terminal.
const recentSalesLimit = 50

// ReportUseCase relatórios do balcão: histórico de vendas, fiado em aberto e
// situação do estoque.
type ReportUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, productRepo: productRepo, categoryRepo: categoryRepo}
}

// SalesHistory últimas vendas, mais novas primeiro, com nomes de cliente e
// operador (cliente ausente sai vazio, não é erro).
func (uc *ReportUseCase) SalesHistory() ([]dto.SaleResponse, error) {
	salesList, err := uc.saleRepo.ListRecent(recentSalesLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(salesList))
	for _, s := range salesList {
		out = append(out, *ToSaleResponse(s, nil))
	}
	return out, nil
}

// SaleDetail venda com itens (consulta pós-commit).
func (uc *ReportUseCase) SaleDetail(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	items, err := uc.saleRepo.GetItemsBySale(id)
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale, items), nil
}

// OpenSales vendas fiado em aberto de todos os clientes, ascendente por
// data, com o total devido.
func (uc *ReportUseCase) OpenSales() (*dto.OpenSalesReport, error) {
	open, err := uc.saleRepo.ListOnAccount()
	if err != nil {
		return nil, err
	}
	report := &dto.OpenSalesReport{
		Sales: make([]dto.SaleResponse, 0, len(open)),
		Total: decimal.Zero,
	}
	for _, s := range open {
		report.Sales = append(report.Sales, *ToSaleResponse(s, nil))
		report.Total = report.Total.Add(s.Total)
	}
	return report, nil
}

// StockReport produtos no limite mínimo + resumo de estoque por categoria.
func (uc *ReportUseCase) StockReport() (*dto.StockReport, error) {
	low, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	report := &dto.StockReport{LowStock: make([]dto.ProductResponse, 0, len(low))}
	for _, p := range low {
		report.LowStock = append(report.LowStock, *toProductResponse(p))
	}

	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	byCategory := make(map[int64]*dto.CategoryStock, len(categories))
	for _, c := range categories {
		cs := &dto.CategoryStock{Category: c.Name}
		byCategory[c.ID] = cs
	}
	for _, p := range products {
		cs, ok := byCategory[p.CategoryID]
		if !ok {
			continue
		}
		cs.Products++
		cs.TotalStock += p.Stock
	}
	for _, c := range categories {
		report.ByCategory = append(report.ByCategory, *byCategory[c.ID])
	}
	return report, nil
}
