package dto

import "github.com/shopspring/decimal"

// OpenSalesReport vendas fiado em aberto com o total devido.
type OpenSalesReport struct {
	Sales []SaleResponse  `json:"sales"`
	Total decimal.Decimal `json:"total"`
}

// CategoryStock resumo de estoque por categoria.
type CategoryStock struct {
	Category   string `json:"category"`
	Products   int    `json:"products"`
	TotalStock int    `json:"total_stock"`
}

// StockReport produtos no limite mínimo + resumo por categoria.
type StockReport struct {
	LowStock   []ProductResponse `json:"low_stock"`
	ByCategory []CategoryStock   `json:"by_category"`
}
