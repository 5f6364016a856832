package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto da banca. Stock é decrementado a cada venda
// concluída; a exclusão é lógica (Active=false) para preservar o histórico.
type Product struct {
	ID          int64
	Barcode     string // código de barras, único quando presente
	Name        string
	Description string
	CategoryID  int64
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	Stock       int
	MinStock    int
	TaxCode     string // NCM
	TaxSubCode  string // CEST
	Unit        string // UN, PCT, CX...
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica se o produto está no limite mínimo de estoque.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
