package dto

import "github.com/shopspring/decimal"

// CreateProductRequest cadastro de produto.
type CreateProductRequest struct {
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"category_id"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	TaxCode     string          `json:"tax_code"`
	TaxSubCode  string          `json:"tax_sub_code"`
	Unit        string          `json:"unit"`
}

// UpdateProductRequest edição parcial: campos nulos mantêm o valor atual.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	CategoryID  *int64           `json:"category_id"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Stock       *int             `json:"stock"`
	MinStock    *int             `json:"min_stock"`
	TaxCode     *string          `json:"tax_code"`
}

// ProductResponse representação de produto nas respostas.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Barcode     string          `json:"barcode,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  int64           `json:"category_id"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	TaxCode     string          `json:"tax_code,omitempty"`
	TaxSubCode  string          `json:"tax_sub_code,omitempty"`
	Unit        string          `json:"unit"`
	LowStock    bool            `json:"low_stock"`
}
