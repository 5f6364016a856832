package dto

import "github.com/shopspring/decimal"

// AddItemRequest adicionar produto ao carrinho. Code aceita o ID numérico ou
// o código de barras lido no leitor.
type AddItemRequest struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// SetCustomerRequest vincular (ou desvincular, com null) cliente à venda.
type SetCustomerRequest struct {
	CustomerID *int64 `json:"customer_id"`
}

// CommitSaleRequest finalizar a venda em andamento.
type CommitSaleRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// CartLineResponse linha do carrinho em andamento.
type CartLineResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse estado do carrinho (peek).
type CartResponse struct {
	SessionID  string             `json:"session_id"`
	CustomerID *int64             `json:"customer_id,omitempty"`
	Lines      []CartLineResponse `json:"lines"`
	Total      decimal.Decimal    `json:"total"`
}

// SaleResponse venda persistida.
type SaleResponse struct {
	ID            int64              `json:"id"`
	CustomerID    *int64             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	OperatorID    int64              `json:"operator_id"`
	OperatorName  string             `json:"operator_name,omitempty"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	SoldAt        string             `json:"sold_at"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// SaleItemResponse linha persistida de uma venda.
type SaleItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CommitSaleResponse resultado do commit.
type CommitSaleResponse struct {
	SaleID int64           `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
}
