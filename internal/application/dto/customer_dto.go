package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest cadastro de cliente.
type CreateCustomerRequest struct {
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	TaxID       string          `json:"tax_id"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// UpdateCustomerRequest edição parcial.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name"`
	Phone       *string          `json:"phone"`
	Email       *string          `json:"email"`
	Address     *string          `json:"address"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
}

// CustomerResponse representação de cliente.
type CustomerResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone,omitempty"`
	Email       string          `json:"email,omitempty"`
	Address     string          `json:"address,omitempty"`
	TaxID       string          `json:"tax_id,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// CreditStatusResponse situação de crédito do cliente. Available pode ser
// negativo (cliente acima do limite) — exibido, nunca truncado.
type CreditStatusResponse struct {
	Customer    CustomerResponse `json:"customer"`
	Outstanding decimal.Decimal  `json:"outstanding"`
	Available   decimal.Decimal  `json:"available"`
	OpenSales   []SaleResponse   `json:"open_sales"`
}
