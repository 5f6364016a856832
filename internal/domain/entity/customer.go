package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa um cliente com limite de crédito para vendas fiado.
// Exclusão é lógica e fica bloqueada enquanto houver vendas em aberto.
type Customer struct {
	ID          int64
	Name        string
	Phone       string
	Email       string
	Address     string
	TaxID       string // CPF ou CNPJ
	CreditLimit decimal.Decimal
	Active      bool
	CreatedAt   time.Time
}
