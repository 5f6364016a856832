package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod forma de pagamento, persistida com o valor literal.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "dinheiro"
	PaymentCredit    PaymentMethod = "credito"
	PaymentDebit     PaymentMethod = "debito"
	PaymentPix       PaymentMethod = "pix"
	PaymentOnAccount PaymentMethod = "fiado"
)

// ParsePaymentMethod converte a entrada do operador. Valores não reconhecidos
// caem em dinheiro — comportamento documentado, não é erro.
func ParsePaymentMethod(s string) PaymentMethod {
	switch PaymentMethod(s) {
	case PaymentCredit, PaymentDebit, PaymentPix, PaymentOnAccount:
		return PaymentMethod(s)
	default:
		return PaymentCash
	}
}

// SaleStatus situação da venda, persistida com o valor literal.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "concluida"
	SaleCanceled  SaleStatus = "cancelada"
	SalePending   SaleStatus = "pendente"
)

// Sale cabeçalho de uma venda concluída. Imutável após o commit.
type Sale struct {
	ID            int64
	CustomerID    *int64 // nulo para venda sem cliente vinculado
	OperatorID    int64
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	Status        SaleStatus
	SoldAt        time.Time

	// Campos de junção para listagens (podem estar vazios).
	CustomerName string
	OperatorName string
}

// OnAccount indica venda fiado (entra no saldo devedor do cliente).
func (s *Sale) OnAccount() bool {
	return s.PaymentMethod == PaymentOnAccount && s.Status == SaleCompleted
}

// SaleItem linha de uma venda. Criada somente dentro do commit.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal

	ProductName string // junção para exibição
}
