package sales

import (
	"github.com/shopspring/decimal"

	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// CreditLedger razão de crédito: saldo devedor e limite disponível dos
// clientes com vendas fiado. A checagem é consultiva — nada aqui bloqueia um
// commit, mesmo acima do limite.
type CreditLedger struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewCreditLedger constrói a razão de crédito.
func NewCreditLedger(saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository) *CreditLedger {
	return &CreditLedger{saleRepo: saleRepo, customerRepo: customerRepo}
}

// Outstanding soma do total das vendas fiado concluídas do cliente.
// Cliente sem vendas fiado devolve zero, não erro.
func (l *CreditLedger) Outstanding(customerID int64) (decimal.Decimal, error) {
	return l.saleRepo.SumOnAccountByCustomer(customerID)
}

// Available limite menos saldo devedor. Pode ser negativo: valores negativos
// são reportados, não truncados, para dar visibilidade de clientes estourados.
func (l *CreditLedger) Available(customerID int64) (decimal.Decimal, error) {
	customer, err := l.customerRepo.GetByID(customerID)
	if err != nil {
		return decimal.Zero, err
	}
	if customer == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	outstanding, err := l.Outstanding(customerID)
	if err != nil {
		return decimal.Zero, err
	}
	return customer.CreditLimit.Sub(outstanding), nil
}

// OpenSales vendas fiado concluídas do cliente, ascendente por data.
func (l *CreditLedger) OpenSales(customerID int64) ([]*entity.Sale, error) {
	return l.saleRepo.ListOnAccountByCustomer(customerID)
}

// HasOpenSales usado pela exclusão de cliente: com vendas em aberto a
// exclusão é recusada (separado da checagem de limite).
func (l *CreditLedger) HasOpenSales(customerID int64) (bool, error) {
	n, err := l.saleRepo.CountOnAccountByCustomer(customerID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
