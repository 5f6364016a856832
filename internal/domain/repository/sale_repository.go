package repository

import (
	"github.com/shopspring/decimal"

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
)

// SaleRepository porta de persistência de vendas e itens.
// CreateItem nunca é chamado fora do protocolo de commit.
type SaleRepository interface {
	Create(sale *entity.Sale) (int64, error)
	CreateItem(item *entity.SaleItem) (int64, error)
	GetByID(id int64) (*entity.Sale, error)
	GetItemsBySale(saleID int64) ([]*entity.SaleItem, error)
	// ListRecent histórico com nomes de cliente e operador, mais novas primeiro.
	ListRecent(limit int) ([]*entity.Sale, error)

	// Razão de crédito: vendas fiado concluídas do cliente.
	SumOnAccountByCustomer(customerID int64) (decimal.Decimal, error)
	ListOnAccountByCustomer(customerID int64) ([]*entity.Sale, error)
	CountOnAccountByCustomer(customerID int64) (int, error)
	// ListOnAccount todas as vendas em aberto (relatório fiado).
	ListOnAccount() ([]*entity.Sale, error)
}
