package sales

import (
	"context"

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// SaleTxRunner executa fn dentro de uma transação única: o insert da venda,
// os itens e os descontos de estoque persistem juntos ou nada persiste.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptPDFGenerator gera o comprovante em PDF de uma venda concluída.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, items []*entity.SaleItem) ([]byte, error)
}

// CouponBuilder gera o cupom eletrônico simplificado (XML + código de
// verificação sobre os bytes canônicos).
type CouponBuilder interface {
	Build(sale *entity.Sale, items []*entity.SaleItem, products map[int64]*entity.Product) (xml []byte, digest string, err error)
}
