package sales

import (
	"context"

	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// ReceiptUseCase artefatos de uma venda concluída: comprovante em PDF e cupom
// eletrônico simplificado em XML com código de verificação.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	pdf         ReceiptPDFGenerator
	coupon      CouponBuilder
}

// NewReceiptUseCase constrói o caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, pdf ReceiptPDFGenerator, coupon CouponBuilder) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, productRepo: productRepo, pdf: pdf, coupon: coupon}
}

// ReceiptPDF gera o comprovante em PDF da venda.
func (uc *ReceiptUseCase) ReceiptPDF(ctx context.Context, saleID int64) ([]byte, error) {
	sale, items, err := uc.load(saleID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateReceiptPDF(ctx, sale, items)
}

// CouponXML gera o cupom eletrônico (XML) e o código de verificação.
func (uc *ReceiptUseCase) CouponXML(ctx context.Context, saleID int64) ([]byte, string, error) {
	sale, items, err := uc.load(saleID)
	if err != nil {
		return nil, "", err
	}
	products := make(map[int64]*entity.Product, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, "", err
		}
		// Produto pode ter sido desativado após a venda; o cupom sai com os
		// dados fiscais em branco nesse caso.
		if p != nil {
			products[item.ProductID] = p
		}
	}
	return uc.coupon.Build(sale, items, products)
}

func (uc *ReceiptUseCase) load(saleID int64) (*entity.Sale, []*entity.SaleItem, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, nil, err
	}
	if sale == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySale(saleID)
	if err != nil {
		return nil, nil, err
	}
	return sale, items, nil
}
