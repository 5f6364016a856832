package sales

import (
	"context"
	"time"

	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// CheckoutUseCase protocolo de commit da venda: converte o carrinho
// finalizado em estado durável.
type CheckoutUseCase struct {
	tx SaleTxRunner
}

// NewCheckoutUseCase constrói o caso de uso.
func NewCheckoutUseCase(tx SaleTxRunner) *CheckoutUseCase {
	return &CheckoutUseCase{tx: tx}
}

// Commit persiste a venda em uma transação única: um insert em sales, um
// insert em sale_items por linha e um desconto de estoque por linha.
// Qualquer falha aborta tudo; o carrinho em memória fica intocado para que o
// operador possa tentar o commit de novo. O limite de crédito do cliente não
// é consultado aqui: a checagem é consultiva, nunca bloqueia a venda.
func (uc *CheckoutUseCase) Commit(ctx context.Context, cart *Cart, operatorID int64, method entity.PaymentMethod) (int64, error) {
	if cart.Empty() {
		return 0, domain.ErrEmptyCart
	}
	if operatorID <= 0 {
		return 0, domain.ErrInvalidInput
	}

	total := cart.Total()
	var saleID int64
	err := uc.tx.RunSale(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		sale := &entity.Sale{
			CustomerID:    cart.CustomerID(),
			OperatorID:    operatorID,
			Total:         total,
			PaymentMethod: method,
			Status:        entity.SaleCompleted,
			SoldAt:        time.Now(),
		}
		id, err := saleRepo.Create(sale)
		if err != nil {
			return err
		}
		saleID = id
		for _, line := range cart.Lines() {
			item := &entity.SaleItem{
				SaleID:    id,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Subtotal:  line.Subtotal,
			}
			if _, err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			if err := productRepo.DecrementStock(line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saleID, nil
}
