package sales

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// SessionUseCase fluxo da venda em andamento. O terminal é mono-operador:
// existe no máximo um carrinho por processo, e Begin descarta qualquer venda
// abandonada. O mutex existe porque a superfície HTTP pode entregar
// requisições concorrentes mesmo com um único operador.
type SessionUseCase struct {
	mu        sync.Mutex
	cart      *Cart
	sessionID string

	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	checkout     *CheckoutUseCase
}

// NewSessionUseCase constrói o fluxo de venda.
func NewSessionUseCase(productRepo repository.ProductRepository, customerRepo repository.CustomerRepository, checkout *CheckoutUseCase) *SessionUseCase {
	return &SessionUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		checkout:     checkout,
	}
}

// Begin abre uma venda nova com carrinho vazio e devolve o token da sessão.
// Uma venda em andamento é simplesmente substituída.
func (uc *SessionUseCase) Begin() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.cart = NewCart()
	uc.sessionID = uuid.New().String()
	return uc.sessionID
}

// AddItem busca o produto ativo por ID ou código de barras (estoque lido
// neste momento) e adiciona ao carrinho com o snapshot de preço.
func (uc *SessionUseCase) AddItem(code string, quantity int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cart == nil {
		return domain.ErrNoActiveSale
	}
	product, err := uc.productRepo.GetByCode(code)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.cart.Add(product, quantity)
}

// RemoveItem descarta a linha index do carrinho.
func (uc *SessionUseCase) RemoveItem(index int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cart == nil {
		return domain.ErrNoActiveSale
	}
	return uc.cart.Remove(index)
}

// SetCustomer vincula o cliente à venda (nil desvincula). O cliente precisa
// existir e estar ativo; o limite de crédito não é checado aqui.
func (uc *SessionUseCase) SetCustomer(customerID *int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cart == nil {
		return domain.ErrNoActiveSale
	}
	if customerID != nil {
		customer, err := uc.customerRepo.GetByID(*customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
	}
	uc.cart.SetCustomer(customerID)
	return nil
}

// Peek devolve as linhas e o total da venda em andamento.
func (uc *SessionUseCase) Peek() (string, *int64, []CartLine, decimal.Decimal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cart == nil {
		return "", nil, nil, decimal.Zero, domain.ErrNoActiveSale
	}
	return uc.sessionID, uc.cart.CustomerID(), uc.cart.Lines(), uc.cart.Total(), nil
}

// Commit delega ao protocolo de commit e, em caso de sucesso, encerra a
// sessão. Em falha de persistência o carrinho fica intocado para retry.
func (uc *SessionUseCase) Commit(ctx context.Context, operatorID int64, paymentMethod string) (int64, decimal.Decimal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cart == nil {
		return 0, decimal.Zero, domain.ErrNoActiveSale
	}
	method := entity.ParsePaymentMethod(paymentMethod)
	total := uc.cart.Total()
	saleID, err := uc.checkout.Commit(ctx, uc.cart, operatorID, method)
	if err != nil {
		return 0, decimal.Zero, err
	}
	uc.cart.Clear()
	uc.cart = nil
	uc.sessionID = ""
	return saleID, total, nil
}

// Cancel descarta a venda em andamento sem tocar no banco.
func (uc *SessionUseCase) Cancel() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cart == nil {
		return domain.ErrNoActiveSale
	}
	uc.cart.Clear()
	uc.cart = nil
	uc.sessionID = ""
	return nil
}
