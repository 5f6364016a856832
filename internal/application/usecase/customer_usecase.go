package usecase

import (
	"strings"
	"time"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/application/sales"
	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
	"github.com/barcaexpert/pdv-api/pkg/normalize"
)

// CustomerUseCase CRUD de clientes e consulta de crédito. A exclusão é lógica
// e fica bloqueada enquanto o cliente tiver vendas fiado em aberto.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	ledger *sales.CreditLedger
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, ledger *sales.CreditLedger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, ledger: ledger}
}

// Create cadastra um cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CreditLimit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		TaxID:       in.TaxID,
		CreditLimit: in.CreditLimit,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	id, err := uc.repo.Create(customer)
	if err != nil {
		return nil, err
	}
	customer.ID = id
	return toCustomerResponse(customer), nil
}

// GetByID obtém um cliente ativo.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update edição parcial.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.CreditLimit != nil {
		if in.CreditLimit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		customer.CreditLimit = *in.CreditLimit
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete exclusão lógica, recusada com vendas fiado em aberto.
func (uc *CustomerUseCase) Delete(id int64) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	open, err := uc.ledger.HasOpenSales(id)
	if err != nil {
		return err
	}
	if open {
		return domain.ErrCustomerHasOpenSales
	}
	return uc.repo.SoftDelete(id)
}

// List clientes ativos, com filtro de nome sem diferenciar acentos.
func (uc *CustomerUseCase) List(query string) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	q := normalize.Fold(strings.TrimSpace(query))
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		if q != "" && !strings.Contains(normalize.Fold(c.Name), q) {
			continue
		}
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// CreditStatus situação de crédito: limite, saldo devedor, disponível (pode
// ser negativo) e vendas em aberto ascendente por data.
func (uc *CustomerUseCase) CreditStatus(id int64) (*dto.CreditStatusResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	outstanding, err := uc.ledger.Outstanding(id)
	if err != nil {
		return nil, err
	}
	open, err := uc.ledger.OpenSales(id)
	if err != nil {
		return nil, err
	}
	resp := &dto.CreditStatusResponse{
		Customer:    *toCustomerResponse(customer),
		Outstanding: outstanding,
		Available:   customer.CreditLimit.Sub(outstanding),
		OpenSales:   make([]dto.SaleResponse, 0, len(open)),
	}
	for _, s := range open {
		resp.OpenSales = append(resp.OpenSales, *ToSaleResponse(s, nil))
	}
	return resp, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		TaxID:       c.TaxID,
		CreditLimit: c.CreditLimit,
	}
}
