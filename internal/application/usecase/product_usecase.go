package usecase

import (
	"strings"
	"time"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
	"github.com/barcaexpert/pdv-api/pkg/normalize"
)

// ProductUseCase CRUD de produtos. Estoque só muda por edição explícita ou
// pelo desconto do commit de venda; exclusão é sempre lógica.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cadastra um produto novo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Unit == "" {
		in.Unit = "UN"
	}
	now := time.Now()
	product := &entity.Product{
		Barcode:     in.Barcode,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		CostPrice:   in.CostPrice,
		SalePrice:   in.SalePrice,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		TaxCode:     in.TaxCode,
		TaxSubCode:  in.TaxSubCode,
		Unit:        in.Unit,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := uc.repo.Create(product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// GetByID obtém um produto ativo.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update edição parcial: campos nulos mantêm o valor atual.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.TaxCode != nil {
		product.TaxCode = *in.TaxCode
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete exclusão lógica: marca inativo, preserva o histórico de vendas.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

// List produtos ativos; query opcional filtra por nome sem diferenciar
// acentos (ajuda de busca do terminal).
func (uc *ProductUseCase) List(query string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	q := normalize.Fold(strings.TrimSpace(query))
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(normalize.Fold(p.Name), q) {
			continue
		}
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		CostPrice:   p.CostPrice,
		SalePrice:   p.SalePrice,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		TaxCode:     p.TaxCode,
		TaxSubCode:  p.TaxSubCode,
		Unit:        p.Unit,
		LowStock:    p.LowStock(),
	}
}
