package repository

import "github.com/barcaexpert/pdv-api/internal/domain/entity"

// ProductRepository porta de persistência de produtos.
// Todas as leituras filtram active = true explicitamente.
type ProductRepository interface {
	Create(product *entity.Product) (int64, error)
	GetByID(id int64) (*entity.Product, error)
	// GetByCode busca por ID numérico ou código de barras com estoque > 0
	// (atalho usado na venda, espelha a consulta do terminal).
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// SoftDelete marca active = false; nunca remove a linha.
	SoftDelete(id int64) error
	List() ([]*entity.Product, error)
	// DecrementStock desconta estoque sem revalidar (a validação acontece ao
	// adicionar no carrinho; ver protocolo de commit).
	DecrementStock(productID int64, quantity int) error
	ListLowStock() ([]*entity.Product, error)
}
