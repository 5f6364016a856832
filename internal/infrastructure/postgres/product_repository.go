package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, barcode, name, description, category_id, cost_price, sale_price, stock, min_stock, tax_code, tax_sub_code, unit, active, created_at, updated_at`

// ProductRepo implementação de ProductRepository sobre PostgreSQL (usável com
// pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um produto novo e devolve o id gerado.
func (r *ProductRepo) Create(p *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (barcode, name, description, category_id, cost_price, sale_price, stock, min_stock, tax_code, tax_sub_code, unit, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		nullIfEmpty(p.Barcode), p.Name, p.Description, p.CategoryID,
		p.CostPrice, p.SalePrice, p.Stock, p.MinStock,
		nullIfEmpty(p.TaxCode), nullIfEmpty(p.TaxSubCode), p.Unit,
		p.Active, p.CreatedAt, p.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// GetByID obtém um produto ativo por id.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND active = TRUE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode busca por id numérico ou código de barras, ativo e com estoque,
// como a consulta de venda do terminal.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	id, _ := strconv.ParseInt(code, 10, 64)
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE (id = $1 OR barcode = $2) AND active = TRUE AND stock > 0`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, code))
}

// Update atualiza o cadastro (inclui estoque, para acerto manual).
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET barcode = $2, name = $3, description = $4, category_id = $5,
		    cost_price = $6, sale_price = $7, stock = $8, min_stock = $9,
		    tax_code = $10, tax_sub_code = $11, unit = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, nullIfEmpty(p.Barcode), p.Name, p.Description, p.CategoryID,
		p.CostPrice, p.SalePrice, p.Stock, p.MinStock,
		nullIfEmpty(p.TaxCode), nullIfEmpty(p.TaxSubCode), p.Unit, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete marca o produto inativo; a linha nunca é removida.
func (r *ProductRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// List produtos ativos ordenados por nome.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active = TRUE ORDER BY name`
	return r.scanMany(query)
}

// DecrementStock desconta estoque da linha. Chamado apenas dentro da
// transação de commit; não revalida o saldo (snapshot lido no carrinho).
func (r *ProductRepo) DecrementStock(productID int64, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}

// ListLowStock produtos ativos no limite mínimo, mais críticos primeiro.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE stock <= min_stock AND active = TRUE
		ORDER BY stock ASC`
	return r.scanMany(query)
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var barcode, taxCode, taxSubCode *string
	err := row.Scan(
		&p.ID, &barcode, &p.Name, &p.Description, &p.CategoryID,
		&p.CostPrice, &p.SalePrice, &p.Stock, &p.MinStock,
		&taxCode, &taxSubCode, &p.Unit, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Barcode = derefStr(barcode)
	p.TaxCode = derefStr(taxCode)
	p.TaxSubCode = derefStr(taxSubCode)
	return &p, nil
}

func (r *ProductRepo) scanMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var barcode, taxCode, taxSubCode *string
		if err := rows.Scan(
			&p.ID, &barcode, &p.Name, &p.Description, &p.CategoryID,
			&p.CostPrice, &p.SalePrice, &p.Stock, &p.MinStock,
			&taxCode, &taxSubCode, &p.Unit, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Barcode = derefStr(barcode)
		p.TaxCode = derefStr(taxCode)
		p.TaxSubCode = derefStr(taxSubCode)
		list = append(list, &p)
	}
	return list, rows.Err()
}
