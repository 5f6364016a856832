package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação de SaleRepository sobre PostgreSQL (usável com pool
// ou tx; dentro do protocolo de commit sempre vem atado à transação).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste o cabeçalho da venda e devolve o id gerado.
func (r *SaleRepo) Create(s *entity.Sale) (int64, error) {
	query := `
		INSERT INTO sales (customer_id, operator_id, total, payment_method, status, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		s.CustomerID, s.OperatorID, s.Total, string(s.PaymentMethod), string(s.Status), s.SoldAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return id, nil
}

// CreateItem persiste uma linha da venda.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) (int64, error) {
	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale item: %w", err)
	}
	return id, nil
}

// GetByID obtém uma venda com nomes de cliente e operador.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := saleSelect + ` WHERE s.id = $1`
	rows, err := r.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	defer rows.Close()
	list, err := scanSales(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// GetItemsBySale linhas de uma venda com o nome do produto.
func (r *SaleRepo) GetItemsBySale(saleID int64) ([]*entity.SaleItem, error) {
	query := `
		SELECT i.id, i.sale_id, i.product_id, i.quantity, i.unit_price, i.subtotal, p.name
		FROM sale_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal, &item.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// ListRecent histórico, mais novas primeiro. Cliente ausente sai como vazio
// (LEFT JOIN), nunca como erro.
func (r *SaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	query := saleSelect + ` ORDER BY s.sold_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// SumOnAccountByCustomer soma do total fiado concluído do cliente; zero
// quando não há vendas.
func (r *SaleRepo) SumOnAccountByCustomer(customerID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE customer_id = $1 AND payment_method = 'fiado' AND status = 'concluida'`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, customerID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum on-account sales: %w", err)
	}
	return total, nil
}

// ListOnAccountByCustomer vendas fiado concluídas do cliente, ascendente por data.
func (r *SaleRepo) ListOnAccountByCustomer(customerID int64) ([]*entity.Sale, error) {
	query := saleSelect + `
		WHERE s.customer_id = $1 AND s.payment_method = 'fiado' AND s.status = 'concluida'
		ORDER BY s.sold_at`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list on-account sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// CountOnAccountByCustomer usado para bloquear a exclusão de cliente.
func (r *SaleRepo) CountOnAccountByCustomer(customerID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sales
		WHERE customer_id = $1 AND payment_method = 'fiado' AND status = 'concluida'`
	var n int
	if err := r.q.QueryRow(context.Background(), query, customerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count on-account sales: %w", err)
	}
	return n, nil
}

// ListOnAccount todas as vendas fiado em aberto, ascendente por data.
func (r *SaleRepo) ListOnAccount() ([]*entity.Sale, error) {
	query := saleSelect + `
		WHERE s.payment_method = 'fiado' AND s.status = 'concluida'
		ORDER BY s.sold_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list on-account sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

const saleSelect = `
	SELECT s.id, s.customer_id, s.operator_id, s.total, s.payment_method, s.status, s.sold_at,
	       COALESCE(c.name, ''), COALESCE(u.name, '')
	FROM sales s
	LEFT JOIN customers c ON c.id = s.customer_id
	LEFT JOIN users u ON u.id = s.operator_id`

func scanSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var method, status string
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.OperatorID, &s.Total, &method, &status, &s.SoldAt, &s.CustomerName, &s.OperatorName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.PaymentMethod = entity.PaymentMethod(method)
		s.Status = entity.SaleStatus(status)
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
