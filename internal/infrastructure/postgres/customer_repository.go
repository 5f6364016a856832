package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, phone, email, address, tax_id, credit_limit, active, created_at`

// CustomerRepo implementação de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um cliente novo e devolve o id gerado.
func (r *CustomerRepo) Create(c *entity.Customer) (int64, error) {
	query := `
		INSERT INTO customers (name, phone, email, address, tax_id, credit_limit, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		c.Name, nullIfEmpty(c.Phone), nullIfEmpty(c.Email), nullIfEmpty(c.Address),
		nullIfEmpty(c.TaxID), c.CreditLimit, c.Active, c.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// GetByID obtém um cliente ativo.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND active = TRUE`
	var c entity.Customer
	var phone, email, address, taxID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &phone, &email, &address, &taxID, &c.CreditLimit, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Phone = derefStr(phone)
	c.Email = derefStr(email)
	c.Address = derefStr(address)
	c.TaxID = derefStr(taxID)
	return &c, nil
}

// Update atualiza o cadastro do cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5, credit_limit = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.Phone), nullIfEmpty(c.Email), nullIfEmpty(c.Address), c.CreditLimit,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// SoftDelete marca o cliente inativo. A checagem de vendas em aberto fica no
// caso de uso, não aqui.
func (r *CustomerRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete customer: %w", err)
	}
	return nil
}

// List clientes ativos ordenados por nome.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE active = TRUE ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var phone, email, address, taxID *string
		if err := rows.Scan(
			&c.ID, &c.Name, &phone, &email, &address, &taxID, &c.CreditLimit, &c.Active, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Phone = derefStr(phone)
		c.Email = derefStr(email)
		c.Address = derefStr(address)
		c.TaxID = derefStr(taxID)
		list = append(list, &c)
	}
	return list, rows.Err()
}
