package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository constrói o adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste uma categoria e devolve o id gerado.
func (r *CategoryRepo) Create(c *entity.Category) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO categories (name, description, active) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.Description, c.Active,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

// GetByID obtém uma categoria ativa.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, active FROM categories WHERE id = $1 AND active = TRUE`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List categorias ativas ordenadas por nome.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, active FROM categories WHERE active = TRUE ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SoftDelete marca a categoria inativa.
func (r *CategoryRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete category: %w", err)
	}
	return nil
}
