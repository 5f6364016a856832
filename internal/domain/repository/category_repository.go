package repository

import "github.com/barcaexpert/pdv-api/internal/domain/entity"

// CategoryRepository porta de persistência de categorias.
type CategoryRepository interface {
	Create(category *entity.Category) (int64, error)
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
	SoftDelete(id int64) error
}
