package usecase

import (
	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// CategoryUseCase categorias de produto (seed inicial + manutenção).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create cadastra uma categoria.
func (uc *CategoryUseCase) Create(name, description string) (*entity.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{Name: name, Description: description, Active: true}
	id, err := uc.repo.Create(category)
	if err != nil {
		return nil, err
	}
	category.ID = id
	return category, nil
}

// List categorias ativas.
func (uc *CategoryUseCase) List() ([]*entity.Category, error) {
	return uc.repo.List()
}

// Delete exclusão lógica.
func (uc *CategoryUseCase) Delete(id int64) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}
