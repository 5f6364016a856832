package repository

import "github.com/barcaexpert/pdv-api/internal/domain/entity"

// UserRepository porta de persistência de operadores.
type UserRepository interface {
	Create(user *entity.User) (int64, error)
	GetByID(id int64) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}
