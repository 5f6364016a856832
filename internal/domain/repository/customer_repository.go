package repository

import "github.com/barcaexpert/pdv-api/internal/domain/entity"

// CustomerRepository porta de persistência de clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) (int64, error)
	GetByID(id int64) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	SoftDelete(id int64) error
	List() ([]*entity.Customer, error)
}
