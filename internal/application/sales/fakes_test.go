package sales_test

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/barcaexpert/pdv-api/internal/application/sales"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado compartilhado entre os repositórios fake, com cópia e
// restauração para emular o rollback da transação.
type fakeStore struct {
	products  map[int64]*entity.Product
	sales     map[int64]*entity.Sale
	items     []*entity.SaleItem
	customers map[int64]*entity.Customer

	nextSaleID int64
	nextItemID int64

	// failDecrementOn provoca erro ao descontar estoque do produto dado,
	// para exercitar falha no meio do commit.
	failDecrementOn int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:   map[int64]*entity.Product{},
		sales:      map[int64]*entity.Sale{},
		customers:  map[int64]*entity.Customer{},
		nextSaleID: 1,
		nextItemID: 1,
	}
}

func (s *fakeStore) addProduct(id int64, name string, price string, stock int) *entity.Product {
	p := &entity.Product{
		ID:        id,
		Name:      name,
		SalePrice: decimal.RequireFromString(price),
		Stock:     stock,
		Unit:      "UN",
		Active:    true,
	}
	s.products[id] = p
	return p
}

func (s *fakeStore) addCustomer(id int64, name string, limit string) *entity.Customer {
	c := &entity.Customer{
		ID:          id,
		Name:        name,
		CreditLimit: decimal.RequireFromString(limit),
		Active:      true,
	}
	s.customers[id] = c
	return c
}

// snapshot copia o estado durável (produtos, vendas, itens).
func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	cp.nextSaleID = s.nextSaleID
	cp.nextItemID = s.nextItemID
	for id, p := range s.products {
		c := *p
		cp.products[id] = &c
	}
	for id, v := range s.sales {
		c := *v
		cp.sales[id] = &c
	}
	for _, it := range s.items {
		c := *it
		cp.items = append(cp.items, &c)
	}
	cp.customers = s.customers
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.sales = from.sales
	s.items = from.items
	s.nextSaleID = from.nextSaleID
	s.nextItemID = from.nextItemID
}

// ── fakeProductRepo ───────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) (int64, error) { return p.ID, nil }

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok || !p.Active {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	id, err := strconv.ParseInt(code, 10, 64)
	if err == nil {
		if p, ok := r.store.products[id]; ok && p.Active && p.Stock > 0 {
			c := *p
			return &c, nil
		}
	}
	for _, p := range r.store.products {
		if p.Barcode == code && p.Active && p.Stock > 0 {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.store.products[p.ID] = p; return nil }

func (r *fakeProductRepo) SoftDelete(id int64) error {
	if p, ok := r.store.products[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) DecrementStock(productID int64, quantity int) error {
	if r.store.failDecrementOn == productID {
		return errBoom
	}
	p, ok := r.store.products[productID]
	if !ok {
		return errBoom
	}
	p.Stock -= quantity
	return nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.Active && p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	return out, nil
}

// ── fakeSaleRepo ──────────────────────────────────────────────────────────────

type fakeSaleRepo struct{ store *fakeStore }

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(sale *entity.Sale) (int64, error) {
	id := r.store.nextSaleID
	r.store.nextSaleID++
	c := *sale
	c.ID = id
	r.store.sales[id] = &c
	return id, nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) (int64, error) {
	id := r.store.nextItemID
	r.store.nextItemID++
	c := *item
	c.ID = id
	r.store.items = append(r.store.items, &c)
	return id, nil
}

func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	v, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	c := *v
	return &c, nil
}

func (r *fakeSaleRepo) GetItemsBySale(saleID int64) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.store.items {
		if it.SaleID == saleID {
			c := *it
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, v := range r.store.sales {
		out = append(out, v)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) SumOnAccountByCustomer(customerID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.store.sales {
		if v.OnAccount() && v.CustomerID != nil && *v.CustomerID == customerID {
			total = total.Add(v.Total)
		}
	}
	return total, nil
}

func (r *fakeSaleRepo) ListOnAccountByCustomer(customerID int64) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, v := range r.store.sales {
		if v.OnAccount() && v.CustomerID != nil && *v.CustomerID == customerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) CountOnAccountByCustomer(customerID int64) (int, error) {
	list, _ := r.ListOnAccountByCustomer(customerID)
	return len(list), nil
}

func (r *fakeSaleRepo) ListOnAccount() ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, v := range r.store.sales {
		if v.OnAccount() {
			out = append(out, v)
		}
	}
	return out, nil
}

// ── fakeCustomerRepo ──────────────────────────────────────────────────────────

type fakeCustomerRepo struct{ store *fakeStore }

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) Create(c *entity.Customer) (int64, error) { return c.ID, nil }

func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, ok := r.store.customers[id]
	if !ok || !c.Active {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.store.customers[c.ID] = c; return nil }

func (r *fakeCustomerRepo) SoftDelete(id int64) error {
	if c, ok := r.store.customers[id]; ok {
		c.Active = false
	}
	return nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.store.customers {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

// ── fakeTxRunner ──────────────────────────────────────────────────────────────

// fakeTxRunner emula a transação: em erro, o estado volta ao snapshot.
type fakeTxRunner struct{ store *fakeStore }

var _ sales.SaleTxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) RunSale(_ context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	before := t.store.snapshot()
	err := fn(&fakeSaleRepo{store: t.store}, &fakeProductRepo{store: t.store})
	if err != nil {
		t.store.restore(before)
		return err
	}
	return nil
}

var errBoom = errFake("falha simulada de persistência")

type errFake string

func (e errFake) Error() string { return string(e) }
