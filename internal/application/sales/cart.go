package sales

import (
	"github.com/shopspring/decimal"

	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
)

// CartLine linha pendente do carrinho. Preço é um snapshot do momento em que
// o produto foi adicionado; nunca é relido no commit.
type CartLine struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Cart coleção mutável em memória dos itens da venda em andamento.
// No máximo uma linha por produto: adições repetidas são mescladas.
type Cart struct {
	lines      []CartLine
	customerID *int64
}

// NewCart cria o carrinho vazio do início da venda.
func NewCart() *Cart {
	return &Cart{}
}

// Add valida a quantidade contra o snapshot de estoque do produto e mescla
// com a linha existente, se houver. A quantidade mesclada é comparada ao
// estoque lido agora; não há revalidação no commit.
func (c *Cart) Add(product *entity.Product, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	merged := quantity
	for _, l := range c.lines {
		if l.ProductID == product.ID {
			merged += l.Quantity
			break
		}
	}
	if merged > product.Stock {
		return domain.ErrOutOfStock
	}
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity = merged
			c.lines[i].Subtotal = c.lines[i].UnitPrice.Mul(decimal.NewFromInt(int64(merged)))
			return nil
		}
	}
	price := product.SalePrice
	c.lines = append(c.lines, CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   price,
		Subtotal:    price.Mul(decimal.NewFromInt(int64(quantity))),
	})
	return nil
}

// Remove descarta a linha na posição index (base zero).
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.lines) {
		return domain.ErrItemIndex
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Total soma dos subtotais. Puro, sem efeito colateral.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

// Lines devolve uma cópia das linhas na ordem de inserção.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty indica carrinho sem itens.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear esvazia o carrinho (após commit ou cancelamento).
func (c *Cart) Clear() {
	c.lines = nil
	c.customerID = nil
}

// SetCustomer vincula (nil desvincula) o cliente da venda.
func (c *Cart) SetCustomer(id *int64) {
	c.customerID = id
}

// CustomerID cliente vinculado, ou nil.
func (c *Cart) CustomerID() *int64 {
	return c.customerID
}
