package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrInvalidQuantity      = errors.New("quantidade deve ser maior que zero")
	ErrOutOfStock           = errors.New("quantidade indisponível em estoque")
	ErrItemIndex            = errors.New("item do carrinho inexistente")
	ErrEmptyCart            = errors.New("carrinho vazio")
	ErrNoActiveSale         = errors.New("nenhuma venda em andamento")
	ErrCustomerHasOpenSales = errors.New("cliente possui vendas em aberto")
)
