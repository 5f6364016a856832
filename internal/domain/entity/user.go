package entity

import "time"

// Papéis de usuário do terminal.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleVendedor = "vendedor"
)

// User operador do terminal (login local).
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	Role         string
	Active       bool
	CreatedAt    time.Time
}

// CanSell indica se o papel autoriza registrar vendas.
func (u *User) CanSell() bool {
	switch u.Role {
	case RoleAdmin, RoleOperador, RoleVendedor:
		return true
	}
	return false
}
