package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste um operador e devolve o id gerado.
func (r *UserRepo) Create(u *entity.User) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash, name, role, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		u.Username, u.PasswordHash, u.Name, u.Role, u.Active, u.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// GetByID obtém um operador ativo.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.scanOne(`SELECT id, username, password_hash, name, role, active, created_at FROM users WHERE id = $1 AND active = TRUE`, id)
}

// FindByUsername busca por username (login).
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.scanOne(`SELECT id, username, password_hash, name, role, active, created_at FROM users WHERE username = $1`, username)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Role, &u.Active, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
