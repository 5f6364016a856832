package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'operador',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		barcode TEXT UNIQUE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category_id BIGINT REFERENCES categories(id),
		cost_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		sale_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		stock INTEGER NOT NULL DEFAULT 0,
		min_stock INTEGER NOT NULL DEFAULT 0,
		tax_code TEXT,
		tax_sub_code TEXT,
		unit TEXT NOT NULL DEFAULT 'UN',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		email TEXT,
		address TEXT,
		tax_id TEXT,
		credit_limit NUMERIC(12,2) NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT REFERENCES customers(id),
		operator_id BIGINT NOT NULL REFERENCES users(id),
		total NUMERIC(12,2) NOT NULL,
		payment_method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'concluida',
		sold_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		id BIGSERIAL PRIMARY KEY,
		sale_id BIGINT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL,
		unit_price NUMERIC(12,2) NOT NULL,
		subtotal NUMERIC(12,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items (sale_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_barcode ON products (barcode)`,
}

var defaultCategories = []string{
	"Revistas",
	"Doces",
	"Refrigerantes",
	"Cervejas",
	"Salgadinhos",
	"Tabaco",
	"Diversos",
}

// EnsureSchema cria as tabelas e os registros iniciais quando ausentes.
// É idempotente: pode rodar a cada inicialização do terminal.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, adminPassword string) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	if err := seedCategories(ctx, pool); err != nil {
		return err
	}
	return seedAdmin(ctx, pool, adminPassword)
}

func seedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range defaultCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("seed categorias: %w", err)
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, password string) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'admin'`).Scan(&count); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (username, password_hash, name, role) VALUES ($1, $2, $3, 'admin')`,
		"admin", string(hash), "Administrador")
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
