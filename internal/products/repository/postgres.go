package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"product-catalog/internal/products"

	"github.com/lib/pq"
)

const (
	healthCheckTimeout = 2 * time.Second

	uniqueViolation = "23505"
	productColumns  = `id, title, description, price, stock, thumbnails, code, status, category, created_at, updated_at`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (products.Product, error) {
	var p products.Product
	err := s.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Stock,
		pq.Array(&p.Thumbnails), &p.Code, &p.Status, &p.Category,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if p.Thumbnails == nil {
		p.Thumbnails = []string{}
	}
	return p, err
}

func (r *PostgresRepository) Create(ctx context.Context, p products.Product) (products.Product, error) {
	query := `
		INSERT INTO products (title, description, price, stock, thumbnails, code, status, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns

	row := r.db.QueryRowContext(ctx, query,
		p.Title, p.Description, p.Price, p.Stock,
		pq.Array(thumbnails(p.Thumbnails)), p.Code, p.Status, p.Category,
	)
	created, err := scanProduct(row)
	if err != nil {
		if isUniqueViolation(err) {
			return products.Product{}, products.ErrDuplicateCode
		}
		return products.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p products.Product) (products.Product, error) {
	query := `
		UPDATE products
		SET title = $2, description = $3, price = $4, stock = $5, thumbnails = $6,
		    code = $7, status = $8, category = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	row := r.db.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Description, p.Price, p.Stock,
		pq.Array(thumbnails(p.Thumbnails)), p.Code, p.Status, p.Category,
	)
	updated, err := scanProduct(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return products.Product{}, products.ErrNotFound
	case isUniqueViolation(err):
		return products.Product{}, products.ErrDuplicateCode
	case err != nil:
		return products.Product{}, fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return products.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (products.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return products.Product{}, products.ErrNotFound
	}
	if err != nil {
		return products.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) FindByCode(ctx context.Context, code string) (products.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, code))
	if errors.Is(err, sql.ErrNoRows) {
		return products.Product{}, products.ErrNotFound
	}
	if err != nil {
		return products.Product{}, fmt.Errorf("find product by code: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter products.Filter, limit, offset int) ([]products.Product, error) {
	where, args := whereClause(filter)
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, productColumns, where, orderBy(filter.Sort), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	list := make([]products.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) Count(ctx context.Context, filter products.Filter) (int64, error) {
	where, args := whereClause(filter)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	return r.db.PingContext(ctx)
}

func whereClause(f products.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(s products.SortOrder) string {
	switch s {
	case products.SortPriceAsc:
		return "price ASC, id ASC"
	case products.SortPriceDesc:
		return "price DESC, id ASC"
	default:
		return "id ASC"
	}
}

func thumbnails(t []string) []string {
	if t == nil {
		return []string{}
	}
	return t
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
