package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Item, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Name != "" {
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", argn))
		args = append(args, "%"+q.Name+"%")
		argn++
	}

	if q.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category ILIKE $%d", argn))
		args = append(args, "%"+q.Category+"%")
		argn++
	}

	if q.MinRent != nil {
		clauses = append(clauses, fmt.Sprintf("rent_per_day >= $%d", argn))
		args = append(args, *q.MinRent)
		argn++
	}

	if q.MaxRent != nil {
		clauses = append(clauses, fmt.Sprintf("rent_per_day <= $%d", argn))
		args = append(args, *q.MaxRent)
		argn++
	}

	query := fmt.Sprintf(`
		SELECT id, name, category, rent_per_day, created_at, updated_at
		FROM items
		WHERE %s
		ORDER BY name`, strings.Join(clauses, " AND "))

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.RentPerDay, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Item, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var it Item
	err := r.db.QueryRow(timeoutCtx, `
		SELECT id, name, category, rent_per_day, created_at, updated_at
		FROM items
		WHERE id = $1`, id).
		Scan(&it.ID, &it.Name, &it.Category, &it.RentPerDay, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrNotFound
	}
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepo) Create(ctx context.Context, it *Item) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.QueryRow(timeoutCtx, `
		INSERT INTO items (id, name, category, rent_per_day)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		it.ID, it.Name, it.Category, it.RentPerDay).
		Scan(&it.CreatedAt, &it.UpdatedAt)
}
