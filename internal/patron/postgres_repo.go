package patron

import (
	"context"
	"errors"
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

func (r *PostgresRepo) List(ctx context.Context, name string) ([]Patron, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, `
		SELECT id, name, email, created_at, updated_at
		FROM patrons
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY name`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patrons []Patron
	for rows.Next() {
		var p Patron
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		patrons = append(patrons, p)
	}
	return patrons, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Patron, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var p Patron
	err := r.db.QueryRow(timeoutCtx, `
		SELECT id, name, email, created_at, updated_at
		FROM patrons
		WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Patron{}, ErrNotFound
	}
	if err != nil {
		return Patron{}, err
	}
	return p, nil
}

func (r *PostgresRepo) Create(ctx context.Context, p *Patron) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.QueryRow(timeoutCtx, `
		INSERT INTO patrons (id, name, email)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Email).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}
