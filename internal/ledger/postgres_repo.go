package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const recordColumns = "id, item_id, patron_id, issue_date, return_date, rent_amount, created_at"

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

func (r *PostgresRepo) Insert(ctx context.Context, rec *LendingRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRow(timeoutCtx, `
		INSERT INTO lending_records (id, item_id, patron_id, issue_date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		rec.ID, rec.ItemID, rec.PatronID, rec.IssueDate).
		Scan(&rec.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		// one_open_record_per_item partial unique index
		return ErrItemAlreadyIssued
	}
	return err
}

func (r *PostgresRepo) FindOpen(ctx context.Context, itemID, patronID string) (LendingRecord, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRow(timeoutCtx, `
		SELECT `+recordColumns+`
		FROM lending_records
		WHERE item_id = $1 AND patron_id = $2 AND return_date IS NULL`,
		itemID, patronID)

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return LendingRecord{}, ErrRecordNotFound
	}
	return rec, err
}

// Close is conditional on the record still being open, so concurrent
// returns of the same record resolve to exactly one winner.
func (r *PostgresRepo) Close(ctx context.Context, recordID string, returnDate time.Time, rentAmount int64) (LendingRecord, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRow(timeoutCtx, `
		UPDATE lending_records
		SET return_date = $2, rent_amount = $3
		WHERE id = $1 AND return_date IS NULL
		RETURNING `+recordColumns,
		recordID, returnDate, rentAmount)

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return LendingRecord{}, ErrRecordNotFound
	}
	return rec, err
}

func (r *PostgresRepo) List(ctx context.Context, f Filter) ([]LendingRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.ItemID != "" {
		clauses = append(clauses, fmt.Sprintf("item_id = $%d", argn))
		args = append(args, f.ItemID)
		argn++
	}

	if f.PatronID != "" {
		clauses = append(clauses, fmt.Sprintf("patron_id = $%d", argn))
		args = append(args, f.PatronID)
		argn++
	}

	if f.OpenOnly {
		clauses = append(clauses, "return_date IS NULL")
	}

	if f.ClosedOnly {
		clauses = append(clauses, "return_date IS NOT NULL")
	}

	if f.IssuedFrom != nil {
		clauses = append(clauses, fmt.Sprintf("issue_date >= $%d", argn))
		args = append(args, *f.IssuedFrom)
		argn++
	}

	if f.IssuedTo != nil {
		clauses = append(clauses, fmt.Sprintf("issue_date <= $%d", argn))
		args = append(args, *f.IssuedTo)
		argn++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM lending_records
		WHERE %s
		ORDER BY created_at`, recordColumns, strings.Join(clauses, " AND "))

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []LendingRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *PostgresRepo) SumClosedRent(ctx context.Context, itemID string) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.QueryRow(timeoutCtx, `
		SELECT COALESCE(SUM(rent_amount), 0)
		FROM lending_records
		WHERE item_id = $1 AND return_date IS NOT NULL`, itemID).
		Scan(&total)
	return total, err
}

func scanRecord(row pgx.Row) (LendingRecord, error) {
	var rec LendingRecord
	err := row.Scan(&rec.ID, &rec.ItemID, &rec.PatronID, &rec.IssueDate,
		&rec.ReturnDate, &rec.RentAmount, &rec.CreatedAt)
	return rec, err
}
