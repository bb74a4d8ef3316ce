package ledger

import (
	"context"
	"time"

	"rentalapi/internal/item"
	"rentalapi/internal/patron"
)

// Repository defines the contract for lending record storage. The
// ledger is the only component permitted to mutate records.
type Repository interface {
	// Insert persists a new open record. Fails with ErrItemAlreadyIssued
	// when the item already has an open record.
	Insert(ctx context.Context, rec *LendingRecord) error

	// FindOpen returns the unique open record for (itemID, patronID),
	// or ErrRecordNotFound.
	FindOpen(ctx context.Context, itemID, patronID string) (LendingRecord, error)

	// Close sets returnDate and rentAmount on the record, conditional on
	// it still being open. Exactly one concurrent caller wins; the rest
	// get ErrRecordNotFound.
	Close(ctx context.Context, recordID string, returnDate time.Time, rentAmount int64) (LendingRecord, error)

	// List returns records matching the filter in insertion order.
	List(ctx context.Context, f Filter) ([]LendingRecord, error)

	// SumClosedRent totals rentAmount over closed records for the item,
	// 0 when none are closed.
	SumClosedRent(ctx context.Context, itemID string) (int64, error)
}

// ItemCatalog resolves item references. Read-only from the ledger's
// perspective.
type ItemCatalog interface {
	GetByID(ctx context.Context, id string) (item.Item, error)
}

// PatronRegistry resolves patron references. Read-only from the
// ledger's perspective.
type PatronRegistry interface {
	GetByID(ctx context.Context, id string) (patron.Patron, error)
}
