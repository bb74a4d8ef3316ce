package ledger

import (
	"errors"
	"time"

	"rentalapi/internal/patron"
)

var (
	// ErrRecordNotFound is returned when no matching lending record exists.
	ErrRecordNotFound = errors.New("lending record not found")

	// ErrInvalidInput is returned for malformed or out-of-order dates.
	ErrInvalidInput = errors.New("invalid input")

	// ErrItemAlreadyIssued is returned when an item already has an open
	// lending record. At most one open record may exist per item.
	ErrItemAlreadyIssued = errors.New("item already issued")
)

// LendingRecord links an Item and a Patron for one loan. It is created
// Open (no return date) and closed exactly once; RentAmount is set if
// and only if ReturnDate is set.
type LendingRecord struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"itemId"`
	PatronID   string     `json:"patronId"`
	IssueDate  time.Time  `json:"issueDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`
	RentAmount *int64     `json:"rentAmount,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Open reports whether the loan is still outstanding.
func (rec LendingRecord) Open() bool {
	return rec.ReturnDate == nil
}

// Filter selects lending records. Each field is an independent,
// optional predicate; the zero Filter matches everything.
type Filter struct {
	ItemID     string
	PatronID   string
	OpenOnly   bool
	ClosedOnly bool
	IssuedFrom *time.Time
	IssuedTo   *time.Time
}

// Item status values reported by ItemSummary.
const (
	StatusIssued    = "Issued"
	StatusAvailable = "Available"
)

// ItemHistory is the per-item transaction view: who holds the item now
// and who held it before.
type ItemHistory struct {
	TotalCount       int             `json:"totalCount"`
	CurrentlyIssued  *patron.Patron  `json:"currentlyIssued"`
	PastTransactions []patron.Patron `json:"pastTransactions"`
}

// PastIssue is one closed loan within an item summary.
type PastIssue struct {
	Patron     patron.Patron `json:"patron"`
	IssueDate  time.Time     `json:"issueDate"`
	ReturnDate time.Time     `json:"returnDate"`
}

// ItemSummary is the composite per-item view.
type ItemSummary struct {
	TotalIssueCount int            `json:"totalIssueCount"`
	PastIssuesCount int            `json:"pastIssuesCount"`
	CurrentStatus   string         `json:"currentStatus"`
	CurrentHolder   *patron.Patron `json:"currentHolder"`
	PastIssues      []PastIssue    `json:"pastIssues"`
}

// RentTotal is the aggregate rent collected for an item.
type RentTotal struct {
	TotalRent int64 `json:"totalRent"`
}
