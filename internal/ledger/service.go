package ledger

import (
	"context"
	"fmt"
	"time"

	"rentalapi/internal/item"
	"rentalapi/internal/patron"
)

// Service owns the lending record lifecycle: it opens records, closes
// them on return, and answers aggregate queries. Items and patrons are
// referenced, never modified.
type Service struct {
	records Repository
	items   ItemCatalog
	patrons PatronRegistry
}

func NewService(records Repository, items ItemCatalog, patrons PatronRegistry) *Service {
	return &Service{records: records, items: items, patrons: patrons}
}

// Issue opens a lending record for (itemID, patronID) on issueDate.
// Both references must resolve; an item with an open record cannot be
// issued again.
func (s *Service) Issue(ctx context.Context, itemID, patronID string, issueDate time.Time) (LendingRecord, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return LendingRecord{}, err
	}
	if _, err := s.patrons.GetByID(ctx, patronID); err != nil {
		return LendingRecord{}, err
	}

	rec := LendingRecord{
		ItemID:    itemID,
		PatronID:  patronID,
		IssueDate: issueDate,
	}
	if err := s.records.Insert(ctx, &rec); err != nil {
		return LendingRecord{}, err
	}
	return rec, nil
}

// Return closes the unique open record for (itemID, patronID), fixing
// returnDate and the computed rent. Closing is one-way: a second call
// finds no open record and fails with ErrRecordNotFound.
func (s *Service) Return(ctx context.Context, itemID, patronID string, returnDate time.Time) (LendingRecord, error) {
	rec, err := s.records.FindOpen(ctx, itemID, patronID)
	if err != nil {
		return LendingRecord{}, err
	}

	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return LendingRecord{}, err
	}

	if returnDate.Before(rec.IssueDate) {
		return LendingRecord{}, fmt.Errorf("%w: return date must not be earlier than the issue date", ErrInvalidInput)
	}

	amount := RentAmount(rec.IssueDate, returnDate, it.RentPerDay)
	return s.records.Close(ctx, rec.ID, returnDate, amount)
}

// CurrentHolder returns the patron holding the item, or nil when the
// item has no open record.
func (s *Service) CurrentHolder(ctx context.Context, itemID string) (*patron.Patron, error) {
	open, err := s.records.List(ctx, Filter{ItemID: itemID, OpenOnly: true})
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, nil
	}
	p, err := s.patrons.GetByID(ctx, open[0].PatronID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ItemHistory reports the item's full transaction view: total count,
// the current holder if any, and the patrons of all closed loans.
func (s *Service) ItemHistory(ctx context.Context, itemID string) (ItemHistory, error) {
	recs, err := s.records.List(ctx, Filter{ItemID: itemID})
	if err != nil {
		return ItemHistory{}, err
	}

	history := ItemHistory{
		TotalCount:       len(recs),
		PastTransactions: []patron.Patron{},
	}
	for _, rec := range recs {
		p, err := s.patrons.GetByID(ctx, rec.PatronID)
		if err != nil {
			return ItemHistory{}, err
		}
		if rec.Open() {
			holder := p
			history.CurrentlyIssued = &holder
			continue
		}
		history.PastTransactions = append(history.PastTransactions, p)
	}
	return history, nil
}

// TotalRent sums rentAmount over the item's closed records.
func (s *Service) TotalRent(ctx context.Context, itemID string) (int64, error) {
	return s.records.SumClosedRent(ctx, itemID)
}

// PatronHistory returns the items a patron has held, open or closed,
// in insertion order.
func (s *Service) PatronHistory(ctx context.Context, patronID string) ([]item.Item, error) {
	recs, err := s.records.List(ctx, Filter{PatronID: patronID})
	if err != nil {
		return nil, err
	}

	items := []item.Item{}
	for _, rec := range recs {
		it, err := s.items.GetByID(ctx, rec.ItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// ByDateRange returns records whose issueDate falls within
// [start, end] inclusive.
func (s *Service) ByDateRange(ctx context.Context, start, end time.Time) ([]LendingRecord, error) {
	return s.records.List(ctx, Filter{IssuedFrom: &start, IssuedTo: &end})
}

// AllTransactions returns the full record set.
func (s *Service) AllTransactions(ctx context.Context) ([]LendingRecord, error) {
	return s.records.List(ctx, Filter{})
}

// ItemSummary composes the per-item detail view.
func (s *Service) ItemSummary(ctx context.Context, itemID string) (ItemSummary, error) {
	recs, err := s.records.List(ctx, Filter{ItemID: itemID})
	if err != nil {
		return ItemSummary{}, err
	}

	summary := ItemSummary{
		TotalIssueCount: len(recs),
		CurrentStatus:   StatusAvailable,
		PastIssues:      []PastIssue{},
	}
	for _, rec := range recs {
		p, err := s.patrons.GetByID(ctx, rec.PatronID)
		if err != nil {
			return ItemSummary{}, err
		}
		if rec.Open() {
			holder := p
			summary.CurrentStatus = StatusIssued
			summary.CurrentHolder = &holder
			continue
		}
		summary.PastIssues = append(summary.PastIssues, PastIssue{
			Patron:     p,
			IssueDate:  rec.IssueDate,
			ReturnDate: *rec.ReturnDate,
		})
	}
	summary.PastIssuesCount = len(summary.PastIssues)
	return summary, nil
}
