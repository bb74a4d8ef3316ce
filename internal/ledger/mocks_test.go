package ledger

import (
	"context"
	"time"

	"rentalapi/internal/item"
	"rentalapi/internal/patron"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Insert(ctx context.Context, rec *LendingRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockRepository) FindOpen(ctx context.Context, itemID, patronID string) (LendingRecord, error) {
	args := m.Called(ctx, itemID, patronID)
	return args.Get(0).(LendingRecord), args.Error(1)
}

func (m *mockRepository) Close(ctx context.Context, recordID string, returnDate time.Time, rentAmount int64) (LendingRecord, error) {
	args := m.Called(ctx, recordID, returnDate, rentAmount)
	return args.Get(0).(LendingRecord), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, f Filter) ([]LendingRecord, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]LendingRecord), args.Error(1)
}

func (m *mockRepository) SumClosedRent(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

type mockItemCatalog struct {
	mock.Mock
}

func (m *mockItemCatalog) GetByID(ctx context.Context, id string) (item.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(item.Item), args.Error(1)
}

type mockPatronRegistry struct {
	mock.Mock
}

func (m *mockPatronRegistry) GetByID(ctx context.Context, id string) (patron.Patron, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(patron.Patron), args.Error(1)
}
