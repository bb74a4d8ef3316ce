package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRentAmount(t *testing.T) {
	tests := []struct {
		name       string
		issue      time.Time
		ret        time.Time
		rentPerDay int64
		want       int64
	}{
		{
			name:       "two full days",
			issue:      date("2024-01-01"),
			ret:        date("2024-01-03"),
			rentPerDay: 50,
			want:       100,
		},
		{
			name:       "same day charges the one-day minimum",
			issue:      date("2024-01-01"),
			ret:        date("2024-01-01"),
			rentPerDay: 50,
			want:       50,
		},
		{
			name:       "25 hours rounds up to two days",
			issue:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ret:        time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC),
			rentPerDay: 50,
			want:       100,
		},
		{
			name:       "exactly 24 hours is one day",
			issue:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ret:        time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			rentPerDay: 50,
			want:       50,
		},
		{
			name:       "one minute charges a full day",
			issue:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			ret:        time.Date(2024, 1, 1, 10, 1, 0, 0, time.UTC),
			rentPerDay: 35,
			want:       35,
		},
		{
			name:       "a week at 70 per day",
			issue:      date("2024-03-01"),
			ret:        date("2024-03-08"),
			rentPerDay: 70,
			want:       490,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentAmount(tt.issue, tt.ret, tt.rentPerDay))
		})
	}
}

func TestDaysRented_IsDeterministic(t *testing.T) {
	issue := date("2024-06-10")
	ret := date("2024-06-12")
	first := DaysRented(issue, ret)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, DaysRented(issue, ret))
	}
	assert.Equal(t, int64(2), first)
}
