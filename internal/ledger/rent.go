package ledger

import "time"

const rentalDay = 24 * time.Hour

// RentAmount computes the fee owed for a loan held from issueDate to
// returnDate at rentPerDay. Any started day counts as a whole day, and
// a loan returned the same day still incurs the one-day minimum.
// Pure: no clock, no external state. Ordering of the dates is enforced
// by the caller.
func RentAmount(issueDate, returnDate time.Time, rentPerDay int64) int64 {
	return DaysRented(issueDate, returnDate) * rentPerDay
}

// DaysRented returns max(1, ceil(elapsed / 24h)).
func DaysRented(issueDate, returnDate time.Time) int64 {
	elapsed := returnDate.Sub(issueDate)
	days := int64(elapsed / rentalDay)
	if elapsed%rentalDay > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
