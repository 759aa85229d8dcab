// Package pricing computes what a stay costs. It is the only place the
// discount rule lives; callers never re-implement the arithmetic.
package pricing

import (
	"hoteldash/shared/failure"
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

var (
	// MemberFactor applies to loyalty members, whatever the booking channel.
	MemberFactor = decimal.RequireFromString("0.88")
	// OnlineFactor applies to online bookings made by non-members.
	OnlineFactor = decimal.RequireFromString("0.90")
)

var (
	ErrInvalidNights = failure.BadRequestFromString("stay must be at least one night")
	ErrInvalidRate   = failure.BadRequestFromString("nightly rate must be greater than zero")
)

// Nights counts calendar nights between two dates. Clock time is ignored.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	return int(out.Sub(in).Hours() / hoursPerDay)
}

// DiscountFactor returns the single multiplier for a booking. Discounts never stack.
func DiscountFactor(isMember, isOnline bool) decimal.Decimal {
	switch {
	case isMember:
		return MemberFactor
	case isOnline:
		return OnlineFactor
	default:
		return decimal.NewFromInt(1)
	}
}

// ComputeTotalPrice returns nights x rate with at most one discount applied,
// rounded half-up to cents.
func ComputeTotalPrice(rate decimal.Decimal, checkIn, checkOut time.Time, isMember, isOnline bool) (decimal.Decimal, error) {
	nights := Nights(checkIn, checkOut)
	if nights < 1 {
		return decimal.Zero, ErrInvalidNights
	}

	if !rate.IsPositive() {
		return decimal.Zero, ErrInvalidRate
	}

	base := rate.Mul(decimal.NewFromInt(int64(nights)))

	return base.Mul(DiscountFactor(isMember, isOnline)).Round(2), nil
}
