// Package availability holds the in-memory form of the overlap rule that the
// booking repository evaluates in SQL.
package availability

import "time"

// Stay is one booking's claim on a room over the half-open range [CheckIn, CheckOut).
type Stay struct {
	BookingID int64
	HotelID   int64
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	Cancelled bool
}

// Overlaps reports whether [aIn, aOut) and [bIn, bOut) share at least one night.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// Conflicts reports whether the candidate stay collides with existing.
// Cancelled stays, other rooms and the booking itself never conflict.
func Conflicts(candidate, existing Stay) bool {
	if existing.Cancelled || candidate.Cancelled {
		return false
	}

	if candidate.HotelID != existing.HotelID || candidate.RoomID != existing.RoomID {
		return false
	}

	if candidate.BookingID != 0 && candidate.BookingID == existing.BookingID {
		return false
	}

	return Overlaps(candidate.CheckIn, candidate.CheckOut, existing.CheckIn, existing.CheckOut)
}

// HasConflict reports whether any of the existing stays collides with candidate.
func HasConflict(candidate Stay, existing []Stay) bool {
	for _, stay := range existing {
		if Conflicts(candidate, stay) {
			return true
		}
	}

	return false
}
