package availability_test

import (
	"hoteldash/internal/domains/booking/availability"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return epoch.AddDate(0, 0, n)
}

func stay(id int64, in, out int) availability.Stay {
	return availability.Stay{BookingID: id, HotelID: 1, RoomID: 101, CheckIn: day(in), CheckOut: day(out)}
}

func TestOverlaps_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		a    [2]int
		b    [2]int
		want bool
	}{
		{name: "back to back", a: [2]int{0, 3}, b: [2]int{3, 5}, want: false},
		{name: "back to back reversed", a: [2]int{3, 5}, b: [2]int{0, 3}, want: false},
		{name: "one night shared", a: [2]int{0, 4}, b: [2]int{3, 5}, want: true},
		{name: "identical", a: [2]int{2, 4}, b: [2]int{2, 4}, want: true},
		{name: "contained", a: [2]int{0, 10}, b: [2]int{3, 4}, want: true},
		{name: "containing", a: [2]int{3, 4}, b: [2]int{0, 10}, want: true},
		{name: "same check in", a: [2]int{1, 2}, b: [2]int{1, 7}, want: true},
		{name: "same check out", a: [2]int{5, 7}, b: [2]int{1, 7}, want: true},
		{name: "disjoint", a: [2]int{0, 1}, b: [2]int{5, 6}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.Overlaps(day(tt.a[0]), day(tt.a[1]), day(tt.b[0]), day(tt.b[1]))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConflicts(t *testing.T) {
	existing := stay(1, 0, 3)

	t.Run("cancelled booking never conflicts", func(t *testing.T) {
		cancelled := existing
		cancelled.Cancelled = true

		assert.False(t, availability.Conflicts(stay(0, 1, 2), cancelled))
	})

	t.Run("other room", func(t *testing.T) {
		other := stay(0, 1, 2)
		other.RoomID = 102

		assert.False(t, availability.Conflicts(other, existing))
	})

	t.Run("same room number in another hotel", func(t *testing.T) {
		other := stay(0, 1, 2)
		other.HotelID = 2

		assert.False(t, availability.Conflicts(other, existing))
	})

	t.Run("editing to its own dates", func(t *testing.T) {
		assert.False(t, availability.Conflicts(stay(1, 0, 3), existing))
	})

	t.Run("new booking on the same dates", func(t *testing.T) {
		assert.True(t, availability.Conflicts(stay(0, 0, 3), existing))
	})
}

// closedIntervalOverlap is the three-clause comparison the old dashboard used.
// On half-open ranges it only disagrees when one stay checks out the day the other checks in.
func closedIntervalOverlap(in, out, bIn, bOut time.Time) bool {
	return (!bIn.After(out) && !bOut.Before(in)) ||
		(!bIn.After(in) && !bOut.Before(in)) ||
		(!bIn.Before(in) && !bOut.After(out))
}

func TestOverlaps_MatchesClosedIntervalExceptAtTouchingEnds(t *testing.T) {
	for aIn := range 6 {
		for aOut := aIn + 1; aOut <= 7; aOut++ {
			for bIn := range 6 {
				for bOut := bIn + 1; bOut <= 7; bOut++ {
					half := availability.Overlaps(day(aIn), day(aOut), day(bIn), day(bOut))
					closed := closedIntervalOverlap(day(aIn), day(aOut), day(bIn), day(bOut))

					if aOut == bIn || bOut == aIn {
						assert.False(t, half, "touching ranges [%d,%d) [%d,%d)", aIn, aOut, bIn, bOut)

						continue
					}

					assert.Equal(t, closed, half, "ranges [%d,%d) [%d,%d)", aIn, aOut, bIn, bOut)
				}
			}
		}
	}
}

func TestHasConflict_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iteration := range 500 {
		existing := make([]availability.Stay, 0, 8)

		for id := range 8 {
			in := rng.Intn(30)
			s := stay(int64(id+1), in, in+1+rng.Intn(6))
			s.Cancelled = rng.Intn(4) == 0
			existing = append(existing, s)
		}

		in := rng.Intn(30)
		candidate := stay(0, in, in+1+rng.Intn(6))

		want := false

		for _, e := range existing {
			if e.Cancelled {
				continue
			}

			// a night n is claimed when CheckIn <= n < CheckOut
			for n := candidate.CheckIn; n.Before(candidate.CheckOut); n = n.AddDate(0, 0, 1) {
				if !n.Before(e.CheckIn) && n.Before(e.CheckOut) {
					want = true
				}
			}
		}

		assert.Equal(t, want, availability.HasConflict(candidate, existing), "iteration %d", iteration)
	}
}

func TestHasConflict_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 1000 {
		aIn, bIn := rng.Intn(20), rng.Intn(20)
		a := stay(1, aIn, aIn+1+rng.Intn(5))
		b := stay(2, bIn, bIn+1+rng.Intn(5))

		assert.Equal(t,
			availability.HasConflict(a, []availability.Stay{b}),
			availability.HasConflict(b, []availability.Stay{a}),
		)
	}
}

func TestHasConflict_AcceptedSetStaysDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	accepted := []availability.Stay{}

	for id := range 200 {
		in := rng.Intn(60)
		candidate := stay(int64(id+1), in, in+1+rng.Intn(7))

		if !availability.HasConflict(candidate, accepted) {
			accepted = append(accepted, candidate)
		}
	}

	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			a, b := accepted[i], accepted[j]

			assert.False(t, availability.Overlaps(a.CheckIn, a.CheckOut, b.CheckIn, b.CheckOut))
		}
	}
}
