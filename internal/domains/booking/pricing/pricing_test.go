package pricing_test

import (
	"hoteldash/internal/domains/booking/pricing"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestComputeTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		checkIn  string
		checkOut string
		isMember bool
		isOnline bool
		want     string
	}{
		{name: "no discount", rate: "200", checkIn: "2024-03-01", checkOut: "2024-03-03", want: "400.00"},
		{name: "online", rate: "200", checkIn: "2024-03-01", checkOut: "2024-03-03", isOnline: true, want: "360.00"},
		{name: "member", rate: "200", checkIn: "2024-03-01", checkOut: "2024-03-03", isMember: true, want: "352.00"},
		{name: "member wins over online", rate: "200", checkIn: "2024-03-01", checkOut: "2024-03-03", isMember: true, isOnline: true, want: "352.00"},
		{name: "single night", rate: "99.99", checkIn: "2024-12-31", checkOut: "2025-01-01", want: "99.99"},
		{name: "half up rounding", rate: "0.05", checkIn: "2024-03-01", checkOut: "2024-03-02", isOnline: true, want: "0.05"},
		{name: "rounds member cents", rate: "123.45", checkIn: "2024-02-28", checkOut: "2024-03-01", isMember: true, want: "217.27"},
		{name: "across dst change", rate: "100", checkIn: "2024-03-30", checkOut: "2024-04-01", want: "200.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.ComputeTotalPrice(decimal.RequireFromString(tt.rate), date(tt.checkIn), date(tt.checkOut), tt.isMember, tt.isOnline)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestComputeTotalPrice_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{name: "same day", rate: "200", checkIn: "2024-03-01", checkOut: "2024-03-01", wantErr: pricing.ErrInvalidNights},
		{name: "reversed", rate: "200", checkIn: "2024-03-03", checkOut: "2024-03-01", wantErr: pricing.ErrInvalidNights},
		{name: "zero rate", rate: "0", checkIn: "2024-03-01", checkOut: "2024-03-03", wantErr: pricing.ErrInvalidRate},
		{name: "negative rate", rate: "-10", checkIn: "2024-03-01", checkOut: "2024-03-03", wantErr: pricing.ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.ComputeTotalPrice(decimal.RequireFromString(tt.rate), date(tt.checkIn), date(tt.checkOut), false, false)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, pricing.Nights(date("2024-03-01"), date("2024-03-03")))
	assert.Equal(t, 1, pricing.Nights(date("2024-02-28"), date("2024-02-29")))
	assert.Equal(t, 366, pricing.Nights(date("2024-01-01"), date("2025-01-01")))
	assert.Equal(t, 0, pricing.Nights(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)))
}

func TestDiscountFactor(t *testing.T) {
	assert.True(t, pricing.DiscountFactor(false, false).Equal(decimal.NewFromInt(1)))
	assert.True(t, pricing.DiscountFactor(false, true).Equal(pricing.OnlineFactor))
	assert.True(t, pricing.DiscountFactor(true, false).Equal(pricing.MemberFactor))
	assert.True(t, pricing.DiscountFactor(true, true).Equal(pricing.MemberFactor))
}
