package dto

import (
	"hoteldash/shared/failure"
	"hoteldash/shared/timezone"
	"time"
)

// DateRange is a half-open stay [CheckIn, CheckOut) given as calendar dates.
type DateRange struct {
	CheckIn  string `json:"check_in"  validate:"required,dateonly" example:"2024-03-01"`
	CheckOut string `json:"check_out" validate:"required,dateonly" example:"2024-03-03"`
}

// Dates parses the range and enforces CheckOut > CheckIn.
func (d DateRange) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(d.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	checkOut, err = timezone.ParseDate(d.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.InvalidDateRange
	}

	return checkIn, checkOut, nil
}
