package model

import "hoteldash/shared/failure"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID        = "hotel_id"
	FieldName      = "name"
	FieldAddress   = "address"
	FieldHotelType = "hotel_type"
)

var ErrHotelNotFound = failure.NotFound("hotel not found")

type HotelType string

const (
	HotelTypeStandard HotelType = "S"
	HotelTypeLuxury   HotelType = "L"
)

func (h HotelType) Name() string {
	switch h {
	case HotelTypeStandard:
		return "standard"
	case HotelTypeLuxury:
		return "luxury"
	default:
		return ""
	}
}

type Hotel struct {
	ID        int64     `db:"hotel_id"`
	Name      string    `db:"name"`
	Address   string    `db:"address"`
	HotelType HotelType `db:"hotel_type"`
}
