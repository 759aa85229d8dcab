package model

import (
	"hoteldash/shared/dto"
	"hoteldash/shared/failure"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "room_id"
	FieldHotelID  = "hotel_id"
	FieldRoomType = "room_type"
	FieldPrice    = "price"
)

var ErrRoomNotFound = failure.NotFound("room not found")

// RoomType is the one-letter room category stored in the database.
type RoomType string

const (
	RoomTypeDouble RoomType = "D"
	RoomTypeSingle RoomType = "S"
	RoomTypeFamily RoomType = "F"
)

var roomTypeNames = map[RoomType]string{
	RoomTypeDouble: "double",
	RoomTypeSingle: "single",
	RoomTypeFamily: "family",
}

func (r RoomType) Name() string {
	return roomTypeNames[r]
}

func (r RoomType) Validate() error {
	if _, ok := roomTypeNames[r]; !ok {
		return failure.BadRequestFromString("room_type must be one of D, S, F")
	}

	return nil
}

type Room struct {
	RoomID    int64           `db:"room_id"`
	HotelID   int64           `db:"hotel_id"`
	RoomType  RoomType        `db:"room_type"`
	Price     decimal.Decimal `db:"price"`
	HotelName string          `db:"hotel_name" column:"name" table:"hotels"`
}

func (Room) GetJoinQuery() string {
	return "JOIN hotels ON hotels.hotel_id = rooms.hotel_id"
}

// FilterByKey selects one room by its composite key.
func FilterByKey(hotelID, roomID int64) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: FieldHotelID, Value: hotelID, Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{Field: FieldID, Value: roomID, Operator: dto.FilterOperatorEq, Table: TableName},
		},
	}
}
