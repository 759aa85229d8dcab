package model

import (
	"fmt"
	"hoteldash/shared/dto"
	"hoteldash/shared/failure"
	"hoteldash/shared/model"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "booking_id"
	FieldGuestID    = "guest_id"
	FieldHotelID    = "hotel_id"
	FieldRoomID     = "room_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldIsOnline   = "is_online"
	FieldIsMember   = "is_member"
	FieldTotalPrice = "total_price"
	FieldStatus     = "status"
)

var (
	ErrRoomUnavailable = failure.Conflict("room is not available for the requested dates")
	ErrBookingNotFound = failure.NotFound("booking not found")
	ErrInvalidStatus   = failure.BadRequestFromString("status must be one of confirmed, pending, cancelled")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(value string) (Status, error) {
	switch status := Status(strings.ToLower(strings.TrimSpace(value))); status {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) Validate() error {
	_, err := ParseStatus(string(s))

	return err
}

// Active reports whether the booking holds its room.
func (s Status) Active() bool {
	return s != StatusCancelled
}

// CanTransition reports whether a booking may move from one status to another.
// Every known status can reach every other one.
func CanTransition(from, to Status) bool {
	return from.Validate() == nil && to.Validate() == nil
}

type Booking struct {
	ID         int64           `db:"booking_id"  insert:"false"`
	GuestID    int64           `db:"guest_id"`
	HotelID    int64           `db:"hotel_id"`
	RoomID     int64           `db:"room_id"`
	CheckIn    time.Time       `db:"check_in"`
	CheckOut   time.Time       `db:"check_out"`
	IsOnline   bool            `db:"is_online"`
	IsMember   bool            `db:"is_member"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Status     Status          `db:"status"`
	GuestName  string          `db:"guest_name"  column:"full_name"  table:"guests"`
	HotelName  string          `db:"hotel_name"  column:"name"       table:"hotels"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN guests ON guests.guest_id = bookings.guest_id JOIN hotels ON hotels.hotel_id = bookings.hotel_id"
}

// ConflictFilter selects the active bookings of a room whose stay overlaps
// [checkIn, checkOut). excludeID > 0 leaves that booking out.
func ConflictFilter(hotelID, roomID int64, checkIn, checkOut time.Time, excludeID int64) dto.FilterGroup {
	filters := []any{
		dto.Filter{Field: FieldHotelID, Value: hotelID, Operator: dto.FilterOperatorEq, Table: TableName, ArgName: "conflict_hotel_id"},
		dto.Filter{Field: FieldRoomID, Value: roomID, Operator: dto.FilterOperatorEq, Table: TableName, ArgName: "conflict_room_id"},
		dto.Filter{Field: FieldStatus, Value: string(StatusCancelled), Operator: dto.FilterOperatorNotEq, Table: TableName, ArgName: "conflict_status"},
		dto.Filter{Field: FieldCheckIn, Value: checkOut, Operator: dto.FilterOperatorLess, Table: TableName, ArgName: "conflict_check_out"},
		dto.Filter{Field: FieldCheckOut, Value: checkIn, Operator: dto.FilterOperatorGreater, Table: TableName, ArgName: "conflict_check_in"},
	}

	if excludeID > 0 {
		filters = append(filters, dto.Filter{Field: FieldID, Value: excludeID, Operator: dto.FilterOperatorNotEq, Table: TableName, ArgName: "conflict_exclude_id"})
	}

	return dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: filters}
}

// EventType names the booking lifecycle events published to Kafka.
type EventType string

const (
	EventCreated       EventType = "booking.created"
	EventEdited        EventType = "booking.edited"
	EventStatusChanged EventType = "booking.status_changed"
)

type Event struct {
	Type       EventType `json:"type"`
	BookingID  int64     `json:"booking_id"`
	HotelID    int64     `json:"hotel_id"`
	RoomID     int64     `json:"room_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	TotalPrice string    `json:"total_price"`
	Status     Status    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Key partitions events by room so consumers see one room's events in order.
func (e Event) Key() string {
	return fmt.Sprintf("%d:%d", e.HotelID, e.RoomID)
}
