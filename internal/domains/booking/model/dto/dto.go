package dto

import (
	"hoteldash/internal/domains/booking/model"
	"hoteldash/internal/domains/booking/pricing"
	"hoteldash/shared"
	gDto "hoteldash/shared/dto"
	gModel "hoteldash/shared/model"
	"hoteldash/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	GuestID  int64 `json:"guest_id"  validate:"required,gt=0" example:"1"`
	HotelID  int64 `json:"hotel_id"  validate:"required,gt=0" example:"1"`
	RoomID   int64 `json:"room_id"   validate:"required,gt=0" example:"101"`
	IsMember bool  `json:"is_member"`
	IsOnline bool  `json:"is_online"`
	gDto.DateRange
}

func (c *CreateBookingRequest) ToModel(checkIn, checkOut time.Time, totalPrice decimal.Decimal, status model.Status) model.Booking {
	now := timezone.Now()

	return model.Booking{
		GuestID:    c.GuestID,
		HotelID:    c.HotelID,
		RoomID:     c.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		IsOnline:   c.IsOnline,
		IsMember:   c.IsMember,
		TotalPrice: totalPrice,
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

// EditBookingRequest moves a booking to another room or other dates.
// The guest stays the same; the total price is always recomputed.
type EditBookingRequest struct {
	HotelID  int64 `json:"hotel_id"  validate:"required,gt=0" example:"1"`
	RoomID   int64 `json:"room_id"   validate:"required,gt=0" example:"102"`
	IsMember bool  `json:"is_member"`
	IsOnline bool  `json:"is_online"`
	gDto.DateRange
}

// bookingChanges holds the columns an edit rewrites.
type bookingChanges struct {
	HotelID    int64           `db:"hotel_id"`
	RoomID     int64           `db:"room_id"`
	CheckIn    time.Time       `db:"check_in"`
	CheckOut   time.Time       `db:"check_out"`
	TotalPrice decimal.Decimal `db:"total_price"`
	IsOnline   *bool           `db:"is_online"`
	IsMember   *bool           `db:"is_member"`
}

// ToUpdate returns the column set for the edit. Flags are pointers so false is still written.
func (e *EditBookingRequest) ToUpdate(checkIn, checkOut time.Time, totalPrice decimal.Decimal) map[string]any {
	return shared.TransformFields(bookingChanges{
		HotelID:    e.HotelID,
		RoomID:     e.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: totalPrice,
		IsOnline:   &e.IsOnline,
		IsMember:   &e.IsMember,
	})
}

type UpdateStatusRequest struct {
	Status model.Status `json:"status" validate:"required,selfvalid" example:"cancelled"`
}

// ConflictQuery asks whether a stay would collide with an existing booking.
type ConflictQuery struct {
	HotelID          int64 `json:"hotel_id"           validate:"required,gt=0"`
	RoomID           int64 `json:"room_id"            validate:"required,gt=0"`
	ExcludeBookingID int64 `json:"exclude_booking_id" validate:"omitempty,gt=0"`
	gDto.DateRange
}

type ConflictResponse struct {
	HotelID  int64  `json:"hotel_id"`
	RoomID   int64  `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Conflict bool   `json:"conflict"`
}

type BookingResponse struct {
	ID         int64  `json:"booking_id"`
	GuestID    int64  `json:"guest_id"`
	GuestName  string `json:"guest_name,omitempty"`
	HotelID    int64  `json:"hotel_id"`
	HotelName  string `json:"hotel_name,omitempty"`
	RoomID     int64  `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	IsOnline   bool   `json:"is_online"`
	IsMember   bool   `json:"is_member"`
	TotalPrice string `json:"total_price" example:"352.00"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.RoomID = model.RoomID
	r.CheckIn = timezone.FormatDate(model.CheckIn)
	r.CheckOut = timezone.FormatDate(model.CheckOut)
	r.Nights = pricing.Nights(model.CheckIn, model.CheckOut)
	r.IsOnline = model.IsOnline
	r.IsMember = model.IsMember
	r.TotalPrice = model.TotalPrice.StringFixed(2)
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
