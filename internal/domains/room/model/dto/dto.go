package dto

import (
	"hoteldash/internal/domains/room/model"
	"hoteldash/shared"
	gDto "hoteldash/shared/dto"
)

// AvailabilityQuery asks which rooms of a hotel are free for a whole stay.
type AvailabilityQuery struct {
	HotelID int64 `json:"hotel_id" validate:"required,gt=0"`
	gDto.DateRange
}

type RoomResponse struct {
	RoomID       int64  `json:"room_id"`
	HotelID      int64  `json:"hotel_id"`
	HotelName    string `json:"hotel_name,omitempty"`
	RoomType     string `json:"room_type"`
	RoomTypeName string `json:"room_type_name"`
	Price        string `json:"price" example:"200.00"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomID = model.RoomID
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.RoomType = string(model.RoomType)
	r.RoomTypeName = model.RoomType.Name()
	r.Price = model.Price.StringFixed(2)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailableRoomsResponse struct {
	HotelID  int64          `json:"hotel_id"`
	CheckIn  string         `json:"check_in"`
	CheckOut string         `json:"check_out"`
	Rooms    []RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(query AvailabilityQuery, models []model.Room) {
	r.HotelID = query.HotelID
	r.CheckIn = query.CheckIn
	r.CheckOut = query.CheckOut

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
