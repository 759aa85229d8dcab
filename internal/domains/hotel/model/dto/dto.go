package dto

import (
	"hoteldash/internal/domains/hotel/model"
	"hoteldash/shared"
)

type HotelResponse struct {
	ID        int64  `json:"hotel_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	HotelType string `json:"hotel_type"`
	TypeName  string `json:"hotel_type_name"`
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.HotelType = string(model.HotelType)
	r.TypeName = model.HotelType.Name()
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
