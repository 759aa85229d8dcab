package dto

import (
	"hoteldash/internal/domains/guest/model"
	"hoteldash/shared"
	gDto "hoteldash/shared/dto"
	gModel "hoteldash/shared/model"
	"hoteldash/shared/timezone"
	"strings"
)

type CreateGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"           example:"Mette"`
	LastName  string `json:"last_name"  validate:"required,max=100"           example:"Hansen"`
	Phone     string `json:"phone"      validate:"required,max=20"            example:"+4512345678"`
	Email     string `json:"email"      validate:"required,email,max=255"     example:"mette@example.com"`
	Address   string `json:"address"    validate:"required,max=255"           example:"Nørregade 1, 1165 København"`
	GuestType string `json:"guest_type" validate:"omitempty,oneof=D F U"      example:"D"`
	Status    string `json:"status"     validate:"omitempty,oneof=active inactive vip"`
	Notes     string `json:"notes"      validate:"omitempty,max=2000"`
}

func (c *CreateGuestRequest) ToModel() model.Guest {
	now := timezone.Now()

	guestType := c.GuestType
	if guestType == "" {
		guestType = "D"
	}

	status := c.Status
	if status == "" {
		status = "active"
	}

	return model.Guest{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Phone:     c.Phone,
		Email:     strings.ToLower(strings.TrimSpace(c.Email)),
		Address:   c.Address,
		GuestType: guestType,
		Status:    status,
		Notes:     c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type GuestResponse struct {
	ID        int64  `json:"guest_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	GuestType string `json:"guest_type"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Phone = model.Phone
	r.Email = model.Email
	r.Address = model.Address
	r.GuestType = model.GuestType
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
