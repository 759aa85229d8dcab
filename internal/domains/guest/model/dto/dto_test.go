package dto_test

import (
	"hoteldash/internal/domains/guest/model"
	"hoteldash/internal/domains/guest/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateGuestRequest_ToModel(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName: " Mette ",
		LastName:  "Hansen",
		Phone:     "+4512345678",
		Email:     " Mette@Example.com",
		Address:   "Nørregade 1",
	}

	guest := req.ToModel()

	assert.Equal(t, "Mette", guest.FirstName)
	assert.Equal(t, "mette@example.com", guest.Email)
	assert.Equal(t, "D", guest.GuestType)
	assert.Equal(t, "active", guest.Status)
	assert.Zero(t, guest.ID)
	assert.False(t, guest.CreatedAt.IsZero())
}

func TestGetGuestsResponse_FromModels(t *testing.T) {
	var res dto.GetGuestsResponse

	res.FromModels([]model.Guest{{ID: 1, FirstName: "Mette"}, {ID: 2, FirstName: "Lars", Status: "vip"}}, 12, 5)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Guests, 2)
	assert.Equal(t, "vip", res.Guests[1].Status)
}
