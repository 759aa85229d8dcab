package model

import (
	"hoteldash/shared/failure"
	"hoteldash/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "guest_id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldGuestType = "guest_type"
	FieldStatus    = "status"
)

var (
	ErrGuestNotFound  = failure.NotFound("guest not found")
	ErrEmailDuplicate = failure.Conflict("email is already registered")
)

type Guest struct {
	ID        int64  `db:"guest_id"   insert:"false"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	FullName  string `db:"full_name"  insert:"false"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
	Address   string `db:"address"`
	GuestType string `db:"guest_type"`
	Status    string `db:"status"`
	Notes     string `db:"notes"`
	model.Metadata
}
