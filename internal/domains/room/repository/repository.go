package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hoteldash/infras/otel"
	"hoteldash/infras/postgres"
	"hoteldash/internal/domains/room/model"
	"hoteldash/shared/constant"
	gDto "hoteldash/shared/dto"
	"hoteldash/shared/logger"
	gRepo "hoteldash/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

// availableRoomsQuery lists the rooms of a hotel without an active booking
// overlapping [check_in, check_out).
const availableRoomsQuery = `SELECT rooms.room_id, rooms.hotel_id, rooms.room_type, rooms.price, hotels.name AS hotel_name
FROM rooms
JOIN hotels ON hotels.hotel_id = rooms.hotel_id
WHERE rooms.hotel_id = :hotel_id
AND NOT EXISTS (
	SELECT 1 FROM bookings
	WHERE bookings.hotel_id = rooms.hotel_id
	AND bookings.room_id = rooms.room_id
	AND bookings.status <> 'cancelled'
	AND bookings.check_in < :check_out
	AND bookings.check_out > :check_in
)
ORDER BY rooms.room_id`

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ListAvailable(ctx context.Context, hotelID int64, checkIn, checkOut time.Time) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListAvailable(ctx context.Context, hotelID int64, checkIn, checkOut time.Time) (rooms []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, availableRoomsQuery)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, availableRoomsQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{
		"hotel_id":  hotelID,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	rooms = []model.Room{}

	if err = prepare.SelectContext(ctx, &rooms, args); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return rooms, nil
}
