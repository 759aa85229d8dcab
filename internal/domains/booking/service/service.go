package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hoteldash/config"
	"hoteldash/infras/kafka"
	"hoteldash/infras/otel"
	"hoteldash/internal/domains/booking/model"
	"hoteldash/internal/domains/booking/model/dto"
	"hoteldash/internal/domains/booking/pricing"
	"hoteldash/internal/domains/booking/repository"
	guestModel "hoteldash/internal/domains/guest/model"
	guestRepo "hoteldash/internal/domains/guest/repository"
	roomModel "hoteldash/internal/domains/room/model"
	roomRepo "hoteldash/internal/domains/room/repository"
	"hoteldash/shared"
	"hoteldash/shared/cache"
	"hoteldash/shared/constant"
	gDto "hoteldash/shared/dto"
	"hoteldash/shared/failure"
	"hoteldash/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

var (
	ErrReferenceNotFound = failure.NotFound("guest, hotel or room not found")
	ErrConstraint        = failure.BadRequestFromString("booking violates a storage constraint")
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Edit(ctx context.Context, req dto.EditBookingRequest, id int64) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id int64) (dto.BookingResponse, error)
	HasConflict(ctx context.Context, query dto.ConflictQuery) (dto.ConflictResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	kafka     kafka.Client
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		kafka:     kafka,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create books a room. The room row stays locked from the conflict check until
// the insert commits, so two overlapping requests for one room cannot both win.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	exist, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		return res, guestModel.ErrGuestNotFound
	}

	var booking model.Booking

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.lockRoom(ctx, tx, req.HotelID, req.RoomID)
		if err != nil {
			return err
		}

		if err = s.ensureAvailable(ctx, tx, req.HotelID, req.RoomID, checkIn, checkOut, 0); err != nil {
			return err
		}

		total, err := pricing.ComputeTotalPrice(room.Price, checkIn, checkOut, req.IsMember, req.IsOnline)
		if err != nil {
			return err //nolint:wrapcheck
		}

		booking = req.ToModel(checkIn, checkOut, total, s.defaultStatus())

		booking.ID, err = s.repo.InsertTx(ctx, tx, booking)
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, classify(err, "create booking")
	}

	res.FromModel(booking)

	log.Info().Int64("booking_id", booking.ID).Int64("hotel_id", booking.HotelID).Int64("room_id", booking.RoomID).
		Str("total_price", res.TotalPrice).Msg("booking created")

	s.afterWrite(ctx, model.EventCreated, booking)

	return res, nil
}

// Edit moves a booking to new dates or another room and recomputes its price.
// The booking never conflicts with itself.
func (s *serviceImpl) Edit(ctx context.Context, req dto.EditBookingRequest, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Edit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var booking model.Booking

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lockBooking(ctx, tx, filter)
		if err != nil {
			return err
		}

		room, err := s.lockRoom(ctx, tx, req.HotelID, req.RoomID)
		if err != nil {
			return err
		}

		if current.Status.Active() {
			if err = s.ensureAvailable(ctx, tx, req.HotelID, req.RoomID, checkIn, checkOut, current.ID); err != nil {
				return err
			}
		}

		total, err := pricing.ComputeTotalPrice(room.Price, checkIn, checkOut, req.IsMember, req.IsOnline)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err = s.repo.UpdateTx(ctx, tx, req.ToUpdate(checkIn, checkOut, total), filter); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		booking = current
		booking.HotelID = req.HotelID
		booking.HotelName = room.HotelName
		booking.RoomID = req.RoomID
		booking.CheckIn = checkIn
		booking.CheckOut = checkOut
		booking.IsMember = req.IsMember
		booking.IsOnline = req.IsOnline
		booking.TotalPrice = total
		booking.ModifiedAt = timezone.Now()

		return nil
	})
	if err != nil {
		return res, classify(err, "edit booking")
	}

	res.FromModel(booking)

	s.afterWrite(ctx, model.EventEdited, booking)

	return res, nil
}

// UpdateStatus moves a booking between confirmed, pending and cancelled.
// Re-activating a cancelled booking takes its room back, so it is checked for
// conflicts like a new booking.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var booking model.Booking

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lockBooking(ctx, tx, filter)
		if err != nil {
			return err
		}

		if !model.CanTransition(current.Status, req.Status) {
			return model.ErrInvalidStatus
		}

		if !current.Status.Active() && req.Status.Active() {
			if _, err = s.lockRoom(ctx, tx, current.HotelID, current.RoomID); err != nil {
				return err
			}

			if err = s.ensureAvailable(ctx, tx, current.HotelID, current.RoomID, current.CheckIn, current.CheckOut, current.ID); err != nil {
				return err
			}
		}

		booking = current
		booking.Status = req.Status
		booking.ModifiedAt = timezone.Now()

		changes := map[string]any{
			model.FieldStatus:        string(booking.Status),
			constant.FieldModifiedAt: booking.ModifiedAt,
		}

		if err = s.repo.UpdateTx(ctx, tx, changes, filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, classify(err, "update booking status")
	}

	res.FromModel(booking)

	s.afterWrite(ctx, model.EventStatusChanged, booking)

	return res, nil
}

// HasConflict reports whether the stay overlaps an active booking of the room.
func (s *serviceImpl) HasConflict(ctx context.Context, query dto.ConflictQuery) (res dto.ConflictResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.HasConflict")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := query.Dates()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	exist, err := s.roomRepo.Exist(ctx, roomModel.FilterByKey(query.HotelID, query.RoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, roomModel.ErrRoomNotFound
	}

	conflict, err := s.repo.Exist(ctx, model.ConflictFilter(query.HotelID, query.RoomID, checkIn, checkOut, query.ExcludeBookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return res, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	res = dto.ConflictResponse{
		HotelID:  query.HotelID,
		RoomID:   query.RoomID,
		CheckIn:  timezone.FormatDate(checkIn),
		CheckOut: timezone.FormatDate(checkOut),
		Conflict: conflict,
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, model.ErrBookingNotFound
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) lockRoom(ctx context.Context, tx *sqlx.Tx, hotelID, roomID int64) (roomModel.Room, error) {
	room, err := s.roomRepo.GetForUpdateTx(ctx, tx, roomModel.FilterByKey(hotelID, roomID))
	if err != nil {
		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.RoomID == 0 {
		return room, roomModel.ErrRoomNotFound
	}

	return room, nil
}

func (s *serviceImpl) lockBooking(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, tx, filter)
	if err != nil {
		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == 0 {
		return booking, model.ErrBookingNotFound
	}

	return booking, nil
}

func (s *serviceImpl) ensureAvailable(ctx context.Context, tx *sqlx.Tx, hotelID, roomID int64, checkIn, checkOut time.Time, excludeID int64) error {
	conflict, err := s.repo.ExistTx(ctx, tx, model.ConflictFilter(hotelID, roomID, checkIn, checkOut, excludeID))
	if err != nil {
		return fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if conflict {
		return model.ErrRoomUnavailable
	}

	return nil
}

// defaultStatus is the configured initial status; a new booking cannot start cancelled.
func (s *serviceImpl) defaultStatus() model.Status {
	status, err := model.ParseStatus(s.cfg.App.Booking.DefaultStatus)
	if err != nil || !status.Active() {
		return model.StatusConfirmed
	}

	return status
}

func (s *serviceImpl) afterWrite(ctx context.Context, eventType model.EventType, booking model.Booking) {
	event := model.Event{
		Type:       eventType,
		BookingID:  booking.ID,
		HotelID:    booking.HotelID,
		RoomID:     booking.RoomID,
		CheckIn:    timezone.FormatDate(booking.CheckIn),
		CheckOut:   timezone.FormatDate(booking.CheckOut),
		TotalPrice: booking.TotalPrice.StringFixed(2),
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Booking, kafka.Message{Key: event.Key(), Value: event}); err != nil {
			log.Error().Err(err).Str("event", string(eventType)).Int64("booking_id", booking.ID).Msg("failed to publish booking event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// classify maps storage errors onto the booking failures. Failures raised by
// the service pass through; anything else is logged and wrapped.
func classify(err error, action string) error {
	switch shared.PqErrorCode(err) {
	case constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeSerializationFailure:
		return model.ErrRoomUnavailable
	case constant.PqErrorCodeFkViolation:
		return ErrReferenceNotFound
	case constant.PqErrorCodeCheckViolation:
		return ErrConstraint
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	log.Error().Err(err).Msgf("failed to %s", action)

	return fmt.Errorf("failed to %s: %w", action, err)
}
