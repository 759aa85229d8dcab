package booking

import (
	"net/http"
	"hoteldash/infras/otel"
	"hoteldash/internal/domains/booking/model"
	"hoteldash/internal/domains/booking/model/dto"
	"hoteldash/internal/domains/booking/service"
	"hoteldash/shared"
	"hoteldash/shared/constant"
	gDto "hoteldash/shared/dto"
	"hoteldash/shared/validator"
	"hoteldash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/conflicts", handler.CheckConflict)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.EditBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book a room for a guest. The total price is computed from the room rate, the number of nights and the member or online discount.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room is not available for the requested dates"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering and pagination. Cancelled bookings are included unless filtered out.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query int false "Filter by hotel ID"
// @Param room_id query int false "Filter by room ID"
// @Param guest_id query int false "Filter by guest ID"
// @Param status query string false "Filter by status (confirmed, pending, cancelled)"
// @Param is_online query bool false "Filter by online bookings"
// @Param is_member query bool false "Filter by member bookings"
// @Param date query string false "Only bookings staying the night of this date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSortBy(model.FieldCheckIn, model.FieldCheckOut, model.FieldTotalPrice, constant.FieldCreatedAt)

	filterGroup, err := bookingFilters(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid booking filters")

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

func bookingFilters(r *http.Request) (gDto.FilterGroup, error) {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldHotelID, model.FieldRoomID, model.FieldGuestID} {
		value := query.Get(field)
		if value == "" {
			continue
		}

		id, err := shared.ParseID(value, field)
		if err != nil {
			return filterGroup, err
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    id,
			Table:    model.TableName,
		})
	}

	if status := query.Get(model.FieldStatus); status != "" {
		parsed, err := model.ParseStatus(status)
		if err != nil {
			return filterGroup, err //nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    string(parsed),
			Table:    model.TableName,
		})
	}

	for _, field := range []string{model.FieldIsOnline, model.FieldIsMember} {
		if value := shared.ConvertStringToBool(query.Get(field)); value != nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    *value,
				Table:    model.TableName,
			})
		}
	}

	if date := query.Get(constant.RequestParamDate); date != "" {
		if err := validator.ValidateVar(date, "dateonly"); err != nil {
			return filterGroup, err //nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{Field: model.FieldCheckIn, Operator: gDto.FilterOperatorLessEq, Value: date, Table: model.TableName, ArgName: "date_check_in"},
			gDto.Filter{Field: model.FieldCheckOut, Operator: gDto.FilterOperatorGreater, Value: date, Table: model.TableName, ArgName: "date_check_out"},
		)
	}

	return filterGroup, nil
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// EditBooking moves a booking to other dates or another room.
// @Summary Edit a booking
// @Description Change the room, dates or discount flags of a booking. The booking never conflicts with itself and its price is recomputed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.EditBookingRequest true "Edit Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room is not available for the requested dates"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [put]
func (handler *Handler) EditBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.EditBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Edit(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to edit booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking edited successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBookingStatus changes the status of a booking.
// @Summary Update booking status
// @Description Move a booking between confirmed, pending and cancelled. Re-activating a cancelled booking fails when its room was taken meanwhile.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status updated to " + booking.Status)

	response.WithJSON(w, http.StatusOK, booking)
}

// CheckConflict reports whether a stay would collide with an existing booking.
// @Summary Check a booking conflict
// @Description True when an active booking of the room overlaps [check_in, check_out). Pass exclude_booking_id when checking an edit.
// @Tags Booking
// @Produce json
// @Param hotel_id query int true "Hotel ID"
// @Param room_id query int true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param exclude_booking_id query int false "Booking to ignore"
// @Success 200 {object} response.Data[dto.ConflictResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/conflicts [get]
func (handler *Handler) CheckConflict(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckConflict")
	defer scope.End()

	query := r.URL.Query()

	req := dto.ConflictQuery{
		DateRange: gDto.DateRange{
			CheckIn:  query.Get(constant.RequestParamCheckIn),
			CheckOut: query.Get(constant.RequestParamCheckOut),
		},
	}

	var err error

	if req.HotelID, err = shared.ParseID(query.Get(constant.RequestParamHotelID), constant.RequestParamHotelID); err != nil {
		response.WithError(w, err)

		return
	}

	if req.RoomID, err = shared.ParseID(query.Get(constant.RequestParamRoomID), constant.RequestParamRoomID); err != nil {
		response.WithError(w, err)

		return
	}

	if exclude := query.Get(constant.RequestParamExclude); exclude != "" {
		if req.ExcludeBookingID, err = shared.ParseID(exclude, constant.RequestParamExclude); err != nil {
			response.WithError(w, err)

			return
		}
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.HasConflict(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check booking conflict")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
