package room

import (
	"net/http"
	"hoteldash/infras/otel"
	"hoteldash/internal/domains/room/model"
	"hoteldash/internal/domains/room/model/dto"
	"hoteldash/internal/domains/room/service"
	"hoteldash/shared"
	"hoteldash/shared/constant"
	gDto "hoteldash/shared/dto"
	"hoteldash/shared/failure"
	"hoteldash/shared/validator"
	"hoteldash/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the room routes below /hotels. The hotel handler owns the
// /hotels prefix, so these are registered as flat patterns.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/hotels/{hotel_id}/rooms", handler.GetRooms)
	router.Get("/hotels/{hotel_id}/rooms/available", handler.GetAvailableRooms)
	router.Get("/hotels/{hotel_id}/rooms/{room_id}", handler.GetRoom)
}

// GetRooms lists the rooms of a hotel.
// @Summary Get the rooms of a hotel
// @Description Retrieve the rooms of a hotel with optional filtering and pagination.
// @Tags Room
// @Produce json
// @Param hotel_id path int true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_type query string false "Filter by room type (D, S, F)"
// @Param max_price query string false "Only rooms priced at or below this amount"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamHotelID), constant.RequestParamHotelID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSortBy(model.FieldID, model.FieldPrice, model.FieldRoomType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
		},
	}

	if roomType := strings.ToUpper(r.URL.Query().Get(model.FieldRoomType)); roomType != "" {
		if model.RoomType(roomType).Name() == "" {
			response.WithError(w, failure.BadRequestFromString("room_type must be one of D, S, F"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if maxPrice := r.URL.Query().Get("max_price"); maxPrice != "" {
		price, err := decimal.NewFromString(maxPrice)
		if err != nil || price.IsNegative() {
			response.WithError(w, failure.BadRequestFromString("max_price must be a non-negative amount"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorLessEq,
			Value:    price.String(),
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailableRooms lists the rooms free for a whole stay.
// @Summary Get available rooms
// @Description Rooms of the hotel without an active booking overlapping [check_in, check_out).
// @Tags Room
// @Produce json
// @Param hotel_id path int true "Hotel ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamHotelID), constant.RequestParamHotelID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	query := dto.AvailabilityQuery{
		HotelID: hotelID,
		DateRange: gDto.DateRange{
			CheckIn:  r.URL.Query().Get(constant.RequestParamCheckIn),
			CheckOut: r.URL.Query().Get(constant.RequestParamCheckOut),
		},
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.ListAvailable(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("hotel_id", hotelID).Msg("failed to list available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoom retrieves one room of a hotel.
// @Summary Get a room
// @Description Retrieve a room by hotel and room number.
// @Tags Room
// @Produce json
// @Param hotel_id path int true "Hotel ID"
// @Param room_id path int true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/rooms/{room_id} [get]
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamHotelID), constant.RequestParamHotelID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	roomID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamRoomID), constant.RequestParamRoomID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, hotelID, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}
