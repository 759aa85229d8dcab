package statistics

import (
	"net/http"
	"hoteldash/infras/otel"
	"hoteldash/internal/domains/statistics/model/dto"
	"hoteldash/internal/domains/statistics/service"
	"hoteldash/shared"
	"hoteldash/shared/constant"
	"hoteldash/shared/validator"
	"hoteldash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Statistics
	otel    otel.Otel
}

func New(service service.Statistics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/statistics", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetViews)
		routerGroup.Get("/{view}", handler.GetView)
	})

	router.Get("/hotels/{hotel_id}/report", handler.GetHotelReport)
	router.Post("/hotels/{hotel_id}/report/export", handler.ExportHotelReport)
}

// GetViews lists the statistics views that can be queried.
// @Summary List statistics views
// @Tags Statistics
// @Produce json
// @Success 200 {object} response.Data[dto.ViewsResponse]
// @Router /v1/statistics [get]
func (handler *Handler) GetViews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetViews")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Views(ctx))
}

// GetView returns the rows of one statistics view.
// @Summary Query a statistics view
// @Description Read-only projection such as monthly-revenue or occupancy. hotel_id narrows views that are per hotel and is ignored otherwise.
// @Tags Statistics
// @Produce json
// @Param view path string true "View name"
// @Param hotel_id query int false "Hotel ID"
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Unknown view"
// @Failure 500 {object} response.Error
// @Router /v1/statistics/{view} [get]
func (handler *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetView")
	defer scope.End()

	var (
		hotelID int64
		err     error
	)

	if value := r.URL.Query().Get(constant.RequestParamHotelID); value != "" {
		if hotelID, err = shared.ParseID(value, constant.RequestParamHotelID); err != nil {
			response.WithError(w, err)

			return
		}
	}

	view, err := handler.service.GetView(ctx, chi.URLParam(r, constant.RequestParamView), hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get statistics view")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

func reportQuery(r *http.Request) (dto.ReportQuery, error) {
	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamHotelID), constant.RequestParamHotelID)
	if err != nil {
		return dto.ReportQuery{}, err //nolint:wrapcheck
	}

	query := dto.ReportQuery{
		HotelID: hotelID,
		From:    r.URL.Query().Get(constant.RequestParamFrom),
		To:      r.URL.Query().Get(constant.RequestParamTo),
	}

	if err := validator.ValidateStruct(&query); err != nil {
		return query, err //nolint:wrapcheck
	}

	return query, nil
}

// GetHotelReport summarises the bookings of a hotel over a period.
// @Summary Get a hotel report
// @Description Bookings, revenue, average stay and unique guests for stays inside [from, to].
// @Tags Statistics
// @Produce json
// @Param hotel_id path int true "Hotel ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.HotelReportResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/report [get]
func (handler *Handler) GetHotelReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelReport")
	defer scope.End()

	query, err := reportQuery(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	report, err := handler.service.HotelReport(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("hotel_id", query.HotelID).Msg("failed to build hotel report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// ExportHotelReport writes a hotel report to object storage.
// @Summary Export a hotel report
// @Description Builds the report and uploads it as JSON. Returns the object URL.
// @Tags Statistics
// @Produce json
// @Param hotel_id path int true "Hotel ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 201 {object} response.Data[dto.ExportResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error "Export is disabled"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotel_id}/report/export [post]
func (handler *Handler) ExportHotelReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportHotelReport")
	defer scope.End()

	query, err := reportQuery(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	export, err := handler.service.ExportHotelReport(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("hotel_id", query.HotelID).Msg("failed to export hotel report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel report exported to " + export.URL)

	response.WithJSON(w, http.StatusCreated, export)
}
