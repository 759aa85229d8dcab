package statistics_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	otelMocks "hoteldash/infras/otel/mocks"
	"hoteldash/internal/domains/statistics/model"
	"hoteldash/internal/domains/statistics/model/dto"
	serviceMocks "hoteldash/internal/domains/statistics/service/mocks"
	"hoteldash/internal/handlers/statistics"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*serviceMocks.MockStatistics, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockStatistics(ctrl)

	handler := statistics.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, nil))

	return w
}

func TestHandler_GetView(t *testing.T) {
	t.Run("scoped to a hotel", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().GetView(gomock.Any(), "monthly-revenue", int64(2)).Return(dto.ViewResponse{
			View:    "monthly-revenue",
			HotelID: 2,
			Rows:    []model.Row{{"month": "2024-03", "revenue": "1050.00"}},
		}, nil)

		w := serve(router, http.MethodGet, "/statistics/monthly-revenue?hotel_id=2")

		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Data dto.ViewResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "monthly-revenue", res.Data.View)
		require.Len(t, res.Data.Rows, 1)
		assert.Equal(t, "1050.00", res.Data.Rows[0]["revenue"])
	})

	t.Run("without hotel", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().GetView(gomock.Any(), "vip-guests", int64(0)).Return(dto.ViewResponse{View: "vip-guests"}, nil)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/statistics/vip-guests").Code)
	})

	t.Run("unknown view", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().GetView(gomock.Any(), "bookings", int64(0)).Return(dto.ViewResponse{}, model.ErrUnknownView)

		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/statistics/bookings").Code)
	})

	t.Run("invalid hotel", func(t *testing.T) {
		_, router := setupRouter(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/statistics/occupancy?hotel_id=abc").Code)
	})
}

func TestHandler_GetHotelReport(t *testing.T) {
	query := dto.ReportQuery{HotelID: 1, From: "2024-03-01", To: "2024-03-31"}

	t.Run("report", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().HotelReport(gomock.Any(), query).Return(dto.HotelReportResponse{
			HotelID:         1,
			HotelName:       "The Pope",
			From:            query.From,
			To:              query.To,
			Bookings:        2,
			Revenue:         "975.00",
			AverageStayDays: "2.50",
			UniqueGuests:    2,
		}, nil)

		w := serve(router, http.MethodGet, "/hotels/1/report?from=2024-03-01&to=2024-03-31")

		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Data dto.HotelReportResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "975.00", res.Data.Revenue)
		assert.Equal(t, 2, res.Data.UniqueGuests)
	})

	t.Run("missing period", func(t *testing.T) {
		_, router := setupRouter(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/hotels/1/report?from=2024-03-01").Code)
	})

	t.Run("reversed period", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().HotelReport(gomock.Any(), dto.ReportQuery{HotelID: 1, From: "2024-03-31", To: "2024-03-01"}).
			Return(dto.HotelReportResponse{}, model.ErrInvalidPeriod)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/hotels/1/report?from=2024-03-31&to=2024-03-01").Code)
	})
}

func TestHandler_ExportHotelReport(t *testing.T) {
	query := dto.ReportQuery{HotelID: 1, From: "2024-03-01", To: "2024-03-31"}

	t.Run("exported", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().ExportHotelReport(gomock.Any(), query).
			Return(dto.ExportResponse{URL: "https://reports.example.com/hotel-1.json"}, nil)

		w := serve(router, http.MethodPost, "/hotels/1/report/export?from=2024-03-01&to=2024-03-31")

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "hotel-1.json")
	})

	t.Run("disabled", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().ExportHotelReport(gomock.Any(), query).Return(dto.ExportResponse{}, model.ErrExportDisabled)

		w := serve(router, http.MethodPost, "/hotels/1/report/export?from=2024-03-01&to=2024-03-31")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "report export is disabled")
	})
}
