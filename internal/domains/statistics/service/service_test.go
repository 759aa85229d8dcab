package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"hoteldash/config"
	"hoteldash/infras/otel/mocks"
	s3Mocks "hoteldash/infras/s3/mocks"
	hotelModel "hoteldash/internal/domains/hotel/model"
	statisticsMocks "hoteldash/internal/domains/statistics/mocks"
	"hoteldash/internal/domains/statistics/model"
	"hoteldash/internal/domains/statistics/model/dto"
	"hoteldash/internal/domains/statistics/service"
	cacheMocks "hoteldash/shared/cache/mocks"
	"hoteldash/shared/constant"
	"hoteldash/shared/failure"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc     service.Statistics
	repo    *statisticsMocks.MockStatistics
	storage *s3Mocks.MockS3
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := statisticsMocks.NewMockStatistics(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Report.Directory = "reports"

	return fixture{
		svc:     service.New(repo, storage, cfg, mockCache, mocks.NewOtel()),
		repo:    repo,
		storage: storage,
	}
}

func TestStatisticsService_Views(t *testing.T) {
	f := newFixture(t)

	res := f.svc.Views(context.Background())

	assert.Len(t, res.Views, 9)
	assert.Contains(t, res.Views, "monthly-revenue")
	assert.Contains(t, res.Views, "staff-overview")
	assert.IsIncreasing(t, res.Views)
}

func TestStatisticsService_GetView(t *testing.T) {
	t.Run("hotel scoped view", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetView(gomock.Any(), model.ViewOccupancy, int64(3)).
			Return([]model.Row{{"hotel_id": int64(3), "occupancy_percent": "75.00"}}, nil)

		res, err := f.svc.GetView(context.Background(), "Occupancy", 3)

		require.NoError(t, err)
		assert.Equal(t, "occupancy", res.View)
		assert.Equal(t, int64(3), res.HotelID)
		assert.Len(t, res.Rows, 1)
	})

	t.Run("hotel is dropped for a global view", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetView(gomock.Any(), model.ViewVIPGuests, int64(0)).Return(nil, nil)

		res, err := f.svc.GetView(context.Background(), "vip-guests", 3)

		require.NoError(t, err)
		assert.Zero(t, res.HotelID)
		assert.NotNil(t, res.Rows)
	})

	t.Run("view names are whitelisted", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetView(context.Background(), "bookings; DROP TABLE bookings", 0)

		assert.ErrorIs(t, err, model.ErrUnknownView)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func reportQuery() dto.ReportQuery {
	return dto.ReportQuery{HotelID: 1, From: "2024-03-01", To: "2024-03-31"}
}

func popeReport() model.HotelReport {
	return model.HotelReport{
		HotelID:         1,
		HotelName:       "The Pope",
		Bookings:        3,
		Revenue:         decimal.RequireFromString("1050"),
		AverageStayDays: decimal.RequireFromString("2.333"),
		UniqueGuests:    2,
	}
}

func TestStatisticsService_HotelReport(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			HotelReport(gomock.Any(), int64(1), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)).
			Return(popeReport(), true, nil)

		res, err := f.svc.HotelReport(context.Background(), reportQuery())

		require.NoError(t, err)
		assert.Equal(t, "The Pope", res.HotelName)
		assert.Equal(t, "1050.00", res.Revenue)
		assert.Equal(t, "2.33", res.AverageStayDays)
		assert.Equal(t, "2024-03-01", res.From)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().HotelReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.HotelReport{}, false, nil)

		_, err := f.svc.HotelReport(context.Background(), reportQuery())

		assert.ErrorIs(t, err, hotelModel.ErrHotelNotFound)
	})

	t.Run("period ends before it starts", func(t *testing.T) {
		f := newFixture(t)

		query := reportQuery()
		query.To = "2024-02-01"

		_, err := f.svc.HotelReport(context.Background(), query)

		assert.ErrorIs(t, err, model.ErrInvalidPeriod)
	})
}

func TestStatisticsService_ExportHotelReport(t *testing.T) {
	t.Run("uploads the report as json", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().Enabled().Return(true)
		f.repo.EXPECT().HotelReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(popeReport(), true, nil)
		f.storage.EXPECT().
			UploadFileBytes(gomock.Any(), constant.Empty, "reports", gomock.Any(), constant.ContentTypeJSON, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, directory, fileName, _ string, data []byte) (string, error) {
				assert.True(t, strings.HasPrefix(fileName, "hotel-1_2024-03-01_2024-03-31_"))
				assert.True(t, strings.HasSuffix(fileName, ".json"))

				var report dto.HotelReportResponse
				require.NoError(t, json.Unmarshal(data, &report))
				assert.Equal(t, 3, report.Bookings)

				return "https://cdn.example.com/" + directory + "/" + fileName, nil
			})

		res, err := f.svc.ExportHotelReport(context.Background(), reportQuery())

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.URL, "https://cdn.example.com/reports/hotel-1_"))
		assert.Equal(t, "The Pope", res.Report.HotelName)
	})

	t.Run("object storage disabled", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().Enabled().Return(false)

		_, err := f.svc.ExportHotelReport(context.Background(), reportQuery())

		assert.ErrorIs(t, err, model.ErrExportDisabled)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})

	t.Run("upload fails", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().Enabled().Return(true)
		f.repo.EXPECT().HotelReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(popeReport(), true, nil)
		f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("access denied"))

		_, err := f.svc.ExportHotelReport(context.Background(), reportQuery())

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
