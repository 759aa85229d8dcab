package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hoteldash/config"
	"hoteldash/infras/otel"
	"hoteldash/infras/s3"
	hotelModel "hoteldash/internal/domains/hotel/model"
	"hoteldash/internal/domains/statistics/model"
	"hoteldash/internal/domains/statistics/model/dto"
	"hoteldash/internal/domains/statistics/repository"
	"hoteldash/shared"
	"hoteldash/shared/cache"
	"hoteldash/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetView   = "statistics:view"
	cacheGetReport = "statistics:report"
)

type Statistics interface {
	Views(ctx context.Context) dto.ViewsResponse
	GetView(ctx context.Context, view string, hotelID int64) (dto.ViewResponse, error)
	HotelReport(ctx context.Context, query dto.ReportQuery) (dto.HotelReportResponse, error)
	ExportHotelReport(ctx context.Context, query dto.ReportQuery) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo  repository.Statistics
	s3    s3.S3
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Statistics, s3 s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Statistics {
	return &serviceImpl{
		repo:  repo,
		s3:    s3,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Views(_ context.Context) (res dto.ViewsResponse) {
	for _, view := range model.Views() {
		res.Views = append(res.Views, string(view))
	}

	return res
}

func (s *serviceImpl) GetView(ctx context.Context, name string, hotelID int64) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".statistics.GetView")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	view, err := model.ParseView(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !view.HotelScoped() {
		hotelID = 0
	}

	cacheKey := shared.BuildCacheKey(cacheGetView, view, hotelID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for statistics view")

		return res, nil
	}

	rows, err := s.repo.GetView(ctx, view, hotelID)
	if err != nil {
		log.Error().Err(err).Str("view", string(view)).Msg("failed to get statistics view")

		return res, fmt.Errorf("failed to get statistics view: %w", err)
	}

	res.FromModels(view, hotelID, rows)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save statistics view to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) HotelReport(ctx context.Context, query dto.ReportQuery) (res dto.HotelReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".statistics.HotelReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to, err := query.Period()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetReport, query.HotelID, query.From, query.To)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel report")

		return res, nil
	}

	report, found, err := s.repo.HotelReport(ctx, query.HotelID, from, to)
	if err != nil {
		log.Error().Err(err).Int64("hotel_id", query.HotelID).Msg("failed to build hotel report")

		return res, fmt.Errorf("failed to build hotel report: %w", err)
	}

	if !found {
		return res, hotelModel.ErrHotelNotFound
	}

	res.FromModel(query, report)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel report to cache")
		}
	}()

	return res, nil
}

// ExportHotelReport stores the report as JSON in object storage and returns its public URL.
func (s *serviceImpl) ExportHotelReport(ctx context.Context, query dto.ReportQuery) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".statistics.ExportHotelReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.s3.Enabled() {
		return res, model.ErrExportDisabled
	}

	report, err := s.HotelReport(ctx, query)
	if err != nil {
		return res, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode hotel report")

		return res, fmt.Errorf("failed to encode hotel report: %w", err)
	}

	fileName := fmt.Sprintf("hotel-%d_%s_%s_%s.json", query.HotelID, query.From, query.To, uuid.NewString())

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, s.cfg.App.Report.Directory, fileName, constant.ContentTypeJSON, payload)
	if err != nil {
		log.Error().Err(err).Str("file_name", fileName).Msg("failed to upload hotel report")

		return res, fmt.Errorf("failed to upload hotel report: %w", err)
	}

	scope.SetAttribute("report.url", url)

	res.URL = url
	res.Report = report

	return res, nil
}
