package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hoteldash/infras/otel"
	"hoteldash/infras/postgres"
	"hoteldash/internal/domains/statistics/model"
	"hoteldash/shared/constant"
	"hoteldash/shared/logger"
	"hoteldash/shared/timezone"
	"time"
)

// hotelReportQuery counts active bookings that start on or after :from and end
// on or before :to. The LEFT JOIN keeps the hotel row when nothing matched.
const hotelReportQuery = `SELECT hotels.hotel_id, hotels.name AS hotel_name,
	COUNT(DISTINCT bookings.booking_id) AS bookings,
	COALESCE(SUM(bookings.total_price), 0) AS revenue,
	COALESCE(ROUND(AVG(bookings.check_out - bookings.check_in), 2), 0) AS average_stay_days,
	COUNT(DISTINCT bookings.guest_id) AS unique_guests
FROM hotels
LEFT JOIN bookings ON bookings.hotel_id = hotels.hotel_id
	AND bookings.status <> 'cancelled'
	AND bookings.check_in >= :from
	AND bookings.check_out <= :to
WHERE hotels.hotel_id = :hotel_id
GROUP BY hotels.hotel_id, hotels.name`

type Statistics interface {
	GetView(ctx context.Context, view model.View, hotelID int64) ([]model.Row, error)
	HotelReport(ctx context.Context, hotelID int64, from, to time.Time) (model.HotelReport, bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Statistics {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// GetView reads a whole projection. hotelID > 0 narrows hotel scoped views.
func (r *repositoryImpl) GetView(ctx context.Context, view model.View, hotelID int64) (res []model.Row, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".statistics.GetView")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	relation := view.Relation()
	if relation == constant.Empty {
		return nil, model.ErrUnknownView
	}

	query := "SELECT * FROM " + relation
	args := []any{}

	if hotelID > 0 && view.HotelScoped() {
		query += " WHERE hotel_id = $1"
		args = append(args, hotelID)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := r.db.Read.QueryxContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to query view %s: %w", relation, err)
	}
	defer rows.Close()

	res = []model.Row{}

	for rows.Next() {
		row := map[string]any{}
		if err = rows.MapScan(row); err != nil {
			logger.ErrorWithStack(err)

			return nil, fmt.Errorf("failed to scan view %s: %w", relation, err)
		}

		res = append(res, normalize(row))
	}

	if err = rows.Err(); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to read view %s: %w", relation, err)
	}

	return res, nil
}

func (r *repositoryImpl) HotelReport(ctx context.Context, hotelID int64, from, to time.Time) (report model.HotelReport, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".statistics.HotelReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, hotelReportQuery)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, hotelReportQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return report, false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{
		"hotel_id": hotelID,
		"from":     from,
		"to":       to,
	}

	err = prepare.GetContext(ctx, &report, args)
	if errors.Is(err, sql.ErrNoRows) {
		return report, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return report, false, fmt.Errorf("failed to build hotel report: %w", err)
	}

	return report, true, nil
}

// normalize turns driver values into JSON friendly ones: numerics arrive as
// bytes and calendar dates as midnight timestamps.
func normalize(row map[string]any) model.Row {
	out := make(model.Row, len(row))

	for column, value := range row {
		switch v := value.(type) {
		case []byte:
			out[column] = string(v)
		case time.Time:
			out[column] = timezone.FormatDate(v)
		default:
			out[column] = v
		}
	}

	return out
}
