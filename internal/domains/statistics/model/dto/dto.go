package dto

import (
	"hoteldash/internal/domains/statistics/model"
	"hoteldash/shared/failure"
	"hoteldash/shared/timezone"
	"time"
)

type ViewResponse struct {
	View    string      `json:"view"`
	HotelID int64       `json:"hotel_id,omitempty"`
	Rows    []model.Row `json:"rows"`
}

func (r *ViewResponse) FromModels(view model.View, hotelID int64, rows []model.Row) {
	r.View = string(view)
	r.HotelID = hotelID

	r.Rows = rows
	if r.Rows == nil {
		r.Rows = []model.Row{}
	}
}

type ViewsResponse struct {
	Views []string `json:"views"`
}

// ReportQuery selects a hotel and the period [From, To] a report covers.
type ReportQuery struct {
	HotelID int64  `json:"hotel_id" validate:"required,gt=0"`
	From    string `json:"from"     validate:"required,dateonly" example:"2024-03-01"`
	To      string `json:"to"       validate:"required,dateonly" example:"2024-03-31"`
}

func (q ReportQuery) Period() (from, to time.Time, err error) {
	from, err = timezone.ParseDate(q.From)
	if err != nil {
		return from, to, failure.BadRequestFromString("from must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	to, err = timezone.ParseDate(q.To)
	if err != nil {
		return from, to, failure.BadRequestFromString("to must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !to.After(from) {
		return from, to, model.ErrInvalidPeriod
	}

	return from, to, nil
}

type HotelReportResponse struct {
	HotelID         int64  `json:"hotel_id"`
	HotelName       string `json:"hotel_name"`
	From            string `json:"from"`
	To              string `json:"to"`
	Bookings        int    `json:"bookings"`
	Revenue         string `json:"revenue"           example:"2250.00"`
	AverageStayDays string `json:"average_stay_days" example:"2.50"`
	UniqueGuests    int    `json:"unique_guests"`
}

func (r *HotelReportResponse) FromModel(query ReportQuery, report model.HotelReport) {
	r.HotelID = report.HotelID
	r.HotelName = report.HotelName
	r.From = query.From
	r.To = query.To
	r.Bookings = report.Bookings
	r.Revenue = report.Revenue.StringFixed(2)
	r.AverageStayDays = report.AverageStayDays.StringFixed(2)
	r.UniqueGuests = report.UniqueGuests
}

type ExportResponse struct {
	URL    string              `json:"url"`
	Report HotelReportResponse `json:"report"`
}
