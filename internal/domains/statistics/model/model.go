package model

import (
	"hoteldash/shared/failure"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const EntityName = "statistics"

var (
	ErrUnknownView    = failure.NotFound("statistics view not found")
	ErrExportDisabled = failure.ServiceUnavailable("report export is disabled")
	ErrInvalidPeriod  = failure.BadRequestFromString("to must be after from")
)

// View is the public name of a read-only projection.
type View string

const (
	ViewMonthlyRevenue     View = "monthly-revenue"
	ViewOccupancy          View = "occupancy"
	ViewPopularRoomTypes   View = "popular-room-types"
	ViewVIPGuests          View = "vip-guests"
	ViewBookingTrends      View = "booking-trends"
	ViewCurrentBookings    View = "current-bookings"
	ViewBikeStatistics     View = "bike-statistics"
	ViewConferenceOverview View = "conference-overview"
	ViewStaffOverview      View = "staff-overview"
)

type projection struct {
	relation    string
	hotelScoped bool
}

// projections is the only place a view name becomes SQL.
var projections = map[View]projection{
	ViewMonthlyRevenue:     {relation: "v_hotel_monthly_revenue", hotelScoped: true},
	ViewOccupancy:          {relation: "v_hotel_occupancy", hotelScoped: true},
	ViewPopularRoomTypes:   {relation: "v_popular_room_types", hotelScoped: true},
	ViewVIPGuests:          {relation: "v_vip_guests"},
	ViewBookingTrends:      {relation: "v_booking_trends"},
	ViewCurrentBookings:    {relation: "v_current_bookings", hotelScoped: true},
	ViewBikeStatistics:     {relation: "v_bike_statistics"},
	ViewConferenceOverview: {relation: "v_conference_overview", hotelScoped: true},
	ViewStaffOverview:      {relation: "v_staff_overview", hotelScoped: true},
}

func ParseView(value string) (View, error) {
	view := View(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := projections[view]; !ok {
		return "", ErrUnknownView
	}

	return view, nil
}

// Relation is the database view backing v.
func (v View) Relation() string {
	return projections[v].relation
}

// HotelScoped reports whether the view has a hotel_id column to filter on.
func (v View) HotelScoped() bool {
	return projections[v].hotelScoped
}

func Views() []View {
	views := make([]View, 0, len(projections))
	for view := range projections {
		views = append(views, view)
	}

	sort.Slice(views, func(i, j int) bool { return views[i] < views[j] })

	return views
}

// Row is one record of a projection keyed by column name.
type Row map[string]any

// HotelReport summarises a hotel's active bookings that start and end inside a period.
type HotelReport struct {
	HotelID         int64           `db:"hotel_id"`
	HotelName       string          `db:"hotel_name"`
	Bookings        int             `db:"bookings"`
	Revenue         decimal.Decimal `db:"revenue"`
	AverageStayDays decimal.Decimal `db:"average_stay_days"`
	UniqueGuests    int             `db:"unique_guests"`
}
