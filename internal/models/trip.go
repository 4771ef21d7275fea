package models

import (
	"github.com/twpayne/go-polyline"
)

// Trip is the aggregate returned by the trip planning backend. The rendering
// engine receives it read-only and never mutates it.
type Trip struct {
	ID                      string         `json:"id" validate:"required"`
	Status                  string         `json:"status"`
	TotalDistanceMiles      float64        `json:"total_distance_miles"`
	EstimatedDriveTimeHours float64        `json:"estimated_drive_time_hours"`
	RequiresMultipleDays    bool           `json:"requires_multiple_days"`
	CurrentLocation         GeoPoint       `json:"current_location"`
	PickupLocation          GeoPoint       `json:"pickup_location"`
	DropoffLocation         GeoPoint       `json:"dropoff_location"`
	RouteCoordinates        [][]float64    `json:"route_coordinates"`
	RoutePolyline           string         `json:"route_polyline,omitempty"`
	RestStops               []RestStop     `json:"rest_stops"`
	EldLogs                 []DutyLogEntry `json:"eld_logs"`
	DriverInfo              DriverInfo     `json:"driver_info"`
}

// RestStop is a planned rest, break, or fuel stop along the route.
// The engine consumes it only for marker placement and summary listing.
// Location is a pointer so that a stop whose location is absent from the
// payload is distinguishable from one at (0,0); locationless stops are
// skipped on the map.
type RestStop struct {
	ID                     string    `json:"id"`
	StopType               string    `json:"stop_type"`
	Location               *GeoPoint `json:"location"`
	ScheduledArrival       string   `json:"scheduled_arrival"`
	DurationHours          float64  `json:"duration_hours"`
	DistanceFromStartMiles float64  `json:"distance_from_start_miles"`
	IsMandatory            bool     `json:"is_mandatory"`
	HosReason              string   `json:"hos_reason"`
}

// DutyLogEntry is one duty-status interval within a single calendar day.
// Entries never span midnight; start_time <= end_time is assumed upstream
// and not re-validated here. DurationHours is authoritative: the backend's
// HOS accounting owns it, and the renderer never recomputes it from the
// start/end times.
type DutyLogEntry struct {
	ID            string     `json:"id"`
	LogDate       string     `json:"log_date"`
	DutyStatus    DutyStatus `json:"duty_status"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	DurationHours float64    `json:"duration_hours"`
	Remarks       string     `json:"remarks,omitempty"`
}

// DriverInfo identifies the driver on the log sheet header.
type DriverInfo struct {
	FullName          string  `json:"full_name"`
	LicenseNumber     string  `json:"license_number"`
	CurrentCycleHours float64 `json:"current_cycle_hours"`
}

// RoutePoints resolves the effective route path for drawing.
//
// Explicit route_coordinates win. When they are absent, route_polyline is
// decoded as a Google encoded polyline. A malformed pair is skipped; a
// polyline that fails to decode yields an empty route, which downstream
// renders as the empty-data placeholder rather than an error.
func (t *Trip) RoutePoints() []GeoPoint {
	if t == nil {
		return nil
	}
	if len(t.RouteCoordinates) > 0 {
		points := make([]GeoPoint, 0, len(t.RouteCoordinates))
		for _, pair := range t.RouteCoordinates {
			if len(pair) < 2 {
				continue
			}
			points = append(points, GeoPoint{Lat: pair[0], Lng: pair[1]})
		}
		return points
	}
	if t.RoutePolyline != "" {
		coords, _, err := polyline.DecodeCoords([]byte(t.RoutePolyline))
		if err != nil {
			return nil
		}
		points := make([]GeoPoint, 0, len(coords))
		for _, pair := range coords {
			points = append(points, GeoPoint{Lat: pair[0], Lng: pair[1]})
		}
		return points
	}
	return nil
}

// DriverName returns the driver's display name, falling back to
// UnknownValue when the backend did not supply one.
func (t *Trip) DriverName() string {
	if t == nil || t.DriverInfo.FullName == "" {
		return UnknownValue
	}
	return t.DriverInfo.FullName
}

// LicenseNumber returns the driver's license number, falling back to
// UnknownValue when absent.
func (t *Trip) LicenseNumber() string {
	if t == nil || t.DriverInfo.LicenseNumber == "" {
		return UnknownValue
	}
	return t.DriverInfo.LicenseNumber
}
