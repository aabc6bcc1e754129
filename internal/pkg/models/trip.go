package models

import (
	"database/sql/driver"
	"time"
)

// TripStatus represents the schedule state of a trip
type TripStatus string

const (
	TripStatusScheduled  TripStatus = "SCHEDULED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusDelayed    TripStatus = "DELAYED"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// TripStatuses lists every trip status
var TripStatuses = []TripStatus{
	TripStatusScheduled,
	TripStatusInProgress,
	TripStatusDelayed,
	TripStatusCompleted,
	TripStatusCancelled,
}

// ParseTripStatus converts a canonical name into a TripStatus
func ParseTripStatus(s string) (TripStatus, error) {
	return parseEnum("trip status", s, TripStatuses)
}

func (s TripStatus) IsValid() bool {
	_, err := ParseTripStatus(string(s))
	return err == nil
}

func (s TripStatus) String() string { return string(s) }

func (s TripStatus) Value() (driver.Value, error) {
	if _, err := ParseTripStatus(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *TripStatus) Scan(src interface{}) error {
	v, err := scanEnum("trip status", src, TripStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *TripStatus) UnmarshalText(text []byte) error {
	v, err := ParseTripStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Trip represents a scheduled run of a route
type Trip struct {
	TripID             string     `json:"tripId" db:"trip_id"`
	RouteID            string     `json:"routeId" db:"route_id"`
	RouteNumber        string     `json:"routeNumber" db:"route_number"`
	ScheduledDeparture time.Time  `json:"scheduledDeparture" db:"scheduled_departure"`
	ScheduledArrival   time.Time  `json:"scheduledArrival" db:"scheduled_arrival"`
	ActualDeparture    *time.Time `json:"actualDeparture,omitempty" db:"actual_departure"`
	ActualArrival      *time.Time `json:"actualArrival,omitempty" db:"actual_arrival"`
	TotalSeats         int        `json:"totalSeats" db:"total_seats"`
	AvailableSeats     int        `json:"availableSeats" db:"available_seats"`
	Fare               float64    `json:"fare" db:"fare"`
	Status             TripStatus `json:"status" db:"status"`
	DelayReason        string     `json:"delayReason,omitempty" db:"delay_reason"`
	DelayMinutes       int        `json:"delayMinutes" db:"delay_minutes"`
	DriverName         string     `json:"driverName,omitempty" db:"driver_name"`
	VehicleID          string     `json:"vehicleId,omitempty" db:"vehicle_id"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}

// CreateTripRequest is the payload for scheduling a new trip
type CreateTripRequest struct {
	RouteID            string    `json:"routeId" validate:"required"`
	ScheduledDeparture time.Time `json:"scheduledDeparture" validate:"required"`
	ScheduledArrival   time.Time `json:"scheduledArrival" validate:"required,gtfield=ScheduledDeparture"`
	TotalSeats         int       `json:"totalSeats" validate:"required,gt=0"`
	DriverName         string    `json:"driverName"`
	VehicleID          string    `json:"vehicleId"`
}

// TripUpdate carries the fields an update may change; nil means unchanged
type TripUpdate struct {
	Status             *TripStatus `json:"status,omitempty"`
	ScheduledDeparture *time.Time  `json:"scheduledDeparture,omitempty"`
	ScheduledArrival   *time.Time  `json:"scheduledArrival,omitempty"`
	ActualDeparture    *time.Time  `json:"actualDeparture,omitempty"`
	ActualArrival      *time.Time  `json:"actualArrival,omitempty"`
	DelayReason        *string     `json:"delayReason,omitempty"`
	DelayMinutes       *int        `json:"delayMinutes,omitempty" validate:"omitempty,gte=0"`
	DriverName         *string     `json:"driverName,omitempty"`
	VehicleID          *string     `json:"vehicleId,omitempty"`
}

// Apply copies the set fields of u onto trip
func (u TripUpdate) Apply(trip *Trip) {
	if u.Status != nil {
		trip.Status = *u.Status
	}
	if u.ScheduledDeparture != nil {
		trip.ScheduledDeparture = *u.ScheduledDeparture
	}
	if u.ScheduledArrival != nil {
		trip.ScheduledArrival = *u.ScheduledArrival
	}
	if u.ActualDeparture != nil {
		trip.ActualDeparture = u.ActualDeparture
	}
	if u.ActualArrival != nil {
		trip.ActualArrival = u.ActualArrival
	}
	if u.DelayReason != nil {
		trip.DelayReason = *u.DelayReason
	}
	if u.DelayMinutes != nil {
		trip.DelayMinutes = *u.DelayMinutes
	}
	if u.DriverName != nil {
		trip.DriverName = *u.DriverName
	}
	if u.VehicleID != nil {
		trip.VehicleID = *u.VehicleID
	}
}

// DelayTripRequest marks a trip as delayed
type DelayTripRequest struct {
	Minutes int    `json:"minutes" validate:"required,gt=0"`
	Reason  string `json:"reason" validate:"required"`
}

// CancelTripRequest cancels a trip
type CancelTripRequest struct {
	Reason string `json:"reason"`
}

// UpdateTripStatusRequest moves a trip to a new status
type UpdateTripStatusRequest struct {
	Status TripStatus `json:"status" validate:"required"`
}

// TripFilter narrows trip listings
type TripFilter struct {
	RouteID string
	Status  TripStatus
}

// PublishResult reports the outcome of a fire-and-forget publication
type PublishResult struct {
	Success      bool   `json:"success"`
	Skipped      bool   `json:"skipped,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
