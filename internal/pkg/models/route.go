package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Stop is a named point along a route
type Stop struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Geohash   string  `json:"geohash,omitempty"`
}

// Stops is an ordered stop list stored as JSONB
type Stops []Stop

func (s Stops) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

func (s *Stops) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = Stops{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Stops", src)
	}
	var out Stops
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode stops: %w", err)
	}
	*s = out
	return nil
}

// Route is a numbered line served by trips
type Route struct {
	RouteID     string    `json:"routeId" db:"route_id"`
	RouteNumber string    `json:"routeNumber" db:"route_number"`
	Name        string    `json:"name" db:"name"`
	Origin      string    `json:"origin" db:"origin"`
	Destination string    `json:"destination" db:"destination"`
	Stops       Stops     `json:"stops" db:"stops"`
	BaseFare    float64   `json:"baseFare" db:"base_fare"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CreateRouteRequest is the payload for adding a route
type CreateRouteRequest struct {
	RouteNumber string  `json:"routeNumber" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Origin      string  `json:"origin" validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	Stops       []Stop  `json:"stops" validate:"dive"`
	BaseFare    float64 `json:"baseFare" validate:"gte=0"`
}
