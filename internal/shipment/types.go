package shipment

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the wall-clock layout used for departure/arrival fields.
// The downstream dashboard parses these without a zone.
const TimeLayout = "2006-01-02T15:04:05"

type Status string

const (
	StatusInTransit Status = "in_transit"
	StatusAvailable Status = "available"
	StatusBroken    Status = "broken"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInTransit, StatusAvailable, StatusBroken:
		return true
	}
	return false
}

// Collection is the top-level fixture document.
type Collection struct {
	Shipments []Shipment `json:"shipments"`
}

type Shipment struct {
	ID                     string     `json:"id"`
	Company                string     `json:"company"`
	SupportPhone           string     `json:"support_phone,omitempty"`
	Origin                 Place      `json:"origin"`
	Destination            Place      `json:"destination"`
	DepartureTime          Timestamp  `json:"departure_time"`
	EstimatedArrivalTime   Timestamp  `json:"estimated_arrival_time"`
	DistanceKm             float64    `json:"distance_km"`
	EstimatedDurationHours float64    `json:"estimated_duration_hours"`
	Status                 Status     `json:"status"`
	Progress               int        `json:"progress"`
	CurrentPosition        Position   `json:"current_position"`
	Orders                 []Order    `json:"orders"`
	Route                  []Waypoint `json:"route"`

	// fleet-only
	Truck     *Truck `json:"truck,omitempty"`
	Region    string `json:"region,omitempty"`
	Warehouse string `json:"warehouse,omitempty"`
}

type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Waypoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Order struct {
	OrderID  string `json:"orderId"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type Truck struct {
	LicensePlate string `json:"licensePlate"`
	DriverName   string `json:"driverName"`
	DriverPhone  string `json:"driverPhone"`
	TruckClass   string `json:"truckClass"`
	Region       int    `json:"region"`
	Depot        string `json:"depot"`
}

// Timestamp marshals as a zone-less local wall-clock time (TimeLayout).
type Timestamp struct{ time.Time }

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
