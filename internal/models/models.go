package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role identifies which crew pool a person belongs to.
type Role string

const (
	RolePilot Role = "pilot"
	RoleGuide Role = "guide"
)

// Person is a crew member supplied by the airline snapshot.
type Person struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Role        Role      `json:"role"`
}

// SeatClass is one sellable seat category of an airline.
type SeatClass struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Aircraft is a plane in the airline's fleet.
type Aircraft struct {
	ID           uuid.UUID `json:"id"`
	Model        string    `json:"model"`
	SeatCapacity int       `json:"seatCapacity"`
}

// Label returns the display form used in aircraft pickers.
func (a Aircraft) Label() string {
	return fmt.Sprintf("%s (Cap: %d)", a.Model, a.SeatCapacity)
}

// Airport is one entry of the airport directory.
type Airport struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	City     string    `json:"city"`
	IATACode string    `json:"iataCode"`
	Country  string    `json:"country"`
}

// Label returns the display form used once an airport is selected.
func (a Airport) Label() string {
	return fmt.Sprintf("%s (%s)", a.City, a.IATACode)
}

// KnownFlightSummary is one entry of the known-flights index used for
// duplicate detection and flight-number suggestions.
type KnownFlightSummary struct {
	ID            uuid.UUID `json:"id"`
	FlightNumber  string    `json:"flightNumber"`
	DepartureTime time.Time `json:"departureTime"`
}

// AirlineSnapshot is the airline-scoped reference bundle loaded once per
// airline selection.
type AirlineSnapshot struct {
	Aircraft     []Aircraft           `json:"aircraft"`
	Pilots       []Person             `json:"pilots"`
	Guides       []Person             `json:"guides"`
	SeatClasses  []SeatClass          `json:"seatClasses"`
	KnownFlights []KnownFlightSummary `json:"knownFlights"`
	Airports     []Airport            `json:"airports"`
}

// AirportRef is the airport selection persisted on a flight.
type AirportRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// InventoryEntry is one persisted seat-class allocation of a flight.
type InventoryEntry struct {
	SeatClassID uuid.UUID `json:"seatClassId"`
	SeatCount   int       `json:"seatCount"`
	Price       float64   `json:"price"`
}

// FlightDetail is the full record of a single flight as returned by the
// flight-detail collaborator.
type FlightDetail struct {
	ID               uuid.UUID        `json:"id"`
	FlightNumber     string           `json:"flightNumber"`
	AircraftID       uuid.UUID        `json:"aircraftId"`
	DepartureTime    time.Time        `json:"departureTime"`
	ArrivalTime      time.Time        `json:"arrivalTime"`
	DepartureAirport AirportRef       `json:"departureAirport"`
	ArrivalAirport   AirportRef       `json:"arrivalAirport"`
	CrewIDs          []uuid.UUID      `json:"crewIds"`
	Inventory        []InventoryEntry `json:"inventory"`
}

// FlightSubmission is the payload sent to the submit collaborator. FlightID
// is set when updating an existing flight and nil when creating one.
type FlightSubmission struct {
	FlightID           *uuid.UUID       `json:"flightId,omitempty"`
	FlightNumber       string           `json:"flightNumber"`
	AircraftID         uuid.UUID        `json:"aircraftId"`
	DepartureTime      time.Time        `json:"departureTime"`
	ArrivalTime        time.Time        `json:"arrivalTime"`
	DepartureAirportID uuid.UUID        `json:"departureAirportId"`
	ArrivalAirportID   uuid.UUID        `json:"arrivalAirportId"`
	PilotIDs           []uuid.UUID      `json:"pilotIds"`
	GuideIDs           []uuid.UUID      `json:"guideIds"`
	Inventory          []InventoryEntry `json:"inventory"`
}

// CollisionQuery is forwarded verbatim to the server-side collision checker;
// the editor performs no overlap logic of its own.
type CollisionQuery struct {
	FlightID      *uuid.UUID  `json:"flightId,omitempty"`
	DepartureTime time.Time   `json:"departureTime"`
	ArrivalTime   time.Time   `json:"arrivalTime"`
	AircraftID    uuid.UUID   `json:"aircraftId"`
	CrewIDs       []uuid.UUID `json:"crewIds"`
}
