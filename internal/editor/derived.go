package editor

import (
	"strings"
	"time"

	"github.com/gh-romi/CaelusDB/internal/availability"
	"github.com/gh-romi/CaelusDB/internal/inventory"
	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/gh-romi/CaelusDB/internal/schedule"
)

// Derived is the display state computed from the session in one
// deterministic pass after every mutation. It is a plain value; rendering
// reads from it and never the reverse.
type Derived struct {
	Interval     schedule.Result
	NumberStatus availability.Status

	Capacity      int
	Remaining     int
	CapacityLevel inventory.CapacityLevel

	// ClassChoices maps each inventory row to the seat classes it may
	// currently select.
	ClassChoices map[int][]models.SeatClass

	FlightSuggestions           []models.KnownFlightSummary
	DepartureAirportSuggestions []models.Airport
	ArrivalAirportSuggestions   []models.Airport
}

// ValidationIssue is a locally detected problem that blocks submission. It
// is recoverable editor state, never a fatal error.
type ValidationIssue struct {
	Field   string
	Message string
}

func (s *Session) recomputeDerived() {
	d := Derived{
		Interval:     schedule.Validate(s.departureField, s.arrivalField),
		ClassChoices: make(map[int][]models.SeatClass),
	}

	if aircraft := s.Aircraft(); aircraft != nil {
		d.Capacity = aircraft.SeatCapacity
	}
	if s.inv != nil {
		d.Remaining = s.inv.Remaining(d.Capacity)
		for _, row := range s.inv.Rows() {
			d.ClassChoices[row.ID] = s.inv.AvailableClassesFor(row.ID)
		}
	} else {
		d.Remaining = d.Capacity
	}
	d.CapacityLevel = inventory.LevelFor(d.Remaining)

	if s.snapshot != nil {
		if strings.TrimSpace(s.flightNumber) != "" {
			d.NumberStatus = availability.Check(s.flightNumber, s.snapshot.KnownFlights, s.editingID)
		}
		d.FlightSuggestions = s.flightMatcher.Match(s.flightNumber, s.snapshot.KnownFlights)
		d.DepartureAirportSuggestions = s.airportMatcher.Match(s.departureQuery, s.snapshot.Airports)
		d.ArrivalAirportSuggestions = s.airportMatcher.Match(s.arrivalQuery, s.snapshot.Airports)
	}

	s.derived = d
}

// BuildSubmission re-validates the whole session and serializes it into the
// shape the submit collaborator expects. The checks run fresh here rather
// than trusting earlier derived state, since the snapshot may have changed
// since the last recompute. A non-empty issue list means no payload.
func (s *Session) BuildSubmission() (*models.FlightSubmission, []ValidationIssue) {
	var issues []ValidationIssue
	add := func(field, message string) {
		issues = append(issues, ValidationIssue{Field: field, Message: message})
	}

	if s.snapshot == nil {
		add("airline", "no airline data loaded")
		return nil, issues
	}

	number := strings.TrimSpace(s.flightNumber)
	if number == "" {
		add("flightNumber", "flight number is required")
	} else if availability.Check(number, s.snapshot.KnownFlights, s.editingID) == availability.StatusTaken {
		add("flightNumber", "flight number is already used by another flight")
	}

	interval := schedule.Validate(s.departureField, s.arrivalField)
	if !interval.Valid {
		add("schedule", "arrival must be after departure")
	}

	if s.aircraftID == nil {
		add("aircraft", "an aircraft must be selected")
	}
	if s.departureAirport == nil {
		add("departureAirport", "a departure airport must be selected")
	}
	if s.arrivalAirport == nil {
		add("arrivalAirport", "an arrival airport must be selected")
	}

	capacity := 0
	if aircraft := s.Aircraft(); aircraft != nil {
		capacity = aircraft.SeatCapacity
	}
	if s.inv.Remaining(capacity) < 0 {
		add("inventory", "allocated seats exceed aircraft capacity")
	}
	for _, row := range s.inv.Rows() {
		if row.ClassID == nil {
			add("inventory", "every inventory row needs a seat class")
		}
		if row.SeatCount < 1 {
			add("inventory", "every inventory row needs at least one seat")
		}
	}

	if len(issues) > 0 {
		return nil, issues
	}

	departure, _ := parseField(s.departureField)
	arrival, _ := parseField(s.arrivalField)
	submission := &models.FlightSubmission{
		FlightID:           s.EditingID(),
		FlightNumber:       number,
		AircraftID:         *s.aircraftID,
		DepartureTime:      departure,
		ArrivalTime:        arrival,
		DepartureAirportID: s.departureAirport.ID,
		ArrivalAirportID:   s.arrivalAirport.ID,
		PilotIDs:           s.pilots.AssignedIDs(),
		GuideIDs:           s.guides.AssignedIDs(),
		Inventory:          s.inv.Entries(),
	}
	return submission, nil
}

func parseField(raw string) (time.Time, bool) {
	return schedule.Parse(raw)
}
