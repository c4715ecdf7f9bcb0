// Package availability classifies a candidate flight number against the
// known-flights index.
package availability

import (
	"strings"

	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/google/uuid"
)

// Status is the duplicate/availability classification of a flight number.
type Status string

const (
	// StatusFree means no known flight uses the number.
	StatusFree Status = "free"
	// StatusCurrentlyEditing means the number belongs to the flight being
	// edited, which is allowed to keep its own number.
	StatusCurrentlyEditing Status = "currently_editing"
	// StatusTaken means another flight already uses the number.
	StatusTaken Status = "taken"
)

// Check compares flightNumber against the index with a case-insensitive
// exact match. editingID is the flight currently being edited, or nil in
// create mode; a match on the edited flight itself is not a collision.
func Check(flightNumber string, corpus []models.KnownFlightSummary, editingID *uuid.UUID) Status {
	want := strings.TrimSpace(flightNumber)
	for _, flight := range corpus {
		if !strings.EqualFold(flight.FlightNumber, want) {
			continue
		}
		if editingID != nil && *editingID == flight.ID {
			return StatusCurrentlyEditing
		}
		return StatusTaken
	}
	return StatusFree
}
