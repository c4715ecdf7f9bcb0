package editor

import (
	"context"
	"errors"

	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/google/uuid"
)

// Collaborator is the server boundary of the editor. Every method is a
// single request/response exchange; the engine performs no retries and
// leaves session state untouched when a call fails.
type Collaborator interface {
	GetAirlineSnapshot(ctx context.Context, airlineID uuid.UUID) (*models.AirlineSnapshot, error)
	GetFlightDetail(ctx context.Context, flightID uuid.UUID) (*models.FlightDetail, error)
	SubmitFlight(ctx context.Context, submission *models.FlightSubmission) error
	DeleteFlight(ctx context.Context, flightID uuid.UUID) error
	CheckCollisions(ctx context.Context, query *models.CollisionQuery) ([]string, error)
}

var (
	// ErrBusy reports that a request is already outstanding for the same
	// target; the caller should wait for it to finish.
	ErrBusy = errors.New("a request is already in flight")

	// ErrSuperseded reports that a newer load was initiated while this one
	// was outstanding; the late result was discarded and no state changed.
	ErrSuperseded = errors.New("load superseded by a newer one")

	// ErrNoSnapshot reports an operation that needs airline reference data
	// before any snapshot has been loaded.
	ErrNoSnapshot = errors.New("no airline snapshot loaded")

	// ErrNotEditing reports a delete attempt with no flight loaded for edit.
	ErrNotEditing = errors.New("no flight is being edited")

	// ErrScheduleIncomplete reports a collision check attempted before both
	// schedule fields hold parseable timestamps.
	ErrScheduleIncomplete = errors.New("departure and arrival times are required")
)
