package mocks

import (
	"context"

	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCollaborator is a mock implementation of editor.Collaborator
type MockCollaborator struct {
	mock.Mock
}

func (m *MockCollaborator) GetAirlineSnapshot(ctx context.Context, airlineID uuid.UUID) (*models.AirlineSnapshot, error) {
	args := m.Called(ctx, airlineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AirlineSnapshot), args.Error(1)
}

func (m *MockCollaborator) GetFlightDetail(ctx context.Context, flightID uuid.UUID) (*models.FlightDetail, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightDetail), args.Error(1)
}

func (m *MockCollaborator) SubmitFlight(ctx context.Context, submission *models.FlightSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockCollaborator) DeleteFlight(ctx context.Context, flightID uuid.UUID) error {
	args := m.Called(ctx, flightID)
	return args.Error(0)
}

func (m *MockCollaborator) CheckCollisions(ctx context.Context, query *models.CollisionQuery) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
