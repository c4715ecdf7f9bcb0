package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gh-romi/CaelusDB/internal/client"
	"github.com/gh-romi/CaelusDB/internal/editor"
	"github.com/google/uuid"
)

const DefaultBaseURL = "http://localhost:8000"

func main() {
	// Get configuration from environment
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	airlineRaw := os.Getenv("AIRLINE_ID")
	if airlineRaw == "" {
		log.Fatal("AIRLINE_ID is required")
	}
	airlineID, err := uuid.Parse(airlineRaw)
	if err != nil {
		log.Fatalf("Invalid AIRLINE_ID: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session := editor.NewSession(client.New(baseURL, nil))

	log.Printf("Loading airline data from %s", baseURL)
	if err := session.LoadAirline(ctx, airlineID); err != nil {
		log.Fatalf("Failed to load airline data: %v", err)
	}

	fmt.Printf("Aircraft:\n")
	for _, aircraft := range session.AircraftChoices() {
		fmt.Printf("  %s\n", aircraft.Label())
	}
	fmt.Printf("Pilots available: %d\n", len(session.Pilots().Available()))
	fmt.Printf("Guides available: %d\n", len(session.Guides().Available()))

	if number := os.Getenv("FLIGHT_NUMBER"); number != "" {
		if err := session.LoadFlightByNumber(ctx, number); err != nil {
			log.Fatalf("Failed to load flight %s: %v", number, err)
		}
		derived := session.Derived()
		fmt.Printf("Editing flight %s (number status: %s)\n", number, derived.NumberStatus)
		if derived.Interval.Valid {
			fmt.Printf("Duration: %dh %dm\n", derived.Interval.Hours, derived.Interval.Minutes)
		}
		fmt.Printf("Capacity %d, remaining %d (%s)\n",
			derived.Capacity, derived.Remaining, derived.CapacityLevel)

		warnings, err := session.CheckCollisions(ctx)
		if err != nil {
			log.Fatalf("Collision check failed: %v", err)
		}
		if len(warnings) == 0 {
			fmt.Println("No collisions.")
		}
		for _, warning := range warnings {
			fmt.Printf("Warning: %s\n", warning)
		}
	}
}
