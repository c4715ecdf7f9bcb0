// Package editor holds the in-memory state of one flight being composed and
// keeps its crew, inventory, schedule and flight-number state consistent
// after every edit.
package editor

import (
	"context"
	"strconv"
	"strings"

	"github.com/gh-romi/CaelusDB/internal/crew"
	"github.com/gh-romi/CaelusDB/internal/inventory"
	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/gh-romi/CaelusDB/internal/suggest"
	"github.com/google/uuid"
)

// Mode distinguishes composing a new flight from editing an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Session is the editing state for one flight. It owns all sub-state for its
// lifetime and re-derives display state synchronously after every mutation.
// A Session is not safe for concurrent use; it models a single operator.
type Session struct {
	collab Collaborator

	airlineID *uuid.UUID
	snapshot  *models.AirlineSnapshot
	editingID *uuid.UUID

	flightNumber     string
	aircraftID       *uuid.UUID
	departureField   string
	arrivalField     string
	departureAirport *models.AirportRef
	arrivalAirport   *models.AirportRef
	departureQuery   string
	arrivalQuery     string

	pilots *crew.DualPool
	guides *crew.DualPool
	inv    *inventory.Manager

	flightMatcher  *suggest.Matcher[models.KnownFlightSummary]
	airportMatcher *suggest.Matcher[models.Airport]

	derived Derived

	loadSeq      uint64
	pendingLoads map[uuid.UUID]bool
	opInFlight   bool
}

// NewSession creates an empty session backed by the given collaborator.
func NewSession(collab Collaborator) *Session {
	s := &Session{
		collab:       collab,
		pendingLoads: make(map[uuid.UUID]bool),
		flightMatcher: suggest.NewMatcher(1,
			func(f models.KnownFlightSummary) string { return f.FlightNumber }),
		airportMatcher: suggest.NewMatcher(2,
			func(a models.Airport) string { return a.Name },
			func(a models.Airport) string { return a.City },
			func(a models.Airport) string { return a.IATACode },
			func(a models.Airport) string { return a.Country }),
	}
	s.recomputeDerived()
	return s
}

// LoadAirline fetches the airline's reference snapshot and replaces the
// entire session state with a fresh one. A late result of a load that was
// superseded by a newer one is discarded.
func (s *Session) LoadAirline(ctx context.Context, airlineID uuid.UUID) error {
	if s.pendingLoads[airlineID] {
		return ErrBusy
	}
	seq := s.beginLoad(airlineID)
	snapshot, err := s.collab.GetAirlineSnapshot(ctx, airlineID)
	s.endLoad(airlineID)
	if err != nil {
		return err
	}
	if seq != s.loadSeq {
		return ErrSuperseded
	}
	s.applySnapshot(airlineID, snapshot)
	return nil
}

// LoadFlight fetches one flight's detail and hydrates the session into edit
// mode for it, fully replacing any crew, inventory, schedule and aircraft
// state carried over from before.
func (s *Session) LoadFlight(ctx context.Context, flightID uuid.UUID) error {
	if s.snapshot == nil {
		return ErrNoSnapshot
	}
	if s.pendingLoads[flightID] {
		return ErrBusy
	}
	seq := s.beginLoad(flightID)
	detail, err := s.collab.GetFlightDetail(ctx, flightID)
	s.endLoad(flightID)
	if err != nil {
		return err
	}
	if seq != s.loadSeq {
		return ErrSuperseded
	}
	s.applyFlightDetail(detail)
	return nil
}

// LoadFlightByNumber resolves a flight number against the known-flights
// index and loads the matching flight. An unknown number is reported as
// models.ErrNotFound without any collaborator call.
func (s *Session) LoadFlightByNumber(ctx context.Context, flightNumber string) error {
	if s.snapshot == nil {
		return ErrNoSnapshot
	}
	want := strings.TrimSpace(flightNumber)
	for _, known := range s.snapshot.KnownFlights {
		if strings.EqualFold(known.FlightNumber, want) {
			return s.LoadFlight(ctx, known.ID)
		}
	}
	return models.ErrNotFound
}

// Submit re-validates the current state and, if clean, sends it to the
// submit collaborator. A non-empty issue list means nothing was sent.
func (s *Session) Submit(ctx context.Context) ([]ValidationIssue, error) {
	submission, issues := s.BuildSubmission()
	if len(issues) > 0 {
		return issues, nil
	}
	if s.opInFlight {
		return nil, ErrBusy
	}
	s.opInFlight = true
	err := s.collab.SubmitFlight(ctx, submission)
	s.opInFlight = false
	return nil, err
}

// Delete asks the collaborator to delete the flight being edited.
func (s *Session) Delete(ctx context.Context) error {
	if s.editingID == nil {
		return ErrNotEditing
	}
	if s.opInFlight {
		return ErrBusy
	}
	s.opInFlight = true
	err := s.collab.DeleteFlight(ctx, *s.editingID)
	s.opInFlight = false
	return err
}

// CheckCollisions forwards the current schedule, aircraft and crew to the
// server-side collision checker and returns its warnings verbatim.
func (s *Session) CheckCollisions(ctx context.Context) ([]string, error) {
	departure, ok := parseField(s.departureField)
	if !ok {
		return nil, ErrScheduleIncomplete
	}
	arrival, ok := parseField(s.arrivalField)
	if !ok {
		return nil, ErrScheduleIncomplete
	}
	if s.opInFlight {
		return nil, ErrBusy
	}
	query := &models.CollisionQuery{
		FlightID:      s.editingID,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		CrewIDs:       s.mergedCrewIDs(),
	}
	if s.aircraftID != nil {
		query.AircraftID = *s.aircraftID
	}
	s.opInFlight = true
	warnings, err := s.collab.CheckCollisions(ctx, query)
	s.opInFlight = false
	return warnings, err
}

// --- Mutators. Each one re-derives display state before returning. ---

// SetFlightNumber updates the flight-number field.
func (s *Session) SetFlightNumber(number string) {
	s.flightNumber = number
	s.recomputeDerived()
}

// SelectAircraft picks an aircraft from the snapshot (nil clears the
// selection). Changing aircraft resets the capacity baseline but keeps the
// existing inventory rows.
func (s *Session) SelectAircraft(aircraftID *uuid.UUID) bool {
	if aircraftID == nil {
		s.aircraftID = nil
		s.recomputeDerived()
		return true
	}
	if s.findAircraft(*aircraftID) == nil {
		return false
	}
	id := *aircraftID
	s.aircraftID = &id
	s.recomputeDerived()
	return true
}

// SetDepartureTime and SetArrivalTime take the raw field value; unparseable
// input simply invalidates the interval, it is not an error.
func (s *Session) SetDepartureTime(raw string) {
	s.departureField = raw
	s.recomputeDerived()
}

func (s *Session) SetArrivalTime(raw string) {
	s.arrivalField = raw
	s.recomputeDerived()
}

// SetDepartureAirportQuery updates the departure airport search text.
func (s *Session) SetDepartureAirportQuery(query string) {
	s.departureQuery = query
	s.recomputeDerived()
}

// SetArrivalAirportQuery updates the arrival airport search text.
func (s *Session) SetArrivalAirportQuery(query string) {
	s.arrivalQuery = query
	s.recomputeDerived()
}

// SelectDepartureAirport picks a departure airport from the directory.
func (s *Session) SelectDepartureAirport(airportID uuid.UUID) bool {
	airport := s.findAirport(airportID)
	if airport == nil {
		return false
	}
	s.departureAirport = &models.AirportRef{ID: airport.ID, Name: airport.Label()}
	s.departureQuery = airport.Label()
	s.recomputeDerived()
	return true
}

// SelectArrivalAirport picks an arrival airport from the directory.
func (s *Session) SelectArrivalAirport(airportID uuid.UUID) bool {
	airport := s.findAirport(airportID)
	if airport == nil {
		return false
	}
	s.arrivalAirport = &models.AirportRef{ID: airport.ID, Name: airport.Label()}
	s.arrivalQuery = airport.Label()
	s.recomputeDerived()
	return true
}

// ToggleCrew moves a person of the given role between the available and
// assigned pools.
func (s *Session) ToggleCrew(role models.Role, personID uuid.UUID) bool {
	pool := s.pool(role)
	if pool == nil {
		return false
	}
	moved := pool.Toggle(personID)
	if moved {
		s.recomputeDerived()
	}
	return moved
}

// AddInventoryRow appends a blank inventory row and returns its id, or -1
// before a snapshot is loaded.
func (s *Session) AddInventoryRow() int {
	if s.inv == nil {
		return -1
	}
	rowID := s.inv.AddRow(nil, 0, 0)
	s.recomputeDerived()
	return rowID
}

// RemoveInventoryRow deletes a row, returning its seat class to the other
// rows' candidate lists.
func (s *Session) RemoveInventoryRow(rowID int) bool {
	if s.inv == nil || !s.inv.RemoveRow(rowID) {
		return false
	}
	s.recomputeDerived()
	return true
}

// SetInventoryClass sets a row's seat class. Callers should offer only the
// classes listed in Derived.ClassChoices for the row.
func (s *Session) SetInventoryClass(rowID int, classID *uuid.UUID) bool {
	if s.inv == nil || !s.inv.SetClass(rowID, classID) {
		return false
	}
	s.recomputeDerived()
	return true
}

// SetInventoryCountField updates a row's seat count from the raw field
// value; empty or unparseable input counts as 0.
func (s *Session) SetInventoryCountField(rowID int, raw string) bool {
	if s.inv == nil {
		return false
	}
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || count < 0 {
		count = 0
	}
	if !s.inv.SetCount(rowID, count) {
		return false
	}
	s.recomputeDerived()
	return true
}

// SetInventoryPriceField updates a row's price from the raw field value;
// empty or unparseable input counts as 0.
func (s *Session) SetInventoryPriceField(rowID int, raw string) bool {
	if s.inv == nil {
		return false
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price < 0 {
		price = 0
	}
	if !s.inv.SetPrice(rowID, price) {
		return false
	}
	s.recomputeDerived()
	return true
}

// --- Accessors for rendering. ---

// Mode reports whether the session is composing a new flight or editing an
// existing one.
func (s *Session) Mode() Mode {
	if s.editingID != nil {
		return ModeEdit
	}
	return ModeCreate
}

// EditingID returns the id of the flight being edited, or nil in create mode.
func (s *Session) EditingID() *uuid.UUID {
	if s.editingID == nil {
		return nil
	}
	id := *s.editingID
	return &id
}

// HasSnapshot reports whether airline reference data has been loaded.
func (s *Session) HasSnapshot() bool { return s.snapshot != nil }

// Busy reports whether any collaborator request is outstanding.
func (s *Session) Busy() bool { return len(s.pendingLoads) > 0 || s.opInFlight }

// FlightNumber returns the current flight-number field value.
func (s *Session) FlightNumber() string { return s.flightNumber }

// Aircraft returns the selected aircraft, or nil.
func (s *Session) Aircraft() *models.Aircraft {
	if s.aircraftID == nil {
		return nil
	}
	return s.findAircraft(*s.aircraftID)
}

// AircraftChoices returns the fleet for the aircraft picker.
func (s *Session) AircraftChoices() []models.Aircraft {
	if s.snapshot == nil {
		return nil
	}
	return s.snapshot.Aircraft
}

// CanAddInventory reports whether the add-row control should be enabled;
// rows are pointless before an aircraft sets the capacity baseline.
func (s *Session) CanAddInventory() bool {
	return s.snapshot != nil && s.aircraftID != nil
}

// Pilots returns the pilot dual pool, or nil before a snapshot is loaded.
func (s *Session) Pilots() *crew.DualPool { return s.pilots }

// Guides returns the guide dual pool, or nil before a snapshot is loaded.
func (s *Session) Guides() *crew.DualPool { return s.guides }

// InventoryRows returns the inventory rows in display order.
func (s *Session) InventoryRows() []inventory.Row {
	if s.inv == nil {
		return nil
	}
	return s.inv.Rows()
}

// DepartureAirport returns the selected departure airport, or nil.
func (s *Session) DepartureAirport() *models.AirportRef { return copyRef(s.departureAirport) }

// ArrivalAirport returns the selected arrival airport, or nil.
func (s *Session) ArrivalAirport() *models.AirportRef { return copyRef(s.arrivalAirport) }

// Derived returns the display state computed after the last mutation.
func (s *Session) Derived() Derived { return s.derived }

// --- Internals. ---

func (s *Session) beginLoad(target uuid.UUID) uint64 {
	s.loadSeq++
	s.pendingLoads[target] = true
	return s.loadSeq
}

func (s *Session) endLoad(target uuid.UUID) {
	delete(s.pendingLoads, target)
}

func (s *Session) applySnapshot(airlineID uuid.UUID, snapshot *models.AirlineSnapshot) {
	s.airlineID = &airlineID
	s.snapshot = snapshot
	s.editingID = nil
	s.flightNumber = ""
	s.aircraftID = nil
	s.departureField = ""
	s.arrivalField = ""
	s.departureAirport = nil
	s.arrivalAirport = nil
	s.departureQuery = ""
	s.arrivalQuery = ""
	s.pilots = crew.NewDualPool(snapshot.Pilots, nil)
	s.guides = crew.NewDualPool(snapshot.Guides, nil)
	s.inv = inventory.NewManager(snapshot.SeatClasses)
	s.recomputeDerived()
}

func (s *Session) applyFlightDetail(detail *models.FlightDetail) {
	id := detail.ID
	s.editingID = &id
	s.flightNumber = detail.FlightNumber
	s.departureField = detail.DepartureTime.Format("2006-01-02T15:04")
	s.arrivalField = detail.ArrivalTime.Format("2006-01-02T15:04")

	departure := detail.DepartureAirport
	arrival := detail.ArrivalAirport
	s.departureAirport = &departure
	s.arrivalAirport = &arrival
	s.departureQuery = departure.Name
	s.arrivalQuery = arrival.Name

	aircraftID := detail.AircraftID
	s.aircraftID = &aircraftID

	crewIDs := make(map[uuid.UUID]bool, len(detail.CrewIDs))
	for _, crewID := range detail.CrewIDs {
		crewIDs[crewID] = true
	}
	s.pilots = crew.NewDualPool(s.snapshot.Pilots, crewIDs)
	s.guides = crew.NewDualPool(s.snapshot.Guides, crewIDs)

	s.inv = inventory.NewManager(s.snapshot.SeatClasses)
	for _, entry := range detail.Inventory {
		classID := entry.SeatClassID
		s.inv.AddRow(&classID, entry.SeatCount, entry.Price)
	}

	// The re-derive below is what flips the just-loaded flight's own number
	// from "taken" to "currently editing".
	s.recomputeDerived()
}

func (s *Session) pool(role models.Role) *crew.DualPool {
	switch role {
	case models.RolePilot:
		return s.pilots
	case models.RoleGuide:
		return s.guides
	}
	return nil
}

func (s *Session) mergedCrewIDs() []uuid.UUID {
	var out []uuid.UUID
	if s.pilots != nil {
		out = append(out, s.pilots.AssignedIDs()...)
	}
	if s.guides != nil {
		out = append(out, s.guides.AssignedIDs()...)
	}
	return out
}

func (s *Session) findAircraft(id uuid.UUID) *models.Aircraft {
	if s.snapshot == nil {
		return nil
	}
	for i := range s.snapshot.Aircraft {
		if s.snapshot.Aircraft[i].ID == id {
			return &s.snapshot.Aircraft[i]
		}
	}
	return nil
}

func (s *Session) findAirport(id uuid.UUID) *models.Airport {
	if s.snapshot == nil {
		return nil
	}
	for i := range s.snapshot.Airports {
		if s.snapshot.Airports[i].ID == id {
			return &s.snapshot.Airports[i]
		}
	}
	return nil
}

func copyRef(ref *models.AirportRef) *models.AirportRef {
	if ref == nil {
		return nil
	}
	out := *ref
	return &out
}
