// Package inventory manages a flight's ordered seat-class allocation rows
// and the capacity accounting derived from them.
package inventory

import (
	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/google/uuid"
)

// Row binds one seat class to a seat count and price. ClassID is nil while
// the operator has not picked a class for the row yet.
type Row struct {
	ID        int
	ClassID   *uuid.UUID
	SeatCount int
	Price     float64
}

// CapacityLevel is the three-tier presentation state of remaining capacity.
type CapacityLevel string

const (
	CapacityNormal CapacityLevel = "normal"
	CapacityLow    CapacityLevel = "low"
	CapacityOver   CapacityLevel = "over"
)

const lowCapacityThreshold = 10

// LevelFor maps a remaining-seat figure onto its presentation tier.
func LevelFor(remaining int) CapacityLevel {
	switch {
	case remaining < 0:
		return CapacityOver
	case remaining < lowCapacityThreshold:
		return CapacityLow
	default:
		return CapacityNormal
	}
}

// Manager owns the ordered inventory rows of one editing session. Row ids
// are session-local and monotonically increasing; they are never reused.
type Manager struct {
	classes   []models.SeatClass
	rows      []Row
	nextRowID int
}

// NewManager builds an empty manager over the airline's seat classes.
func NewManager(classes []models.SeatClass) *Manager {
	m := &Manager{classes: make([]models.SeatClass, len(classes))}
	copy(m.classes, classes)
	return m
}

// AddRow appends a row and returns its id. A blank row has a nil class and
// zero count/price.
func (m *Manager) AddRow(classID *uuid.UUID, seatCount int, price float64) int {
	m.nextRowID++
	row := Row{ID: m.nextRowID, SeatCount: seatCount, Price: price}
	if classID != nil {
		id := *classID
		row.ClassID = &id
	}
	m.rows = append(m.rows, row)
	return row.ID
}

// RemoveRow deletes a row, returning the row's class to every other row's
// candidate list. It reports whether the row existed.
func (m *Manager) RemoveRow(rowID int) bool {
	for i, row := range m.rows {
		if row.ID == rowID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true
		}
	}
	return false
}

// SetClass stores the row's seat class (nil clears it). The manager stores
// whatever is set; callers must restrict choices to AvailableClassesFor
// before offering a selection.
func (m *Manager) SetClass(rowID int, classID *uuid.UUID) bool {
	row := m.find(rowID)
	if row == nil {
		return false
	}
	if classID == nil {
		row.ClassID = nil
		return true
	}
	id := *classID
	row.ClassID = &id
	return true
}

// SetCount updates the row's seat count. Negative counts are clamped to 0.
func (m *Manager) SetCount(rowID int, seatCount int) bool {
	row := m.find(rowID)
	if row == nil {
		return false
	}
	if seatCount < 0 {
		seatCount = 0
	}
	row.SeatCount = seatCount
	return true
}

// SetPrice updates the row's price. Negative prices are clamped to 0.
func (m *Manager) SetPrice(rowID int, price float64) bool {
	row := m.find(rowID)
	if row == nil {
		return false
	}
	if price < 0 {
		price = 0
	}
	row.Price = price
	return true
}

// Rows returns the rows in display order.
func (m *Manager) Rows() []Row {
	out := make([]Row, len(m.rows))
	copy(out, m.rows)
	return out
}

// AvailableClassesFor returns the seat classes the given row may select:
// every class not held by another row, plus the row's own current class so a
// row never loses its own selection from its own candidate list.
func (m *Manager) AvailableClassesFor(rowID int) []models.SeatClass {
	taken := make(map[uuid.UUID]bool)
	var own *uuid.UUID
	for _, row := range m.rows {
		if row.ClassID == nil {
			continue
		}
		if row.ID == rowID {
			own = row.ClassID
			continue
		}
		taken[*row.ClassID] = true
	}
	var out []models.SeatClass
	for _, class := range m.classes {
		if !taken[class.ID] || (own != nil && *own == class.ID) {
			out = append(out, class)
		}
	}
	return out
}

// Allocated returns the total seats assigned across all rows.
func (m *Manager) Allocated() int {
	total := 0
	for _, row := range m.rows {
		total += row.SeatCount
	}
	return total
}

// Remaining returns the seats left on an aircraft of the given capacity.
// With no aircraft selected the baseline is 0, so any row immediately goes
// over capacity; that is intentional.
func (m *Manager) Remaining(capacity int) int {
	return capacity - m.Allocated()
}

// Entries converts the rows into their submission form. Rows without a seat
// class are skipped here; the session reports them as validation issues
// before a submission is ever built.
func (m *Manager) Entries() []models.InventoryEntry {
	var out []models.InventoryEntry
	for _, row := range m.rows {
		if row.ClassID == nil {
			continue
		}
		out = append(out, models.InventoryEntry{
			SeatClassID: *row.ClassID,
			SeatCount:   row.SeatCount,
			Price:       row.Price,
		})
	}
	return out
}

func (m *Manager) find(rowID int) *Row {
	for i := range m.rows {
		if m.rows[i].ID == rowID {
			return &m.rows[i]
		}
	}
	return nil
}
