// Package crew manages the available/assigned partition of one role's
// crew pool.
package crew

import (
	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/google/uuid"
)

// DualPool splits a fixed set of people into an available pool and an
// ordered assigned sequence. Every person is in exactly one of the two.
type DualPool struct {
	people     []models.Person
	assigned   []uuid.UUID
	isAssigned map[uuid.UUID]bool
}

// NewDualPool partitions people deterministically: members of assignedIDs go
// to the assigned sequence in canonical (people) order, the rest stay
// available. Building a new pool fully replaces any prior selection.
func NewDualPool(people []models.Person, assignedIDs map[uuid.UUID]bool) *DualPool {
	p := &DualPool{
		people:     make([]models.Person, len(people)),
		isAssigned: make(map[uuid.UUID]bool),
	}
	copy(p.people, people)
	for _, person := range people {
		if assignedIDs[person.ID] {
			p.assigned = append(p.assigned, person.ID)
			p.isAssigned[person.ID] = true
		}
	}
	return p
}

// Toggle moves a person between the two pools. Moving into assigned appends
// at the end; moving out preserves the order of everyone who stays. Unknown
// ids are ignored and Toggle reports whether anything moved.
func (p *DualPool) Toggle(id uuid.UUID) bool {
	if !p.contains(id) {
		return false
	}
	if p.isAssigned[id] {
		delete(p.isAssigned, id)
		for i, assigned := range p.assigned {
			if assigned == id {
				p.assigned = append(p.assigned[:i], p.assigned[i+1:]...)
				break
			}
		}
		return true
	}
	p.isAssigned[id] = true
	p.assigned = append(p.assigned, id)
	return true
}

// AssignedIDs returns the assigned ids in user placement order. This is the
// sequence submitted with the flight.
func (p *DualPool) AssignedIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(p.assigned))
	copy(out, p.assigned)
	return out
}

// Assigned returns the assigned people in placement order.
func (p *DualPool) Assigned() []models.Person {
	byID := make(map[uuid.UUID]models.Person, len(p.people))
	for _, person := range p.people {
		byID[person.ID] = person
	}
	out := make([]models.Person, 0, len(p.assigned))
	for _, id := range p.assigned {
		out = append(out, byID[id])
	}
	return out
}

// Available returns the unassigned people in canonical order.
func (p *DualPool) Available() []models.Person {
	var out []models.Person
	for _, person := range p.people {
		if !p.isAssigned[person.ID] {
			out = append(out, person)
		}
	}
	return out
}

// IsAssigned reports whether the person is currently in the assigned pool.
func (p *DualPool) IsAssigned(id uuid.UUID) bool {
	return p.isAssigned[id]
}

func (p *DualPool) contains(id uuid.UUID) bool {
	for _, person := range p.people {
		if person.ID == id {
			return true
		}
	}
	return false
}
