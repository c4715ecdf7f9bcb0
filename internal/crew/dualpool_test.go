package crew

import (
	"testing"

	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pilots(n int) []models.Person {
	people := make([]models.Person, n)
	for i := range people {
		people[i] = models.Person{
			ID:          uuid.New(),
			DisplayName: string(rune('A' + i)),
			Role:        models.RolePilot,
		}
	}
	return people
}

// assertPartition checks the dual-pool invariant: available and assigned are
// disjoint and together cover the full set.
func assertPartition(t *testing.T, pool *DualPool, people []models.Person) {
	t.Helper()
	seen := make(map[uuid.UUID]int)
	for _, p := range pool.Available() {
		seen[p.ID]++
	}
	for _, id := range pool.AssignedIDs() {
		seen[id]++
	}
	require.Len(t, seen, len(people))
	for _, p := range people {
		assert.Equal(t, 1, seen[p.ID], "person %s must be in exactly one pool", p.DisplayName)
	}
}

func TestNewDualPool_Partition(t *testing.T) {
	people := pilots(4)
	// Assign the last and the second person; initial order is canonical
	// (people order), not insertion order into the set.
	assigned := map[uuid.UUID]bool{people[3].ID: true, people[1].ID: true}

	pool := NewDualPool(people, assigned)

	assert.Equal(t, []uuid.UUID{people[1].ID, people[3].ID}, pool.AssignedIDs())
	available := pool.Available()
	require.Len(t, available, 2)
	assert.Equal(t, people[0].ID, available[0].ID)
	assert.Equal(t, people[2].ID, available[1].ID)
	assertPartition(t, pool, people)
}

func TestDualPool_Toggle(t *testing.T) {
	people := pilots(3)
	pool := NewDualPool(people, nil)

	t.Run("assign appends at the end", func(t *testing.T) {
		assert.True(t, pool.Toggle(people[2].ID))
		assert.True(t, pool.Toggle(people[0].ID))
		assert.Equal(t, []uuid.UUID{people[2].ID, people[0].ID}, pool.AssignedIDs())
		assertPartition(t, pool, people)
	})

	t.Run("unassign keeps the rest in order", func(t *testing.T) {
		assert.True(t, pool.Toggle(people[1].ID))
		// assigned: [2, 0, 1]; removing 0 must not reorder 2 and 1.
		assert.True(t, pool.Toggle(people[0].ID))
		assert.Equal(t, []uuid.UUID{people[2].ID, people[1].ID}, pool.AssignedIDs())
		assertPartition(t, pool, people)
	})

	t.Run("double toggle restores the original pool", func(t *testing.T) {
		before := pool.AssignedIDs()
		assert.True(t, pool.Toggle(people[0].ID))
		assert.True(t, pool.Toggle(people[0].ID))
		assert.Equal(t, before, pool.AssignedIDs())
		assertPartition(t, pool, people)
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		before := pool.AssignedIDs()
		assert.False(t, pool.Toggle(uuid.New()))
		assert.Equal(t, before, pool.AssignedIDs())
	})
}

func TestDualPool_Assigned(t *testing.T) {
	people := pilots(3)
	pool := NewDualPool(people, nil)
	pool.Toggle(people[1].ID)
	pool.Toggle(people[0].ID)

	assigned := pool.Assigned()
	require.Len(t, assigned, 2)
	assert.Equal(t, people[1].DisplayName, assigned[0].DisplayName)
	assert.Equal(t, people[0].DisplayName, assigned[1].DisplayName)

	assert.True(t, pool.IsAssigned(people[0].ID))
	assert.False(t, pool.IsAssigned(people[2].ID))
}

func TestNewDualPool_ReplacesPriorState(t *testing.T) {
	people := pilots(3)
	pool := NewDualPool(people, map[uuid.UUID]bool{people[0].ID: true})
	pool.Toggle(people[2].ID)

	// Re-initializing (loading a different flight) must not merge with the
	// previous selection.
	pool = NewDualPool(people, map[uuid.UUID]bool{people[1].ID: true})
	assert.Equal(t, []uuid.UUID{people[1].ID}, pool.AssignedIDs())
}
