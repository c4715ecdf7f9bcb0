package inventory

import (
	"testing"

	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatClasses() []models.SeatClass {
	return []models.SeatClass{
		{ID: uuid.New(), Name: "Economy"},
		{ID: uuid.New(), Name: "Business"},
		{ID: uuid.New(), Name: "First"},
	}
}

func classNames(classes []models.SeatClass) []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	return names
}

func TestManager_AddRemoveRows(t *testing.T) {
	m := NewManager(seatClasses())

	first := m.AddRow(nil, 0, 0)
	second := m.AddRow(nil, 0, 0)
	assert.Greater(t, second, first, "row ids are monotonically increasing")
	assert.Len(t, m.Rows(), 2)

	assert.True(t, m.RemoveRow(first))
	assert.False(t, m.RemoveRow(first), "ids are never reused")

	third := m.AddRow(nil, 0, 0)
	assert.Greater(t, third, second)
}

func TestManager_ClassExclusivity(t *testing.T) {
	classes := seatClasses()
	m := NewManager(classes)

	first := m.AddRow(nil, 0, 0)
	second := m.AddRow(nil, 0, 0)

	require.True(t, m.SetClass(first, &classes[0].ID))

	t.Run("taken class disappears from other rows", func(t *testing.T) {
		assert.Equal(t, []string{"Business", "First"}, classNames(m.AvailableClassesFor(second)))
	})

	t.Run("a row keeps its own class in its candidates", func(t *testing.T) {
		assert.Equal(t, []string{"Economy", "Business", "First"}, classNames(m.AvailableClassesFor(first)))
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		once := classNames(m.AvailableClassesFor(second))
		twice := classNames(m.AvailableClassesFor(second))
		assert.Equal(t, once, twice)
	})

	t.Run("unsetting a class returns it to everyone", func(t *testing.T) {
		require.True(t, m.SetClass(second, &classes[1].ID))
		require.True(t, m.SetClass(first, nil))
		assert.Equal(t, []string{"Economy", "First"}, classNames(m.AvailableClassesFor(first)))
		assert.Equal(t, []string{"Economy", "Business", "First"}, classNames(m.AvailableClassesFor(second)))
	})

	t.Run("removing a row frees its class", func(t *testing.T) {
		require.True(t, m.RemoveRow(second))
		assert.Equal(t, []string{"Economy", "Business", "First"}, classNames(m.AvailableClassesFor(first)))
	})
}

func TestManager_DistinctClassesAcrossRows(t *testing.T) {
	classes := seatClasses()
	m := NewManager(classes)

	first := m.AddRow(nil, 0, 0)
	second := m.AddRow(nil, 0, 0)
	require.True(t, m.SetClass(first, &classes[0].ID))

	// The candidate list is the authority: picking only from it can never
	// produce two rows with the same class.
	for _, candidate := range m.AvailableClassesFor(second) {
		assert.NotEqual(t, classes[0].ID, candidate.ID)
	}
}

func TestManager_CapacityAccounting(t *testing.T) {
	classes := seatClasses()
	m := NewManager(classes)

	first := m.AddRow(&classes[0].ID, 80, 1200)
	m.AddRow(&classes[1].ID, 80, 3500)

	assert.Equal(t, 160, m.Allocated())
	assert.Equal(t, -10, m.Remaining(150))

	t.Run("removing a row increases remaining", func(t *testing.T) {
		require.True(t, m.RemoveRow(first))
		assert.Equal(t, 70, m.Remaining(150))
	})

	t.Run("zero capacity baseline goes negative with any row", func(t *testing.T) {
		assert.Equal(t, -80, m.Remaining(0))
	})

	t.Run("negative counts are clamped", func(t *testing.T) {
		rows := m.Rows()
		require.NotEmpty(t, rows)
		require.True(t, m.SetCount(rows[0].ID, -5))
		assert.Equal(t, 0, m.Allocated())
	})
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, CapacityOver, LevelFor(-1))
	assert.Equal(t, CapacityLow, LevelFor(0))
	assert.Equal(t, CapacityLow, LevelFor(9))
	assert.Equal(t, CapacityNormal, LevelFor(10))
	assert.Equal(t, CapacityNormal, LevelFor(200))
}

func TestManager_Entries(t *testing.T) {
	classes := seatClasses()
	m := NewManager(classes)

	m.AddRow(&classes[2].ID, 12, 9999.50)
	m.AddRow(nil, 30, 100) // classless rows are not serialized here

	entries := m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, classes[2].ID, entries[0].SeatClassID)
	assert.Equal(t, 12, entries[0].SeatCount)
	assert.Equal(t, 9999.50, entries[0].Price)
}
