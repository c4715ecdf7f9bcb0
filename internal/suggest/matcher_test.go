package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type airport struct {
	name string
	city string
	iata string
}

func airportMatcher() *Matcher[airport] {
	return NewMatcher(2,
		func(a airport) string { return a.name },
		func(a airport) string { return a.city },
		func(a airport) string { return a.iata })
}

var corpus = []airport{
	{name: "Václav Havel Airport", city: "Prague", iata: "PRG"},
	{name: "Heathrow", city: "London", iata: "LHR"},
	{name: "Gatwick", city: "London", iata: "LGW"},
	{name: "Charles de Gaulle", city: "Paris", iata: "CDG"},
}

func TestMatcher_Match(t *testing.T) {
	matcher := airportMatcher()

	t.Run("case insensitive substring on any field", func(t *testing.T) {
		matches := matcher.Match("lonDON", corpus)
		assert.Len(t, matches, 2)
		assert.Equal(t, "Heathrow", matches[0].name)
		assert.Equal(t, "Gatwick", matches[1].name)
	})

	t.Run("iata code field", func(t *testing.T) {
		matches := matcher.Match("lgw", corpus)
		assert.Len(t, matches, 1)
		assert.Equal(t, "Gatwick", matches[0].name)
	})

	t.Run("result order is corpus order", func(t *testing.T) {
		matches := matcher.Match("ga", corpus)
		// "Gatwick" and "de Gaulle" both contain "ga"; corpus order wins.
		assert.Len(t, matches, 2)
		assert.Equal(t, "Gatwick", matches[0].name)
		assert.Equal(t, "Charles de Gaulle", matches[1].name)
	})

	t.Run("below minimum length yields nothing", func(t *testing.T) {
		assert.Empty(t, matcher.Match("l", corpus))
		assert.Empty(t, matcher.Match("", corpus))
		assert.Empty(t, matcher.Match("  ", corpus))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, matcher.Match("tokyo", corpus))
	})
}

func TestMatcher_MinLengthOne(t *testing.T) {
	matcher := NewMatcher(1, func(s string) string { return s })
	numbers := []string{"OK123", "OK456", "BA789"}

	matches := matcher.Match("o", numbers)
	assert.Equal(t, []string{"OK123", "OK456"}, matches)

	assert.Empty(t, matcher.Match("", numbers))
}
