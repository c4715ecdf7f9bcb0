// Package suggest provides the substring matcher behind airport lookup and
// flight-number lookahead.
package suggest

import "strings"

// Field extracts one searchable string from an item.
type Field[T any] func(T) string

// Matcher matches a query against one or more fields of each corpus item.
type Matcher[T any] struct {
	minQueryLen int
	fields      []Field[T]
}

// NewMatcher builds a matcher over the given fields. Queries shorter than
// minQueryLen produce no suggestions at all; showing the whole corpus for a
// one-character query is noise, not help.
func NewMatcher[T any](minQueryLen int, fields ...Field[T]) *Matcher[T] {
	if minQueryLen < 1 {
		minQueryLen = 1
	}
	return &Matcher[T]{minQueryLen: minQueryLen, fields: fields}
}

// Match returns every corpus item with at least one field containing the
// query, case-insensitively. Result order is corpus order; there is no
// ranking by match quality.
func (m *Matcher[T]) Match(query string, corpus []T) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < m.minQueryLen {
		return nil
	}
	var matches []T
	for _, item := range corpus {
		for _, field := range m.fields {
			if strings.Contains(strings.ToLower(field(item)), q) {
				matches = append(matches, item)
				break
			}
		}
	}
	return matches
}
