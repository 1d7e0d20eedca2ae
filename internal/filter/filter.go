// Package filter implements the list-screen search used by every catalog
// listing: a case-insensitive substring match over one or more text fields,
// combined with an exact match on a categorical field.
package filter

import "strings"

// All is the category value that disables the categorical filter.
const All = "all"

// Query is a free-text search plus an optional category.
type Query struct {
	Search   string
	Category string
}

// Matches reports whether term occurs in any of fields, ignoring case.
// An empty term matches everything.
func Matches(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Apply returns the items matching q in their original order. text yields the
// searchable fields of an item; category yields its categorical field and may
// be nil when the screen has no category filter. The result is never nil.
func Apply[T any](items []T, q Query, text func(T) []string, category func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !Matches(q.Search, text(item)...) {
			continue
		}
		if category != nil && q.Category != "" && q.Category != All && category(item) != q.Category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Distinct returns the unique values of key in first-seen order.
func Distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
