package model

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

const EmptyTitle string = ""

// TitleMeta is one catalog entry. The whole collection is loaded once at
// startup and stays immutable for the session.
type TitleMeta struct {
	ID        uuid.UUID
	Title     string
	Type      string
	Genres    []string
	Year      int
	Rating    float64
	Countries []string

	ImdbID    string
	ImdbVotes int
}

// HasGenre reports whether genre is a member of the record's genre set.
func (t *TitleMeta) HasGenre(genre string) bool {
	for _, g := range t.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// NormalizeSet gives a multi-value field set semantics:
// trimmed, deduplicated, sorted.
func NormalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
