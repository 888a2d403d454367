package model

// Criteria holds the active widget values. Built fresh on every
// interaction, never persisted. All bounds are inclusive.
type Criteria struct {
	Genre      string
	YearFrom   int
	YearTo     int
	RatingFrom float64
	RatingTo   float64
}

// Matches applies the logical AND of all constraints to a single record.
func (c Criteria) Matches(t *TitleMeta) bool {
	if c.Genre != "" && !t.HasGenre(c.Genre) {
		return false
	}
	if t.Year < c.YearFrom || t.Year > c.YearTo {
		return false
	}
	if t.Rating < c.RatingFrom || t.Rating > c.RatingTo {
		return false
	}
	return true
}
