package model

// Match is one similarity hit: a candidate title and its overlap score.
type Match struct {
	Meta  *TitleMeta
	Score float64
}

// Bucket is one bar of the rating histogram over [From, To).
// The top bucket includes its upper edge.
type Bucket struct {
	From  float64
	To    float64
	Count int
}

// TitleDetail is the card shown for the selected title.
type TitleDetail struct {
	Meta         *TitleMeta
	Stars        string
	CountryNames []string
	ImdbURL      string

	// Rating compared against the catalog mean.
	RatingDiff   float64
	AboveAverage bool
}
