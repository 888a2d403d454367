package ws_dashboard

import (
	"github.com/humanbelnik/screenlens/core/internal/model"
)

// ViewDTO is the full re-rendered dashboard state pushed after every
// widget change.
type ViewDTO struct {
	Total     int           `json:"total"`
	Titles    []TitleDTO    `json:"titles"`
	Histogram []BucketDTO   `json:"histogram"`
	Detail    *DetailDTO    `json:"detail,omitempty"`
	Similar   []MatchDTO    `json:"similar,omitempty"`
	Sentiment *SentimentDTO `json:"sentiment,omitempty"`

	// Inline messages for recoverable failures (unknown title,
	// model outage). Never a dropped connection.
	Notices []string `json:"notices,omitempty"`
}

type TitleDTO struct {
	Title     string   `json:"title"`
	Genres    []string `json:"genres"`
	Year      int      `json:"year"`
	Rating    float64  `json:"rating"`
	Countries []string `json:"countries"`
}

type BucketDTO struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

type DetailDTO struct {
	Title        string   `json:"title"`
	Type         string   `json:"type,omitempty"`
	Genres       []string `json:"genres"`
	Year         int      `json:"year"`
	Rating       float64  `json:"rating"`
	Stars        string   `json:"stars"`
	ImdbURL      string   `json:"imdb_url,omitempty"`
	CountryNames []string `json:"country_names"`
	RatingDiff   float64  `json:"rating_diff"`
	AboveAverage bool     `json:"above_average"`
}

type MatchDTO struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
	Score  float64 `json:"score"`
}

type SentimentDTO struct {
	Genre          string  `json:"genre"`
	Label          string  `json:"label"`
	Score          float64 `json:"score"`
	Interpretation string  `json:"interpretation"`
}

func convertTitles(metas []*model.TitleMeta) []TitleDTO {
	out := make([]TitleDTO, len(metas))
	for i, m := range metas {
		out[i] = TitleDTO{
			Title:     m.Title,
			Genres:    m.Genres,
			Year:      m.Year,
			Rating:    m.Rating,
			Countries: m.Countries,
		}
	}
	return out
}

func convertBuckets(buckets []model.Bucket) []BucketDTO {
	out := make([]BucketDTO, len(buckets))
	for i, b := range buckets {
		out[i] = BucketDTO{From: b.From, To: b.To, Count: b.Count}
	}
	return out
}

func convertDetail(d model.TitleDetail) DetailDTO {
	return DetailDTO{
		Title:        d.Meta.Title,
		Type:         d.Meta.Type,
		Genres:       d.Meta.Genres,
		Year:         d.Meta.Year,
		Rating:       d.Meta.Rating,
		Stars:        d.Stars,
		ImdbURL:      d.ImdbURL,
		CountryNames: d.CountryNames,
		RatingDiff:   d.RatingDiff,
		AboveAverage: d.AboveAverage,
	}
}

func convertMatches(matches []model.Match) []MatchDTO {
	out := make([]MatchDTO, len(matches))
	for i, m := range matches {
		out[i] = MatchDTO{
			Title:  m.Meta.Title,
			Year:   m.Meta.Year,
			Rating: m.Meta.Rating,
			Score:  m.Score,
		}
	}
	return out
}

func convertSentiment(genre string, res model.SentimentResult) SentimentDTO {
	return SentimentDTO{
		Genre:          genre,
		Label:          string(res.Label),
		Score:          res.Score,
		Interpretation: res.Interpretation,
	}
}
