package usecase_title

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/humanbelnik/screenlens/core/internal/config"
	"github.com/humanbelnik/screenlens/core/internal/model"
	"github.com/humanbelnik/screenlens/core/internal/service/countries"
	storage_catalog "github.com/humanbelnik/screenlens/core/internal/storage/catalog"
)

var (
	ErrTitleNotFound = errors.New("title not found")
	ErrInvalidInput  = errors.New("invalid input")
)

const imdbBaseURL = "https://www.imdb.com/title/"

type Usecase struct {
	catalog *storage_catalog.Catalog
	weights config.Similarity
}

func New(catalog *storage_catalog.Catalog, weights config.Similarity) *Usecase {
	return &Usecase{
		catalog: catalog,
		weights: weights,
	}
}

// Availability returns the country set for an exact (case-insensitive)
// title match. An unknown title is an error, never an empty set.
func (u *Usecase) Availability(title string) ([]string, error) {
	t, err := u.catalog.ByTitle(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTitleNotFound, title)
	}
	return t.Countries, nil
}

// Similar scores every other title by attribute overlap with the
// reference: genre-set Jaccard first, then rating closeness, then
// year closeness. Descending by score, ties ascending by title.
func (u *Usecase) Similar(title string, topN int) ([]model.Match, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: topN must be positive", ErrInvalidInput)
	}

	ref, err := u.catalog.ByTitle(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTitleNotFound, title)
	}

	yearSpan := u.catalog.YearSpan()

	matches := make([]model.Match, 0, u.catalog.Len())
	for _, cand := range u.catalog.Titles() {
		if strings.EqualFold(cand.Title, ref.Title) {
			continue
		}
		matches = append(matches, model.Match{
			Meta:  cand,
			Score: u.score(ref, cand, yearSpan),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Meta.Title < matches[j].Meta.Title
	})

	if topN > len(matches) {
		topN = len(matches)
	}
	return matches[:topN], nil
}

func (u *Usecase) score(ref, cand *model.TitleMeta, yearSpan int) float64 {
	genreOverlap := jaccard(ref.Genres, cand.Genres)

	ratingCloseness := 1.0 - math.Abs(ref.Rating-cand.Rating)/10.0

	yearCloseness := 1.0
	if yearSpan > 0 {
		yearCloseness = 1.0 - math.Abs(float64(ref.Year-cand.Year))/float64(yearSpan)
	}

	return u.weights.GenreWeight*genreOverlap +
		u.weights.RatingWeight*ratingCloseness +
		u.weights.YearWeight*yearCloseness
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, g := range a {
		set[g] = struct{}{}
	}

	shared := 0
	for _, g := range b {
		if _, ok := set[g]; ok {
			shared++
		}
	}

	union := len(a) + len(b) - shared
	return float64(shared) / float64(union)
}

// Detail builds the card for the selected title: stars, resolved
// country names, IMDb link and the comparison against the catalog mean.
func (u *Usecase) Detail(title string) (model.TitleDetail, error) {
	t, err := u.catalog.ByTitle(title)
	if err != nil {
		return model.TitleDetail{}, fmt.Errorf("%w: %s", ErrTitleNotFound, title)
	}

	diff := t.Rating - u.catalog.MeanRating()

	detail := model.TitleDetail{
		Meta:         t,
		Stars:        strings.Repeat("⭐", int(math.Round(t.Rating))),
		CountryNames: countries.Resolve(t.Countries),
		RatingDiff:   math.Abs(diff),
		AboveAverage: diff > 0,
	}
	if t.ImdbID != "" {
		detail.ImdbURL = imdbBaseURL + t.ImdbID
	}

	return detail, nil
}
