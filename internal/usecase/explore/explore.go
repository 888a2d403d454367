package usecase_explore

import (
	"errors"
	"fmt"
	"math"

	"github.com/humanbelnik/screenlens/core/internal/config"
	"github.com/humanbelnik/screenlens/core/internal/model"
	storage_catalog "github.com/humanbelnik/screenlens/core/internal/storage/catalog"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	ratingScaleMin = 0.0
	ratingScaleMax = 10.0
)

type Usecase struct {
	catalog     *storage_catalog.Catalog
	bucketWidth float64
}

func New(catalog *storage_catalog.Catalog, cfg config.Histogram) *Usecase {
	width := cfg.BucketWidth
	if width <= 0 {
		width = 0.5
	}
	return &Usecase{
		catalog:     catalog,
		bucketWidth: width,
	}
}

// Filter returns the records matching all criteria. Pure and
// deterministic; an empty result is a valid answer, not an error.
func (u *Usecase) Filter(criteria model.Criteria) []*model.TitleMeta {
	out := make([]*model.TitleMeta, 0)
	for _, t := range u.catalog.Titles() {
		if criteria.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// DefaultCriteria covers the whole catalog: dataset year extremes
// and the full rating scale. Widget bounds start here.
func (u *Usecase) DefaultCriteria() model.Criteria {
	minYear, maxYear := u.catalog.YearBounds()
	return model.Criteria{
		YearFrom:   minYear,
		YearTo:     maxYear,
		RatingFrom: ratingScaleMin,
		RatingTo:   ratingScaleMax,
	}
}

// GenreVocabulary feeds the genre single-select widget.
func (u *Usecase) GenreVocabulary() []string {
	return u.catalog.Genres()
}

// Histogram buckets the rating distribution of the given records over
// fixed-width bins across the 0-10 scale. Empty buckets are kept so
// the chart axis stays stable across interactions.
func (u *Usecase) Histogram(records []*model.TitleMeta) []model.Bucket {
	n := int(math.Ceil((ratingScaleMax - ratingScaleMin) / u.bucketWidth))

	buckets := make([]model.Bucket, n)
	for i := range buckets {
		buckets[i].From = ratingScaleMin + float64(i)*u.bucketWidth
		buckets[i].To = buckets[i].From + u.bucketWidth
	}
	buckets[n-1].To = ratingScaleMax

	for _, t := range records {
		i := int((t.Rating - ratingScaleMin) / u.bucketWidth)
		if i < 0 {
			i = 0
		}
		// The top edge belongs to the last bucket.
		if i >= n {
			i = n - 1
		}
		buckets[i].Count++
	}

	return buckets
}

// BuildCriteria validates raw widget values into Criteria.
func (u *Usecase) BuildCriteria(genre string, yearFrom, yearTo int, ratingFrom, ratingTo float64) (model.Criteria, error) {
	if yearFrom > yearTo {
		return model.Criteria{}, fmt.Errorf("%w: year range inverted", ErrInvalidInput)
	}
	if ratingFrom > ratingTo {
		return model.Criteria{}, fmt.Errorf("%w: rating range inverted", ErrInvalidInput)
	}
	return model.Criteria{
		Genre:      genre,
		YearFrom:   yearFrom,
		YearTo:     yearTo,
		RatingFrom: ratingFrom,
		RatingTo:   ratingTo,
	}, nil
}
