//go:build !integration
// +build !integration

package usecase_explore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/screenlens/core/internal/config"
	"github.com/humanbelnik/screenlens/core/internal/model"
	storage_catalog "github.com/humanbelnik/screenlens/core/internal/storage/catalog"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseExploreUnitSuite struct {
	suite.Suite
}

func titleMeta(title string, genres []string, year int, rating float64) *model.TitleMeta {
	return &model.TitleMeta{
		ID:        uuid.New(),
		Title:     title,
		Genres:    model.NormalizeSet(genres),
		Year:      year,
		Rating:    rating,
		Countries: []string{"US"},
	}
}

func scenarioUsecase() *Usecase {
	catalog := storage_catalog.New([]*model.TitleMeta{
		titleMeta("A", []string{"Comedy"}, 2020, 7.0),
		titleMeta("B", []string{"Comedy", "Drama"}, 2019, 6.5),
		titleMeta("C", []string{"Horror"}, 2021, 8.0),
	})
	return New(catalog, config.Histogram{BucketWidth: 0.5})
}

func titles(metas []*model.TitleMeta) []string {
	out := make([]string, len(metas))
	for i, m := range metas {
		out[i] = m.Title
	}
	return out
}

func (s *UsecaseExploreUnitSuite) TestFilter(t provider.T) {
	t.Run("Should return genre members only", func(t provider.T) {
		usecase := scenarioUsecase()
		criteria := usecase.DefaultCriteria()
		criteria.Genre = "Comedy"

		got := usecase.Filter(criteria)

		assert.ElementsMatch(t, []string{"A", "B"}, titles(got))
	})

	t.Run("Should apply all criteria as logical AND", func(t provider.T) {
		usecase := scenarioUsecase()
		criteria := usecase.DefaultCriteria()
		criteria.Genre = "Comedy"
		criteria.YearFrom = 2020

		got := usecase.Filter(criteria)

		assert.Equal(t, []string{"A"}, titles(got))
	})

	t.Run("Should honor inclusive bounds", func(t provider.T) {
		usecase := scenarioUsecase()
		criteria := usecase.DefaultCriteria()
		criteria.YearFrom, criteria.YearTo = 2019, 2019
		criteria.RatingFrom, criteria.RatingTo = 6.5, 6.5

		got := usecase.Filter(criteria)

		assert.Equal(t, []string{"B"}, titles(got))
	})

	t.Run("Should treat empty result as valid output", func(t provider.T) {
		usecase := scenarioUsecase()
		criteria := usecase.DefaultCriteria()
		criteria.Genre = "Western"

		got := usecase.Filter(criteria)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should always return a subset of the catalog", func(t provider.T) {
		usecase := scenarioUsecase()

		for _, genre := range []string{"", "Comedy", "Drama", "Horror", "Western"} {
			criteria := usecase.DefaultCriteria()
			criteria.Genre = genre

			got := usecase.Filter(criteria)

			assert.LessOrEqual(t, len(got), 3)
			for _, m := range got {
				if genre != "" {
					assert.True(t, m.HasGenre(genre))
				}
				assert.GreaterOrEqual(t, m.Year, criteria.YearFrom)
				assert.LessOrEqual(t, m.Year, criteria.YearTo)
				assert.GreaterOrEqual(t, m.Rating, criteria.RatingFrom)
				assert.LessOrEqual(t, m.Rating, criteria.RatingTo)
			}
		}
	})
}

func (s *UsecaseExploreUnitSuite) TestBuildCriteria(t provider.T) {
	t.Run("Should reject inverted ranges", func(t provider.T) {
		usecase := scenarioUsecase()

		_, err := usecase.BuildCriteria("", 2021, 2019, 0, 10)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = usecase.BuildCriteria("", 2019, 2021, 9, 1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func (s *UsecaseExploreUnitSuite) TestDefaults(t provider.T) {
	t.Run("Should bound widgets by dataset extremes", func(t provider.T) {
		usecase := scenarioUsecase()

		defaults := usecase.DefaultCriteria()

		assert.Equal(t, 2019, defaults.YearFrom)
		assert.Equal(t, 2021, defaults.YearTo)
		assert.Equal(t, 0.0, defaults.RatingFrom)
		assert.Equal(t, 10.0, defaults.RatingTo)
	})

	t.Run("Should expose the observed genre vocabulary sorted", func(t provider.T) {
		usecase := scenarioUsecase()

		assert.Equal(t, []string{"Comedy", "Drama", "Horror"}, usecase.GenreVocabulary())
	})
}

func (s *UsecaseExploreUnitSuite) TestHistogram(t provider.T) {
	t.Run("Should bucket ratings over the 0-10 scale", func(t provider.T) {
		usecase := scenarioUsecase()

		buckets := usecase.Histogram(usecase.Filter(usecase.DefaultCriteria()))

		assert.Len(t, buckets, 20)

		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		assert.Equal(t, 3, total)

		// 6.5 and 7.0 land on bucket lower edges; 8.0 likewise.
		assert.Equal(t, 1, buckets[13].Count)
		assert.Equal(t, 1, buckets[14].Count)
		assert.Equal(t, 1, buckets[16].Count)
	})

	t.Run("Should put the top edge into the last bucket", func(t provider.T) {
		catalog := storage_catalog.New([]*model.TitleMeta{
			titleMeta("Perfect", []string{"Drama"}, 2020, 10.0),
		})
		usecase := New(catalog, config.Histogram{BucketWidth: 0.5})

		buckets := usecase.Histogram(catalog.Titles())

		assert.Equal(t, 1, buckets[len(buckets)-1].Count)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseExploreUnitSuite))
}
