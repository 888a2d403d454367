//go:build !integration
// +build !integration

package storage_catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/screenlens/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type CatalogUnitSuite struct {
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

func (s *CatalogUnitSuite) TestLookup(t provider.T) {
	catalog := New([]*model.TitleMeta{
		titleMeta("Interstellar", []string{"Sci-Fi"}, 2014, 8.6),
		titleMeta("The Bear", []string{"Comedy", "Drama"}, 2022, 8.5),
	})

	t.Run("Should find titles case-insensitively", func(t provider.T) {
		got, err := catalog.ByTitle("  the bear ")

		assert.NoError(t, err)
		assert.Equal(t, "The Bear", got.Title)
	})

	t.Run("Should fail on unknown title", func(t provider.T) {
		got, err := catalog.ByTitle("Unknown Title")

		assert.ErrorIs(t, err, ErrTitleNotFound)
		assert.Nil(t, got)
	})

	t.Run("Should keep the first record on duplicate titles", func(t provider.T) {
		first := titleMeta("Dup", []string{"Drama"}, 2000, 5.0)
		second := titleMeta("dup", []string{"Horror"}, 2010, 6.0)
		dupCatalog := New([]*model.TitleMeta{first, second})

		got, err := dupCatalog.ByTitle("Dup")

		assert.NoError(t, err)
		assert.Equal(t, first, got)
	})
}

func (s *CatalogUnitSuite) TestDerivedViews(t provider.T) {
	catalog := New([]*model.TitleMeta{
		titleMeta("A", []string{"Comedy"}, 2020, 7.0),
		titleMeta("B", []string{"Comedy", "Drama"}, 2019, 6.5),
		titleMeta("C", []string{"Horror"}, 2021, 8.0),
	})

	t.Run("Should expose sorted genre vocabulary", func(t provider.T) {
		assert.Equal(t, []string{"Comedy", "Drama", "Horror"}, catalog.Genres())
	})

	t.Run("Should expose dataset year extremes", func(t provider.T) {
		minYear, maxYear := catalog.YearBounds()

		assert.Equal(t, 2019, minYear)
		assert.Equal(t, 2021, maxYear)
		assert.Equal(t, 2, catalog.YearSpan())
	})

	t.Run("Should expose the mean rating", func(t provider.T) {
		assert.InDelta(t, (7.0+6.5+8.0)/3, catalog.MeanRating(), 1e-9)
	})

	t.Run("Should handle an empty catalog", func(t provider.T) {
		empty := New(nil)

		assert.Zero(t, empty.Len())
		assert.Zero(t, empty.MeanRating())
		assert.Empty(t, empty.Genres())
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(CatalogUnitSuite))
}
