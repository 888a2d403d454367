package storage_catalog

import (
	"errors"
	"sort"
	"strings"

	"github.com/humanbelnik/screenlens/core/internal/model"
)

var ErrTitleNotFound = errors.New("title not found")

// Catalog is the single source of truth for the session: built once
// from the loaded records, read-only afterwards. Lookups are
// case-insensitive to reduce user friction.
type Catalog struct {
	titles  []*model.TitleMeta
	byTitle map[string]*model.TitleMeta

	genres     []string
	minYear    int
	maxYear    int
	meanRating float64
}

func New(titles []*model.TitleMeta) *Catalog {
	c := &Catalog{
		titles:  titles,
		byTitle: make(map[string]*model.TitleMeta, len(titles)),
	}

	genreSet := make(map[string]struct{})
	var ratingSum float64
	for i, t := range titles {
		key := strings.ToLower(t.Title)
		// First occurrence wins on duplicate titles.
		if _, ok := c.byTitle[key]; !ok {
			c.byTitle[key] = t
		}

		for _, g := range t.Genres {
			genreSet[g] = struct{}{}
		}

		if i == 0 || t.Year < c.minYear {
			c.minYear = t.Year
		}
		if i == 0 || t.Year > c.maxYear {
			c.maxYear = t.Year
		}
		ratingSum += t.Rating
	}

	for g := range genreSet {
		c.genres = append(c.genres, g)
	}
	sort.Strings(c.genres)

	if len(titles) > 0 {
		c.meanRating = ratingSum / float64(len(titles))
	}

	return c
}

func (c *Catalog) Titles() []*model.TitleMeta {
	return c.titles
}

func (c *Catalog) Len() int {
	return len(c.titles)
}

func (c *Catalog) ByTitle(title string) (*model.TitleMeta, error) {
	t, ok := c.byTitle[strings.ToLower(strings.TrimSpace(title))]
	if !ok {
		return nil, ErrTitleNotFound
	}
	return t, nil
}

// Genres is the observed vocabulary, sorted. Feeds the genre widget.
func (c *Catalog) Genres() []string {
	return c.genres
}

// YearBounds are the dataset extremes. Feed the year range slider.
func (c *Catalog) YearBounds() (int, int) {
	return c.minYear, c.maxYear
}

func (c *Catalog) YearSpan() int {
	return c.maxYear - c.minYear
}

func (c *Catalog) MeanRating() float64 {
	return c.meanRating
}
