package infra_dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/humanbelnik/screenlens/core/internal/config"
	"github.com/humanbelnik/screenlens/core/internal/model"
)

var (
	ErrDataLoad      = errors.New("failed to load dataset")
	ErrMissingColumn = errors.New("required column missing")
)

var requiredColumns = []string{
	"title",
	"genres",
	"releaseYear",
	"imdbAverageRating",
	"availableCountries",
}

// Loader reads the catalog CSV into TitleMeta records.
type Loader struct {
	path      string
	delimiter string
}

func New(cfg config.Dataset) *Loader {
	return &Loader{
		path:      cfg.Path,
		delimiter: cfg.ListDelimiter,
	}
}

// Load parses the whole file. Rows with unparseable numeric fields are
// dropped; the dropped count goes back to the caller so it can be
// reported instead of vanishing.
func (l *Loader) Load() ([]*model.TitleMeta, int, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	defer f.Close()

	return l.parse(bufio.NewReader(f))
}

func (l *Loader) parse(src io.Reader) ([]*model.TitleMeta, int, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, 0, fmt.Errorf("%w: %w: %s", ErrDataLoad, ErrMissingColumn, col)
		}
	}

	var (
		records []*model.TitleMeta
		dropped int
	)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			dropped++
			continue
		}

		tm, ok := l.buildRecord(idx, rec)
		if !ok {
			dropped++
			continue
		}
		records = append(records, tm)
	}

	return records, dropped, nil
}

func (l *Loader) buildRecord(idx map[string]int, rec []string) (*model.TitleMeta, bool) {
	field := func(name string) string {
		if v, ok := idx[name]; ok && v < len(rec) {
			return strings.TrimSpace(rec[v])
		}
		return ""
	}

	year, err := strconv.Atoi(field("releaseYear"))
	if err != nil {
		return nil, false
	}
	rating, err := strconv.ParseFloat(field("imdbAverageRating"), 64)
	if err != nil {
		return nil, false
	}

	title := field("title")
	if title == model.EmptyTitle {
		title = "Unknown Title"
	}
	genres := model.NormalizeSet(strings.Split(field("genres"), l.delimiter))
	if len(genres) == 0 {
		genres = []string{"Unknown Genre"}
	}
	countries := model.NormalizeSet(strings.Split(field("availableCountries"), l.delimiter))
	if len(countries) == 0 {
		countries = []string{"Unknown Country"}
	}

	// imdbNumVotes is optional and missing for some titles.
	votes, _ := strconv.Atoi(field("imdbNumVotes"))

	return &model.TitleMeta{
		ID:        uuid.New(),
		Title:     title,
		Type:      field("type"),
		Genres:    genres,
		Year:      year,
		Rating:    rating,
		Countries: countries,
		ImdbID:    field("imdbId"),
		ImdbVotes: votes,
	}, true
}
