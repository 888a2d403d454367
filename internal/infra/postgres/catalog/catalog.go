package infra_postgres_catalog

import (
	"context"
	"fmt"

	"github.com/humanbelnik/screenlens/core/internal/model"
	"github.com/jmoiron/sqlx"
)

// Repository is a read-only alternative to the CSV loader: the same
// columns served from a titles table. It is queried once at startup;
// the loaded records are immutable afterwards like any other catalog.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Load(ctx context.Context) ([]*model.TitleMeta, error) {
	query := `
		SELECT id, title, type, genres, release_year, imdb_average_rating,
		       available_countries, imdb_id, imdb_num_votes
		FROM titles
	`

	var titlesDB []TitleDB
	err := r.db.SelectContext(ctx, &titlesDB, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query titles: %w", err)
	}

	titles := make([]*model.TitleMeta, len(titlesDB))
	for i, titleDB := range titlesDB {
		domainTitle := titleDB.ToDomain()
		titles[i] = &domainTitle
	}

	return titles, nil
}
