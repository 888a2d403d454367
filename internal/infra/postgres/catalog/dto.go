package infra_postgres_catalog

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/humanbelnik/screenlens/core/internal/model"
	"github.com/lib/pq"
)

type TitleDB struct {
	ID        uuid.UUID      `db:"id"`
	Title     string         `db:"title"`
	Type      sql.NullString `db:"type"`
	Genres    pq.StringArray `db:"genres"`
	Year      int            `db:"release_year"`
	Rating    float64        `db:"imdb_average_rating"`
	Countries pq.StringArray `db:"available_countries"`
	ImdbID    sql.NullString `db:"imdb_id"`
	ImdbVotes sql.NullInt64  `db:"imdb_num_votes"`
}

func (t *TitleDB) ToDomain() model.TitleMeta {
	return model.TitleMeta{
		ID:        t.ID,
		Title:     t.Title,
		Type:      t.Type.String,
		Genres:    model.NormalizeSet([]string(t.Genres)),
		Year:      t.Year,
		Rating:    t.Rating,
		Countries: model.NormalizeSet([]string(t.Countries)),
		ImdbID:    t.ImdbID.String,
		ImdbVotes: int(t.ImdbVotes.Int64),
	}
}
