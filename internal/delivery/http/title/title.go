package http_title

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/screenlens/core/internal/model"
	"github.com/humanbelnik/screenlens/core/internal/service/countries"
	usecase_title "github.com/humanbelnik/screenlens/core/internal/usecase/title"
)

const defaultTopN = 3

// DetailResponseDTO is the selected-title card.
type DetailResponseDTO struct {
	Title        string   `json:"title" example:"Interstellar"`
	Type         string   `json:"type,omitempty" example:"movie"`
	Genres       []string `json:"genres" example:"Adventure,Drama,Sci-Fi"`
	Year         int      `json:"year" example:"2014"`
	Rating       float64  `json:"rating" example:"8.6"`
	Stars        string   `json:"stars" example:"⭐⭐⭐⭐⭐⭐⭐⭐⭐"`
	ImdbVotes    int      `json:"imdb_votes,omitempty" example:"1745321"`
	ImdbURL      string   `json:"imdb_url,omitempty" example:"https://www.imdb.com/title/tt0816692"`
	CountryNames []string `json:"country_names" example:"United States,Canada"`

	RatingDiff   float64 `json:"rating_diff" example:"1.4"`
	AboveAverage bool    `json:"above_average" example:"true"`
}

type AvailabilityResponseDTO struct {
	Title     string   `json:"title" example:"Interstellar"`
	Countries []string `json:"countries" example:"US,CA,JP"`
	Names     []string `json:"names" example:"United States,Canada,Japan"`
}

type MatchDTO struct {
	Title  string  `json:"title" example:"Inception"`
	Year   int     `json:"year" example:"2010"`
	Rating float64 `json:"rating" example:"8.8"`
	Score  float64 `json:"score" example:"0.87"`
}

type SimilarResponseDTO struct {
	Reference string     `json:"reference" example:"Interstellar"`
	Matches   []MatchDTO `json:"matches"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func ConvertFromDetail(d model.TitleDetail) DetailResponseDTO {
	return DetailResponseDTO{
		Title:        d.Meta.Title,
		Type:         d.Meta.Type,
		Genres:       d.Meta.Genres,
		Year:         d.Meta.Year,
		Rating:       d.Meta.Rating,
		Stars:        d.Stars,
		ImdbVotes:    d.Meta.ImdbVotes,
		ImdbURL:      d.ImdbURL,
		CountryNames: d.CountryNames,
		RatingDiff:   d.RatingDiff,
		AboveAverage: d.AboveAverage,
	}
}

func ConvertFromMatches(matches []model.Match) []MatchDTO {
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

type Controller struct {
	uc *usecase_title.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_title.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	titles := router.Group("/titles")
	titles.GET("/:title", c.getDetail)
	titles.GET("/:title/availability", c.getAvailability)
	titles.GET("/:title/similar", c.getSimilar)
}

// @Summary Title detail card
// @Description Returns the selected title with stars, countries, IMDb link and rating comparison
// @Tags Title operations
// @Produce json
// @Param title path string true "Title to look up (case-insensitive)"
// @Success 200 {object} DetailResponseDTO "Title card"
// @Failure 404 {object} ErrorResponse "Title not found"
// @Router /titles/{title} [get]
func (c *Controller) getDetail(ctx *gin.Context) {
	title := ctx.Param("title")

	detail, err := c.uc.Detail(title)
	if err != nil {
		c.respondLookupError(ctx, title, err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromDetail(detail))
}

// @Summary Availability lookup
// @Description Returns the countries the title is available in
// @Tags Title operations
// @Produce json
// @Param title path string true "Title to look up (case-insensitive)"
// @Success 200 {object} AvailabilityResponseDTO "Availability"
// @Failure 404 {object} ErrorResponse "Title not found"
// @Router /titles/{title}/availability [get]
func (c *Controller) getAvailability(ctx *gin.Context) {
	title := ctx.Param("title")

	codes, err := c.uc.Availability(title)
	if err != nil {
		c.respondLookupError(ctx, title, err)
		return
	}

	ctx.JSON(http.StatusOK, AvailabilityResponseDTO{
		Title:     title,
		Countries: codes,
		Names:     countries.Resolve(codes),
	})
}

// @Summary Similar titles
// @Description Returns the top-N titles by attribute overlap with the reference
// @Tags Title operations
// @Produce json
// @Param title path string true "Reference title (case-insensitive)"
// @Param top_n query int false "How many matches to return" default(3)
// @Success 200 {object} SimilarResponseDTO "Ranked matches"
// @Failure 400 {object} ErrorResponse "Malformed top_n"
// @Failure 404 {object} ErrorResponse "Title not found"
// @Router /titles/{title}/similar [get]
func (c *Controller) getSimilar(ctx *gin.Context) {
	title := ctx.Param("title")

	topN := defaultTopN
	if raw := ctx.Query("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.logger.Warn("invalid top_n", slog.String("top_n", raw))
			ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Invalid top_n",
				Code:  http.StatusBadRequest,
			})
			return
		}
		topN = parsed
	}

	matches, err := c.uc.Similar(title, topN)
	if err != nil {
		c.respondLookupError(ctx, title, err)
		return
	}

	ctx.JSON(http.StatusOK, SimilarResponseDTO{
		Reference: title,
		Matches:   ConvertFromMatches(matches),
	})
}

// Recoverable lookup errors become inline messages; the rest of the
// dashboard stays interactive.
func (c *Controller) respondLookupError(ctx *gin.Context, title string, err error) {
	if errors.Is(err, usecase_title.ErrTitleNotFound) {
		c.logger.Warn("title not found", slog.String("title", title))
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Title not found",
			Message: err.Error(),
			Code:    http.StatusNotFound,
		})
		return
	}

	c.logger.Error("title lookup failed",
		slog.String("error", err.Error()),
		slog.String("title", title),
	)
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Title lookup failed",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}
