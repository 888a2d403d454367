package http_explore

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/humanbelnik/screenlens/core/internal/model"
	usecase_explore "github.com/humanbelnik/screenlens/core/internal/usecase/explore"
)

// TitleResponseDTO is one catalog row as shown in the results panel.
type TitleResponseDTO struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title     string    `json:"title" example:"Interstellar"`
	Type      string    `json:"type,omitempty" example:"movie"`
	Genres    []string  `json:"genres" example:"Adventure,Drama,Sci-Fi"`
	Year      int       `json:"year" example:"2014"`
	Rating    float64   `json:"rating" example:"8.6"`
	Countries []string  `json:"countries" example:"US,CA,JP"`
}

type TitlesListResponseDTO struct {
	Titles []TitleResponseDTO `json:"titles"`
	Total  int                `json:"total"`
}

type OptionsResponseDTO struct {
	Genres    []string `json:"genres"`
	YearMin   int      `json:"year_min"`
	YearMax   int      `json:"year_max"`
	RatingMin float64  `json:"rating_min"`
	RatingMax float64  `json:"rating_max"`
}

type BucketDTO struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

type HistogramResponseDTO struct {
	Buckets []BucketDTO `json:"buckets"`
	Total   int         `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func ConvertFromTitleMeta(meta model.TitleMeta) TitleResponseDTO {
	return TitleResponseDTO{
		ID:        meta.ID,
		Title:     meta.Title,
		Type:      meta.Type,
		Genres:    meta.Genres,
		Year:      meta.Year,
		Rating:    meta.Rating,
		Countries: meta.Countries,
	}
}

func ConvertFromTitleMetaList(metas []*model.TitleMeta) []TitleResponseDTO {
	titles := make([]TitleResponseDTO, len(metas))
	for i, meta := range metas {
		titles[i] = ConvertFromTitleMeta(*meta)
	}
	return titles
}

type Controller struct {
	uc *usecase_explore.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_explore.Usecase, opts ...ControllerOption) *Controller {
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
	catalog := router.Group("/catalog")
	catalog.GET("", c.getCatalog)
	catalog.GET("/options", c.getOptions)
	catalog.GET("/histogram", c.getHistogram)
}

// @Summary Filtered catalog view
// @Description Returns the titles matching the current widget values
// @Tags Catalog operations
// @Produce json
// @Param genre query string false "Genre to filter by"
// @Param year_from query int false "Lower year bound (inclusive)"
// @Param year_to query int false "Upper year bound (inclusive)"
// @Param rating_from query number false "Lower rating bound (inclusive)"
// @Param rating_to query number false "Upper rating bound (inclusive)"
// @Success 200 {object} TitlesListResponseDTO "Filtered titles"
// @Failure 400 {object} ErrorResponse "Malformed widget values"
// @Router /catalog [get]
func (c *Controller) getCatalog(ctx *gin.Context) {
	criteria, err := c.criteriaFromQuery(ctx)
	if err != nil {
		c.logger.Warn("invalid filter criteria", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid filter criteria",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	filtered := c.uc.Filter(criteria)

	ctx.JSON(http.StatusOK, TitlesListResponseDTO{
		Titles: ConvertFromTitleMetaList(filtered),
		Total:  len(filtered),
	})
}

// @Summary Widget bootstrap values
// @Description Returns the genre vocabulary and slider bounds observed in the dataset
// @Tags Catalog operations
// @Produce json
// @Success 200 {object} OptionsResponseDTO "Widget options"
// @Router /catalog/options [get]
func (c *Controller) getOptions(ctx *gin.Context) {
	defaults := c.uc.DefaultCriteria()

	ctx.JSON(http.StatusOK, OptionsResponseDTO{
		Genres:    c.uc.GenreVocabulary(),
		YearMin:   defaults.YearFrom,
		YearMax:   defaults.YearTo,
		RatingMin: defaults.RatingFrom,
		RatingMax: defaults.RatingTo,
	})
}

// @Summary Rating distribution
// @Description Returns histogram buckets of the rating distribution for the filtered set
// @Tags Catalog operations
// @Produce json
// @Success 200 {object} HistogramResponseDTO "Rating buckets"
// @Failure 400 {object} ErrorResponse "Malformed widget values"
// @Router /catalog/histogram [get]
func (c *Controller) getHistogram(ctx *gin.Context) {
	criteria, err := c.criteriaFromQuery(ctx)
	if err != nil {
		c.logger.Warn("invalid filter criteria", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid filter criteria",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	filtered := c.uc.Filter(criteria)

	buckets := c.uc.Histogram(filtered)
	dto := make([]BucketDTO, len(buckets))
	for i, b := range buckets {
		dto[i] = BucketDTO{From: b.From, To: b.To, Count: b.Count}
	}

	ctx.JSON(http.StatusOK, HistogramResponseDTO{
		Buckets: dto,
		Total:   len(filtered),
	})
}

// Absent widget values fall back to the dataset extremes, so a bare
// request means "everything".
func (c *Controller) criteriaFromQuery(ctx *gin.Context) (model.Criteria, error) {
	defaults := c.uc.DefaultCriteria()

	yearFrom, err := intQuery(ctx, "year_from", defaults.YearFrom)
	if err != nil {
		return model.Criteria{}, err
	}
	yearTo, err := intQuery(ctx, "year_to", defaults.YearTo)
	if err != nil {
		return model.Criteria{}, err
	}
	ratingFrom, err := floatQuery(ctx, "rating_from", defaults.RatingFrom)
	if err != nil {
		return model.Criteria{}, err
	}
	ratingTo, err := floatQuery(ctx, "rating_to", defaults.RatingTo)
	if err != nil {
		return model.Criteria{}, err
	}

	return c.uc.BuildCriteria(ctx.Query("genre"), yearFrom, yearTo, ratingFrom, ratingTo)
}

func intQuery(ctx *gin.Context, name string, defaultValue int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

func floatQuery(ctx *gin.Context, name string, defaultValue float64) (float64, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(raw, 64)
}
