package http_sentiment

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/screenlens/core/internal/model"
	usecase_sentiment "github.com/humanbelnik/screenlens/core/internal/usecase/sentiment"
)

type SentimentResponseDTO struct {
	Genre          string  `json:"genre" example:"Drama"`
	Label          string  `json:"label" example:"negative"`
	Score          float64 `json:"score" example:"0.93"`
	Interpretation string  `json:"interpretation" example:"The genre tone suggests a more intense, dramatic, or serious theme."`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func ConvertFromSentimentResult(genre string, res model.SentimentResult) SentimentResponseDTO {
	return SentimentResponseDTO{
		Genre:          genre,
		Label:          string(res.Label),
		Score:          res.Score,
		Interpretation: res.Interpretation,
	}
}

type Controller struct {
	uc *usecase_sentiment.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_sentiment.Usecase, opts ...ControllerOption) *Controller {
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
	genres := router.Group("/genres")
	genres.GET("/:genre/sentiment", c.getSentiment)
}

// @Summary Genre tone analysis
// @Description Classifies the tone of a genre label via the external model (cached per genre)
// @Tags Sentiment operations
// @Produce json
// @Param genre path string true "Genre label to analyze"
// @Success 200 {object} SentimentResponseDTO "Tone verdict"
// @Failure 400 {object} ErrorResponse "Empty genre"
// @Failure 503 {object} ErrorResponse "Model unavailable; hide the sentiment panel only"
// @Router /genres/{genre}/sentiment [get]
func (c *Controller) getSentiment(ctx *gin.Context) {
	genre := ctx.Param("genre")

	res, err := c.uc.Analyze(ctx.Request.Context(), genre)
	if err != nil {
		if errors.Is(err, usecase_sentiment.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Invalid genre",
				Code:  http.StatusBadRequest,
			})
			return
		}

		// Non-fatal: the client keeps every other panel alive and
		// only hides the sentiment one.
		c.logger.Error("sentiment analysis failed",
			slog.String("error", err.Error()),
			slog.String("genre", genre),
		)
		ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "Sentiment model unavailable",
			Message: err.Error(),
			Code:    http.StatusServiceUnavailable,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromSentimentResult(genre, res))
}
