package usecase_sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/humanbelnik/screenlens/core/internal/model"
)

var (
	ErrModelUnavailable = errors.New("sentiment model unavailable")
	ErrInvalidInput     = errors.New("invalid input")
)

type Classifier interface {
	Classify(ctx context.Context, text string) (label string, score float64, err error)
}

type Cache interface {
	Get(genre string) (model.SentimentResult, bool, error)
	Set(genre string, res model.SentimentResult) error
}

type Usecase struct {
	classifier Classifier
	cache      Cache
}

func New(
	classifier Classifier,
	cache Cache,
) *Usecase {
	return &Usecase{
		classifier: classifier,
		cache:      cache,
	}
}

// Analyze runs the external model over a genre string, going through
// the session cache first. The genre vocabulary is static, so a hit
// is final: the model is never re-invoked for a known genre.
func (u *Usecase) Analyze(ctx context.Context, genre string) (model.SentimentResult, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return model.SentimentResult{}, fmt.Errorf("%w: genre cannot be empty", ErrInvalidInput)
	}

	if cached, ok, err := u.cache.Get(genre); err == nil && ok {
		return cached, nil
	}

	label, score, err := u.classifier.Classify(ctx, genre)
	if err != nil {
		return model.SentimentResult{}, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	res := interpret(label, score)

	// A failed cache write only costs a redundant model call later.
	_ = u.cache.Set(genre, res)

	return res, nil
}

func interpret(label string, score float64) model.SentimentResult {
	switch strings.ToUpper(label) {
	case "POSITIVE":
		return model.SentimentResult{
			Label:          model.SentimentPositive,
			Score:          score,
			Interpretation: "The genre tone suggests a generally enjoyable or light-hearted experience.",
		}
	case "NEGATIVE":
		return model.SentimentResult{
			Label:          model.SentimentNegative,
			Score:          score,
			Interpretation: "The genre tone suggests a more intense, dramatic, or serious theme.",
		}
	default:
		return model.SentimentResult{
			Label:          model.SentimentNeutral,
			Score:          score,
			Interpretation: "The genre tone is neutral or mixed.",
		}
	}
}
