//go:build !integration
// +build !integration

package usecase_sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/humanbelnik/screenlens/core/internal/model"
	storage_sentiment "github.com/humanbelnik/screenlens/core/internal/storage/sentiment"
	mocks "github.com/humanbelnik/screenlens/core/mocks/sentiment"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseSentimentUnitSuite struct {
	suite.Suite

	mockClassifier *mocks.Classifier
	mockCache      *mocks.Cache
	usecase        *Usecase
	ctx            context.Context
}

func (s *UsecaseSentimentUnitSuite) BeforeEach(t provider.T) {
	s.mockClassifier = mocks.NewClassifier(t)
	s.mockCache = mocks.NewCache(t)
	s.usecase = New(s.mockClassifier, s.mockCache)
	s.ctx = context.Background()
}

func (s *UsecaseSentimentUnitSuite) TestAnalyze(t provider.T) {
	t.Run("Should classify and cache on first call", func(t provider.T) {
		genre := "Comedy"
		expected := model.SentimentResult{
			Label:          model.SentimentPositive,
			Score:          0.97,
			Interpretation: "The genre tone suggests a generally enjoyable or light-hearted experience.",
		}

		s.mockCache.On("Get", genre).Return(model.SentimentResult{}, false, nil).Once()
		s.mockClassifier.On("Classify", s.ctx, genre).Return("POSITIVE", 0.97, nil).Once()
		s.mockCache.On("Set", genre, expected).Return(nil).Once()

		res, err := s.usecase.Analyze(s.ctx, genre)

		assert.NoError(t, err)
		assert.Equal(t, expected, res)
		s.mockCache.AssertExpectations(t)
		s.mockClassifier.AssertExpectations(t)
	})

	t.Run("Should map NEGATIVE to negative polarity", func(t provider.T) {
		genre := "Horror"

		s.mockCache.On("Get", genre).Return(model.SentimentResult{}, false, nil).Once()
		s.mockClassifier.On("Classify", s.ctx, genre).Return("NEGATIVE", 0.88, nil).Once()
		s.mockCache.On("Set", genre, model.SentimentResult{
			Label:          model.SentimentNegative,
			Score:          0.88,
			Interpretation: "The genre tone suggests a more intense, dramatic, or serious theme.",
		}).Return(nil).Once()

		res, err := s.usecase.Analyze(s.ctx, genre)

		assert.NoError(t, err)
		assert.Equal(t, model.SentimentNegative, res.Label)
	})

	t.Run("Should map unknown labels to neutral", func(t provider.T) {
		genre := "Documentary"

		s.mockCache.On("Get", genre).Return(model.SentimentResult{}, false, nil).Once()
		s.mockClassifier.On("Classify", s.ctx, genre).Return("MIXED", 0.5, nil).Once()
		s.mockCache.On("Set", genre, model.SentimentResult{
			Label:          model.SentimentNeutral,
			Score:          0.5,
			Interpretation: "The genre tone is neutral or mixed.",
		}).Return(nil).Once()

		res, err := s.usecase.Analyze(s.ctx, genre)

		assert.NoError(t, err)
		assert.Equal(t, model.SentimentNeutral, res.Label)
	})

	t.Run("Should return ErrModelUnavailable when classifier fails", func(t provider.T) {
		genre := "Drama"
		classifierError := errors.New("connection refused")

		s.mockCache.On("Get", genre).Return(model.SentimentResult{}, false, nil).Once()
		s.mockClassifier.On("Classify", s.ctx, genre).Return("", 0.0, classifierError).Once()

		res, err := s.usecase.Analyze(s.ctx, genre)

		assert.ErrorIs(t, err, ErrModelUnavailable)
		assert.Empty(t, res)
	})

	t.Run("Should reject empty genre without touching cache or model", func(t provider.T) {
		classifier := mocks.NewClassifier(t)
		cache := mocks.NewCache(t)
		usecase := New(classifier, cache)

		res, err := usecase.Analyze(s.ctx, "   ")

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, res)
		cache.AssertNotCalled(t, "Get")
		classifier.AssertNotCalled(t, "Classify")
	})
}

// Repeated analyze calls for the same genre within a session must not
// re-invoke the external model. Exercised against the real in-process
// cache so the round trip is genuine.
func (s *UsecaseSentimentUnitSuite) TestAnalyzeCachedOnce(t provider.T) {
	genre := "Comedy"

	classifier := mocks.NewClassifier(t)
	classifier.On("Classify", s.ctx, genre).Return("POSITIVE", 0.91, nil).Once()

	usecase := New(classifier, storage_sentiment.New())

	first, err := usecase.Analyze(s.ctx, genre)
	assert.NoError(t, err)

	second, err := usecase.Analyze(s.ctx, genre)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	classifier.AssertNumberOfCalls(t, "Classify", 1)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSentimentUnitSuite))
}
