package model

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// SentimentResult is the classifier verdict for one genre string.
// Score is the model confidence in [0,1].
type SentimentResult struct {
	Label          SentimentLabel
	Score          float64
	Interpretation string
}
