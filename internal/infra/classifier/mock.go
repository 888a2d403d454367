package infra_classifier

import (
	"context"
)

// Mock stands in when no model server is configured.
// Always neutral-ish positive so the panel still renders.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Classify(ctx context.Context, text string) (string, float64, error) {
	return "POSITIVE", 0.5, nil
}
