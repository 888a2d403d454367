package infra_classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/humanbelnik/screenlens/core/internal/config"
)

var ErrModelUnavailable = errors.New("classifier model unavailable")

// The model truncates anyway; cutting here keeps the payload small.
const maxInputBytes = 512

// Classifier calls a hosted text-classification model over HTTP
// (HuggingFace inference style: POST {"inputs": text} -> label+score).
type Classifier struct {
	url    string
	model  string
	token  string
	client *http.Client
}

func New(cfg config.Classifier) *Classifier {
	return &Classifier{
		url:   strings.TrimRight(cfg.URL, "/") + "/" + cfg.Model,
		model: cfg.Model,
		token: cfg.Token,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

type classifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *Classifier) Classify(ctx context.Context, text string) (string, float64, error) {
	if len(text) > maxInputBytes {
		text = text[:maxInputBytes]
	}

	body, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("%w: status %d", ErrModelUnavailable, resp.StatusCode)
	}

	// The inference API wraps candidates per input: [[{label, score}, ...]].
	var nested [][]classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&nested); err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	if len(nested) == 0 || len(nested[0]) == 0 {
		return "", 0, fmt.Errorf("%w: empty response", ErrModelUnavailable)
	}

	best := nested[0][0]
	for _, cand := range nested[0][1:] {
		if cand.Score > best.Score {
			best = cand
		}
	}
	return best.Label, best.Score, nil
}
