package ws_dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	usecase_explore "github.com/humanbelnik/screenlens/core/internal/usecase/explore"
	usecase_sentiment "github.com/humanbelnik/screenlens/core/internal/usecase/sentiment"
	usecase_title "github.com/humanbelnik/screenlens/core/internal/usecase/title"
)

const (
	EventViewUpdate = "VIEW_UPDATE"
	EventError      = "ERROR"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WidgetState is the full set of widget values a client sends on any
// input change. Zero year/rating bounds mean "use dataset defaults".
type WidgetState struct {
	Genre      string  `json:"genre"`
	YearFrom   int     `json:"year_from"`
	YearTo     int     `json:"year_to"`
	RatingFrom float64 `json:"rating_from"`
	RatingTo   float64 `json:"rating_to"`

	// Optional selections driving the side panels.
	SelectedTitle string `json:"selected_title"`
	TopN          int    `json:"top_n"`
}

type Hub struct {
	exploreUC   *usecase_explore.Usecase
	titleUC     *usecase_title.Usecase
	sentimentUC *usecase_sentiment.Usecase

	logger *slog.Logger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub(
	exploreUC *usecase_explore.Usecase,
	titleUC *usecase_title.Usecase,
	sentimentUC *usecase_sentiment.Usecase,
) *Hub {
	return &Hub{
		exploreUC:   exploreUC,
		titleUC:     titleUC,
		sentimentUC: sentimentUC,
		logger:      slog.Default(),
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info("dashboard client registered")
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}

	h.logger.Info("dashboard client unregistered")
}

// renderView is the one recomputation per interaction: the whole view
// derived from (catalog, widget state), no incremental diffing.
func (h *Hub) renderView(ctx context.Context, state WidgetState) Event {
	defaults := h.exploreUC.DefaultCriteria()
	if state.YearFrom == 0 && state.YearTo == 0 {
		state.YearFrom, state.YearTo = defaults.YearFrom, defaults.YearTo
	}
	if state.RatingFrom == 0 && state.RatingTo == 0 {
		state.RatingFrom, state.RatingTo = defaults.RatingFrom, defaults.RatingTo
	}
	if state.TopN <= 0 {
		state.TopN = 3
	}

	criteria, err := h.exploreUC.BuildCriteria(
		state.Genre, state.YearFrom, state.YearTo, state.RatingFrom, state.RatingTo)
	if err != nil {
		return Event{
			Type:    EventError,
			Payload: map[string]interface{}{"message": err.Error()},
		}
	}

	filtered := h.exploreUC.Filter(criteria)

	view := ViewDTO{
		Total:     len(filtered),
		Titles:    convertTitles(filtered),
		Histogram: convertBuckets(h.exploreUC.Histogram(filtered)),
	}

	if state.SelectedTitle != "" {
		h.renderTitlePanels(&view, state)
	}

	if state.Genre != "" {
		h.renderSentimentPanel(ctx, &view, state.Genre)
	}

	return Event{Type: EventViewUpdate, Payload: view}
}

// Recoverable per-panel failures become inline notices; the rest of
// the view still renders.
func (h *Hub) renderTitlePanels(view *ViewDTO, state WidgetState) {
	detail, err := h.titleUC.Detail(state.SelectedTitle)
	if err != nil {
		if errors.Is(err, usecase_title.ErrTitleNotFound) {
			view.Notices = append(view.Notices, "Title not found: "+state.SelectedTitle)
			return
		}
		h.logger.Error("detail render failed", "error", err, "title", state.SelectedTitle)
		view.Notices = append(view.Notices, "Title panel unavailable")
		return
	}
	d := convertDetail(detail)
	view.Detail = &d

	matches, err := h.titleUC.Similar(state.SelectedTitle, state.TopN)
	if err != nil {
		h.logger.Error("similarity render failed", "error", err, "title", state.SelectedTitle)
		view.Notices = append(view.Notices, "Similar titles unavailable")
		return
	}
	view.Similar = convertMatches(matches)
}

func (h *Hub) renderSentimentPanel(ctx context.Context, view *ViewDTO, genre string) {
	res, err := h.sentimentUC.Analyze(ctx, genre)
	if err != nil {
		// Model outage only suppresses this panel.
		h.logger.Error("sentiment render failed", "error", err, "genre", genre)
		view.Notices = append(view.Notices, "Sentiment analysis unavailable")
		return
	}
	s := convertSentiment(genre, res)
	view.Sentiment = &s
}
