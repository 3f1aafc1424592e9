package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/rpsgame/internal/dependencies/random"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/services/match"
	"github.com/mcoot/rpsgame/internal/web/middleware"
	"github.com/mcoot/rpsgame/internal/web/sse"
	"github.com/mcoot/rpsgame/internal/web/templates/layout"
	"github.com/mcoot/rpsgame/internal/web/templates/pages"
)

// MatchHandler handles the gameplay pages and actions
type MatchHandler struct {
	matchController *match.Controller
	authService     *auth.Service
	hubManager      *sse.HubManager
	broadcaster     *sse.Broadcaster
	random          random.Random
	logger          *slog.Logger
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(matchController *match.Controller, authService *auth.Service, hubManager *sse.HubManager, broadcaster *sse.Broadcaster, rnd random.Random, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		matchController: matchController,
		authService:     authService,
		hubManager:      hubManager,
		broadcaster:     broadcaster,
		random:          rnd,
		logger:          logger,
	}
}

// Play starts a match from the home page form
func (h *MatchHandler) Play(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.start(w, r, r.PostFormValue("rounds"))
}

// PlayLink starts a match from a /play?rounds=N link. A missing value means the default round count.
func (h *MatchHandler) PlayLink(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, r.URL.Query().Get("rounds"))
}

func (h *MatchHandler) start(w http.ResponseWriter, r *http.Request, rawRounds string) {
	totalRounds, err := h.matchController.Policy().Parse(rawRounds)
	if err != nil {
		middleware.SetFlash(w, "error", "Rounds must be a whole number")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	player, err := ensurePlayer(r.Context(), w, h.authService)
	if err != nil {
		h.logger.Error("failed to create guest player", slog.String("error", err.Error()))
		middleware.SetFlash(w, "error", "Could not start a session")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	m, err := h.matchController.StartMatch(r.Context(), player.ID, totalRounds)
	if err != nil {
		middleware.SetFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	redirect(w, r, matchPath(m.ID))
}

// View renders the gameplay page
func (h *MatchHandler) View(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := matchID(r)

	m, err := h.matchController.GetMatch(r.Context(), id, player.ID)
	if err != nil {
		middleware.SetFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := pages.MatchData{
		PageData: layout.PageData{
			Title:  "Match",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Match:  m,
		Policy: h.matchController.Policy(),
	}

	switch m.Phase {
	case model.PhaseIdle:
		cards := model.AllMoves()
		random.Shuffle(h.random, cards)
		data.PlayerCards = cards
	case model.PhaseRoundComplete:
		_, data.MatchOver = match.EvaluateEnd(m.Config, m.Score, m.RoundsPlayed)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Match(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Move plays the card the player picked
func (h *MatchHandler) Move(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := matchID(r)

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		redirect(w, r, matchPath(id))
		return
	}

	move, err := model.ParseMove(r.PostFormValue("move"))
	if err != nil {
		middleware.SetFlash(w, "error", userMessage(err))
		redirect(w, r, matchPath(id))
		return
	}

	result, err := h.matchController.SubmitMove(r.Context(), id, player.ID, move)
	if err != nil {
		middleware.SetFlash(w, "error", userMessage(err))
		redirect(w, r, matchPath(id))
		return
	}

	h.broadcaster.BroadcastRoundResolved(result.Match, result.Round)
	redirect(w, r, matchPath(id))
}

// Advance moves on after a round result has been shown
func (h *MatchHandler) Advance(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := matchID(r)

	m, err := h.matchController.Advance(r.Context(), id, player.ID)
	if err != nil {
		middleware.SetFlash(w, "error", userMessage(err))
		redirect(w, r, matchPath(id))
		return
	}

	h.broadcaster.BroadcastAdvance(m)
	redirect(w, r, matchPath(id))
}

// Reset starts the match over ("Play Again"), optionally with a new round count
func (h *MatchHandler) Reset(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := matchID(r)

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		redirect(w, r, matchPath(id))
		return
	}

	var totalRounds *int
	if raw := r.PostFormValue("rounds"); raw != "" {
		n, err := model.ParseTotalRounds(raw)
		if err != nil {
			middleware.SetFlash(w, "error", userMessage(err))
			redirect(w, r, matchPath(id))
			return
		}
		totalRounds = &n
	}

	m, err := h.matchController.ResetMatch(r.Context(), id, player.ID, totalRounds)
	if err != nil {
		middleware.SetFlash(w, "error", userMessage(err))
		redirect(w, r, matchPath(id))
		return
	}

	h.broadcaster.BroadcastMatchReset(m)
	redirect(w, r, matchPath(id))
}

// ChangeRounds applies the round stepper
func (h *MatchHandler) ChangeRounds(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := matchID(r)

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		redirect(w, r, matchPath(id))
		return
	}

	raw := r.PostFormValue("rounds")
	if raw == "" {
		middleware.SetFlash(w, "error", "Pick a number of rounds")
		redirect(w, r, matchPath(id))
		return
	}
	totalRounds, err := model.ParseTotalRounds(raw)
	if err != nil {
		middleware.SetFlash(w, "error", userMessage(err))
		redirect(w, r, matchPath(id))
		return
	}

	m, err := h.matchController.ChangeRounds(r.Context(), id, player.ID, totalRounds)
	if err != nil {
		middleware.SetFlash(w, "error", userMessage(err))
		redirect(w, r, matchPath(id))
		return
	}

	h.broadcaster.BroadcastMatchReset(m)
	redirect(w, r, matchPath(id))
}

// Events streams match events to the gameplay page
func (h *MatchHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := matchID(r)

	if _, err := h.matchController.GetMatch(r.Context(), id, player.ID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotMatchOwner):
			http.Error(w, "Not your match", http.StatusForbidden)
		case errors.Is(err, model.ErrMatchNotFound):
			http.Error(w, "Match not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, player.ID)
}

// userMessage turns a service error into a flash message
func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrMatchNotFound):
		return "Match not found"
	case errors.Is(err, model.ErrNotMatchOwner):
		return "That match belongs to another player"
	case errors.Is(err, model.ErrInvalidMove):
		return "Pick rock, paper or scissors"
	case errors.Is(err, model.ErrInvalidConfig):
		return "Invalid number of rounds"
	case errors.Is(err, model.ErrInvalidTransition):
		return "That action is not available right now"
	default:
		return "Something went wrong"
	}
}

func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}

func matchPath(id model.MatchID) string {
	return "/match/" + string(id)
}

// redirect sends HTMX requests an HX-Redirect and everything else a 303
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
