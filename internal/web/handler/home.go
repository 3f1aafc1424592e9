package handler

import (
	"net/http"
	"strings"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/web/middleware"
	"github.com/mcoot/rpsgame/internal/web/templates/layout"
	"github.com/mcoot/rpsgame/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	policy model.RoundsPolicy
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(policy model.RoundsPolicy) *HomeHandler {
	return &HomeHandler{policy: policy}
}

// Home renders the home page. ?rounds= pre-fills the custom round count.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	flash := middleware.GetFlash(r.Context())

	rounds, err := h.policy.Parse(r.URL.Query().Get("rounds"))
	if err != nil {
		rounds = h.policy.DefaultRounds()
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title:  "Home",
			Player: player,
			Flash:  flash,
		},
		Next:    safeNext(r.URL.Query().Get("next")),
		Presets: model.MatchPresets(),
		Rounds:  h.policy.Clamp(rounds),
		Policy:  h.policy,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// safeNext only allows local redirect targets
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return ""
}
