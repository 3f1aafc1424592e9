package handler

import (
	"net/http"

	"github.com/mcoot/rpsgame/internal/api/response"
	"github.com/mcoot/rpsgame/internal/model"
)

// PresetsHandler serves the built-in match presets
type PresetsHandler struct {
	policy model.RoundsPolicy
}

// NewPresetsHandler creates a new presets handler
func NewPresetsHandler(policy model.RoundsPolicy) *PresetsHandler {
	return &PresetsHandler{policy: policy}
}

// List handles GET /api/v1/presets
func (h *PresetsHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.PresetsResponse{
		Presets:       response.PresetsFromModel(model.MatchPresets()),
		DefaultRounds: h.policy.DefaultRounds(),
		MaxRounds:     h.policy.Max,
	})
}
