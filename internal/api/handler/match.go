package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/rpsgame/internal/api/middleware"
	"github.com/mcoot/rpsgame/internal/api/request"
	"github.com/mcoot/rpsgame/internal/api/response"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/match"
	"github.com/mcoot/rpsgame/internal/web/sse"
)

// MatchHandler handles match endpoints
type MatchHandler struct {
	matchController match.ControllerInterface
	broadcaster     *sse.Broadcaster
	hubManager      *sse.HubManager
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchController match.ControllerInterface, broadcaster *sse.Broadcaster, hubManager *sse.HubManager) *MatchHandler {
	return &MatchHandler{
		matchController: matchController,
		broadcaster:     broadcaster,
		hubManager:      hubManager,
	}
}

// Start handles POST /api/v1/matches
func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.StartMatchRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	totalRounds := h.matchController.Policy().DefaultRounds()
	switch {
	case req.TotalRounds != nil && req.Mode != "":
		WriteError(w, NewInvalidRequestError("set either total_rounds or mode, not both"))
		return
	case req.TotalRounds != nil:
		totalRounds = int(*req.TotalRounds)
	case req.Mode != "":
		preset, err := model.PresetByName(req.Mode)
		if err != nil {
			WriteError(w, err)
			return
		}
		totalRounds = preset.TotalRounds
	}

	m, err := h.matchController.StartMatch(r.Context(), player.ID, totalRounds)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	matches, err := h.matchController.ListMatches(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchListFromModel(matches))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	m, err := h.matchController.GetMatch(r.Context(), matchID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// SubmitMove handles POST /api/v1/matches/{id}/moves
func (h *MatchHandler) SubmitMove(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.SubmitMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	move, err := model.ParseMove(req.Move)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.matchController.SubmitMove(r.Context(), matchID(r), player.ID, move)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastRoundResolved(result.Match, result.Round)

	response.JSON(w, http.StatusOK, response.MoveResponseFromResult(result))
}

// Advance handles POST /api/v1/matches/{id}/advance
func (h *MatchHandler) Advance(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	m, err := h.matchController.Advance(r.Context(), matchID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastAdvance(m)

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Reset handles POST /api/v1/matches/{id}/reset
func (h *MatchHandler) Reset(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.ResetMatchRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	m, err := h.matchController.ResetMatch(r.Context(), matchID(r), player.ID, req.TotalRounds.Int())
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastMatchReset(m)

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// ChangeRounds handles PATCH /api/v1/matches/{id}/rounds
func (h *MatchHandler) ChangeRounds(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.ChangeRoundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, bodyError(err))
		return
	}
	if req.TotalRounds == nil {
		WriteError(w, NewInvalidRequestError("total_rounds is required"))
		return
	}

	m, err := h.matchController.ChangeRounds(r.Context(), matchID(r), player.ID, int(*req.TotalRounds))
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastMatchReset(m)

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Delete handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := matchID(r)

	if err := h.matchController.DeleteMatch(r.Context(), id, player.ID); err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.CloseMatch(id)

	response.NoContent(w)
}

// Events handles GET /api/v1/matches/{id}/events
func (h *MatchHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := matchID(r)

	if _, err := h.matchController.GetMatch(r.Context(), id, player.ID); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, player.ID)
}

func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}

// decodeOptionalBody decodes a JSON body that may be empty.
// Returns false after writing an error response.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, bodyError(err))
		return false
	}
	return true
}

// bodyError keeps round count errors as invalid configuration and
// reports anything else as a malformed body
func bodyError(err error) error {
	if errors.Is(err, model.ErrInvalidConfig) {
		return err
	}
	return NewInvalidRequestError("invalid request body")
}
