package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/web/middleware"
)

const (
	sessionCookieName = "session"
	sessionCookieAge  = 86400 // 1 day, matching the default session duration
)

// AuthHandler handles guest sign-in and sign-out
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateGuest handles guest player creation with a chosen display name
func (h *AuthHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	next := safeNext(r.FormValue("next"))

	session, err := h.authService.CreateGuestPlayer(r.Context(), r.FormValue("display_name"))
	if err != nil {
		middleware.SetFlash(w, "error", "Failed to create guest player")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome, "+session.Player.DisplayName+"!")

	// Redirect to original destination or home
	if next != "" {
		http.Redirect(w, r, next, http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout ends the guest session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.authService.InvalidateSession(cookie.Value)
	}

	// Clear session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "Thanks for playing")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ensurePlayer returns the signed-in player, creating a guest session when there is none
func ensurePlayer(ctx context.Context, w http.ResponseWriter, authService *auth.Service) (*model.Player, error) {
	if player := middleware.GetPlayer(ctx); player != nil {
		return player, nil
	}

	session, err := authService.CreateGuestPlayer(ctx, "")
	if err != nil {
		return nil, err
	}
	setSessionCookie(w, session.Token)
	return &session.Player, nil
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
