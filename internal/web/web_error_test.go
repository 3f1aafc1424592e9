package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlashMessageDisplayedOnSuccess(t *testing.T) {
	ts := newWebTestServer(t)

	// Create guest - should set success flash
	form := url.Values{"display_name": {"Alice"}}
	rr := ts.post("/auth/guest", form)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	// Follow redirect and check for flash message
	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)

	// Should see welcome message
	assertContainsText(t, doc, ".flash-success", "Welcome, Alice!")

	// Flash is shown once
	doc = parseHTML(ts.get("/").Body)
	assertNotContainsElement(t, doc, ".flash")
}

func TestFlashMessageDisplayedOnError(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")

	rr := ts.get("/match/NOPE")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)
	assertContainsText(t, parseHTML(rr.Body), ".flash-error", "Match not found")
}

func TestAccessDeniedForProtectedRoute(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/match/ABC123")

	// Should redirect home, remembering where we were going
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?next=/match/ABC123", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assert.Equal(t, "/match/ABC123", doc.Find("form.guest-form input[name='next']").AttrOr("value", ""))
}

func TestOtherPlayersMatchIsHidden(t *testing.T) {
	owner := newWebTestServer(t)
	id := owner.startMatch("MATCH0000001", 3)

	// Second browser sharing the same app
	other := &webTestServer{t: t, handler: owner.handler, app: owner.app, cookies: newCookieJar()}
	other.createGuestPlayer("Mallory")

	rr := other.get("/match/" + id)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assertContainsText(t, parseHTML(other.followRedirect(rr).Body), ".flash-error", "another player")

	rr = other.post("/match/"+id+"/move", url.Values{"move": {"rock"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	m, err := owner.app.Storage.GetMatch(t.Context(), "MATCH0000001")
	assert.NoError(t, err)
	assert.Equal(t, 0, m.RoundsPlayed)
}

func TestInvalidMoveHandledGracefully(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startMatch("MATCH0000001", 3)

	rr := ts.post("/match/"+id+"/move", url.Values{"move": {"lizard"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Pick rock, paper or scissors")
	assertContainsText(t, doc, ".round-banner", "Round 1 of 3")
}

func TestAdvanceWhileIdleHandledGracefully(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startMatch("MATCH0000001", 3)

	rr := ts.post("/match/"+id+"/advance", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsElement(t, doc, ".flash-error")
}

func TestDoubleSubmitKeepsFirstMove(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startMatch("MATCH0000001", 3)

	ts.app.MockRandom.QueueIntn(scissors)
	rr := ts.post("/match/"+id+"/move", url.Values{"move": {"rock"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.post("/match/"+id+"/move", url.Values{"move": {"paper"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsElement(t, doc, ".flash-error")
	assertContainsElement(t, doc, ".card-player[data-move='rock']")
	assertContainsText(t, doc, "#score-player", "1")
}
