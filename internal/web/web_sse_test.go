package web_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSSE_EndpointHeaders verifies the SSE endpoint returns correct headers
func TestSSE_EndpointHeaders(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startMatch("MATCH0000001", 3)

	req := httptest.NewRequest(http.MethodGet, "/match/"+id+"/events", nil)
	ts.cookies.addTo(req)

	// Use a context with timeout since SSE is a long-running connection
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", rr.Header().Get("Connection"))
	assert.Equal(t, "no", rr.Header().Get("X-Accel-Buffering"))
	assert.Contains(t, rr.Body.String(), "event: connected")
}

// TestSSE_RequiresAuthentication verifies unauthenticated users cannot access SSE
func TestSSE_RequiresAuthentication(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startMatch("MATCH0000001", 3)

	req := httptest.NewRequest(http.MethodGet, "/match/"+id+"/events", nil)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Contains(t, rr.Header().Get("Location"), "/?next=")
}

// TestSSE_RequiresOwnership verifies other players cannot watch a match
func TestSSE_RequiresOwnership(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startMatch("MATCH0000001", 3)

	other := &webTestServer{t: t, handler: ts.handler, app: ts.app, cookies: newCookieJar()}
	other.createGuestPlayer("Outsider")

	req := httptest.NewRequest(http.MethodGet, "/match/"+id+"/events", nil)
	other.cookies.addTo(req)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, 0, ts.app.HubManager.HubCount())
}

// TestSSE_RoundEventsDelivered plays a round while a browser is watching
func TestSSE_RoundEventsDelivered(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startMatch("MATCH0000001", 1)

	server := httptest.NewServer(ts.handler)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/match/"+id+"/events", nil)
	require.NoError(t, err)
	req.AddCookie(ts.cookies.cookies["session"])

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	type sseEvent struct{ name, data string }
	events := make(chan sseEvent, 32)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(resp.Body)
		var name string
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				events <- sseEvent{name: name, data: strings.TrimPrefix(line, "data: ")}
			}
		}
	}()

	first := <-events
	require.Equal(t, "connected", first.name)

	ts.app.MockRandom.QueueIntn(rock)
	rr := ts.post("/match/"+id+"/move", url.Values{"move": {"paper"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	rr = ts.post("/match/"+id+"/advance", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	seen := map[string]string{}
	reveals := 0
	for ev := range events {
		if ev.name == "reveal" {
			reveals++
		}
		seen[ev.name] = ev.data
		if _, done := seen["match-complete"]; done && reveals == 3 {
			break
		}
	}

	require.Contains(t, seen, "round-resolved")
	assert.Contains(t, seen["round-resolved"], `"computer_move":"rock"`)
	assert.Contains(t, seen["match-complete"], `"result":"player_win"`)
	assert.Equal(t, 3, reveals)
}
