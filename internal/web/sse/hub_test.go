package sse

import (
	"testing"
	"time"

	"github.com/mcoot/rpsgame/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "test-event",
			data:      "hello world",
			expected:  "event: test-event\ndata: hello world\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "round-resolved",
			data:      "{\n  \"round\": 1\n}",
			expected:  "event: round-resolved\ndata: {\ndata:   \"round\": 1\ndata: }\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single line",
			input:    "hello",
			expected: []string{"hello"},
		},
		{
			name:     "two lines",
			input:    "line1\nline2",
			expected: []string{"line1", "line2"},
		},
		{
			name:     "trailing newline",
			input:    "line1\n",
			expected: []string{"line1"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{""},
		},
		{
			name:     "crlf line endings",
			input:    "line1\r\nline2\r\n",
			expected: []string{"line1", "line2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitLines(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("splitLines(%q) returned %d lines, want %d",
					tt.input, len(result), len(tt.expected))
				return
			}
			for i, line := range result {
				if line != tt.expected[i] {
					t.Errorf("splitLines(%q)[%d] = %q, want %q",
						tt.input, i, line, tt.expected[i])
				}
			}
		})
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("MATCH1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "player1")
	hub.Register(client)

	// Give the hub time to process registration
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.BroadcastEvent("test", "hello")

	select {
	case msg := <-client.send:
		expected := "event: test\ndata: hello\n\n"
		if string(msg) != expected {
			t.Errorf("received %q, want %q", string(msg), expected)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("timeout waiting for message")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub("MATCH1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "player1")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", hub.ClientCount())
	}

	if _, ok := <-client.send; ok {
		t.Error("client send channel should be closed")
	}
}

func TestHub_RegisterAfterCloseFails(t *testing.T) {
	hub := NewHub("MATCH1", testutil.NopLogger())
	go hub.Run()
	hub.Close()
	hub.Close() // idempotent

	if hub.Register(NewClient(hub, "player1")) {
		t.Error("Register should fail on a closed hub")
	}
}

func TestHubManager_GetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub1 := manager.GetOrCreateHub("MATCH1")
	hub2 := manager.GetOrCreateHub("MATCH1")
	hub3 := manager.GetOrCreateHub("MATCH2")

	if hub1 != hub2 {
		t.Error("same match should return the same hub")
	}
	if hub1 == hub3 {
		t.Error("different matches should return different hubs")
	}
	if manager.HubCount() != 2 {
		t.Errorf("HubCount() = %d, want 2", manager.HubCount())
	}

	manager.RemoveHub("MATCH1")
	if manager.GetHub("MATCH1") != nil {
		t.Error("hub should be removed")
	}
	manager.RemoveHub("MATCH2")
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	busy := manager.GetOrCreateHub("BUSY")
	manager.GetOrCreateHub("EMPTY")

	client := NewClient(busy, "player1")
	busy.Register(client)
	time.Sleep(10 * time.Millisecond)

	removed := manager.CleanupEmptyHubs()
	if removed != 1 {
		t.Errorf("CleanupEmptyHubs() = %d, want 1", removed)
	}
	if manager.GetHub("BUSY") == nil {
		t.Error("hub with clients should be kept")
	}
	if manager.GetHub("EMPTY") != nil {
		t.Error("empty hub should be removed")
	}

	manager.RemoveHub("BUSY")
}
