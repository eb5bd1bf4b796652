package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetGuild(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"guild": {
				"name": "Night Watch",
				"world": "Antica",
				"open_applications": true,
				"members": [
					{"name": "Aria", "level": 250, "vocation": "Elder Druid", "rank": "Leader", "status": "online", "joined": "2024-01-15"}
				],
				"invited": [
					{"name": "Invitee", "date": "2025-05-30", "invited_by": "Aria"}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	resp, err := client.GetGuild(context.Background(), "Night Watch")
	if err != nil {
		t.Fatalf("GetGuild failed: %v", err)
	}

	if requestedPath != "/guild/Night%20Watch" && requestedPath != "/guild/Night Watch" {
		t.Errorf("Unexpected request path: %s", requestedPath)
	}
	if resp.Guild.Name != "Night Watch" || resp.Guild.World != "Antica" {
		t.Errorf("Guild fields not decoded: %+v", resp.Guild)
	}
	if !resp.Guild.OpenApplications {
		t.Error("Expected open applications decoded")
	}
	if len(resp.Guild.Members) != 1 || resp.Guild.Members[0].Level != 250 {
		t.Errorf("Members not decoded: %+v", resp.Guild.Members)
	}
	if len(resp.Guild.Invites) != 1 || resp.Guild.Invites[0].InvitedBy != "Aria" {
		t.Errorf("Invites not decoded: %+v", resp.Guild.Invites)
	}
}

func TestGetGuild_ApostropheInName(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.EscapedPath()
		w.Write([]byte(`{"guild": {"name": "Kov's Guild"}}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	if _, err := client.GetGuild(context.Background(), "Kov's Guild"); err != nil {
		t.Fatalf("GetGuild failed: %v", err)
	}

	// The apostrophe must survive path escaping, TibiaData rejects %27.
	if requestedPath != "/guild/Kov's%20Guild" {
		t.Errorf("Unexpected escaped path: %s", requestedPath)
	}
}

func TestGetCharacter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"character": {
				"character": {"name": "Aria", "level": 250, "vocation": "Elder Druid", "sex": "female", "world": "Antica"},
				"deaths": [
					{"time": "2025-05-20T18:30:00Z", "level": 248, "reason": "Died at Level 248 by a dragon lord"}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	resp, err := client.GetCharacter(context.Background(), "Aria")
	if err != nil {
		t.Fatalf("GetCharacter failed: %v", err)
	}

	c := resp.Character.Character
	if c.Name != "Aria" || c.Sex != "female" {
		t.Errorf("Character fields not decoded: %+v", c)
	}
	if len(resp.Character.Deaths) != 1 || resp.Character.Deaths[0].Level != 248 {
		t.Errorf("Deaths not decoded: %+v", resp.Character.Deaths)
	}
}

func TestGetGuild_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	if _, err := client.GetGuild(context.Background(), "Night Watch"); err == nil {
		t.Fatal("Expected error for non-200 status")
	}
}

func TestGetGuild_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"guild": `))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	if _, err := client.GetGuild(context.Background(), "Night Watch"); err == nil {
		t.Fatal("Expected decode error")
	}
}

func TestGetGuild_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewTestClient(server.URL)
	if _, err := client.GetGuild(ctx, "Night Watch"); err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}
