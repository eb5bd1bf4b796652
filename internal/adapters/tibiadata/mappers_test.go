package tibiadata

import (
	"testing"
	"time"

	"guild-manager/internal/adapters/tibiadata/api"
	"guild-manager/internal/adapters/tibiadata/scraper"
	"guild-manager/internal/config"
	"guild-manager/internal/core/domain"
)

func testAdapter() *Adapter {
	return NewAdapter(api.NewTestClient("http://unused"), &config.Config{
		DetailCacheTTL:      time.Minute,
		WorkerPoolSize:      2,
		UseTibiaComFallback: true,
	})
}

func TestMapGuild(t *testing.T) {
	a := testAdapter()

	snapshot := a.mapGuild(&api.GuildResponse{
		Guild: api.GuildInfo{
			Name:             "Night Watch",
			World:            "Antica",
			OpenApplications: true,
			Members: []api.GuildMember{
				{Name: "Aria", Level: 250, Vocation: "Elder Druid", Status: "ONLINE", Joined: "2024-01-15"},
				{Name: "Borin", Level: 412, Vocation: "Elite Knight", Status: "", Joined: ""},
			},
			Invites: []api.GuildInvite{
				{Name: "Invitee", Date: "2025-05-30", InvitedBy: "Aria"},
			},
		},
	})

	if snapshot.Name != "Night Watch" || snapshot.World != "Antica" || !snapshot.ApplicationsOpen {
		t.Errorf("Guild identity not mapped: %+v", snapshot)
	}

	if len(snapshot.Members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(snapshot.Members))
	}
	aria := snapshot.Members[0]
	if aria.Status != domain.StatusOnline {
		t.Errorf("Expected status normalized to online, got %q", aria.Status)
	}
	if aria.Joined.IsZero() {
		t.Error("Expected joined date parsed")
	}
	if snapshot.Members[1].Status != domain.StatusOffline {
		t.Errorf("Expected empty status normalized to offline, got %q", snapshot.Members[1].Status)
	}
	if !snapshot.Members[1].Joined.IsZero() {
		t.Error("Expected missing join date to stay zero")
	}

	if len(snapshot.Invites) != 1 || snapshot.Invites[0].InvitedBy != "Aria" {
		t.Errorf("Invites not mapped: %+v", snapshot.Invites)
	}
}

func TestMapScrapedGuild(t *testing.T) {
	a := testAdapter()

	snapshot := a.mapScrapedGuild("Night Watch", []scraper.GuildRow{
		{Name: "Aria", Vocation: "Elder Druid", Level: 250, Joined: "Jan 15 2024", Status: "online"},
	})

	if snapshot.Name != "Night Watch" {
		t.Errorf("Expected guild name carried, got %q", snapshot.Name)
	}
	if len(snapshot.Members) != 1 {
		t.Fatalf("Expected 1 member, got %d", len(snapshot.Members))
	}
	m := snapshot.Members[0]
	if m.Joined.IsZero() {
		t.Error("Expected tibia.com date parsed")
	}
	if m.Joined.Year() != 2024 || m.Joined.Month() != time.January {
		t.Errorf("Date parsed wrong: %v", m.Joined)
	}
}

func TestMapCharacter(t *testing.T) {
	a := testAdapter()

	resp := &api.CharacterResponse{}
	resp.Character.Character = api.CharacterInfo{Name: "Aria", Level: 250, Vocation: "Elder Druid", Sex: "Female"}
	resp.Character.Deaths = []api.Death{
		{Time: time.Date(2025, 5, 20, 18, 30, 0, 0, time.UTC), Level: 248, Reason: "a dragon lord"},
	}

	detail := a.mapCharacter(resp)
	if detail == nil {
		t.Fatal("Expected detail")
	}
	if detail.Sex != domain.SexFemale {
		t.Errorf("Expected sex normalized, got %q", detail.Sex)
	}
	if len(detail.Deaths) != 1 || detail.Deaths[0].Level != 248 {
		t.Errorf("Deaths not mapped: %+v", detail.Deaths)
	}
}

func TestMapCharacter_EmptyResponse(t *testing.T) {
	a := testAdapter()

	if detail := a.mapCharacter(&api.CharacterResponse{}); detail != nil {
		t.Errorf("Expected nil for empty character, got %+v", detail)
	}
	if detail := a.mapCharacter(nil); detail != nil {
		t.Errorf("Expected nil for nil response, got %+v", detail)
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"online", domain.StatusOnline},
		{"Online", domain.StatusOnline},
		{" ONLINE ", domain.StatusOnline},
		{"offline", domain.StatusOffline},
		{"", domain.StatusOffline},
		{"away", domain.StatusOffline},
	}

	for _, tt := range tests {
		if got := normalizeStatus(tt.in); got != tt.want {
			t.Errorf("normalizeStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"male", domain.SexMale},
		{"Female", domain.SexFemale},
		{"", domain.SexUnknown},
		{"other", domain.SexUnknown},
	}

	for _, tt := range tests {
		if got := normalizeSex(tt.in); got != tt.want {
			t.Errorf("normalizeSex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAPIDate(t *testing.T) {
	if got := parseAPIDate("2024-01-15"); got.IsZero() {
		t.Error("Expected plain date parsed")
	}
	if got := parseAPIDate("2024-01-15T10:30:00Z"); got.IsZero() {
		t.Error("Expected RFC3339 parsed")
	}
	if got := parseAPIDate("garbage"); !got.IsZero() {
		t.Errorf("Expected zero time for garbage, got %v", got)
	}
	if got := parseAPIDate(""); !got.IsZero() {
		t.Errorf("Expected zero time for empty, got %v", got)
	}
}
