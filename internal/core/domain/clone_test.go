package domain

import (
	"testing"
	"time"
)

func TestGuildDocumentClone_Independence(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	original := &GuildDocument{
		Name:  "Night Watch",
		World: "Antica",
		Members: []Member{
			{
				Name:  "Aria",
				Level: 250,
				Deaths: []Death{
					{Level: 248, Time: now, Reason: "a dragon lord"},
				},
				LevelHistory: []LevelHistoryEntry{{Date: now, Level: 250}},
				Data: MemberData{
					Bosses: []ItemEntry{{Name: "Ferumbras", SubItems: []string{"Hat"}}},
					Chares: []string{"Second Char"},
				},
			},
		},
		CheckedItems: CheckedItems{
			"Aria": {CategoryBosses: {"Ferumbras": true}},
		},
		RecentChanges: []ChangeEvent{{Name: "Aria", Type: ChangeJoined, Date: now}},
		LastUpdated:   now,
	}

	clone := original.Clone()

	clone.Members[0].Level = 999
	clone.Members[0].Deaths[0].Level = 1
	clone.Members[0].LevelHistory[0].Level = 1
	clone.Members[0].Data.Bosses[0].Name = "Changed"
	clone.Members[0].Data.Bosses[0].SubItems[0] = "Changed"
	clone.Members[0].Data.Chares[0] = "Changed"
	clone.CheckedItems["Aria"][CategoryBosses]["Ferumbras"] = false
	clone.RecentChanges[0].Name = "Changed"

	m := original.Members[0]
	if m.Level != 250 {
		t.Error("Member level shared")
	}
	if m.Deaths[0].Level != 248 {
		t.Error("Deaths shared")
	}
	if m.LevelHistory[0].Level != 250 {
		t.Error("Level history shared")
	}
	if m.Data.Bosses[0].Name != "Ferumbras" || m.Data.Bosses[0].SubItems[0] != "Hat" {
		t.Error("Catalog entries shared")
	}
	if m.Data.Chares[0] != "Second Char" {
		t.Error("Chares shared")
	}
	if !original.CheckedItems["Aria"][CategoryBosses]["Ferumbras"] {
		t.Error("Checked state shared")
	}
	if original.RecentChanges[0].Name != "Aria" {
		t.Error("Change log shared")
	}
}

func TestGuildDocumentClone_Nil(t *testing.T) {
	var doc *GuildDocument
	if doc.Clone() != nil {
		t.Error("Expected nil clone of nil document")
	}
}

func TestCheckedItemsClone_Nil(t *testing.T) {
	var c CheckedItems
	if c.Clone() != nil {
		t.Error("Expected nil clone of nil map")
	}
}
