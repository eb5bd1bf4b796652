package domain

import "time"

const (
	StatusOnline  = "online"
	StatusOffline = "offline"

	SexMale    = "male"
	SexFemale  = "female"
	SexUnknown = "unknown"

	VocationUnknown = "Unknown"
)

// Member is a guild member as persisted: API-refreshed attributes merged
// with user-curated state that survives between refreshes.
type Member struct {
	Name         string              `json:"name"`
	Level        int                 `json:"level"`
	Vocation     string              `json:"vocation"`
	Sex          string              `json:"sex"`
	Status       string              `json:"status"`
	Deaths       []Death             `json:"deaths"`
	Data         MemberData          `json:"data"`
	LevelHistory []LevelHistoryEntry `json:"levelHistory"`
	TimeZone     string              `json:"timeZone"`
	JoinDate     time.Time           `json:"joinDate"`
}

type Death struct {
	Level  int       `json:"level"`
	Time   time.Time `json:"time"`
	Reason string    `json:"reason"`
}

type LevelHistoryEntry struct {
	Date  time.Time `json:"date"`
	Level int       `json:"level"`
}

// ItemEntry is a catalog entry for the bosses and quests categories.
// Chares and notas are plain strings without sub-items.
type ItemEntry struct {
	Name     string   `json:"name"`
	SubItems []string `json:"subItems"`
}

// MemberData holds the checklist catalog carried on every member record.
// The catalog is shared: only the checked booleans differ per member.
type MemberData struct {
	Bosses []ItemEntry `json:"bosses"`
	Quests []ItemEntry `json:"quests"`
	Chares []string    `json:"chares"`
	Notas  []string    `json:"notas"`
}

const (
	ChangeJoined  = "joined"
	ChangeLeft    = "left"
	ChangeInvited = "invited"
)

type ChangeEvent struct {
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Level     int       `json:"level"`
	Vocation  string    `json:"vocation"`
	Status    string    `json:"status"`
	InvitedBy string    `json:"invitedBy,omitempty"`
}

// CheckedItems maps member name -> category -> item or composite
// "<item>::<sub>" key -> checked.
type CheckedItems map[string]map[Category]map[string]bool

// GuildDocument is the unit of persistence, one per guild.
type GuildDocument struct {
	Name          string        `json:"name"`
	World         string        `json:"world"`
	Members       []Member      `json:"members"`
	CheckedItems  CheckedItems  `json:"checkedItems"`
	RecentChanges []ChangeEvent `json:"recentChanges"`
	LastUpdated   time.Time     `json:"lastUpdated"`
}

// GuildSnapshot is what the roster source reports for one fetch. It is an
// authoritative full listing: absence of a previously known member means
// the member left.
type GuildSnapshot struct {
	Name             string
	World            string
	Members          []BasicMember
	Invites          []Invite
	ApplicationsOpen bool
}

type BasicMember struct {
	Name     string
	Level    int
	Vocation string
	Status   string
	Joined   time.Time
}

type Invite struct {
	Name      string
	Date      time.Time
	InvitedBy string
}

// CharacterDetail carries the extended attributes only the per-character
// endpoint reports.
type CharacterDetail struct {
	Name     string
	Level    int
	Vocation string
	Sex      string
	Deaths   []Death
}

// GuildStats summarizes a document for the roster payload.
type GuildStats struct {
	TotalMembers     int       `json:"totalMembers"`
	OnlineCount      int       `json:"onlineCount"`
	OfflineCount     int       `json:"offlineCount"`
	NewMembers       int       `json:"newMembers"`
	DepartedMembers  int       `json:"departedMembers"`
	InvitesCount     int       `json:"invitesCount"`
	ApplicationsOpen bool      `json:"applicationsOpen"`
	LastUpdated      time.Time `json:"lastUpdated"`
	WeeklyGrowth     int       `json:"weeklyGrowth"`
}

// FindMember returns a pointer into members for the given name, or nil.
func FindMember(members []Member, name string) *Member {
	for i := range members {
		if members[i].Name == name {
			return &members[i]
		}
	}
	return nil
}
