package tibiadata

import (
	"strings"
	"time"

	"guild-manager/internal/adapters/tibiadata/api"
	"guild-manager/internal/adapters/tibiadata/scraper"
	"guild-manager/internal/core/domain"
)

func (a *Adapter) mapGuild(resp *api.GuildResponse) *domain.GuildSnapshot {
	g := resp.Guild

	snapshot := &domain.GuildSnapshot{
		Name:             g.Name,
		World:            g.World,
		ApplicationsOpen: g.OpenApplications,
	}

	snapshot.Members = make([]domain.BasicMember, 0, len(g.Members))
	for _, m := range g.Members {
		snapshot.Members = append(snapshot.Members, domain.BasicMember{
			Name:     m.Name,
			Level:    m.Level,
			Vocation: m.Vocation,
			Status:   normalizeStatus(m.Status),
			Joined:   parseAPIDate(m.Joined),
		})
	}

	snapshot.Invites = make([]domain.Invite, 0, len(g.Invites))
	for _, inv := range g.Invites {
		snapshot.Invites = append(snapshot.Invites, domain.Invite{
			Name:      inv.Name,
			Date:      parseAPIDate(inv.Date),
			InvitedBy: inv.InvitedBy,
		})
	}

	return snapshot
}

func (a *Adapter) mapScrapedGuild(guildName string, rows []scraper.GuildRow) *domain.GuildSnapshot {
	snapshot := &domain.GuildSnapshot{Name: guildName}

	snapshot.Members = make([]domain.BasicMember, 0, len(rows))
	for _, row := range rows {
		snapshot.Members = append(snapshot.Members, domain.BasicMember{
			Name:     row.Name,
			Level:    row.Level,
			Vocation: row.Vocation,
			Status:   normalizeStatus(row.Status),
			Joined:   parseTibiaComDate(row.Joined),
		})
	}

	return snapshot
}

func (a *Adapter) mapCharacter(char *api.CharacterResponse) *domain.CharacterDetail {
	if char == nil || char.Character.Character.Name == "" {
		return nil
	}

	c := char.Character.Character

	var deaths []domain.Death
	for _, d := range char.Character.Deaths {
		deaths = append(deaths, domain.Death{
			Time:   d.Time,
			Level:  d.Level,
			Reason: d.Reason,
		})
	}

	return &domain.CharacterDetail{
		Name:     c.Name,
		Level:    c.Level,
		Vocation: c.Vocation,
		Sex:      normalizeSex(c.Sex),
		Deaths:   deaths,
	}
}

func normalizeStatus(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), domain.StatusOnline) {
		return domain.StatusOnline
	}
	return domain.StatusOffline
}

func normalizeSex(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case domain.SexMale:
		return domain.SexMale
	case domain.SexFemale:
		return domain.SexFemale
	}
	return domain.SexUnknown
}

// parseAPIDate handles the timestamp formats TibiaData emits. A zero time
// means the field was absent or unparseable.
func parseAPIDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseTibiaComDate parses the "Jul 25 2021" format from the guild page.
func parseTibiaComDate(s string) time.Time {
	t, err := time.Parse("Jan 02 2006", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}
