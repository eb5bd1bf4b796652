package roster

import (
	"time"

	"guild-manager/internal/core/domain"
)

// BuildStats summarizes a document for the roster payload. Joined/left
// counts cover the trailing seven days, matching the recent-movements view.
func BuildStats(doc *domain.GuildDocument, applicationsOpen bool, now time.Time) domain.GuildStats {
	stats := domain.GuildStats{
		ApplicationsOpen: applicationsOpen,
		LastUpdated:      doc.LastUpdated,
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, e := range doc.RecentChanges {
		switch e.Type {
		case domain.ChangeInvited:
			stats.InvitesCount++
		case domain.ChangeJoined:
			if e.Date.After(weekAgo) {
				stats.NewMembers++
			}
		case domain.ChangeLeft:
			if e.Date.After(weekAgo) {
				stats.DepartedMembers++
			}
		}
	}

	departed := departedNames(doc)
	for _, m := range doc.Members {
		if departed[m.Name] {
			continue
		}
		stats.TotalMembers++
		if m.Status == domain.StatusOnline {
			stats.OnlineCount++
		} else {
			stats.OfflineCount++
		}
	}

	stats.WeeklyGrowth = stats.NewMembers - stats.DepartedMembers
	return stats
}

// departedNames marks members whose most recent joined/left event is a
// departure. Departed members stay in the document but are excluded from
// headcounts.
func departedNames(doc *domain.GuildDocument) map[string]bool {
	out := make(map[string]bool)
	decided := make(map[string]bool)
	// RecentChanges is newest first, so the first event seen per name wins.
	for _, e := range doc.RecentChanges {
		if e.Type == domain.ChangeInvited || decided[e.Name] {
			continue
		}
		decided[e.Name] = true
		if e.Type == domain.ChangeLeft {
			out[e.Name] = true
		}
	}
	return out
}
