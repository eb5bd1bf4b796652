package roster

import (
	"context"
	"log/slog"

	"guild-manager/internal/core/domain"
	"guild-manager/internal/core/ports"
)

// Enricher resolves per-character detail for a snapshot. Individual lookup
// failures degrade that one character; they never abort the batch.
type Enricher struct {
	source ports.RosterSource
}

func NewEnricher(source ports.RosterSource) *Enricher {
	return &Enricher{source: source}
}

// Enrich fetches details for every member and invitee in one concurrent
// batch. The returned map only contains names that resolved; callers fall
// back to basic attributes for the rest.
func (e *Enricher) Enrich(ctx context.Context, snapshot *domain.GuildSnapshot) map[string]*domain.CharacterDetail {
	names := make([]string, 0, len(snapshot.Members)+len(snapshot.Invites))
	for _, m := range snapshot.Members {
		names = append(names, m.Name)
	}
	for _, inv := range snapshot.Invites {
		names = append(names, inv.Name)
	}

	details := make(map[string]*domain.CharacterDetail, len(names))
	if len(names) == 0 {
		return details
	}

	results, err := e.source.FetchCharacterDetails(ctx, names)
	if err != nil {
		slog.Warn("Failed to start detail fetch, falling back to basic attributes", "error", err)
		return details
	}

	for detail := range results {
		details[detail.Name] = detail
	}

	if missing := len(names) - len(details); missing > 0 {
		slog.Info("Some character details unavailable", "requested", len(names), "resolved", len(details))
	}

	return details
}

// EnrichInvites maps the pending invitations to change events, borrowing
// level and vocation from the detail lookup when it resolved.
func EnrichInvites(invites []domain.Invite, details map[string]*domain.CharacterDetail) []domain.ChangeEvent {
	out := make([]domain.ChangeEvent, 0, len(invites))
	for _, inv := range invites {
		event := domain.ChangeEvent{
			Name:      inv.Name,
			Date:      inv.Date,
			Type:      domain.ChangeInvited,
			Vocation:  domain.VocationUnknown,
			Status:    domain.StatusOffline,
			InvitedBy: inv.InvitedBy,
		}
		if detail, ok := details[inv.Name]; ok {
			event.Level = detail.Level
			event.Vocation = detail.Vocation
		}
		out = append(out, event)
	}
	return out
}
