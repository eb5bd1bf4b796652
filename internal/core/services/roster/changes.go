package roster

import (
	"sort"
	"time"

	"guild-manager/internal/adapters/metrics"
	"guild-manager/internal/core/domain"
)

// MaxRecentChanges bounds the change log, newest first.
const MaxRecentChanges = 100

// DeriveInput freezes everything change derivation depends on, so running
// it twice over the same pair of snapshots yields the same joined/left sets.
type DeriveInput struct {
	PreviousNames   map[string]bool
	PreviousMembers map[string]domain.Member
	Current         []domain.BasicMember
	Invites         []domain.ChangeEvent
	PreviousEvents  []domain.ChangeEvent
	Now             time.Time
}

// DeriveChanges computes the next change log. Joined and left events are
// historical facts derived once by set difference and kept until they age
// out of the cap; invited entries are live state, replaced wholesale every
// cycle.
func DeriveChanges(in DeriveInput) []domain.ChangeEvent {
	currentNames := make(map[string]bool, len(in.Current))
	for _, m := range in.Current {
		currentNames[m.Name] = true
	}

	var derived []domain.ChangeEvent

	for _, m := range in.Current {
		if in.PreviousNames[m.Name] {
			continue
		}
		date := m.Joined
		if date.IsZero() {
			date = in.Now
		}
		derived = append(derived, domain.ChangeEvent{
			Name:     m.Name,
			Date:     date,
			Type:     domain.ChangeJoined,
			Level:    m.Level,
			Vocation: m.Vocation,
			Status:   m.Status,
		})
	}

	for name := range in.PreviousNames {
		if currentNames[name] {
			continue
		}
		event := domain.ChangeEvent{
			Name:     name,
			Date:     in.Now,
			Type:     domain.ChangeLeft,
			Vocation: domain.VocationUnknown,
			Status:   domain.StatusOffline,
		}
		if prev, ok := in.PreviousMembers[name]; ok {
			event.Level = prev.Level
			event.Vocation = prev.Vocation
			event.Status = prev.Status
		}
		derived = append(derived, event)
	}

	// Same-type duplicates by name are suppressed against retained history;
	// a member that is both freshly joined and a stale invited entry is not.
	retained := make([]domain.ChangeEvent, 0, len(in.PreviousEvents))
	seen := make(map[string]map[string]bool)
	for _, e := range in.PreviousEvents {
		if e.Type == domain.ChangeInvited {
			continue
		}
		retained = append(retained, e)
		if seen[e.Name] == nil {
			seen[e.Name] = make(map[string]bool)
		}
		seen[e.Name][e.Type] = true
	}

	merged := make([]domain.ChangeEvent, 0, len(derived)+len(in.Invites)+len(retained))
	for _, e := range derived {
		if seen[e.Name][e.Type] {
			continue
		}
		metrics.ChangeEventsDerived.WithLabelValues(e.Type).Inc()
		merged = append(merged, e)
	}
	merged = append(merged, in.Invites...)
	merged = append(merged, retained...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if len(merged) > MaxRecentChanges {
		merged = merged[:MaxRecentChanges]
	}
	return merged
}

// NewlyDerived returns the joined/left events present in next but not in
// prev, used to fan out notifications exactly once per event.
func NewlyDerived(prev, next []domain.ChangeEvent) []domain.ChangeEvent {
	known := make(map[string]bool, len(prev))
	for _, e := range prev {
		known[e.Name+"\x00"+e.Type] = true
	}

	var out []domain.ChangeEvent
	for _, e := range next {
		if e.Type == domain.ChangeInvited {
			continue
		}
		if !known[e.Name+"\x00"+e.Type] {
			out = append(out, e)
		}
	}
	return out
}
