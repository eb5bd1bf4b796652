package roster

import "guild-manager/internal/core/domain"

// PreviousState indexes a persisted document for reconciliation.
type PreviousState struct {
	Members map[string]domain.Member
	Names   map[string]bool
	Events  []domain.ChangeEvent
	Checked domain.CheckedItems
}

// NormalizePrevious converts the prior document into lookup shapes. A nil
// document (first run) normalizes to empty state.
func NormalizePrevious(doc *domain.GuildDocument) PreviousState {
	state := PreviousState{
		Members: make(map[string]domain.Member),
		Names:   make(map[string]bool),
		Checked: domain.CheckedItems{},
	}
	if doc == nil {
		return state
	}

	for _, m := range doc.Members {
		state.Members[m.Name] = m
		state.Names[m.Name] = true
	}
	state.Events = doc.RecentChanges
	if doc.CheckedItems != nil {
		state.Checked = doc.CheckedItems
	}
	return state
}

// SharedCatalog picks the checklist catalog carried forward to new members.
// Every member record carries the same catalog; the first prior record (or
// an empty catalog on first run) is authoritative.
func SharedCatalog(doc *domain.GuildDocument) domain.MemberData {
	if doc == nil || len(doc.Members) == 0 {
		return domain.MemberData{}
	}
	return doc.Members[0].Data.Clone()
}
