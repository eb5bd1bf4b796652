package roster

import (
	"time"

	"guild-manager/internal/core/domain"
)

// ReconcileInput is everything one reconciliation cycle depends on. All
// I/O happens before this point; Reconcile itself is deterministic given
// its input.
type ReconcileInput struct {
	Prior           *domain.GuildDocument
	Snapshot        *domain.GuildSnapshot
	Details         map[string]*domain.CharacterDetail
	Now             time.Time
	DefaultTimeZone string
}

type ReconcileResult struct {
	Doc *domain.GuildDocument
	// NewEvents are the joined/left events first recorded this cycle.
	NewEvents []domain.ChangeEvent
}

// Reconcile merges a fresh snapshot with the persisted document. Snapshot
// attributes (level, vocation, sex, status, deaths) replace the stored ones
// wholesale; curated state (data, levelHistory, timeZone, joinDate) is
// carried forward. Members absent from the snapshot are kept with their
// last known attributes and recorded as left exactly once.
func Reconcile(in ReconcileInput) ReconcileResult {
	prev := NormalizePrevious(in.Prior)
	catalog := SharedCatalog(in.Prior)

	members := make([]domain.Member, 0, len(in.Snapshot.Members))
	for _, basic := range in.Snapshot.Members {
		members = append(members, mergeMember(basic, in.Details[basic.Name], prev, catalog, in.Now, in.DefaultTimeZone))
	}

	currentNames := make(map[string]bool, len(members))
	for _, m := range members {
		currentNames[m.Name] = true
	}
	if in.Prior != nil {
		for _, m := range in.Prior.Members {
			if !currentNames[m.Name] {
				members = append(members, m.Clone())
			}
		}
	}

	changes := DeriveChanges(DeriveInput{
		PreviousNames:   prev.Names,
		PreviousMembers: prev.Members,
		Current:         in.Snapshot.Members,
		Invites:         EnrichInvites(in.Snapshot.Invites, in.Details),
		PreviousEvents:  prev.Events,
		Now:             in.Now,
	})

	doc := &domain.GuildDocument{
		Name:          in.Snapshot.Name,
		World:         in.Snapshot.World,
		Members:       members,
		CheckedItems:  prev.Checked.Clone(),
		RecentChanges: changes,
		LastUpdated:   in.Now,
	}
	if doc.CheckedItems == nil {
		doc.CheckedItems = domain.CheckedItems{}
	}
	if doc.World == "" && in.Prior != nil {
		doc.World = in.Prior.World
	}
	if doc.Name == "" && in.Prior != nil {
		doc.Name = in.Prior.Name
	}

	return ReconcileResult{
		Doc:       doc,
		NewEvents: NewlyDerived(prev.Events, changes),
	}
}

func mergeMember(basic domain.BasicMember, detail *domain.CharacterDetail, prev PreviousState, catalog domain.MemberData, now time.Time, defaultTZ string) domain.Member {
	member := domain.Member{
		Name:     basic.Name,
		Level:    basic.Level,
		Vocation: basic.Vocation,
		Status:   basic.Status,
		Sex:      domain.SexUnknown,
		Deaths:   []domain.Death{},
	}

	if detail != nil {
		member.Sex = detail.Sex
		if detail.Deaths != nil {
			member.Deaths = detail.Deaths
		}
		if member.Vocation == "" {
			member.Vocation = detail.Vocation
		}
	}
	if member.Vocation == "" {
		member.Vocation = domain.VocationUnknown
	}

	if prior, ok := prev.Members[basic.Name]; ok {
		member.Data = prior.Data.Clone()
		member.TimeZone = prior.TimeZone
		member.JoinDate = prior.JoinDate
		member.LevelHistory = AppendLevel(prior.LevelHistory, member.Level, now)
	} else {
		member.Data = catalog.Clone()
		member.TimeZone = defaultTZ
		member.LevelHistory = AppendLevel(nil, member.Level, now)
	}

	if member.TimeZone == "" {
		member.TimeZone = defaultTZ
	}
	if member.JoinDate.IsZero() {
		member.JoinDate = basic.Joined
	}
	if member.JoinDate.IsZero() {
		member.JoinDate = now
	}

	return member
}
