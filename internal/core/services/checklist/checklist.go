// Package checklist holds the guarded mutations over the shared checklist
// catalog. Every function operates on a document the caller owns (a clone
// of the live one) and either applies the whole mutation or returns an
// error leaving the document untouched.
package checklist

import (
	"strings"

	"guild-manager/internal/adapters/metrics"
	"guild-manager/internal/core/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// AddCategory is part of the catalog contract for symmetry with removal.
// The four categories always exist, so adding one that parses is a no-op.
func AddCategory(doc *domain.GuildDocument, cat domain.Category) error {
	_, err := domain.ParseCategory(string(cat))
	return err
}

// RemoveCategory clears a whole category for every member. It fails when
// any member has any key in the category checked.
func RemoveCategory(doc *domain.GuildDocument, cat domain.Category) error {
	for member, byCategory := range doc.CheckedItems {
		for key, checked := range byCategory[cat] {
			if checked {
				metrics.GuardViolations.Inc()
				return &domain.GuardViolationError{Category: cat, Key: key, Member: member}
			}
		}
	}

	for i := range doc.Members {
		if cat.HasSubItems() {
			doc.Members[i].Data.SetEntries(cat, nil)
		} else {
			doc.Members[i].Data.SetItems(cat, nil)
		}
	}
	for _, byCategory := range doc.CheckedItems {
		delete(byCategory, cat)
	}
	return nil
}

// AddItem adds a catalog entry to every member. An exact-name duplicate is
// an idempotent no-op. Chare names are title-cased the way the original
// roster keeps character names.
func AddItem(doc *domain.GuildDocument, cat domain.Category, name string) error {
	name = normalizeItemName(cat, name)
	if name == "" {
		return &domain.NotFoundError{Kind: "item", Name: name}
	}
	if len(doc.Members) == 0 {
		return domain.ErrEmptyRoster
	}

	if itemExists(doc, cat, name) {
		return nil
	}

	for i := range doc.Members {
		data := &doc.Members[i].Data
		if cat.HasSubItems() {
			data.SetEntries(cat, append(data.Entries(cat), domain.ItemEntry{Name: name, SubItems: []string{}}))
		} else {
			data.SetItems(cat, append(data.Items(cat), name))
		}
	}

	for i := range doc.Members {
		setChecked(doc, doc.Members[i].Name, cat, name, false)
	}
	return nil
}

// RemoveItem deletes a catalog entry for every member. It fails when any
// member has the entry checked; on failure nothing changes.
func RemoveItem(doc *domain.GuildDocument, cat domain.Category, name string) error {
	name = normalizeItemName(cat, name)
	if !itemExists(doc, cat, name) {
		return &domain.NotFoundError{Kind: "item", Name: name}
	}

	for member, byCategory := range doc.CheckedItems {
		if byCategory[cat][name] {
			metrics.GuardViolations.Inc()
			return &domain.GuardViolationError{Category: cat, Key: name, Member: member}
		}
	}

	var subItems []string
	if cat.HasSubItems() {
		if entry := findEntry(doc, cat, name); entry != nil {
			subItems = append(subItems, entry.SubItems...)
		}
	}

	for i := range doc.Members {
		data := &doc.Members[i].Data
		if cat.HasSubItems() {
			entries := data.Entries(cat)
			kept := entries[:0]
			for _, e := range entries {
				if e.Name != name {
					kept = append(kept, e)
				}
			}
			data.SetEntries(cat, kept)
		} else {
			items := data.Items(cat)
			kept := items[:0]
			for _, it := range items {
				if it != name {
					kept = append(kept, it)
				}
			}
			data.SetItems(cat, kept)
		}
	}

	for _, byCategory := range doc.CheckedItems {
		delete(byCategory[cat], name)
		for _, sub := range subItems {
			delete(byCategory[cat], domain.SubItemKey(name, sub))
		}
	}
	return nil
}

// AddSubItem appends a sub-item to a bosses/quests entry for every member.
// A duplicate is an idempotent no-op.
func AddSubItem(doc *domain.GuildDocument, cat domain.Category, parent, sub string) error {
	if !cat.HasSubItems() {
		return &domain.NotFoundError{Kind: "category with sub-items", Name: string(cat)}
	}
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return &domain.NotFoundError{Kind: "sub-item", Name: sub}
	}
	if len(doc.Members) == 0 {
		return domain.ErrEmptyRoster
	}

	entry := findEntry(doc, cat, parent)
	if entry == nil {
		return &domain.NotFoundError{Kind: "item", Name: parent}
	}
	for _, existing := range entry.SubItems {
		if existing == sub {
			return nil
		}
	}

	for i := range doc.Members {
		entries := doc.Members[i].Data.Entries(cat)
		for j := range entries {
			if entries[j].Name == parent {
				entries[j].SubItems = append(entries[j].SubItems, sub)
			}
		}
	}

	key := domain.SubItemKey(parent, sub)
	for i := range doc.Members {
		setChecked(doc, doc.Members[i].Name, cat, key, false)
	}
	return nil
}

// RemoveSubItem deletes a sub-item for every member, guarded on its
// composite key.
func RemoveSubItem(doc *domain.GuildDocument, cat domain.Category, parent, sub string) error {
	if !cat.HasSubItems() {
		return &domain.NotFoundError{Kind: "category with sub-items", Name: string(cat)}
	}
	if findSubItem(doc, cat, parent, sub) == -1 {
		return &domain.NotFoundError{Kind: "sub-item", Name: sub}
	}

	key := domain.SubItemKey(parent, sub)
	for member, byCategory := range doc.CheckedItems {
		if byCategory[cat][key] {
			metrics.GuardViolations.Inc()
			return &domain.GuardViolationError{Category: cat, Key: key, Member: member}
		}
	}

	for i := range doc.Members {
		entries := doc.Members[i].Data.Entries(cat)
		for j := range entries {
			if entries[j].Name != parent {
				continue
			}
			kept := entries[j].SubItems[:0]
			for _, s := range entries[j].SubItems {
				if s != sub {
					kept = append(kept, s)
				}
			}
			entries[j].SubItems = kept
		}
	}

	for _, byCategory := range doc.CheckedItems {
		delete(byCategory[cat], key)
	}
	return nil
}

// Toggle sets the checked state of one key for one member. The catalog is
// deliberately not consulted: a key may be checked before its catalog
// entry is persisted and is reconciled later.
func Toggle(doc *domain.GuildDocument, memberName string, cat domain.Category, key string, value bool) error {
	if domain.FindMember(doc.Members, memberName) == nil {
		return &domain.NotFoundError{Kind: "member", Name: memberName}
	}
	setChecked(doc, memberName, cat, key, value)
	return nil
}

// SetTimeZone updates one member's preferred time zone.
func SetTimeZone(doc *domain.GuildDocument, memberName, timeZone string) error {
	member := domain.FindMember(doc.Members, memberName)
	if member == nil {
		return &domain.NotFoundError{Kind: "member", Name: memberName}
	}
	member.TimeZone = timeZone
	return nil
}

// normalizeItemName trims the name and canonicalizes chare names, which
// the catalog stores title-cased, so lookups match however the caller
// typed them.
func normalizeItemName(cat domain.Category, name string) string {
	name = strings.TrimSpace(name)
	if cat == domain.CategoryChares {
		name = titleCaser.String(strings.ToLower(name))
	}
	return name
}

func setChecked(doc *domain.GuildDocument, memberName string, cat domain.Category, key string, value bool) {
	if doc.CheckedItems == nil {
		doc.CheckedItems = domain.CheckedItems{}
	}
	byCategory := doc.CheckedItems[memberName]
	if byCategory == nil {
		byCategory = make(map[domain.Category]map[string]bool)
		doc.CheckedItems[memberName] = byCategory
	}
	keys := byCategory[cat]
	if keys == nil {
		keys = make(map[string]bool)
		byCategory[cat] = keys
	}
	keys[key] = value
}

func itemExists(doc *domain.GuildDocument, cat domain.Category, name string) bool {
	if cat.HasSubItems() {
		return findEntry(doc, cat, name) != nil
	}
	for _, m := range doc.Members {
		for _, it := range m.Data.Items(cat) {
			if it == name {
				return true
			}
		}
	}
	return false
}

func findEntry(doc *domain.GuildDocument, cat domain.Category, name string) *domain.ItemEntry {
	for i := range doc.Members {
		entries := doc.Members[i].Data.Entries(cat)
		for j := range entries {
			if entries[j].Name == name {
				return &entries[j]
			}
		}
	}
	return nil
}

func findSubItem(doc *domain.GuildDocument, cat domain.Category, parent, sub string) int {
	entry := findEntry(doc, cat, parent)
	if entry == nil {
		return -1
	}
	for i, s := range entry.SubItems {
		if s == sub {
			return i
		}
	}
	return -1
}
