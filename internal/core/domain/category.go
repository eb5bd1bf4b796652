package domain

import "fmt"

// Category is one of the four checklist categories. Bosses and quests hold
// structured entries with sub-items; chares and notas hold plain strings.
type Category string

const (
	CategoryBosses Category = "bosses"
	CategoryQuests Category = "quests"
	CategoryChares Category = "chares"
	CategoryNotas  Category = "notas"
)

var Categories = []Category{CategoryBosses, CategoryQuests, CategoryChares, CategoryNotas}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryBosses, CategoryQuests, CategoryChares, CategoryNotas:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// HasSubItems reports whether entries in this category carry sub-items.
func (c Category) HasSubItems() bool {
	return c == CategoryBosses || c == CategoryQuests
}

// SubItemKey builds the composite checked-state key for a sub-item.
func SubItemKey(item, sub string) string {
	return item + "::" + sub
}

// Entries returns the structured entries for bosses or quests, nil otherwise.
func (d *MemberData) Entries(c Category) []ItemEntry {
	switch c {
	case CategoryBosses:
		return d.Bosses
	case CategoryQuests:
		return d.Quests
	}
	return nil
}

func (d *MemberData) SetEntries(c Category, entries []ItemEntry) {
	switch c {
	case CategoryBosses:
		d.Bosses = entries
	case CategoryQuests:
		d.Quests = entries
	}
}

// Items returns the flat string items for chares or notas, nil otherwise.
func (d *MemberData) Items(c Category) []string {
	switch c {
	case CategoryChares:
		return d.Chares
	case CategoryNotas:
		return d.Notas
	}
	return nil
}

func (d *MemberData) SetItems(c Category, items []string) {
	switch c {
	case CategoryChares:
		d.Chares = items
	case CategoryNotas:
		d.Notas = items
	}
}
