package checklist

import (
	"fmt"
	"strings"

	"guild-manager/internal/core/domain"
)

// RenameItem renames a catalog entry across every member, carrying checked
// state (including composite sub-item keys) to the new name in the same
// step, so no observable state has both or neither key.
func RenameItem(doc *domain.GuildDocument, cat domain.Category, oldName, newName string) error {
	oldName = normalizeItemName(cat, oldName)
	newName = normalizeItemName(cat, newName)
	if newName == "" {
		return &domain.NotFoundError{Kind: "item", Name: newName}
	}
	if newName == oldName {
		return nil
	}
	if !itemExists(doc, cat, oldName) {
		return &domain.NotFoundError{Kind: "item", Name: oldName}
	}
	if itemExists(doc, cat, newName) {
		return fmt.Errorf("item %q already exists in %s", newName, cat)
	}

	var subItems []string
	if cat.HasSubItems() {
		if entry := findEntry(doc, cat, oldName); entry != nil {
			subItems = append(subItems, entry.SubItems...)
		}
	}

	for i := range doc.Members {
		data := &doc.Members[i].Data
		if cat.HasSubItems() {
			entries := data.Entries(cat)
			for j := range entries {
				if entries[j].Name == oldName {
					entries[j].Name = newName
				}
			}
		} else {
			items := data.Items(cat)
			for j := range items {
				if items[j] == oldName {
					items[j] = newName
				}
			}
		}
	}

	for _, byCategory := range doc.CheckedItems {
		moveCheckedKey(byCategory[cat], oldName, newName)
		for _, sub := range subItems {
			moveCheckedKey(byCategory[cat], domain.SubItemKey(oldName, sub), domain.SubItemKey(newName, sub))
		}
	}
	return nil
}

// RenameSubItem renames a sub-item across every member, moving its
// composite checked-state key in the same step.
func RenameSubItem(doc *domain.GuildDocument, cat domain.Category, parent, oldSub, newSub string) error {
	if !cat.HasSubItems() {
		return &domain.NotFoundError{Kind: "category with sub-items", Name: string(cat)}
	}
	newSub = strings.TrimSpace(newSub)
	if newSub == "" {
		return &domain.NotFoundError{Kind: "sub-item", Name: newSub}
	}
	if newSub == oldSub {
		return nil
	}
	if findSubItem(doc, cat, parent, oldSub) == -1 {
		return &domain.NotFoundError{Kind: "sub-item", Name: oldSub}
	}
	if findSubItem(doc, cat, parent, newSub) != -1 {
		return fmt.Errorf("sub-item %q already exists for %q", newSub, parent)
	}

	for i := range doc.Members {
		entries := doc.Members[i].Data.Entries(cat)
		for j := range entries {
			if entries[j].Name != parent {
				continue
			}
			for k := range entries[j].SubItems {
				if entries[j].SubItems[k] == oldSub {
					entries[j].SubItems[k] = newSub
				}
			}
		}
	}

	oldKey := domain.SubItemKey(parent, oldSub)
	newKey := domain.SubItemKey(parent, newSub)
	for _, byCategory := range doc.CheckedItems {
		moveCheckedKey(byCategory[cat], oldKey, newKey)
	}
	return nil
}

func moveCheckedKey(keys map[string]bool, oldKey, newKey string) {
	if keys == nil {
		return
	}
	if value, ok := keys[oldKey]; ok {
		keys[newKey] = value
		delete(keys, oldKey)
	}
}
