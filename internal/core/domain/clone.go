package domain

// Clone deep-copies the document. Mutations operate on a clone and swap it
// in whole, so readers holding the previous pointer never observe a
// half-applied change.
func (d *GuildDocument) Clone() *GuildDocument {
	if d == nil {
		return nil
	}
	out := &GuildDocument{
		Name:        d.Name,
		World:       d.World,
		LastUpdated: d.LastUpdated,
	}
	out.Members = make([]Member, len(d.Members))
	for i, m := range d.Members {
		out.Members[i] = m.Clone()
	}
	out.RecentChanges = append([]ChangeEvent(nil), d.RecentChanges...)
	out.CheckedItems = d.CheckedItems.Clone()
	return out
}

func (m Member) Clone() Member {
	out := m
	out.Deaths = append([]Death(nil), m.Deaths...)
	out.LevelHistory = append([]LevelHistoryEntry(nil), m.LevelHistory...)
	out.Data = m.Data.Clone()
	return out
}

func (d MemberData) Clone() MemberData {
	out := MemberData{
		Chares: append([]string(nil), d.Chares...),
		Notas:  append([]string(nil), d.Notas...),
	}
	out.Bosses = cloneEntries(d.Bosses)
	out.Quests = cloneEntries(d.Quests)
	return out
}

func cloneEntries(entries []ItemEntry) []ItemEntry {
	if entries == nil {
		return nil
	}
	out := make([]ItemEntry, len(entries))
	for i, e := range entries {
		out[i] = ItemEntry{Name: e.Name, SubItems: append([]string(nil), e.SubItems...)}
	}
	return out
}

func (c CheckedItems) Clone() CheckedItems {
	if c == nil {
		return nil
	}
	out := make(CheckedItems, len(c))
	for member, byCategory := range c {
		cats := make(map[Category]map[string]bool, len(byCategory))
		for cat, keys := range byCategory {
			kv := make(map[string]bool, len(keys))
			for k, v := range keys {
				kv[k] = v
			}
			cats[cat] = kv
		}
		out[member] = cats
	}
	return out
}
