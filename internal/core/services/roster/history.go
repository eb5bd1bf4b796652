package roster

import (
	"time"

	"guild-manager/internal/core/domain"
)

// MaxHistoryEntries bounds every member's level history. Oldest entries are
// evicted first.
const MaxHistoryEntries = 100

// AppendLevel records an observed level. A new entry is appended only when
// the level differs from the last recorded one, so an unchanged level adds
// no noise. The input slice is never mutated.
func AppendLevel(history []domain.LevelHistoryEntry, level int, now time.Time) []domain.LevelHistoryEntry {
	if len(history) > 0 && history[len(history)-1].Level == level {
		return history
	}

	out := make([]domain.LevelHistoryEntry, 0, len(history)+1)
	out = append(out, history...)
	out = append(out, domain.LevelHistoryEntry{Date: now, Level: level})

	if len(out) > MaxHistoryEntries {
		out = out[len(out)-MaxHistoryEntries:]
	}
	return out
}

// LevelDaysAgo returns the level from the most recent entry dated at least
// the given number of days before now, or false when the history does not
// reach that far back.
func LevelDaysAgo(history []domain.LevelHistoryEntry, days int, now time.Time) (int, bool) {
	cutoff := now.AddDate(0, 0, -days)

	best := -1
	for i, entry := range history {
		if !entry.Date.After(cutoff) {
			if best == -1 || entry.Date.After(history[best].Date) {
				best = i
			}
		}
	}

	if best == -1 {
		return 0, false
	}
	return history[best].Level, true
}

// WeeklyDelta is the "+N levels this week" figure shown next to a member.
func WeeklyDelta(history []domain.LevelHistoryEntry, currentLevel int, now time.Time) int {
	then, ok := LevelDaysAgo(history, 7, now)
	if !ok {
		return 0
	}
	return currentLevel - then
}
