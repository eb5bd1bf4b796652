package formatting

import (
	"testing"

	"guild-manager/internal/core/domain"
)

func TestMsgChange(t *testing.T) {
	tests := []struct {
		name   string
		change domain.ChangeEvent
		want   string
	}{
		{
			name:   "joined",
			change: domain.ChangeEvent{Name: "Aria", Type: domain.ChangeJoined, Level: 250, Vocation: "Elder Druid"},
			want:   "**Aria** joined the guild - Elder Druid (Lvl 250)",
		},
		{
			name:   "left",
			change: domain.ChangeEvent{Name: "Ghost", Type: domain.ChangeLeft, Level: 312, Vocation: "Sorcerer"},
			want:   "**Ghost** left the guild - Sorcerer (Lvl 312)",
		},
		{
			name:   "invited with inviter",
			change: domain.ChangeEvent{Name: "Rookie", Type: domain.ChangeInvited, InvitedBy: "Aria"},
			want:   "**Rookie** was invited to the guild by Aria",
		},
		{
			name:   "invited without inviter",
			change: domain.ChangeEvent{Name: "Rookie", Type: domain.ChangeInvited},
			want:   "**Rookie** was invited to the guild",
		},
		{
			name:   "unknown type",
			change: domain.ChangeEvent{Name: "Odd", Type: "promoted"},
			want:   "**Odd**: promoted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MsgChange(tt.change); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
