package formatting

import (
	"fmt"

	"guild-manager/internal/core/domain"
)

const DcLongTimeFormat = "02 Jan 2006 15:04"

func MsgJoined(name string, level int, vocation string) string {
	return fmt.Sprintf("**%s** joined the guild - %s (Lvl %d)", name, vocation, level)
}

func MsgLeft(name string, level int, vocation string) string {
	return fmt.Sprintf("**%s** left the guild - %s (Lvl %d)", name, vocation, level)
}

func MsgInvited(name, invitedBy string) string {
	if invitedBy == "" {
		return fmt.Sprintf("**%s** was invited to the guild", name)
	}
	return fmt.Sprintf("**%s** was invited to the guild by %s", name, invitedBy)
}

func MsgChange(change domain.ChangeEvent) string {
	switch change.Type {
	case domain.ChangeJoined:
		return MsgJoined(change.Name, change.Level, change.Vocation)
	case domain.ChangeLeft:
		return MsgLeft(change.Name, change.Level, change.Vocation)
	case domain.ChangeInvited:
		return MsgInvited(change.Name, change.InvitedBy)
	}
	return fmt.Sprintf("**%s**: %s", change.Name, change.Type)
}
