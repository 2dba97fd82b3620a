package review

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Action is a reviewer decision encoded in a button customID.
type Action string

const (
	ActionAccept Action = "accept"
	ActionDeny   Action = "deny"
)

// ParseCustomID splits a button customID of the form "<action>_<id>" into
// its action and application id. ok is false for anything malformed, which
// callers treat the same as an unknown application.
func ParseCustomID(customID string) (Action, string, bool) {
	parts := strings.SplitN(customID, "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", false
	}
	action := Action(parts[0])
	if action != ActionAccept && action != ActionDeny {
		return "", "", false
	}
	return action, parts[1], true
}

// reviewButtons builds the Accept/Deny row attached to a new application
// notification.
func reviewButtons(appID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Accept",
					Style:    discordgo.SuccessButton,
					CustomID: string(ActionAccept) + "_" + appID,
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
				discordgo.Button{
					Label:    "Deny",
					Style:    discordgo.DangerButton,
					CustomID: string(ActionDeny) + "_" + appID,
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
			},
		},
	}
}

// decidedButtons replaces the active row with a single disabled button that
// reflects the terminal decision.
func decidedButtons(action Action) []discordgo.MessageComponent {
	label := "Accepted"
	style := discordgo.SuccessButton
	if action == ActionDeny {
		label = "Denied"
		style = discordgo.DangerButton
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    label,
					Style:    style,
					CustomID: strings.ToLower(label),
					Disabled: true,
				},
			},
		},
	}
}
