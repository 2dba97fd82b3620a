package review

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// onPending answers the /pending command with an ephemeral list of
// applications still awaiting a decision.
func (h *Handler) onPending(s *discordgo.Session, i *discordgo.InteractionCreate) {
	apps := h.registry.Snapshot()

	embed := &discordgo.MessageEmbed{
		Title: "⏳ Pending Applications",
		Color: 0x5865F2,
	}
	if len(apps) == 0 {
		embed.Description = "No applications are waiting for review."
	} else {
		for _, app := range apps {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("%s — %s", app.Name, app.Role),
				Value: fmt.Sprintf("%s · ID: `%s`", app.Email, app.ID),
			})
		}
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d pending", len(apps)),
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.log.Error("respond to /pending", zap.Error(err))
	}
}
