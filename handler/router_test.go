package handler

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func componentInteraction(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{CustomID: customID},
		},
	}
}

func TestComponentRouting(t *testing.T) {
	var got []string
	AddComponentHandler("accept", func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		got = append(got, i.MessageComponentData().CustomID)
	})

	OnInteractionCreate(nil, componentInteraction("accept_app-1"))
	OnInteractionCreate(nil, componentInteraction("deny_app-1"))

	assert.Equal(t, []string{"accept_app-1"}, got)
}

func TestUnknownComponentIsIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		OnInteractionCreate(nil, componentInteraction("whatever_123"))
		OnInteractionCreate(nil, componentInteraction("no-separator"))
	})
}

func TestCommandRouting(t *testing.T) {
	called := false
	AddCommandHandler("pending", func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		called = true
	})

	OnInteractionCreate(nil, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "pending"},
		},
	})

	assert.True(t, called)
}
