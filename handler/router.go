package handler

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

var (
	commandHandlers   = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	componentHandlers = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
)

// AddCommandHandler registers a handler for a slash command.
func AddCommandHandler(name string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	commandHandlers[name] = handler
}

// AddComponentHandler registers a handler for a message component. Component
// customIDs have the form "<action>_<application id>"; handlers are keyed by
// the action prefix.
func AddComponentHandler(action string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	componentHandlers[action] = handler
}

// OnInteractionCreate is the main interaction router.
// It should be registered as the primary interaction handler on the session.
func OnInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if handler, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		parts := strings.SplitN(customID, "_", 2)
		handlerKey := parts[0]

		if handler, ok := componentHandlers[handlerKey]; ok {
			handler(s, i)
		}
	}
}
