package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/oopsididitagain335/futurecommon/handler"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)

	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
}
