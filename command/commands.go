package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/oopsididitagain335/futurecommon/command/def"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.PendingCommand,
}
