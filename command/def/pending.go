package def

import "github.com/bwmarrin/discordgo"

var PendingCommand = &discordgo.ApplicationCommand{
	Name:        "pending",
	Description: "List applications still waiting for a reviewer decision",
}
