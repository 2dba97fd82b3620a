package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/oopsididitagain335/futurecommon/command"
	"github.com/oopsididitagain335/futurecommon/config"
)

// Bot owns the single long-lived Discord gateway connection. Both the
// intake notifier and the review handlers operate through its session.
type Bot struct {
	session *discordgo.Session
	cfg     *config.Config
	log     *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	registerEventHandlers(s)

	return &Bot{session: s, cfg: cfg, log: log}, nil
}

// Start opens the gateway connection and registers the slash commands on
// each configured guild.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway connection: %w", err)
	}

	for _, guildID := range b.cfg.Discord.GuildIDs {
		for _, cmd := range command.AllCommands {
			_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, guildID, cmd)
			if err != nil {
				b.log.Error("create command",
					zap.String("command", cmd.Name),
					zap.String("guild", guildID),
					zap.Error(err))
			}
		}
	}

	b.log.Info("bot connected", zap.String("user", b.session.State.User.Username))
	return nil
}

func (b *Bot) Stop() {
	if err := b.session.Close(); err != nil {
		b.log.Error("close discord session", zap.Error(err))
	}
}

// Session returns the shared connection handle.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}
