package review

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/oopsididitagain335/futurecommon/intake"
	"github.com/oopsididitagain335/futurecommon/model"
)

const (
	eligibleColor   = 0x2ECC71
	ineligibleColor = 0xE74C3C
)

// Sender is the slice of discordgo.Session the notifier needs.
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier delivers application notifications to the review channel.
type Notifier struct {
	sender    Sender
	channelID string
	policy    intake.Policy
	log       *zap.Logger
}

func NewNotifier(sender Sender, channelID string, policy intake.Policy, log *zap.Logger) *Notifier {
	return &Notifier{
		sender:    sender,
		channelID: channelID,
		policy:    policy,
		log:       log,
	}
}

// Notify sends the application embed with Accept/Deny buttons to the review
// channel. The caller must only register the application as pending after
// this returns nil.
func (n *Notifier) Notify(sub model.Submission, appID string, d intake.Decision) error {
	_, err := n.sender.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Embed:      n.applicationEmbed(sub, appID, d),
		Components: reviewButtons(appID),
	})
	if err != nil {
		return fmt.Errorf("send review notification: %w", err)
	}

	n.log.Info("application sent for review",
		zap.String("id", appID),
		zap.String("applicant", sub.Name),
		zap.Int("age", d.Age))
	return nil
}

func (n *Notifier) applicationEmbed(sub model.Submission, appID string, d intake.Decision) *discordgo.MessageEmbed {
	eligibility := fmt.Sprintf("Yes (%d+ as of %s)",
		n.policy.MinAge, n.policy.Reference.Format("Jan 2, 2006"))
	color := eligibleColor
	if !d.Eligible {
		eligibility = "No (Underage)"
		color = ineligibleColor
	}

	return &discordgo.MessageEmbed{
		Title: "📬 New Co-Gov Application",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 Name", Value: sub.Name, Inline: true},
			{Name: "📧 Email", Value: fmt.Sprintf("<%s>", sub.Email), Inline: true},
			{Name: "📱 Phone", Value: sub.Phone, Inline: true},
			{Name: "📅 DOB", Value: sub.DOB, Inline: true},
			{Name: "📍 Location", Value: sub.Location, Inline: true},
			{Name: "🎯 Role", Value: sub.Role, Inline: true},
			{Name: "🔧 Skills", Value: sub.Skills},
			{Name: "💡 Why Join?", Value: sub.Why},
			{Name: "✅ Eligible?", Value: eligibility, Inline: true},
		},
		Color:     color,
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Application ID: " + appID,
		},
	}
}
