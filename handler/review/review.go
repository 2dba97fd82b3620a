package review

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/oopsididitagain335/futurecommon/command/def"
	"github.com/oopsididitagain335/futurecommon/handler"
	"github.com/oopsididitagain335/futurecommon/metrics"
	"github.com/oopsididitagain335/futurecommon/registry"
)

// session is the slice of discordgo.Session the decision flow needs.
type session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Handler processes reviewer button presses and the /pending command.
type Handler struct {
	registry *registry.Registry
	log      *zap.Logger
}

func NewHandler(reg *registry.Registry, log *zap.Logger) *Handler {
	return &Handler{registry: reg, log: log}
}

// Register wires the handler into the interaction router.
func (h *Handler) Register() {
	handler.AddComponentHandler(string(ActionAccept), h.onDecision)
	handler.AddComponentHandler(string(ActionDeny), h.onDecision)
	handler.AddCommandHandler(def.PendingCommand.Name, h.onPending)
}

func (h *Handler) onDecision(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.decide(s, i)
}

// decide resolves one reviewer action. Registry.Take is the serialization
// point: of two concurrent clicks on the same application, the loser sees
// found=false and gets the not-found notice.
func (h *Handler) decide(s session, i *discordgo.InteractionCreate) {
	action, id, ok := ParseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		h.respondNotFound(s, i)
		return
	}

	app, found := h.registry.Take(id)
	if !found {
		metrics.ReviewNotFound.Inc()
		h.respondNotFound(s, i)
		return
	}

	reviewer := reviewerName(i)
	var content string
	switch action {
	case ActionAccept:
		content = fmt.Sprintf("✅ **Accepted** by %s\n\n📬 Sent email to %s (simulated).", reviewer, app.Email)
	case ActionDeny:
		content = fmt.Sprintf("❌ **Denied** by %s", reviewer)
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		// The entry is already taken; the decision stands even if the
		// announcement failed.
		h.log.Error("announce decision", zap.String("id", id), zap.Error(err))
	}

	h.log.Info("application reviewed",
		zap.String("id", id),
		zap.String("action", string(action)),
		zap.String("reviewer", reviewer),
		zap.String("applicant", app.Name),
		zap.String("email", app.Email))
	metrics.ReviewDecisions.WithLabelValues(string(action)).Inc()

	if i.Message == nil {
		return
	}
	components := decidedButtons(action)
	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         i.Message.ID,
		Components: &components,
	})
	if err != nil {
		h.log.Error("disable review buttons", zap.String("id", id), zap.Error(err))
	}
}

func (h *Handler) respondNotFound(s session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "❌ Application not found.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.log.Error("respond not found", zap.Error(err))
	}
}

func reviewerName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return "unknown"
}
