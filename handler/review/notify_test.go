package review

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/oopsididitagain335/futurecommon/intake"
	"github.com/oopsididitagain335/futurecommon/model"
)

type fakeSender struct {
	err      error
	channels []string
	sends    []*discordgo.MessageSend
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channels = append(f.channels, channelID)
	f.sends = append(f.sends, data)
	if f.err != nil {
		return nil, f.err
	}
	return &discordgo.Message{ID: "msg-1"}, nil
}

func testSubmission() model.Submission {
	sub := model.Submission{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+1 555 0100",
		DOB:      "2000-01-15",
		Location: "London",
		Role:     "Moderator",
	}
	sub.Normalize()
	return sub
}

func testNotifier(t *testing.T, sender Sender) *Notifier {
	ref := time.Date(2025, 8, 13, 0, 0, 0, 0, time.UTC)
	policy := intake.Policy{Reference: ref, MinAge: 13}
	return NewNotifier(sender, "review-chan", policy, zaptest.NewLogger(t))
}

func TestNotify(t *testing.T) {
	sender := &fakeSender{}
	n := testNotifier(t, sender)

	err := n.Notify(testSubmission(), "app-1", intake.Decision{Age: 25, Eligible: true})
	require.NoError(t, err)

	require.Len(t, sender.sends, 1)
	assert.Equal(t, []string{"review-chan"}, sender.channels)

	embed := sender.sends[0].Embed
	require.NotNil(t, embed)
	assert.Equal(t, "📬 New Co-Gov Application", embed.Title)
	assert.Equal(t, eligibleColor, embed.Color)
	assert.Equal(t, "Application ID: app-1", embed.Footer.Text)

	fields := map[string]string{}
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "Ada Lovelace", fields["👤 Name"])
	assert.Equal(t, "<ada@example.com>", fields["📧 Email"])
	assert.Equal(t, "2000-01-15", fields["📅 DOB"])
	assert.Equal(t, model.NotSpecified, fields["🔧 Skills"])
	assert.Equal(t, model.NotSpecified, fields["💡 Why Join?"])
	assert.Equal(t, "Yes (13+ as of Aug 13, 2025)", fields["✅ Eligible?"])
}

// The application id embedded in the buttons must round-trip back to the id
// the registry is keyed by.
func TestNotifyButtonIDsRoundTrip(t *testing.T) {
	sender := &fakeSender{}
	n := testNotifier(t, sender)

	require.NoError(t, n.Notify(testSubmission(), "app-42", intake.Decision{Age: 25, Eligible: true}))

	require.Len(t, sender.sends, 1)
	components := sender.sends[0].Components
	require.Len(t, components, 1)
	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	wantActions := []Action{ActionAccept, ActionDeny}
	for idx, c := range row.Components {
		btn, ok := c.(discordgo.Button)
		require.True(t, ok)
		action, id, parsed := ParseCustomID(btn.CustomID)
		require.True(t, parsed)
		assert.Equal(t, wantActions[idx], action)
		assert.Equal(t, "app-42", id)
		assert.False(t, btn.Disabled)
	}
}

func TestNotifySendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("gateway down")}
	n := testNotifier(t, sender)

	err := n.Notify(testSubmission(), "app-1", intake.Decision{Age: 25, Eligible: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, "send review notification")
}
