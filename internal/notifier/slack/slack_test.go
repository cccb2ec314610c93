package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/notifier"
	"github.com/mauv0809/courtside/internal/rating"
	"github.com/mauv0809/courtside/internal/reservation"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleResult() *notifier.MatchResult {
	return &notifier.MatchResult{
		Match: &match.Match{
			ID:       "m1",
			Kind:     match.KindSingles,
			Location: "Court 1",
			PlayedAt: time.Date(2025, 7, 9, 20, 0, 0, 0, time.Local).Unix(),
			Sets:     []match.SetScore{{Home: 6, Away: 2}, {Home: 6, Away: 3}},
			Roster: []match.Participant{
				{PlayerID: "p1", Team: match.TeamHome, Slot: 1},
				{PlayerID: "p2", Team: match.TeamAway, Slot: 1},
			},
		},
		Names: map[string]string{"p1": "Anna", "p2": "Bob"},
		Changes: []rating.Change{
			{PlayerID: "p1", Before: 1200, After: 1216, Delta: 16},
			{PlayerID: "p2", Before: 1200, After: 1184, Delta: -16},
		},
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	n := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := n.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := n.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.NotifSent())
	assert.Equal(t, 0, metrics.NotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := n.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.NotifSent())
	assert.Equal(t, 1, metrics.NotifFailed())
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendResultNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := n.SendResultNotification(sampleResult(), false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendResultNotification")
}

func TestFormatResultNotification(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	msg := n.formatResultNotification(sampleResult())
	// Header, details, result, ratings.
	require.Len(t, msg.Blocks.BlockSet, 4)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Match confirmed")

	result, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, result.Text.Text, "Anna won!")
	assert.Contains(t, result.Text.Text, "6-2 6-3")

	ratings, ok := msg.Blocks.BlockSet[3].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, ratings.Text.Text, "Anna: 1216 (+16.0)")
	assert.Contains(t, ratings.Text.Text, "Bob: 1184 (-16.0)")
}

func TestFormatBookingNotification(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	msg := n.formatBookingNotification(&notifier.BookingNotice{
		Reservation: &reservation.Reservation{
			ID:        "r1",
			StartTime: time.Date(2025, 7, 9, 20, 0, 0, 0, time.Local).Unix(),
			EndTime:   time.Date(2025, 7, 9, 21, 0, 0, 0, time.Local).Unix(),
		},
		ClubName:   "Padel Palace",
		CourtName:  "Court 1",
		PlayerName: "Anna",
	})
	// Header, details, context.
	require.Len(t, msg.Blocks.BlockSet, 3)

	details, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, details.Text.Text, "Padel Palace")
	assert.Contains(t, details.Text.Text, "Court 1")

	context, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, context.ContextElements.Elements, 1)
}

func TestFormatLeaderboardEmpty(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	msg := n.formatLeaderboard(nil)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "No stats available")
}
