package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/notifier"
	"github.com/mauv0809/courtside/internal/player"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface

func (s *Notifier) SendResultNotification(result *notifier.MatchResult, dryRun bool) error {
	msg := s.formatResultNotification(result)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendBookingNotification(notice *notifier.BookingNotice, dryRun bool) error {
	msg := s.formatBookingNotification(notice)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(stats []player.Stats, dryRun bool) error {
	msg := s.formatLeaderboard(stats)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendRatingLeaderboard(players []*player.Player, dryRun bool) error {
	msg := s.formatRatingLeaderboard(players)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerStats(stats *player.Stats, query string, dryRun bool) error {
	msg := s.formatPlayerStats(stats, query)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerNotFound(query string, dryRun bool) error {
	msg := s.formatPlayerNotFound(query)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(stats []player.Stats) (any, error) {
	return s.formatLeaderboard(stats), nil
}

// FormatRatingLeaderboardResponse formats a rating leaderboard message for a slash command response.
func (s *Notifier) FormatRatingLeaderboardResponse(players []*player.Player) (any, error) {
	return s.formatRatingLeaderboard(players), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(stats *player.Stats, query string) (any, error) {
	return s.formatPlayerStats(stats, query), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

// formatResultNotification creates the Slack message for a finalized match using Block Kit.
func (s *Notifier) formatResultNotification(result *notifier.MatchResult) slack.Message {
	m := result.Match
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎾 Match confirmed! 🎾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	where := m.Location
	if where == "" {
		where = "unknown court"
	}
	detailsText := fmt.Sprintf("%s at %s", where, formatTime(m.PlayedAt))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	home := teamNames(m, match.TeamHome, result.Names)
	away := teamNames(m, match.TeamAway, result.Names)

	resultHeader := "Result:"
	if winner, ok := match.Winner(m.Sets); ok {
		winnerNames := home
		if winner == match.TeamAway {
			winnerNames = away
		}
		resultHeader = fmt.Sprintf("Result: %s won! 🏆", winnerNames)
	}
	scoreText := fmt.Sprintf("%s\n%s vs %s: %s", resultHeader, home, away, scoreLine(m.Sets))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", scoreText, true, false), nil, nil))

	if len(result.Changes) > 0 {
		var lines []string
		for _, c := range result.Changes {
			name := result.Names[c.PlayerID]
			if name == "" {
				name = c.PlayerID
			}
			lines = append(lines, fmt.Sprintf("• %s: %.0f (%+.1f)", name, c.After, c.Delta))
		}
		ratingsText := "Ratings:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", ratingsText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatBookingNotification creates the Slack message for a new court booking using Block Kit.
func (s *Notifier) formatBookingNotification(notice *notifier.BookingNotice) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎾 Court booked! 🎾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Club: %s\nCourt: %s\nTime: %s",
		notice.ClubName, notice.CourtName, formatTime(notice.Reservation.StartTime))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if notice.PlayerName != "" {
		contextText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Booked by %s", notice.PlayerName), true, false)
		blocks = append(blocks, slack.NewContextBlock("", contextText))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the player leaderboard.
func (s *Notifier) formatLeaderboard(stats []player.Stats) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Player Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(stats) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats available yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, stat := range stats {
		rank := i + 1
		playerText := fmt.Sprintf("%d. %s %s\n> Match Win %%: %.2f%% (%d/%d) | Sets Won: %d | Games Won: %d",
			rank,
			medalFor(rank),
			stat.PlayerName,
			stat.WinPercentage,
			stat.MatchesWon,
			stat.MatchesPlayed,
			stat.SetsWon,
			stat.GamesWon,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatRatingLeaderboard creates a Slack message to display the leaderboard by rating.
func (s *Notifier) formatRatingLeaderboard(players []*player.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Player Leaderboard (by Rating) 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players found.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, p := range players {
		rank := i + 1
		playerText := fmt.Sprintf("%d. %s %s\n> *Rating*: %.0f", rank, medalFor(rank), p.Name, p.Rating)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's stats.
func (s *Notifier) formatPlayerStats(stat *player.Stats, query string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🏆 Stats for %s 🏆", stat.PlayerName)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	playerText := fmt.Sprintf("> *Match Win %%*: %.2f%% (%d/%d)\n> *Sets Won*: %d\n> *Games Won*: %d",
		stat.WinPercentage,
		stat.MatchesWon,
		stat.MatchesPlayed,
		stat.SetsWon,
		stat.GamesWon,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

func medalFor(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

func formatTime(unix int64) string {
	loc, err := time.LoadLocation("Europe/Copenhagen")
	if err != nil {
		return time.Unix(unix, 0).Format("Monday 02 Jan, 15:04")
	}
	return time.Unix(unix, 0).In(loc).Format("Monday 02 Jan, 15:04")
}

// teamNames joins the display names of one side, falling back to guest names
// and raw IDs.
func teamNames(m *match.Match, team match.Team, names map[string]string) string {
	var out []string
	for _, p := range m.Roster {
		if p.Team != team {
			continue
		}
		switch {
		case p.PlayerID != "" && names[p.PlayerID] != "":
			out = append(out, names[p.PlayerID])
		case p.GuestName != "":
			out = append(out, p.GuestName)
		case p.PlayerID != "":
			out = append(out, p.PlayerID)
		}
	}
	return strings.Join(out, " & ")
}

func scoreLine(sets []match.SetScore) string {
	if len(sets) == 0 {
		return "no scores reported"
	}
	var parts []string
	for _, set := range sets {
		parts = append(parts, fmt.Sprintf("%d-%d", set.Home, set.Away))
	}
	return strings.Join(parts, " ")
}
