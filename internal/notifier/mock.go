package notifier

import (
	"sync"

	"github.com/mauv0809/courtside/internal/player"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendResultNotificationFunc  func(result *MatchResult, dryRun bool) error
	SendBookingNotificationFunc func(notice *BookingNotice, dryRun bool) error
	SendLeaderboardFunc         func(stats []player.Stats, dryRun bool) error
	SendRatingLeaderboardFunc   func(players []*player.Player, dryRun bool) error
	SendPlayerStatsFunc         func(stats *player.Stats, query string, dryRun bool) error
	SendPlayerNotFoundFunc      func(query string, dryRun bool) error

	// Call records
	ResultCalls  []*MatchResult
	BookingCalls []*BookingNotice
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendResultNotification(result *MatchResult, dryRun bool) error {
	m.mu.Lock()
	m.ResultCalls = append(m.ResultCalls, result)
	m.mu.Unlock()
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(result, dryRun)
	}
	return nil
}

func (m *Mock) SendBookingNotification(notice *BookingNotice, dryRun bool) error {
	m.mu.Lock()
	m.BookingCalls = append(m.BookingCalls, notice)
	m.mu.Unlock()
	if m.SendBookingNotificationFunc != nil {
		return m.SendBookingNotificationFunc(notice, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(stats []player.Stats, dryRun bool) error {
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(stats, dryRun)
	}
	return nil
}

func (m *Mock) SendRatingLeaderboard(players []*player.Player, dryRun bool) error {
	if m.SendRatingLeaderboardFunc != nil {
		return m.SendRatingLeaderboardFunc(players, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerStats(stats *player.Stats, query string, dryRun bool) error {
	if m.SendPlayerStatsFunc != nil {
		return m.SendPlayerStatsFunc(stats, query, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerNotFound(query string, dryRun bool) error {
	if m.SendPlayerNotFoundFunc != nil {
		return m.SendPlayerNotFoundFunc(query, dryRun)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(stats []player.Stats) (any, error) {
	return stats, nil
}

func (m *Mock) FormatRatingLeaderboardResponse(players []*player.Player) (any, error) {
	return players, nil
}

func (m *Mock) FormatPlayerStatsResponse(stats *player.Stats, query string) (any, error) {
	return stats, nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	return query, nil
}
