package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	matchesConfirmed     int
	rosterJoins          int
	reservationsBooked   int
	reservationConflicts int
	confirmDurations     []float64
	notifSent            int
	notifFailed          int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		confirmDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMatchesConfirmed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesConfirmed++
}

func (m *Mock) IncRosterJoins() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosterJoins++
}

func (m *Mock) IncReservationsBooked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservationsBooked++
}

func (m *Mock) IncReservationConflicts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservationConflicts++
}

func (m *Mock) ObserveConfirmDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmDurations = append(m.confirmDurations, duration)
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesConfirmed returns the number of times IncMatchesConfirmed was called.
func (m *Mock) MatchesConfirmed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesConfirmed
}

// ReservationConflicts returns the number of times IncReservationConflicts was called.
func (m *Mock) ReservationConflicts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reservationConflicts
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}
