package playtomic

import "sync"

// MockClient is a mock implementation of the PlaytomicClient interface for
// testing.
type MockClient struct {
	mu sync.Mutex

	GetMatchesFunc       func(params *SearchMatchesParams) ([]MatchSummary, error)
	GetSpecificMatchFunc func(matchID string) (ExternalMatch, error)

	// Call records
	GetSpecificMatchCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GetMatches(params *SearchMatchesParams) ([]MatchSummary, error) {
	if m.GetMatchesFunc != nil {
		return m.GetMatchesFunc(params)
	}
	return nil, nil
}

func (m *MockClient) GetSpecificMatch(matchID string) (ExternalMatch, error) {
	m.mu.Lock()
	m.GetSpecificMatchCalls = append(m.GetSpecificMatchCalls, matchID)
	m.mu.Unlock()
	if m.GetSpecificMatchFunc != nil {
		return m.GetSpecificMatchFunc(matchID)
	}
	return ExternalMatch{}, nil
}
