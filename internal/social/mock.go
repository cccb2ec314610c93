package social

import "sync"

// MockStore is a mock implementation of the SocialStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	FollowFunc    func(followerID, followedID string) error
	UnfollowFunc  func(followerID, followedID string) error
	FollowingFunc func(playerID string) ([]Follow, error)
	FollowersFunc func(playerID string) ([]Follow, error)
	FeedFunc      func(playerID string, limit int) ([]FeedItem, error)

	// Call records
	FollowCalls []Follow
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Follow(followerID, followedID string) error {
	m.mu.Lock()
	m.FollowCalls = append(m.FollowCalls, Follow{FollowerID: followerID, FollowedID: followedID})
	m.mu.Unlock()
	if m.FollowFunc != nil {
		return m.FollowFunc(followerID, followedID)
	}
	return nil
}

func (m *MockStore) Unfollow(followerID, followedID string) error {
	if m.UnfollowFunc != nil {
		return m.UnfollowFunc(followerID, followedID)
	}
	return nil
}

func (m *MockStore) Following(playerID string) ([]Follow, error) {
	if m.FollowingFunc != nil {
		return m.FollowingFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) Followers(playerID string) ([]Follow, error) {
	if m.FollowersFunc != nil {
		return m.FollowersFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) Feed(playerID string, limit int) ([]FeedItem, error) {
	if m.FeedFunc != nil {
		return m.FeedFunc(playerID, limit)
	}
	return nil, nil
}
