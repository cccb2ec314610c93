package social

// SocialStore defines the interface for the follow graph and the feed.
type SocialStore interface {
	Follow(followerID, followedID string) error
	Unfollow(followerID, followedID string) error
	Following(playerID string) ([]Follow, error)
	Followers(playerID string) ([]Follow, error)
	// Feed returns the confirmed public matches of everyone the player
	// follows, newest first.
	Feed(playerID string, limit int) ([]FeedItem, error)
}
