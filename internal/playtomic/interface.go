package playtomic

// PlaytomicClient defines the operations used to read match history from the
// Playtomic API.
type PlaytomicClient interface {
	GetMatches(params *SearchMatchesParams) ([]MatchSummary, error)
	GetSpecificMatch(matchID string) (ExternalMatch, error)
}
