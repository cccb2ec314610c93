package playtomic

// SearchMatchesParams defines the parameters for searching for matches.
type SearchMatchesParams struct {
	SportID       string
	HasPlayers    bool
	Sort          string
	TenantIDs     []string
	FromStartDate string
}

// MatchSummary contains the essential details of a match from a search result.
type MatchSummary struct {
	MatchID string
	OwnerID *string
}

// GameStatus defines the status of a game on the Playtomic side.
type GameStatus string

const (
	GameStatusPending  GameStatus = "PENDING"
	GameStatusPlayed   GameStatus = "PLAYED"
	GameStatusCanceled GameStatus = "CANCELED"
	GameStatusUnknown  GameStatus = "UNKNOWN"
)

// ResultsStatus defines the status of the match results on the Playtomic side.
type ResultsStatus string

const (
	ResultsStatusPending   ResultsStatus = "PENDING"
	ResultsStatusConfirmed ResultsStatus = "CONFIRMED"
	ResultsStatusInvalid   ResultsStatus = "INVALID"
	ResultsStatusUnknown   ResultsStatus = "UNKNOWN"
)

// ExternalMatch is a played match as Playtomic reports it, reduced to what
// history import needs.
type ExternalMatch struct {
	MatchID       string
	OwnerID       string
	Start         int64
	End           int64
	ResourceName  string
	TenantName    string
	GameStatus    GameStatus
	ResultsStatus ResultsStatus
	Teams         []ExternalTeam
	Sets          []ExternalSet
}

// ExternalTeam represents one side of an external match.
type ExternalTeam struct {
	ID      string
	Result  string
	Players []ExternalPlayer
}

// ExternalPlayer represents a player on an external roster.
type ExternalPlayer struct {
	UserID string
	Name   string
	Level  float64
}

// ExternalSet represents the result of a single set, keyed by team ID.
type ExternalSet struct {
	Name   string
	Scores map[string]int
}

// playtomicMatchResponse defines the structure for the JSON response from the
// Playtomic API for a single match.
type playtomicMatchResponse struct {
	OwnerID       string                  `json:"owner_id"`
	StartDate     string                  `json:"start_date"`
	EndDate       string                  `json:"end_date"`
	GameStatus    string                  `json:"game_status"`
	Teams         []playtomicTeamResponse `json:"teams"`
	Results       []playtomicResult       `json:"results"`
	ResultsStatus string                  `json:"results_status"`
	ResourceName  string                  `json:"resource_name"`
	Tenant        playtomicTenant         `json:"tenant"`
}

type playtomicResult struct {
	Name   string               `json:"name"`
	Scores []playtomicTeamScore `json:"scores"`
}

type playtomicTeamScore struct {
	TeamID string `json:"team_id"`
	Score  int    `json:"score"`
}

type playtomicTenant struct {
	Name string `json:"tenant_name"`
}

type playtomicTeamResponse struct {
	TeamID     string                    `json:"team_id"`
	Players    []playtomicPlayerResponse `json:"players"`
	TeamResult *string                   `json:"team_result"`
}

type playtomicPlayerResponse struct {
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	LevelValue *float64 `json:"level_value"`
}
