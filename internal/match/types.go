package match

// Status is the lifecycle state of a match.
type Status string

const (
	StatusDraft               Status = "DRAFT"
	StatusPendingConfirmation Status = "PENDING_CONFIRMATION"
	StatusConfirmed           Status = "CONFIRMED"
	StatusCancelled           Status = "CANCELLED"
)

// Terminal reports whether no further lifecycle transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Kind distinguishes singles from doubles matches.
type Kind string

const (
	KindSingles Kind = "SINGLES"
	KindDoubles Kind = "DOUBLES"
)

// TeamSize is the roster capacity per team for this kind of match.
func (k Kind) TeamSize() int {
	if k == KindSingles {
		return 1
	}
	return 2
}

// Team labels the two sides of a match. TeamHome holds the "home" set scores.
type Team string

const (
	TeamHome Team = "A"
	TeamAway Team = "B"
)

// SetScore is one fully recorded set.
type SetScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// SetInput is the wire form of a set before validation. ParseSets turns a
// slice of these into gapless, fully recorded SetScores or a typed error.
type SetInput struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Participant is a roster entry binding a player (or a free-text guest) to a
// team slot. Entries are never mutated after creation.
type Participant struct {
	MatchID   string `json:"match_id"`
	PlayerID  string `json:"player_id,omitempty"`
	GuestName string `json:"guest_name,omitempty"`
	Team      Team   `json:"team"`
	Slot      int    `json:"slot"`
	JoinedAt  int64  `json:"joined_at"`
}

// Match is a padel match with its score record and roster.
type Match struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"owner_id"`
	ClubID    string        `json:"club_id,omitempty"`
	Kind      Kind          `json:"kind"`
	PlayedAt  int64         `json:"played_at"`
	Location  string        `json:"location,omitempty"`
	Sets      []SetScore    `json:"sets"`
	Status    Status        `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	Public    bool          `json:"public"`
	CreatedAt int64         `json:"created_at"`
	Roster    []Participant `json:"roster"`
}

// Actor is the resolved acting identity for a lifecycle operation. ClubStaff
// is true when the actor is staff of the club hosting the match.
type Actor struct {
	PlayerID  string
	ClubStaff bool
}

func (a Actor) canManage(m *Match) bool {
	return a.PlayerID == m.OwnerID || a.ClubStaff
}
