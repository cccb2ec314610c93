package rating

import "math"

const (
	// Default is the rating every player starts with.
	Default = 1200.0
	// KFactor bounds how much a single match can move a rating.
	KFactor = 32.0
	// Floor is the lowest rating a player can drop to.
	Floor = 100.0
)

// Rated pairs a player identity with its current rating.
type Rated struct {
	PlayerID string
	Rating   float64
}

// Change describes one player's adjustment from a confirmed match.
type Change struct {
	PlayerID string
	Before   float64
	After    float64
	Delta    float64
}

// Expected returns the expected score of a player rated ra against one rated rb.
func Expected(ra, rb float64) float64 {
	return 1 / (1 + math.Pow(10, (rb-ra)/400))
}

// Resolve computes the zero-sum exchange between the winning and losing side
// of a confirmed match. Doubles are resolved team-average against
// team-average; every member of a side receives the same delta, so the total
// exchanged is preserved for equal team sizes. The floor clamp can break the
// zero-sum property, which is the intended trade-off.
func Resolve(winners, losers []Rated) []Change {
	if len(winners) == 0 || len(losers) == 0 {
		return nil
	}

	delta := KFactor * (1 - Expected(average(winners), average(losers)))

	changes := make([]Change, 0, len(winners)+len(losers))
	for _, w := range winners {
		changes = append(changes, apply(w, delta))
	}
	for _, l := range losers {
		changes = append(changes, apply(l, -delta))
	}
	return changes
}

func apply(r Rated, delta float64) Change {
	after := r.Rating + delta
	if after < Floor {
		after = Floor
	}
	return Change{
		PlayerID: r.PlayerID,
		Before:   r.Rating,
		After:    after,
		Delta:    after - r.Rating,
	}
}

func average(side []Rated) float64 {
	var sum float64
	for _, r := range side {
		sum += r.Rating
	}
	return sum / float64(len(side))
}
