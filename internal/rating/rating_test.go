package rating_test

import (
	"testing"

	"github.com/mauv0809/courtside/internal/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpected(t *testing.T) {
	assert.InDelta(t, 0.5, rating.Expected(1200, 1200), 0.0001)
	assert.Greater(t, rating.Expected(1400, 1200), 0.5)
	assert.Less(t, rating.Expected(1000, 1200), 0.5)

	// Expected scores of both sides always sum to 1.
	sum := rating.Expected(1350, 1180) + rating.Expected(1180, 1350)
	assert.InDelta(t, 1.0, sum, 0.0001)
}

func TestResolveSinglesZeroSum(t *testing.T) {
	winners := []rating.Rated{{PlayerID: "w", Rating: 1250}}
	losers := []rating.Rated{{PlayerID: "l", Rating: 1180}}

	changes := rating.Resolve(winners, losers)
	require.Len(t, changes, 2)

	w, l := changes[0], changes[1]
	assert.Greater(t, w.After, w.Before)
	assert.Less(t, l.After, l.Before)
	assert.InDelta(t, w.Before+l.Before, w.After+l.After, 0.0001)
	assert.InDelta(t, w.Delta, -l.Delta, 0.0001)
}

func TestResolveUpsetMovesMore(t *testing.T) {
	favorite := rating.Resolve(
		[]rating.Rated{{PlayerID: "w", Rating: 1400}},
		[]rating.Rated{{PlayerID: "l", Rating: 1200}},
	)
	upset := rating.Resolve(
		[]rating.Rated{{PlayerID: "w", Rating: 1200}},
		[]rating.Rated{{PlayerID: "l", Rating: 1400}},
	)

	assert.Greater(t, upset[0].Delta, favorite[0].Delta)
	assert.LessOrEqual(t, upset[0].Delta, rating.KFactor)
}

func TestResolveDoublesTeamAverage(t *testing.T) {
	winners := []rating.Rated{
		{PlayerID: "w1", Rating: 1300},
		{PlayerID: "w2", Rating: 1100},
	}
	losers := []rating.Rated{
		{PlayerID: "l1", Rating: 1200},
		{PlayerID: "l2", Rating: 1200},
	}

	changes := rating.Resolve(winners, losers)
	require.Len(t, changes, 4)

	// Both team averages are 1200, so the exchange equals the even-odds delta.
	assert.InDelta(t, rating.KFactor*0.5, changes[0].Delta, 0.0001)
	// Teammates move in lockstep.
	assert.InDelta(t, changes[0].Delta, changes[1].Delta, 0.0001)
	assert.InDelta(t, changes[2].Delta, changes[3].Delta, 0.0001)

	var sum float64
	for _, c := range changes {
		sum += c.Delta
	}
	assert.InDelta(t, 0, sum, 0.0001)
}

func TestResolveClampsToFloor(t *testing.T) {
	// Even odds yield a delta of K/2, far more than the loser's one point of
	// headroom above the floor.
	changes := rating.Resolve(
		[]rating.Rated{{PlayerID: "w", Rating: rating.Floor + 1}},
		[]rating.Rated{{PlayerID: "l", Rating: rating.Floor + 1}},
	)
	require.Len(t, changes, 2)
	assert.Equal(t, rating.Floor, changes[1].After)
	assert.Greater(t, changes[0].After, changes[0].Before)
}

func TestResolveEmptySide(t *testing.T) {
	assert.Nil(t, rating.Resolve(nil, []rating.Rated{{PlayerID: "l", Rating: 1200}}))
	assert.Nil(t, rating.Resolve([]rating.Rated{{PlayerID: "w", Rating: 1200}}, nil))
}
