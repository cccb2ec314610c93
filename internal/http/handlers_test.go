package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mauv0809/courtside/internal/auth"
	"github.com/mauv0809/courtside/internal/club"
	"github.com/mauv0809/courtside/internal/config"
	"github.com/mauv0809/courtside/internal/importer"
	"github.com/mauv0809/courtside/internal/match"
	"github.com/mauv0809/courtside/internal/metrics"
	"github.com/mauv0809/courtside/internal/notifier"
	"github.com/mauv0809/courtside/internal/player"
	"github.com/mauv0809/courtside/internal/playtomic"
	"github.com/mauv0809/courtside/internal/processor"
	"github.com/mauv0809/courtside/internal/pubsub"
	"github.com/mauv0809/courtside/internal/rating"
	"github.com/mauv0809/courtside/internal/reservation"
	"github.com/mauv0809/courtside/internal/social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type testServer struct {
	server       *Server
	matches      *match.MockStore
	players      *player.MockStore
	clubs        *club.MockStore
	reservations *reservation.MockStore
	social       *social.MockStore
	auth         *auth.MockService
	notifier     *notifier.Mock
	metrics      *metrics.Mock
	pubsub       *pubsub.MockPubSubClient
}

func setupServer() *testServer {
	ts := &testServer{
		matches:      match.NewMock(),
		players:      player.NewMock(),
		clubs:        club.NewMock(),
		reservations: reservation.NewMock(),
		social:       social.NewMock(),
		auth:         auth.NewMock(),
		notifier:     notifier.NewMock(),
		metrics:      metrics.NewMock(),
		pubsub:       pubsub.NewMock(),
	}

	// The default token check accepts "token-<playerID>".
	ts.auth.VerifyFunc = func(tokenString string) (*auth.Identity, error) {
		playerID, ok := strings.CutPrefix(tokenString, "token-")
		if !ok {
			return nil, auth.ErrInvalidToken
		}
		return &auth.Identity{PlayerID: playerID, Name: "Player " + playerID}, nil
	}

	proc := processor.New(ts.matches, ts.players, ts.clubs, ts.reservations, ts.notifier)
	imp := importer.New(playtomic.NewMock(), ts.matches)

	ts.server = NewServer(
		ts.matches,
		ts.players,
		ts.clubs,
		ts.reservations,
		ts.social,
		ts.auth,
		imp,
		proc,
		ts.notifier,
		ts.metrics,
		http.NotFoundHandler(),
		config.Config{},
		ts.pubsub,
	)
	return ts
}

func (ts *testServer) do(method, target, playerID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if playerID != "" {
		req.Header.Set("Authorization", "Bearer token-"+playerID)
	}
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	ts := setupServer()
	rec := ts.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK!", rec.Body.String())
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	ts := setupServer()
	rec := ts.do(http.MethodGet, "/matches", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister(t *testing.T) {
	ts := setupServer()
	ts.auth.RegisterFunc = func(name, email, password string) (*player.Player, string, error) {
		return &player.Player{ID: "p1", Name: name, Email: email}, "signed-token", nil
	}

	rec := ts.do(http.MethodPost, "/auth/register", "", `{"name":"Anna","email":"anna@example.com","password":"correct horse"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp credentialsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "p1", resp.Player.ID)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := setupServer()
	rec := ts.do(http.MethodPost, "/auth/login", "", `{"email":"a@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateMatch(t *testing.T) {
	ts := setupServer()

	rec := ts.do(http.MethodPost, "/matches", "p1", `{"kind":"DOUBLES","played_at":1000,"location":"Court 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, ts.matches.CreateCalls, 1)
	created := ts.matches.CreateCalls[0]
	assert.Equal(t, "p1", created.OwnerID)
	assert.Equal(t, match.KindDoubles, created.Kind)
	assert.True(t, created.Public)
}

func TestCreateMatchRejectsBadScore(t *testing.T) {
	ts := setupServer()

	rec := ts.do(http.MethodPost, "/matches", "p1", `{"kind":"DOUBLES","sets":[{"home":6}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, ts.matches.CreateCalls)
}

func TestGetMatchNotFound(t *testing.T) {
	ts := setupServer()
	rec := ts.do(http.MethodGet, "/matches/nope", "p1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJoinMatch(t *testing.T) {
	ts := setupServer()
	ts.matches.JoinFunc = func(matchID, playerID string) (*match.Participant, error) {
		return &match.Participant{MatchID: matchID, PlayerID: playerID, Team: match.TeamAway, Slot: 2}, nil
	}

	rec := ts.do(http.MethodPost, "/matches/m1/join", "p2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, ts.matches.JoinCalls, 1)
	assert.Equal(t, "p2", ts.matches.JoinCalls[0].PlayerID)
}

func TestJoinFullMatchConflicts(t *testing.T) {
	ts := setupServer()
	ts.matches.JoinFunc = func(matchID, playerID string) (*match.Participant, error) {
		return nil, match.ErrMatchFull
	}

	rec := ts.do(http.MethodPost, "/matches/m1/join", "p2", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestConfirmMatchPublishesEvents(t *testing.T) {
	ts := setupServer()
	confirmed := &match.Match{ID: "m1", OwnerID: "p1", Status: match.StatusConfirmed}
	ts.matches.GetFunc = func(matchID string) (*match.Match, error) {
		return confirmed, nil
	}
	ts.matches.ConfirmFunc = func(matchID string, actor match.Actor) (*match.Match, []rating.Change, error) {
		assert.Equal(t, "p1", actor.PlayerID)
		return confirmed, []rating.Change{{PlayerID: "p1", Delta: 16}}, nil
	}

	rec := ts.do(http.MethodPost, "/matches/m1/confirm", "p1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, ts.metrics.MatchesConfirmed())

	require.Len(t, ts.pubsub.SendMessageCalls, 2)
	assert.Equal(t, string(pubsub.EventUpdatePlayerStats), ts.pubsub.SendMessageCalls[0].Topic)
	assert.Equal(t, string(pubsub.EventNotifyResult), ts.pubsub.SendMessageCalls[1].Topic)

	var resp confirmResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Changes, 1)
	assert.Equal(t, 16.0, resp.Changes[0].Delta)
}

func TestConfirmFinalizedMatchConflicts(t *testing.T) {
	ts := setupServer()
	ts.matches.GetFunc = func(matchID string) (*match.Match, error) {
		return &match.Match{ID: matchID, OwnerID: "p1", Status: match.StatusConfirmed}, nil
	}
	ts.matches.ConfirmFunc = func(matchID string, actor match.Actor) (*match.Match, []rating.Change, error) {
		return nil, nil, match.ErrAlreadyFinalized
	}

	rec := ts.do(http.MethodPost, "/matches/m1/confirm", "p1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 0, ts.metrics.MatchesConfirmed())
	assert.Empty(t, ts.pubsub.SendMessageCalls)
}

func TestBookReservation(t *testing.T) {
	ts := setupServer()
	ts.reservations.BookFunc = func(r *reservation.Reservation) error {
		r.ID = "r1"
		return nil
	}

	rec := ts.do(http.MethodPost, "/reservations", "p1", `{"club_id":"c1","court_id":"court-1","start_time":1000,"end_time":4600}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, ts.reservations.BookCalls, 1)
	assert.Equal(t, "p1", ts.reservations.BookCalls[0].BookedBy)

	require.Len(t, ts.pubsub.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventNotifyBooking), ts.pubsub.SendMessageCalls[0].Topic)
}

func TestBookReservationConflict(t *testing.T) {
	ts := setupServer()
	ts.reservations.BookFunc = func(r *reservation.Reservation) error {
		return reservation.ErrSlotTaken
	}

	rec := ts.do(http.MethodPost, "/reservations", "p1", `{"club_id":"c1","court_id":"court-1","start_time":1000,"end_time":4600}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, ts.metrics.ReservationConflicts())
	assert.Empty(t, ts.pubsub.SendMessageCalls)
}

func TestFollowUnknownPlayer(t *testing.T) {
	ts := setupServer()
	rec := ts.do(http.MethodPost, "/players/ghost/follow", "p1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFollowSelf(t *testing.T) {
	ts := setupServer()
	ts.players.GetFunc = func(playerID string) (*player.Player, error) {
		return &player.Player{ID: playerID}, nil
	}
	ts.social.FollowFunc = func(followerID, followedID string) error {
		return social.ErrSelfFollow
	}

	rec := ts.do(http.MethodPost, "/players/p1/follow", "p1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCourtRequiresStaff(t *testing.T) {
	ts := setupServer()

	rec := ts.do(http.MethodPost, "/clubs/c1/courts", "p1", `{"name":"Court 1"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ts.clubs.IsStaffFunc = func(clubID, playerID string) bool {
		return clubID == "c1" && playerID == "p1"
	}
	rec = ts.do(http.MethodPost, "/clubs/c1/courts", "p1", `{"name":"Court 1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, ts.clubs.AddCourtCalls, 1)
}

func pushEnvelope(t *testing.T, payload any) string {
	t.Helper()
	raw, err := msgpack.Marshal(payload)
	require.NoError(t, err)
	return fmt.Sprintf(`{"subscription":"sub","message":{"data":"%s"}}`, base64.StdEncoding.EncodeToString(raw))
}

func TestUpdatePlayerStatsPushHandler(t *testing.T) {
	ts := setupServer()
	ts.matches.GetFunc = func(matchID string) (*match.Match, error) {
		return &match.Match{
			ID:     matchID,
			Status: match.StatusConfirmed,
			Sets:   []match.SetScore{{Home: 6, Away: 2}, {Home: 6, Away: 3}},
			Roster: []match.Participant{
				{PlayerID: "p1", Team: match.TeamHome, Slot: 1},
				{PlayerID: "p2", Team: match.TeamAway, Slot: 1},
			},
		}, nil
	}

	body := pushEnvelope(t, pubsub.MatchConfirmedEvent{MatchID: "m1"})
	rec := ts.do(http.MethodPost, "/update-player-stats", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, ts.players.ApplyStatsCalls, 1)
	assert.Len(t, ts.players.ApplyStatsCalls[0], 2)
}

func TestNotifyResultPushHandler(t *testing.T) {
	ts := setupServer()
	ts.matches.GetFunc = func(matchID string) (*match.Match, error) {
		return &match.Match{
			ID:     matchID,
			Status: match.StatusConfirmed,
			Sets:   []match.SetScore{{Home: 6, Away: 2}, {Home: 6, Away: 3}},
			Roster: []match.Participant{
				{PlayerID: "p1", Team: match.TeamHome, Slot: 1},
				{PlayerID: "p2", Team: match.TeamAway, Slot: 1},
			},
		}, nil
	}
	ts.players.GetFunc = func(playerID string) (*player.Player, error) {
		return &player.Player{ID: playerID, Name: "Player " + playerID}, nil
	}

	body := pushEnvelope(t, pubsub.MatchConfirmedEvent{MatchID: "m1"})
	rec := ts.do(http.MethodPost, "/notify-result", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, ts.notifier.ResultCalls, 1)
	assert.Equal(t, "m1", ts.notifier.ResultCalls[0].Match.ID)
}

func TestPushHandlerRejectsBadEnvelope(t *testing.T) {
	ts := setupServer()
	rec := ts.do(http.MethodPost, "/update-player-stats", "", "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
