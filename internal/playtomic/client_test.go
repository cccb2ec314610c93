package playtomic

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSpecificMatch(t *testing.T) {
	// Sample JSON response from the Playtomic API
	mockJSONResponse := `{
		"owner_id": "user-123",
		"start_date": "2025-07-09T18:00:00",
		"end_date": "2025-07-09T19:30:00",
		"game_status": "PLAYED",
		"results_status": "CONFIRMED",
		"resource_name": "Court 1",
		"tenant": { "tenant_id": "tenant-abc", "tenant_name": "Padel Club" },
		"teams": [{
			"team_id": "1",
			"team_result": "WON",
			"players": [
				{ "user_id": "user-123", "name": "Player A" },
				{ "user_id": "user-456", "name": "Player B" }
			]
		}],
		"results": [{
			"name": "Set 1",
			"scores": [
				{ "team_id": "1", "score": 6 }
			]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/matches/match-abc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	apiClient := APIClient{
		httpClient: server.Client(),
		apiClient:  client.NewClient(), // Dummy client, not used in this specific test
		BaseURL:    server.URL,
	}

	match, err := apiClient.GetSpecificMatch("match-abc")

	require.NoError(t, err)
	assert.Equal(t, "match-abc", match.MatchID)
	assert.Equal(t, "user-123", match.OwnerID)
	assert.Equal(t, "Court 1", match.ResourceName)
	assert.Equal(t, "Padel Club", match.TenantName)
	assert.Equal(t, GameStatusPlayed, match.GameStatus)
	assert.Equal(t, ResultsStatusConfirmed, match.ResultsStatus)
	assert.NotEqual(t, 0, match.Start, "Start time should be parsed")
	require.Len(t, match.Teams, 1)
	assert.Equal(t, "WON", match.Teams[0].Result)
	require.Len(t, match.Teams[0].Players, 2)
	assert.Equal(t, "Player A", match.Teams[0].Players[0].Name)
	require.Len(t, match.Sets, 1)
	assert.Equal(t, 6, match.Sets[0].Scores["1"])
}

func TestGetSpecificMatchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	apiClient := APIClient{
		httpClient: server.Client(),
		apiClient:  client.NewClient(),
		BaseURL:    server.URL,
	}

	_, err := apiClient.GetSpecificMatch("missing")
	require.Error(t, err)
}
