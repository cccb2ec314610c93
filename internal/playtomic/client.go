package playtomic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/rafa-garcia/go-playtomic-api/models"
)

// APIClient is a custom Playtomic API client that implements the PlaytomicClient interface.
type APIClient struct {
	httpClient *http.Client
	apiClient  *client.Client
	BaseURL    string
}

// NewClient creates a new custom Playtomic client.
func NewClient() PlaytomicClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiClient: client.NewClient(
			client.WithTimeout(10*time.Second),
			client.WithRetries(3),
		),
		BaseURL: "https://api.playtomic.io",
	}
}

var _ PlaytomicClient = (*APIClient)(nil)

// GetMatches fetches a list of matches based on the provided search parameters.
func (c *APIClient) GetMatches(params *SearchMatchesParams) ([]MatchSummary, error) {
	const pageSize = 300
	var (
		allMatches []MatchSummary
		page       = 0
	)

	for {
		externalParams := &models.SearchMatchesParams{
			SportID:       params.SportID,
			HasPlayers:    params.HasPlayers,
			Sort:          params.Sort,
			TenantIDs:     params.TenantIDs,
			FromStartDate: params.FromStartDate,
			Size:          pageSize,
			Page:          page,
		}

		log.Debug("Fetching matches from Playtomic API", "params", externalParams)
		matches, err := c.apiClient.GetMatches(context.Background(), externalParams)
		if err != nil {
			return nil, fmt.Errorf("error fetching matches from playtomic api: %w", err)
		}

		for _, m := range matches {
			allMatches = append(allMatches, MatchSummary{
				MatchID: m.MatchID,
				OwnerID: m.OwnerID,
			})
		}

		// If we got less than pageSize, we've reached the last page
		if len(matches) < pageSize {
			break
		}
		page++
	}
	log.Info("Fetched all matches", "count", len(allMatches))
	return allMatches, nil
}

// GetSpecificMatch fetches a specific match by its ID.
func (c *APIClient) GetSpecificMatch(matchID string) (ExternalMatch, error) {
	url := fmt.Sprintf("%s/v1/matches/%s", c.BaseURL, matchID)

	req, err := http.NewRequestWithContext(context.Background(), "GET", url, nil)
	if err != nil {
		return ExternalMatch{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "PlaytomicGoClient/1.0")
	log.Debug("Requesting specific match from Playtomic API", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ExternalMatch{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from Playtomic API", "status", resp.StatusCode, "body", string(body))
		return ExternalMatch{}, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var matchResponse playtomicMatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&matchResponse); err != nil {
		return ExternalMatch{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return convertMatch(matchID, &matchResponse)
}

func convertMatch(matchID string, resp *playtomicMatchResponse) (ExternalMatch, error) {
	const layout = "2006-01-02T15:04:05"

	startTime, err := time.Parse(layout, resp.StartDate)
	if err != nil {
		return ExternalMatch{}, fmt.Errorf("failed to parse start time: %w", err)
	}
	endTime, err := time.Parse(layout, resp.EndDate)
	if err != nil {
		return ExternalMatch{}, fmt.Errorf("failed to parse end time: %w", err)
	}

	var teams []ExternalTeam
	for _, responseTeam := range resp.Teams {
		t := ExternalTeam{
			ID: responseTeam.TeamID,
		}
		if responseTeam.TeamResult != nil {
			t.Result = *responseTeam.TeamResult
		}
		for _, responsePlayer := range responseTeam.Players {
			level := 0.0
			if responsePlayer.LevelValue != nil {
				level = *responsePlayer.LevelValue
			}
			t.Players = append(t.Players, ExternalPlayer{
				UserID: responsePlayer.UserID,
				Name:   responsePlayer.Name,
				Level:  level,
			})
		}
		teams = append(teams, t)
	}

	var sets []ExternalSet
	for _, responseResult := range resp.Results {
		set := ExternalSet{
			Name:   responseResult.Name,
			Scores: make(map[string]int),
		}
		for _, score := range responseResult.Scores {
			set.Scores[score.TeamID] = score.Score
		}
		sets = append(sets, set)
	}

	gameStatus := GameStatusUnknown
	switch resp.GameStatus {
	case string(GameStatusPending):
		gameStatus = GameStatusPending
	case string(GameStatusPlayed):
		gameStatus = GameStatusPlayed
	case string(GameStatusCanceled):
		gameStatus = GameStatusCanceled
	default:
		log.Warn("Unknown game status received from Playtomic API", "status", resp.GameStatus, "matchID", matchID)
	}

	resultsStatus := ResultsStatusUnknown
	switch resp.ResultsStatus {
	case string(ResultsStatusPending):
		resultsStatus = ResultsStatusPending
	case string(ResultsStatusConfirmed):
		resultsStatus = ResultsStatusConfirmed
	case string(ResultsStatusInvalid):
		resultsStatus = ResultsStatusInvalid
	default:
		log.Warn("Unknown results status received from Playtomic API", "status", resp.ResultsStatus, "matchID", matchID)
	}

	return ExternalMatch{
		MatchID:       matchID,
		OwnerID:       resp.OwnerID,
		Start:         startTime.Local().Unix(),
		End:           endTime.Local().Unix(),
		ResourceName:  resp.ResourceName,
		TenantName:    resp.Tenant.Name,
		GameStatus:    gameStatus,
		ResultsStatus: resultsStatus,
		Teams:         teams,
		Sets:          sets,
	}, nil
}
