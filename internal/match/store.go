package match

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/courtside/internal/rating"
)

// store handles all database operations for matches.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new MatchStore.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

// Create inserts a match together with its initial roster. If no roster is
// given, the owner takes the first home slot.
func (s *store) Create(m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.Kind == "" {
		m.Kind = KindDoubles
	}
	if m.Status == "" {
		m.Status = StatusDraft
	}
	if m.Status != StatusDraft && m.Status != StatusPendingConfirmation {
		return ErrInvalidTransition
	}

	if len(m.Roster) == 0 {
		m.Roster = []Participant{{PlayerID: m.OwnerID, Team: TeamHome, Slot: 1}}
	}
	if err := s.insert(m); err != nil {
		return err
	}
	log.Info("Created match", "matchID", m.ID, "owner", m.OwnerID, "status", m.Status)
	return nil
}

// Import inserts an externally sourced match as-is. Unlike Create it accepts
// terminal statuses, so imported history never re-enters the lifecycle and
// never triggers a rating adjustment.
func (s *store) Import(m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.Kind == "" {
		m.Kind = KindDoubles
	}
	if m.Status == "" {
		m.Status = StatusConfirmed
	}
	if err := s.insert(m); err != nil {
		return err
	}
	log.Info("Imported match", "matchID", m.ID, "status", m.Status)
	return nil
}

func (s *store) insert(m *Match) error {
	now := time.Now().Unix()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = now

	if err := validateRoster(m); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO matches (id, owner_id, club_id, kind, played_at, location,
			set1_home, set1_away, set2_home, set2_away, set3_home, set3_away,
			status, notes, public, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.OwnerID, nullStr(m.ClubID), m.Kind, m.PlayedAt, m.Location,
		setCol(m.Sets, 0, true), setCol(m.Sets, 0, false),
		setCol(m.Sets, 1, true), setCol(m.Sets, 1, false),
		setCol(m.Sets, 2, true), setCol(m.Sets, 2, false),
		m.Status, m.Notes, m.Public, m.CreatedAt,
	)
	if err != nil {
		return err
	}

	for i := range m.Roster {
		p := &m.Roster[i]
		p.MatchID = m.ID
		p.JoinedAt = now
		if err := insertParticipant(tx, p); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Get retrieves a match with its roster.
func (s *store) Get(matchID string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.getMatch(s.db, matchID)
	if err != nil {
		return nil, err
	}
	m.Roster, err = loadRoster(s.db, matchID)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListByPlayer retrieves every match the player owns or appears in, newest
// first.
func (s *store) ListByPlayer(playerID string) ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(matchColumns+`
		FROM matches m
		WHERE m.owner_id = ?
		   OR m.id IN (SELECT match_id FROM participants WHERE player_id = ?)
		ORDER BY m.played_at DESC`, playerID, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.collectMatches(rows)
}

// ListAll retrieves all matches, newest first.
func (s *store) ListAll() ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(matchColumns + ` FROM matches m ORDER BY m.played_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.collectMatches(rows)
}

// UpdateScore replaces the recorded sets and notes of a non-finalized match.
func (s *store) UpdateScore(matchID string, actor Actor, sets []SetScore, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	m, err := s.getMatch(tx, matchID)
	if err != nil {
		return err
	}
	if m.Status.Terminal() {
		return ErrAlreadyFinalized
	}
	if !actor.canManage(m) {
		return ErrNotAuthorized
	}

	_, err = tx.Exec(`
		UPDATE matches SET
			set1_home = ?, set1_away = ?,
			set2_home = ?, set2_away = ?,
			set3_home = ?, set3_away = ?,
			notes = ?
		WHERE id = ?`,
		setCol(sets, 0, true), setCol(sets, 0, false),
		setCol(sets, 1, true), setCol(sets, 1, false),
		setCol(sets, 2, true), setCol(sets, 2, false),
		notes, matchID,
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// SetVisibility flips the public flag. This is the only field that may still
// change after a match is confirmed.
func (s *store) SetVisibility(matchID string, actor Actor, public bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(s.db, matchID)
	if err != nil {
		return err
	}
	if !actor.canManage(m) {
		return ErrNotAuthorized
	}

	_, err = s.db.Exec("UPDATE matches SET public = ? WHERE id = ?", public, matchID)
	return err
}

// Submit moves a draft to pending confirmation. Only the owner may submit;
// there is no score precondition.
func (s *store) Submit(matchID string, actor Actor) error {
	return s.transition(matchID, actor, StatusPendingConfirmation, false)
}

// Cancel moves any non-terminal match to cancelled. Only the owner may cancel.
func (s *store) Cancel(matchID string, actor Actor) error {
	return s.transition(matchID, actor, StatusCancelled, false)
}

func (s *store) transition(matchID string, actor Actor, to Status, allowStaff bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	m, err := s.getMatch(tx, matchID)
	if err != nil {
		return err
	}
	if err := CanTransition(m.Status, to); err != nil {
		return err
	}
	if actor.PlayerID != m.OwnerID && !(allowStaff && actor.ClubStaff) {
		return ErrNotAuthorized
	}

	// The status guard in the WHERE clause makes the transition safe against
	// a concurrent writer that finalized the match in between.
	res, err := tx.Exec("UPDATE matches SET status = ? WHERE id = ? AND status = ?", to, matchID, m.Status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyFinalized
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Match status updated", "matchID", matchID, "from", m.Status, "to", to)
	return nil
}

// Confirm validates the score record and finalizes the match. The status flip
// and the rating adjustments commit in one transaction, and the affected-rows
// gate on the flip guarantees the adjustment runs at most once per match even
// if the confirming request is retried.
func (s *store) Confirm(matchID string, actor Actor) (*Match, []rating.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	m, err := s.getMatch(tx, matchID)
	if err != nil {
		return nil, nil, err
	}
	if err := CanTransition(m.Status, StatusConfirmed); err != nil {
		return nil, nil, err
	}
	if !actor.canManage(m) {
		return nil, nil, ErrNotAuthorized
	}
	if err := Decidable(m.Sets); err != nil {
		return nil, nil, err
	}
	winner, _ := Winner(m.Sets)

	res, err := tx.Exec("UPDATE matches SET status = ? WHERE id = ? AND status = ?",
		StatusConfirmed, matchID, StatusPendingConfirmation)
	if err != nil {
		return nil, nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil, ErrAlreadyFinalized
	}

	m.Roster, err = loadRoster(tx, matchID)
	if err != nil {
		return nil, nil, err
	}

	changes, err := s.adjustRatings(tx, m, winner)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	m.Status = StatusConfirmed
	log.Info("Match confirmed", "matchID", matchID, "winner", winner, "adjustments", len(changes))
	return m, changes, nil
}

// adjustRatings applies the Elo exchange to every roster entry that resolves
// to a rated player. Guests and unknown identities are skipped, not failed.
func (s *store) adjustRatings(tx *sql.Tx, m *Match, winner Team) ([]rating.Change, error) {
	var winners, losers []rating.Rated
	for _, p := range m.Roster {
		if p.PlayerID == "" {
			continue
		}
		var current float64
		err := tx.QueryRow("SELECT rating FROM players WHERE id = ?", p.PlayerID).Scan(&current)
		if err == sql.ErrNoRows {
			log.Debug("Skipping rating adjustment for unresolvable participant", "matchID", m.ID, "playerID", p.PlayerID)
			continue
		}
		if err != nil {
			return nil, err
		}
		if p.Team == winner {
			winners = append(winners, rating.Rated{PlayerID: p.PlayerID, Rating: current})
		} else {
			losers = append(losers, rating.Rated{PlayerID: p.PlayerID, Rating: current})
		}
	}

	changes := rating.Resolve(winners, losers)
	now := time.Now().Unix()
	for _, c := range changes {
		if _, err := tx.Exec("UPDATE players SET rating = ? WHERE id = ?", c.After, c.PlayerID); err != nil {
			return nil, err
		}
		_, err := tx.Exec(`
			INSERT INTO rating_history (id, player_id, match_id, rating_before, rating_after, delta, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), c.PlayerID, m.ID, c.Before, c.After, c.Delta, now,
		)
		if err != nil {
			return nil, err
		}
	}
	return changes, nil
}

// Join attaches a player to the next open roster slot: home team first, then
// away. Joining is idempotent for a player already on the roster and is
// allowed regardless of match status; only capacity is enforced. The unique
// (match, team, slot) constraint re-validates the slot at write time, so two
// racing joiners cannot both claim the last one.
func (s *store) Join(matchID, playerID string) (*Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	m, err := s.getMatch(tx, matchID)
	if err != nil {
		return nil, err
	}

	existing := &Participant{MatchID: matchID, PlayerID: playerID}
	err = tx.QueryRow(
		"SELECT team, slot, joined_at FROM participants WHERE match_id = ? AND player_id = ?",
		matchID, playerID,
	).Scan(&existing.Team, &existing.Slot, &existing.JoinedAt)
	if err == nil {
		log.Debug("Player already on roster, join is a no-op", "matchID", matchID, "playerID", playerID)
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	p := &Participant{
		MatchID:  matchID,
		PlayerID: playerID,
		JoinedAt: time.Now().Unix(),
	}
	size := m.Kind.TeamSize()
	for {
		team, slot, err := nextOpenSlot(tx, matchID, size)
		if err != nil {
			return nil, err
		}
		p.Team, p.Slot = team, slot
		if err := insertParticipant(tx, p); err != nil {
			if isUniqueViolation(err) {
				// Lost the slot to a concurrent joiner; recount and retry.
				continue
			}
			return nil, err
		}
		break
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Info("Player joined match", "matchID", matchID, "playerID", playerID, "team", p.Team, "slot", p.Slot)
	return p, nil
}

// Delete removes a match and its roster. Confirmed matches are append-only
// artifacts and cannot be deleted.
func (s *store) Delete(matchID string, actor Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.getMatch(s.db, matchID)
	if err != nil {
		return err
	}
	if m.Status == StatusConfirmed {
		return ErrAlreadyFinalized
	}
	if actor.PlayerID != m.OwnerID {
		return ErrNotAuthorized
	}

	_, err = s.db.Exec("DELETE FROM matches WHERE id = ?", matchID)
	return err
}

const matchColumns = `
	SELECT m.id, m.owner_id, m.club_id, m.kind, m.played_at, m.location,
		m.set1_home, m.set1_away, m.set2_home, m.set2_away, m.set3_home, m.set3_away,
		m.status, m.notes, m.public, m.created_at`

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *store) getMatch(q querier, matchID string) (*Match, error) {
	row := q.QueryRow(matchColumns+" FROM matches m WHERE m.id = ?", matchID)
	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *store) collectMatches(rows *sql.Rows) ([]*Match, error) {
	var matches []*Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range matches {
		roster, err := loadRoster(s.db, m.ID)
		if err != nil {
			return nil, err
		}
		m.Roster = roster
	}
	return matches, nil
}

func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var m Match
	var clubID sql.NullString
	var pairs [6]sql.NullInt64

	err := scanner.Scan(
		&m.ID, &m.OwnerID, &clubID, &m.Kind, &m.PlayedAt, &m.Location,
		&pairs[0], &pairs[1], &pairs[2], &pairs[3], &pairs[4], &pairs[5],
		&m.Status, &m.Notes, &m.Public, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.ClubID = clubID.String
	for i := 0; i < 3; i++ {
		if pairs[2*i].Valid && pairs[2*i+1].Valid {
			m.Sets = append(m.Sets, SetScore{
				Home: int(pairs[2*i].Int64),
				Away: int(pairs[2*i+1].Int64),
			})
		}
	}
	return &m, nil
}

func loadRoster(q querier, matchID string) ([]Participant, error) {
	rows, err := q.Query(`
		SELECT match_id, player_id, guest_name, team, slot, joined_at
		FROM participants
		WHERE match_id = ?
		ORDER BY team, slot`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []Participant
	for rows.Next() {
		var p Participant
		var playerID sql.NullString
		if err := rows.Scan(&p.MatchID, &playerID, &p.GuestName, &p.Team, &p.Slot, &p.JoinedAt); err != nil {
			return nil, err
		}
		p.PlayerID = playerID.String
		roster = append(roster, p)
	}
	return roster, rows.Err()
}

func insertParticipant(q querier, p *Participant) error {
	_, err := q.Exec(`
		INSERT INTO participants (match_id, player_id, guest_name, team, slot, joined_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.MatchID, nullStr(p.PlayerID), p.GuestName, p.Team, p.Slot, p.JoinedAt,
	)
	return err
}

func nextOpenSlot(q querier, matchID string, teamSize int) (Team, int, error) {
	for _, team := range []Team{TeamHome, TeamAway} {
		var count int
		err := q.QueryRow(
			"SELECT COUNT(*) FROM participants WHERE match_id = ? AND team = ?",
			matchID, team,
		).Scan(&count)
		if err != nil {
			return "", 0, err
		}
		if count < teamSize {
			return team, count + 1, nil
		}
	}
	return "", 0, ErrMatchFull
}

func validateRoster(m *Match) error {
	size := m.Kind.TeamSize()
	perTeam := map[Team]int{}
	seenSlot := map[string]bool{}
	seenPlayer := map[string]bool{}

	for _, p := range m.Roster {
		if p.Team != TeamHome && p.Team != TeamAway {
			return &ValidationError{Reason: "unknown team label"}
		}
		if p.Slot < 1 || p.Slot > size {
			return &ValidationError{Reason: "roster slot out of range"}
		}
		slotKey := fmt.Sprintf("%s:%d", p.Team, p.Slot)
		if seenSlot[slotKey] {
			return &ValidationError{Reason: "duplicate roster slot"}
		}
		seenSlot[slotKey] = true
		if p.PlayerID != "" {
			if seenPlayer[p.PlayerID] {
				return &ValidationError{Reason: "player appears twice on the roster"}
			}
			seenPlayer[p.PlayerID] = true
		}
		perTeam[p.Team]++
		if perTeam[p.Team] > size {
			return ErrMatchFull
		}
	}
	return nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func setCol(sets []SetScore, i int, home bool) any {
	if i >= len(sets) {
		return nil
	}
	if home {
		return sets[i].Home
	}
	return sets[i].Away
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
