package club

import (
	"database/sql"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

func (s *store) Create(c *Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now().Unix()

	_, err := s.db.Exec(
		"INSERT INTO clubs (id, name, city, created_at) VALUES (?, ?, ?, ?)",
		c.ID, c.Name, c.City, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	log.Info("Created club", "clubID", c.ID, "name", c.Name)
	return nil
}

func (s *store) Get(clubID string) (*Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Club
	err := s.db.QueryRow(
		"SELECT id, name, city, created_at FROM clubs WHERE id = ?", clubID,
	).Scan(&c.ID, &c.Name, &c.City, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *store) GetAll() ([]*Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, city, created_at FROM clubs ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []*Club
	for rows.Next() {
		var c Club
		if err := rows.Scan(&c.ID, &c.Name, &c.City, &c.CreatedAt); err != nil {
			log.Error("Failed to scan club row", "error", err)
			continue
		}
		clubs = append(clubs, &c)
	}
	return clubs, rows.Err()
}

func (s *store) AddCourt(c *Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Surface == "" {
		c.Surface = "artificial_grass"
	}

	_, err := s.db.Exec(
		"INSERT INTO courts (id, club_id, name, surface, indoor) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.ClubID, c.Name, c.Surface, c.Indoor,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	log.Info("Added court", "clubID", c.ClubID, "court", c.Name)
	return nil
}

func (s *store) GetCourt(courtID string) (*Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Court
	err := s.db.QueryRow(
		"SELECT id, club_id, name, surface, indoor FROM courts WHERE id = ?", courtID,
	).Scan(&c.ID, &c.ClubID, &c.Name, &c.Surface, &c.Indoor)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *store) GetCourts(clubID string) ([]*Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, club_id, name, surface, indoor FROM courts WHERE club_id = ? ORDER BY name", clubID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courts []*Court
	for rows.Next() {
		var c Court
		if err := rows.Scan(&c.ID, &c.ClubID, &c.Name, &c.Surface, &c.Indoor); err != nil {
			log.Error("Failed to scan court row", "error", err)
			continue
		}
		courts = append(courts, &c)
	}
	return courts, rows.Err()
}

// AddStaff grants a player a staff role at the club. Re-adding updates the
// role instead of failing.
func (s *store) AddStaff(clubID, playerID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role == "" {
		role = "staff"
	}
	_, err := s.db.Exec(`
		INSERT INTO club_staff (club_id, player_id, role, added_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(club_id, player_id) DO UPDATE SET role = excluded.role`,
		clubID, playerID, role, time.Now().Unix(),
	)
	if err != nil {
		return err
	}
	log.Info("Added club staff", "clubID", clubID, "playerID", playerID, "role", role)
	return nil
}

func (s *store) RemoveStaff(clubID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"DELETE FROM club_staff WHERE club_id = ? AND player_id = ?", clubID, playerID,
	)
	return err
}

func (s *store) GetStaff(clubID string) ([]StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT club_id, player_id, role, added_at FROM club_staff WHERE club_id = ? ORDER BY added_at", clubID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []StaffMember
	for rows.Next() {
		var m StaffMember
		if err := rows.Scan(&m.ClubID, &m.PlayerID, &m.Role, &m.AddedAt); err != nil {
			return nil, err
		}
		staff = append(staff, m)
	}
	return staff, rows.Err()
}

func (s *store) IsStaff(clubID, playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM club_staff WHERE club_id = ? AND player_id = ?)",
		clubID, playerID,
	).Scan(&exists)
	if err != nil {
		log.Error("Failed to check staff membership", "error", err, "clubID", clubID, "playerID", playerID)
		return false
	}
	return exists
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
