package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/courtside/internal/database"
	"golang.org/x/crypto/bcrypt"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "courtside-seed.db",
		"MIGRATIONS_DIR": "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "", cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	// One hash for every seeded account; the password is "seeded-password".
	hash, err := bcrypt.GenerateFromPassword([]byte("seeded-password"), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %s", err)
	}

	now := time.Now().Unix()
	playerIDs := make([]string, 0, 4)
	for i, name := range []string{"Seeder Player A", "Seeder Player B", "Seeder Player C", "Seeder Player D"} {
		id := fmt.Sprintf("seed-player-%d", i+1)
		_, err := db.Exec(
			"INSERT OR IGNORE INTO players (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
			id, name, fmt.Sprintf("seed%d@example.com", i+1), string(hash), now,
		)
		if err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", name, err)
		}
		playerIDs = append(playerIDs, id)
	}
	log.Info("Ensured dummy players exist.")

	clubID := "seed-club-1"
	if _, err := db.Exec(
		"INSERT OR IGNORE INTO clubs (id, name, city, created_at) VALUES (?, ?, ?, ?)",
		clubID, "Seeded Padel Club", "Copenhagen", now,
	); err != nil {
		log.Fatalf("Failed to insert dummy club: %s", err)
	}
	for i := 1; i <= 2; i++ {
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO courts (id, club_id, name, indoor) VALUES (?, ?, ?, ?)",
			fmt.Sprintf("seed-court-%d", i), clubID, fmt.Sprintf("Court %d", i), i%2,
		); err != nil {
			log.Fatalf("Failed to insert dummy court: %s", err)
		}
	}
	log.Info("Ensured dummy club and courts exist.")

	const batchSize = 100
	const numMatches = 10000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	matchValues := make([]string, 0, batchSize)
	matchArgs := make([]interface{}, 0, batchSize*13)
	participantValues := make([]string, 0, batchSize*4)
	participantArgs := make([]interface{}, 0, batchSize*4*5)

	for i := 0; i < numMatches; i++ {
		matchID := uuid.NewString()
		playedAt := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour).Unix()

		matchValues = append(matchValues, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		matchArgs = append(matchArgs,
			matchID,
			playerIDs[0],
			clubID,
			"DOUBLES",
			playedAt,
			"Court 1, Seeded Padel Club",
			6, rand.Intn(5),
			6, rand.Intn(5),
			"CONFIRMED",
			1,
			now,
		)

		for slot, playerID := range playerIDs {
			team := "A"
			if slot >= 2 {
				team = "B"
			}
			participantValues = append(participantValues, "(?, ?, ?, ?, ?)")
			participantArgs = append(participantArgs, matchID, playerID, team, slot%2+1, now)
		}

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			matchStmt := fmt.Sprintf(`
				INSERT INTO matches (id, owner_id, club_id, kind, played_at, location,
					set1_home, set1_away, set2_home, set2_away, status, public, created_at)
				VALUES %s;`, strings.Join(matchValues, ","))
			if _, err := tx.Exec(matchStmt, matchArgs...); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute match batch insert: %s", err)
			}

			participantStmt := fmt.Sprintf(`
				INSERT INTO participants (match_id, player_id, team, slot, joined_at)
				VALUES %s;`, strings.Join(participantValues, ","))
			if _, err := tx.Exec(participantStmt, participantArgs...); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute participant batch insert: %s", err)
			}

			matchValues = make([]string, 0, batchSize)
			matchArgs = make([]interface{}, 0, batchSize*13)
			participantValues = make([]string, 0, batchSize*4)
			participantArgs = make([]interface{}, 0, batchSize*4*5)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)
}
