package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createTeamTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		members TEXT NOT NULL,
		color TEXT NOT NULL,
		secret_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createChallengeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE challenges (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		token TEXT NOT NULL UNIQUE,
		pause_distance BOOLEAN NOT NULL DEFAULT 1,
		latitude REAL NOT NULL DEFAULT 0,
		longitude REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		team_id TEXT,
		start DATETIME,
		"end" DATETIME,
		created_at DATETIME
	);`)
}

func createModifierTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE modifiers (
		id TEXT PRIMARY KEY,
		multiplier REAL NOT NULL,
		creator_id TEXT NOT NULL,
		receiver_id TEXT,
		challenge_id TEXT,
		start DATETIME,
		"end" DATETIME,
		created_at DATETIME
	);`)
}

func createOffsetTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE offsets (
		id TEXT PRIMARY KEY,
		distance REAL NOT NULL,
		creator_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		challenge_id TEXT,
		created_at DATETIME
	);`)
}

func createGpxTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE gpx_uploads (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		uploaded_at DATETIME NOT NULL,
		gpx_data TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE gpx_cleanups (
		id TEXT PRIMARY KEY,
		gpx_upload_id TEXT NOT NULL,
		total_distance REAL NOT NULL,
		total_time REAL NOT NULL,
		average_speed REAL NOT NULL,
		max_speed REAL NOT NULL,
		min_speed REAL NOT NULL,
		scored_distance REAL NOT NULL,
		pruned_distance_speed REAL NOT NULL,
		pruned_distance_paused REAL NOT NULL,
		track_start DATETIME NOT NULL,
		track_end DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createScorecardTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE scorecards (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		challenges_completed INTEGER NOT NULL DEFAULT 0,
		distance_traveled REAL NOT NULL DEFAULT 0,
		distance_earned REAL NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}
