package database

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// Connect opens the local SQLite database file, creating the parent directory
// and the schema when they do not exist yet. Safe to call on every start.
func Connect(path, nickname string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return err
	}

	// Single-writer app; one connection avoids SQLITE_BUSY between statements.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return err
	}

	DB = db
	log.Println("✅ Connected to SQLite at", path)

	if err = InitTables(nickname); err != nil {
		return err
	}

	return nil
}

// InitTables creates all necessary tables if they don't exist and seeds the
// user_preferences singleton. Idempotent: re-running it never duplicates the
// singleton or touches existing rows.
func InitTables(nickname string) error {
	return InitSchema(DB, nickname)
}

// InitSchema applies the schema to db. Split out from InitTables so tests can
// initialize throwaway databases without going through the package connection.
func InitSchema(db *sql.DB, nickname string) error {
	queries := []string{
		// Thought journal: immutable original/reframed pairs
		`CREATE TABLE IF NOT EXISTS thought_journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			original_thought TEXT NOT NULL,
			reframed_thought TEXT NOT NULL,
			reframing_method TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,

		// Daily supportive messages (several per day are allowed)
		`CREATE TABLE IF NOT EXISTS daily_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			message TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,

		// Singleton user preferences row
		`CREATE TABLE IF NOT EXISTS user_preferences (
			id INTEGER PRIMARY KEY,
			nickname TEXT NOT NULL,
			last_login TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_thought_journal_created_at ON thought_journal(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_messages_created_at ON daily_messages(created_at)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	if _, err := db.Exec(
		`INSERT OR IGNORE INTO user_preferences (id, nickname, last_login) VALUES (1, ?, ?)`,
		nickname, time.Now(),
	); err != nil {
		return err
	}

	log.Println("✅ SQLite tables initialized")
	return nil
}

// Disconnect closes the database connection.
func Disconnect() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
