package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// NarrationLog is one stored narration call, as read back from the database.
type NarrationLog struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Event     string    `json:"event"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	Metadata  string    `json:"metadata"`
}

// NarrationMetadata captures per-call details for later review.
type NarrationMetadata struct {
	Model        string        `json:"model"`
	MaxTokens    int           `json:"max_tokens"`
	ResponseTime time.Duration `json:"response_time_ms"`
	Error        *string       `json:"error,omitempty"`
}

// NarrationLogger persists every narration call to a local SQLite database
// so sessions can be reviewed afterwards.
type NarrationLogger struct {
	db *sql.DB
}

func NewNarrationLogger() (*NarrationLogger, error) {
	return newNarrationLogger("./narrations.db")
}

func newNarrationLogger(path string) (*NarrationLogger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger := &NarrationLogger{db: db}
	if err := logger.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return logger, nil
}

func (nl *NarrationLogger) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS narrations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		session_id TEXT NOT NULL,
		event TEXT NOT NULL,
		prompt TEXT NOT NULL,
		response TEXT NOT NULL,
		metadata TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_narrations_timestamp ON narrations(timestamp);
	CREATE INDEX IF NOT EXISTS idx_narrations_session ON narrations(session_id);
	`

	_, err := nl.db.Exec(schema)
	return err
}

// Log stores a single narration call. Failed calls are stored too, with the
// error captured in the metadata.
func (nl *NarrationLogger) Log(sessionID, event, prompt, response string, metadata NarrationMetadata) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = nl.db.Exec(`
		INSERT INTO narrations (session_id, event, prompt, response, metadata)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, event, prompt, response, string(metadataJSON))

	return err
}

// Recent returns the most recent narration calls, newest first.
func (nl *NarrationLogger) Recent(limit int) ([]NarrationLog, error) {
	rows, err := nl.db.Query(`
		SELECT id, timestamp, session_id, event, prompt, response, metadata
		FROM narrations
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query narrations: %w", err)
	}
	defer rows.Close()

	var logs []NarrationLog
	for rows.Next() {
		var entry NarrationLog
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.SessionID, &entry.Event,
			&entry.Prompt, &entry.Response, &entry.Metadata); err != nil {
			return nil, fmt.Errorf("failed to scan narration row: %w", err)
		}
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}

func (nl *NarrationLogger) Close() error {
	return nl.db.Close()
}
