// Package storage keeps the local match ledger in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the match ledger.
type Store struct {
	db *sql.DB
}

// Match is one finished round.
type Match struct {
	ID           int64
	MatchID      string // UUID; generated by SaveMatch when empty
	GameID       string
	Winner       string // "red", "green" or empty when abandoned
	Moves        int    // Color changes made before the round ended
	Palette      int    // Color set index in use at the end
	Player       string // Local user or SSH user name
	DurationSecs int
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			palette INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
		CREATE INDEX IF NOT EXISTS idx_matches_best ON matches(game_id, moves ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished round and returns its match ID.
func (s *Store) SaveMatch(m Match) (string, error) {
	if m.GameID == "" {
		return "", errors.New("storage: match without game id")
	}
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	} else if _, err := uuid.Parse(m.MatchID); err != nil {
		return "", fmt.Errorf("storage: bad match id %q: %w", m.MatchID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO matches (match_id, game_id, winner, moves, palette, player, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.GameID, m.Winner, m.Moves, m.Palette, m.Player, m.DurationSecs,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return m.MatchID, nil
}

const matchColumns = `id, match_id, game_id, winner, moves, palette, player, duration_secs, created_at`

// MatchByID returns the match with the given UUID, or nil if there is none.
func (s *Store) MatchByID(matchID string) (*Match, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches returns the latest matches, newest first.
// An empty gameID covers every game.
func (s *Store) RecentMatches(gameID string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(
		`SELECT `+matchColumns+` FROM matches
		 WHERE (? = '' OR game_id = ?)
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
}

// BestMatches returns the won matches with the fewest moves.
func (s *Store) BestMatches(gameID string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryMatches(
		`SELECT `+matchColumns+` FROM matches
		 WHERE game_id = ? AND winner != ''
		 ORDER BY moves ASC, duration_secs ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// WinTally counts won matches per team for a game.
func (s *Store) WinTally(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*) FROM matches
		 WHERE game_id = ? AND winner != ''
		 GROUP BY winner`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query win tally: %w", err)
	}
	defer rows.Close()

	tally := make(map[string]int)
	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tally[winner] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return tally, nil
}

// ClearMatches deletes all matches for the given game.
func (s *Store) ClearMatches(gameID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Matches    int
	Wins       int
	BestMoves  int // Fewest moves in a won match; 0 when nothing was won
	AvgMoves   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner != '' THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN winner != '' THEN moves END), 0),
		        COALESCE(AVG(moves), 0),
		        MAX(created_at)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Matches, &stats.Wins, &stats.BestMoves, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every game that has matches.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT game_id FROM matches`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := make(map[string]*GameStats, len(ids))
	for _, id := range ids {
		st, err := s.GetGameStats(id)
		if err != nil {
			return nil, err
		}
		stats[id] = st
	}
	return stats, nil
}

func (s *Store) queryMatches(query string, args ...any) ([]Match, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return matches, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (Match, error) {
	var m Match
	var createdAt any
	err := row.Scan(&m.ID, &m.MatchID, &m.GameID, &m.Winner, &m.Moves,
		&m.Palette, &m.Player, &m.DurationSecs, &createdAt)
	if err != nil {
		return Match{}, err
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
