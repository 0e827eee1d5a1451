package history

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	line TEXT NOT NULL
)`

// Store persists shell input lines in a local sqlite database, one row per
// line in the order they were entered.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Append(line string) error {
	_, err := s.db.Exec("INSERT INTO history (line) VALUES (?)", line)
	return err
}

// Recent returns up to n lines, newest first.
func (s *Store) Recent(n int) ([]string, error) {
	rows, err := s.db.Query("SELECT line FROM history ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
