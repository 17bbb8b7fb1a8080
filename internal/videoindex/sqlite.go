package videoindex

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// LoadSQLite loads the sign-to-video mapping from a SQLite catalog with a
// `signs(sign TEXT, video TEXT)` table, the format the video library tool
// exports.
func LoadSQLite(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT sign, video FROM signs`)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	defer rows.Close()

	ix := NewIndex()
	for rows.Next() {
		var s, video string
		if err := rows.Scan(&s, &video); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		if s == "" || video == "" {
			continue
		}
		ix.videos[s] = video
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog: %w", err)
	}
	return ix, nil
}
