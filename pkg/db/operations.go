package db

import (
	"database/sql"
	"fmt"

	"github.com/dtnitsch/movie-costar/models"
	"github.com/dtnitsch/movie-costar/pkg/costar"
)

// InsertPairs writes every pair of rel in construction order, in a single
// transaction. Pair ids follow that order.
func (db *DB) InsertPairs(rel *costar.Relation) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO pairs (a_last_name, a_first_name, b_last_name, b_first_name, shared_movies)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare pair insert: %w", err)
	}
	defer stmt.Close()

	n := 0
	for p := range rel.All() {
		if _, err := stmt.Exec(p.A.LastName, p.A.FirstName, p.B.LastName, p.B.FirstName, p.Count); err != nil {
			return n, fmt.Errorf("failed to insert pair %s/%s: %w", p.A, p.B, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit pairs: %w", err)
	}
	return n, nil
}

// InsertBestPartners links each owner to its best pair. Pairs must be
// inserted first.
func (db *DB) InsertBestPartners(best map[models.Actor]costar.PairResult) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for owner, p := range best {
		_, err := tx.Exec(`
			INSERT INTO best_partners (owner_last_name, owner_first_name, pair_id)
			SELECT ?, ?, pair_id FROM pairs
			WHERE a_last_name = ? AND a_first_name = ? AND b_last_name = ? AND b_first_name = ?
		`, owner.LastName, owner.FirstName, p.A.LastName, p.A.FirstName, p.B.LastName, p.B.FirstName)
		if err != nil {
			return fmt.Errorf("failed to insert best partner of %s: %w", owner, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit best partners: %w", err)
	}
	return nil
}

// SetRunStat sets a run stat (upsert).
func (db *DB) SetRunStat(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO run_stats (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set run stat %s: %w", key, err)
	}
	return nil
}

// GetRunStat returns a run stat, or sql.ErrNoRows when unset.
func (db *DB) GetRunStat(key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM run_stats WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// TopPairs reads back the pairs with the most shared movies, earliest
// inserted first on ties.
func (db *DB) TopPairs(limit int) ([]costar.PairResult, error) {
	rows, err := db.Query(`
		SELECT a_last_name, a_first_name, b_last_name, b_first_name, shared_movies
		FROM pairs
		ORDER BY shared_movies DESC, pair_id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairs: %w", err)
	}
	defer rows.Close()

	return scanPairs(rows)
}

// BestPartner returns the stored best pair of owner, or sql.ErrNoRows.
func (db *DB) BestPartner(owner models.Actor) (costar.PairResult, error) {
	var p costar.PairResult
	err := db.QueryRow(`
		SELECT p.a_last_name, p.a_first_name, p.b_last_name, p.b_first_name, p.shared_movies
		FROM best_partners bp
		JOIN pairs p ON p.pair_id = bp.pair_id
		WHERE bp.owner_last_name = ? AND bp.owner_first_name = ?
	`, owner.LastName, owner.FirstName).Scan(&p.A.LastName, &p.A.FirstName, &p.B.LastName, &p.B.FirstName, &p.Count)
	if err != nil {
		return costar.PairResult{}, err
	}
	return p, nil
}

func scanPairs(rows *sql.Rows) ([]costar.PairResult, error) {
	var out []costar.PairResult
	for rows.Next() {
		var p costar.PairResult
		if err := rows.Scan(&p.A.LastName, &p.A.FirstName, &p.B.LastName, &p.B.FirstName, &p.Count); err != nil {
			return nil, fmt.Errorf("failed to scan pair: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pairs: %w", err)
	}
	return out, nil
}
