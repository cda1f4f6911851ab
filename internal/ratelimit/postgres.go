package ratelimit

import (
	"database/sql"
	"log"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps client windows in a shared table so multiple gateway
// instances enforce one combined quota. It satisfies the same Store contract
// as MemoryStore; the gate does not know which one it is talking to.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema() error {
	// One statement per Exec: the pgx driver speaks the extended protocol,
	// which rejects multi-statement strings.
	if _, err := s.db.Exec(
		`CREATE TABLE IF NOT EXISTS rate_events (client_key TEXT NOT NULL, at TIMESTAMPTZ NOT NULL)`,
	); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`CREATE INDEX IF NOT EXISTS rate_events_key_at ON rate_events (client_key, at)`,
	)
	return err
}

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) Take(key string, cutoff, now time.Time, limit int) (bool, time.Time, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, time.Time{}, err
	}
	defer tx.Rollback()

	// Purge expired entries first so the count below only sees the live
	// window. The purge commits even when the request is rejected.
	if _, err := tx.Exec(
		`DELETE FROM rate_events WHERE client_key = $1 AND at <= $2`, key, cutoff,
	); err != nil {
		return false, time.Time{}, err
	}

	var count int
	var oldest sql.NullTime
	if err := tx.QueryRow(
		`SELECT COUNT(*), MIN(at) FROM rate_events WHERE client_key = $1`, key,
	).Scan(&count, &oldest); err != nil {
		return false, time.Time{}, err
	}

	if count >= limit {
		if err := tx.Commit(); err != nil {
			return false, time.Time{}, err
		}
		return false, oldest.Time, nil
	}

	if _, err := tx.Exec(
		`INSERT INTO rate_events (client_key, at) VALUES ($1, $2)`, key, now,
	); err != nil {
		return false, time.Time{}, err
	}
	return true, time.Time{}, tx.Commit()
}

// NewStoreFromEnv picks the window store: a shared Postgres store when dsn is
// set and reachable, otherwise the bounded in-memory store.
func NewStoreFromEnv(dsn string, maxClients int) Store {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return NewMemoryStore(maxClients)
	}
	s, err := NewPostgresStore(dsn)
	if err != nil {
		log.Printf("ratelimit: postgres store unavailable (%v), using in-memory store", err)
		return NewMemoryStore(maxClients)
	}
	log.Printf("ratelimit: using shared postgres store")
	return s
}
