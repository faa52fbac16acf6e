// Package sqlite persists congestion observations in an append-only SQLite
// table. Rows are never updated or deleted; history accumulates and reads
// pick out what they need.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/oneseo/congestion-collector/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS congestion (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	area TEXT NOT NULL,
	congestion_level TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	population_min INTEGER NOT NULL DEFAULT 0,
	population_max INTEGER NOT NULL DEFAULT 0,
	latitude REAL,
	longitude REAL
);
`

// Store wraps the congestion history database. Writes are serialized with a
// mutex because the sqlite driver allows only one writer at a time.
type Store struct {
	db      *sql.DB
	catalog *domain.Catalog
	logger  *slog.Logger

	writeMu sync.Mutex
}

// Open connects to the SQLite file at path, creating parent directories as
// needed, and ensures the schema exists. Safe to call against an existing
// database; existing rows are untouched.
func Open(path string, catalog *domain.Catalog, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	logger.Info("database ready", "path", path)
	return &Store{db: db, catalog: catalog, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CheckReadiness reports whether the database is reachable. Satisfies the
// HTTP server's readiness contract.
func (s *Store) CheckReadiness(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// InsertBatch appends one row per record inside a single transaction.
// Coordinates are denormalized from the catalog at write time; records whose
// area is not in the catalog get NULL coordinates. Either every row lands or
// none do.
func (s *Store) InsertBatch(ctx context.Context, records []domain.CongestionRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO congestion (area, congestion_level, timestamp, population_min, population_max, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var lat, lng any
		if area, ok := s.catalog.Lookup(rec.Area); ok {
			lat, lng = area.Lat, area.Lng
		} else {
			s.logger.Warn("area missing from catalog, storing without coordinates",
				"area", rec.Area)
		}
		if _, err := stmt.ExecContext(ctx, rec.Area, string(rec.CongestionLevel), rec.Timestamp,
			rec.PopulationMin, rec.PopulationMax, lat, lng); err != nil {
			return fmt.Errorf("insert record for %q: %w", rec.Area, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	s.logger.Info("batch persisted", "records", len(records))
	return nil
}

// QueryAll returns every stored observation. No ordering is promised.
func (s *Store) QueryAll(ctx context.Context) ([]domain.CongestionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, area, congestion_level, timestamp, population_min, population_max, latitude, longitude
		FROM congestion`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []domain.CongestionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// QueryLatest returns the most recent observation for an area, judged by the
// lexicographic order of the stored RFC 3339 timestamps. Returns
// domain.ErrNotFound when the area has no history.
func (s *Store) QueryLatest(ctx context.Context, area string) (domain.CongestionRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, area, congestion_level, timestamp, population_min, population_max, latitude, longitude
		FROM congestion
		WHERE area = ?
		ORDER BY timestamp DESC
		LIMIT 1`, area)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CongestionRecord{}, fmt.Errorf("%w: no observations for %q", domain.ErrNotFound, area)
	}
	if err != nil {
		return domain.CongestionRecord{}, err
	}
	return rec, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (domain.CongestionRecord, error) {
	var (
		rec   domain.CongestionRecord
		level string
		lat   sql.NullFloat64
		lng   sql.NullFloat64
	)
	if err := s.Scan(&rec.ID, &rec.Area, &level, &rec.Timestamp,
		&rec.PopulationMin, &rec.PopulationMax, &lat, &lng); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CongestionRecord{}, err
		}
		return domain.CongestionRecord{}, fmt.Errorf("scan record: %w", err)
	}
	rec.CongestionLevel = domain.CongestionLevel(level)
	if lat.Valid {
		rec.Latitude = &lat.Float64
	}
	if lng.Valid {
		rec.Longitude = &lng.Float64
	}
	return rec, nil
}
