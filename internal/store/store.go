// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists analysis results and generated reviews in a
// SQLite database so past runs can be listed and re-read. Feature sets
// and reviews are stored whole as YAML blobs next to a few indexed
// summary columns.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/review-engine/pkg/types"
)

const (
	dbFile            = "reviews.db"
	defaultMaxResults = 20
)

// Store manages the review history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// AnalysisRecord is one persisted feature-extraction run.
type AnalysisRecord struct {
	ID        int64
	Source    string
	CreatedAt time.Time
	WordCount int
	Features  types.FeatureSet
}

// ReviewRecord is one persisted review.
type ReviewRecord struct {
	ID             int64
	Source         string
	CreatedAt      time.Time
	Style          types.ReviewStyle
	Overall        float64
	Recommendation types.Recommendation
	Review         types.Review
}

// NewStore opens or creates the history database at DataDir/reviews.db,
// creating the schema on first use.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			created_at TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			features TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			created_at TEXT NOT NULL,
			style TEXT NOT NULL,
			overall REAL NOT NULL,
			recommendation TEXT NOT NULL,
			review TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_source ON reviews(source)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveAnalysis records a feature-extraction run and returns its row id.
func (s *Store) SaveAnalysis(ctx context.Context, source string, features types.FeatureSet) (int64, error) {
	blob, err := yaml.Marshal(features)
	if err != nil {
		return 0, fmt.Errorf("serializing features: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (source, created_at, word_count, features) VALUES (?, ?, ?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339), features.BasicStats.WordCount, string(blob),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting analysis: %w", err)
	}
	return res.LastInsertId()
}

// SaveReview records a generated review and returns its row id.
func (s *Store) SaveReview(ctx context.Context, source string, rv types.Review) (int64, error) {
	blob, err := yaml.Marshal(rv)
	if err != nil {
		return 0, fmt.Errorf("serializing review: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reviews (source, created_at, style, overall, recommendation, review)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339),
		string(rv.Style), rv.Overall, string(rv.Recommendation), string(blob),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting review: %w", err)
	}
	return res.LastInsertId()
}

// ListReviews returns the most recent reviews, newest first, capped at
// the configured maximum.
func (s *Store) ListReviews(ctx context.Context) ([]ReviewRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, created_at, style, overall, recommendation, review
		 FROM reviews ORDER BY id DESC LIMIT ?`, s.maxResults,
	)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var records []ReviewRecord
	for rows.Next() {
		rec, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetReview fetches a single review by id.
func (s *Store) GetReview(ctx context.Context, id int64) (ReviewRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, created_at, style, overall, recommendation, review
		 FROM reviews WHERE id = ?`, id,
	)
	rec, err := scanReview(row)
	if err == sql.ErrNoRows {
		return ReviewRecord{}, fmt.Errorf("review %d not found", id)
	}
	return rec, err
}

// ListAnalyses returns the most recent analyses, newest first, capped
// at the configured maximum.
func (s *Store) ListAnalyses(ctx context.Context) ([]AnalysisRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, created_at, word_count, features
		 FROM analyses ORDER BY id DESC LIMIT ?`, s.maxResults,
	)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetAnalysis fetches a single analysis by id.
func (s *Store) GetAnalysis(ctx context.Context, id int64) (AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, created_at, word_count, features
		 FROM analyses WHERE id = ?`, id,
	)
	rec, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return AnalysisRecord{}, fmt.Errorf("analysis %d not found", id)
	}
	return rec, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReview(row scanner) (ReviewRecord, error) {
	var rec ReviewRecord
	var createdAt, style, recommendation, blob string
	if err := row.Scan(&rec.ID, &rec.Source, &createdAt, &style, &rec.Overall, &recommendation, &blob); err != nil {
		return ReviewRecord{}, err
	}

	rec.Style = types.ReviewStyle(style)
	rec.Recommendation = types.Recommendation(recommendation)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	if err := yaml.Unmarshal([]byte(blob), &rec.Review); err != nil {
		return ReviewRecord{}, fmt.Errorf("parsing stored review %d: %w", rec.ID, err)
	}
	return rec, nil
}

func scanAnalysis(row scanner) (AnalysisRecord, error) {
	var rec AnalysisRecord
	var createdAt, blob string
	if err := row.Scan(&rec.ID, &rec.Source, &createdAt, &rec.WordCount, &blob); err != nil {
		return AnalysisRecord{}, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	if err := yaml.Unmarshal([]byte(blob), &rec.Features); err != nil {
		return AnalysisRecord{}, fmt.Errorf("parsing stored analysis %d: %w", rec.ID, err)
	}
	return rec, nil
}
