// Package db provides PostgreSQL storage for intake and portfolio archives.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projecthub/portfolio-engine/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and ensures the
// archive tables exist.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ensureSchema creates the archive tables when they are missing.
func (db *DB) ensureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profile_intakes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS portfolios (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			intake_id UUID REFERENCES profile_intakes(id) ON DELETE CASCADE,
			strategy TEXT NOT NULL,
			document JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveIntake stores a raw intake payload and returns its ID.
func (db *DB) SaveIntake(ctx context.Context, intake *types.Intake) (uuid.UUID, error) {
	payload, err := json.Marshal(intake)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal intake: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profile_intakes (payload) VALUES ($1) RETURNING id`,
		payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save intake: %w", err)
	}
	return id, nil
}

// SavePortfolio stores a generated document linked to its intake and returns
// the portfolio ID. A nil intakeID stores an unlinked document.
func (db *DB) SavePortfolio(ctx context.Context, intakeID uuid.UUID, strategy string, doc *types.PortfolioDocument) (uuid.UUID, error) {
	document, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal portfolio: %w", err)
	}

	var linkedID any
	if intakeID != uuid.Nil {
		linkedID = intakeID
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO portfolios (intake_id, strategy, document) VALUES ($1, $2, $3) RETURNING id`,
		linkedID, strategy, document,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save portfolio: %w", err)
	}
	return id, nil
}

// PortfolioRecord is one archived portfolio row.
type PortfolioRecord struct {
	ID        uuid.UUID                `json:"id"`
	IntakeID  *uuid.UUID               `json:"intake_id,omitempty"`
	Strategy  string                   `json:"strategy"`
	Document  *types.PortfolioDocument `json:"document"`
	CreatedAt time.Time                `json:"created_at"`
}

// GetPortfolio retrieves an archived portfolio by ID. Returns nil when the
// row does not exist.
func (db *DB) GetPortfolio(ctx context.Context, id uuid.UUID) (*PortfolioRecord, error) {
	var rec PortfolioRecord
	var document []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, intake_id, strategy, document, created_at FROM portfolios WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.IntakeID, &rec.Strategy, &document, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	if err := json.Unmarshal(document, &rec.Document); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio document: %w", err)
	}
	return &rec, nil
}

// ListPortfolios retrieves recent archived portfolios, newest first.
func (db *DB) ListPortfolios(ctx context.Context, limit int) ([]PortfolioRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, intake_id, strategy, document, created_at
		 FROM portfolios ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	var records []PortfolioRecord
	for rows.Next() {
		var rec PortfolioRecord
		var document []byte
		if err := rows.Scan(&rec.ID, &rec.IntakeID, &rec.Strategy, &document, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		if err := json.Unmarshal(document, &rec.Document); err != nil {
			return nil, fmt.Errorf("failed to decode portfolio document: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
