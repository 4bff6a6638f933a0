// Package repository persists answered queries in Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a history entry does not exist.
var ErrNotFound = errors.New("history entry not found")

// Entry is a persisted answered query.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Query     string
	Branch    string
	Answer    string
	Mode      string
	LatencyMs int64
	CreatedAt time.Time
}

// Repository stores and lists query history.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert stores an answered query.
func (r *Repository) Insert(ctx context.Context, entry Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO query_history (id, user_id, query, branch, answer, mode, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.Query, entry.Branch, entry.Answer,
		entry.Mode, entry.LatencyMs, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert query history: %w", err)
	}
	return nil
}

// ListByUser returns a user's answered queries, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, query, branch, answer, mode, latency_ms, created_at
		FROM query_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Query, &e.Branch, &e.Answer,
			&e.Mode, &e.LatencyMs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan query history: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate query history: %w", err)
	}
	return entries, nil
}

// GetByID returns a single history entry scoped to its owner.
func (r *Repository) GetByID(ctx context.Context, userID, id uuid.UUID) (Entry, error) {
	var e Entry
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, query, branch, answer, mode, latency_ms, created_at
		FROM query_history
		WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&e.ID, &e.UserID, &e.Query, &e.Branch, &e.Answer,
		&e.Mode, &e.LatencyMs, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get query history: %w", err)
	}
	return e, nil
}
