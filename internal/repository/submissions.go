// Package repository provides persistence implementations for the
// submission service using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"formvault/internal/models"
)

// PostgresSubmissionRepository implements submission storage operations
// against a PostgreSQL database.
type PostgresSubmissionRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresSubmissionRepository creates a new PostgresSubmissionRepository
// with the given database connection. db must be a valid *sql.DB connected
// to a PostgreSQL instance.
func NewPostgresSubmissionRepository(db *sql.DB) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{DB: db}
}

// ListByUser fetches all submissions stored for the given username,
// ordered by insertion. Users with no submissions get an empty slice.
//
//	ctx:      context for cancellation and deadlines
//	username: owner of the submissions
//
// Returns a slice of models.Submission or an error if the query or
// scanning fails.
func (r *PostgresSubmissionRepository) ListByUser(ctx context.Context, username string) ([]models.Submission, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, email, phone, address, message FROM submissions WHERE username = $1 ORDER BY id
	`, username)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.Name, &s.Email, &s.Phone, &s.Address, &s.Message); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return subs, nil
}

// Create appends one submission for the given username. Insertion order
// determines list order; nothing is deduplicated.
func (r *PostgresSubmissionRepository) Create(ctx context.Context, username string, sub models.Submission) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO submissions (username, name, email, phone, address, message)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, username, sub.Name, sub.Email, sub.Phone, sub.Address, sub.Message)
	if err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}
