// Package service provides submission business logic, delegating
// persistence to a SubmissionRepository.
package service

import (
	"context"

	"formvault/internal/models"
)

// SubmissionRepository defines the persistence operations required by
// the submission service.
type SubmissionRepository interface {
	// ListByUser retrieves all submissions belonging to the given
	// username in insertion order.
	ListByUser(ctx context.Context, username string) ([]models.Submission, error)
	// Create appends a new submission record for the given username.
	Create(ctx context.Context, username string, sub models.Submission) error
}

// SubmissionService implements submission operations by delegating to a
// SubmissionRepository.
type SubmissionService struct {
	// repo performs the data-layer operations.
	repo SubmissionRepository
}

// NewSubmissionService constructs a SubmissionService using the
// provided repository.
func NewSubmissionService(repo SubmissionRepository) *SubmissionService {
	return &SubmissionService{repo: repo}
}

// ListByUser returns the submissions stored for username in insertion
// order, or an error if the repository operation fails.
func (s *SubmissionService) ListByUser(ctx context.Context, username string) ([]models.Submission, error) {
	return s.repo.ListByUser(ctx, username)
}

// Create stores one new submission for username. Records are
// append-only; nothing is updated or removed.
func (s *SubmissionService) Create(ctx context.Context, username string, sub models.Submission) error {
	return s.repo.Create(ctx, username, sub)
}
