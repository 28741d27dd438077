// Package store provides the submission store adapters used by the
// client session: a remote HTTP variant and a credential-keyed local
// file variant. Exactly one variant is active per client run.
package store

import (
	"context"

	"formvault/internal/models"
)

// Store abstracts where a user's submission records are read from and
// written to. Adapters report failures as errors; they never retry and
// never surface partial results. Callers decide how to degrade — the
// session treats a failed read as an empty list and a failed append as
// a no-op, keeping the in-memory list authoritative.
type Store interface {
	// Read returns the submissions stored for the given credentials in
	// insertion order. A user with no stored records reads as an empty
	// list, not an error.
	Read(ctx context.Context, creds models.Credentials) ([]models.Submission, error)

	// Append persists a newly added record. rec is the new record and
	// all is the full list including it; the remote variant sends just
	// rec while the local variant rewrites all, so both are provided.
	Append(ctx context.Context, creds models.Credentials, rec models.Submission, all []models.Submission) error
}
