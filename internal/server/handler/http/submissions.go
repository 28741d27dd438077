// Package http provides HTTP handlers for reading and appending
// submission records.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"formvault/internal/models"
)

// SubmissionService defines the interface for submission operations
// required by the HTTP handlers.
type SubmissionService interface {
	// ListByUser returns all submissions stored for the given username
	// in insertion order.
	ListByUser(ctx context.Context, username string) ([]models.Submission, error)
	// Create appends a new submission record for the given username.
	Create(ctx context.Context, username string, sub models.Submission) error
}

// SubmissionHandler handles HTTP requests for listing and creating
// submissions.
type SubmissionHandler struct {
	// SubmissionService performs the underlying submission operations.
	SubmissionService SubmissionService
}

// CreateRequest represents the JSON payload for creating a submission.
// The record fields are flattened next to the username, matching what
// the form client sends.
type CreateRequest struct {
	// Username is the owner of the new record.
	Username string `json:"username"`
	models.Submission
}

// List handles GET /api/submissions?username=<value>.
// It returns a JSON array of the user's submissions in insertion order.
// The array is empty (never null) for unknown users.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	subs, err := h.SubmissionService.ListByUser(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(subs)
}

// Create handles POST /api/submissions.
// It expects a JSON body with a non-empty "username" and the record
// fields, stores the record, and responds with {"ok": true}.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	if err := h.SubmissionService.Create(r.Context(), req.Username, req.Submission); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
