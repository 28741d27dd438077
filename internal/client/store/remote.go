package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"formvault/internal/models"
)

const submissionsPath = "/api/submissions"

// tunnelSkipHeader tells dev tunnels such as ngrok to skip their
// interstitial warning page and pass the request through. It has no
// effect on the data contract.
const tunnelSkipHeader = "ngrok-skip-browser-warning"

// RemoteStore reads and appends submissions through the FormVault HTTP
// API. Only the username is sent to the server; the password never
// leaves the client.
type RemoteStore struct {
	client  *http.Client
	baseURL string
}

// NewRemoteStore creates a RemoteStore talking to baseURL (e.g.
// "http://localhost:8080"). If client is nil, http.DefaultClient is used.
func NewRemoteStore(client *http.Client, baseURL string) *RemoteStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteStore{client: client, baseURL: baseURL}
}

// Read issues GET /api/submissions?username=<u> and decodes the JSON
// array. Transport failures and non-2xx statuses are returned as
// errors; the caller chooses whether to degrade to an empty list.
func (s *RemoteStore) Read(ctx context.Context, creds models.Credentials) ([]models.Submission, error) {
	u := s.baseURL + submissionsPath + "?username=" + url.QueryEscape(creds.Username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(tunnelSkipHeader, "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("read submissions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("read submissions: server returned %s", resp.Status)
	}

	var subs []models.Submission
	if err := json.NewDecoder(resp.Body).Decode(&subs); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return subs, nil
}

// appendRequest is the POST /api/submissions payload: the record fields
// flattened next to the owning username.
type appendRequest struct {
	Username string `json:"username"`
	models.Submission
}

// Append POSTs the new record. The full list is ignored — the server
// keeps its own copy. The response body is not inspected; only
// transport failures are reported, so durability is best-effort.
func (s *RemoteStore) Append(ctx context.Context, creds models.Credentials, rec models.Submission, _ []models.Submission) error {
	payload := appendRequest{Username: creds.Username, Submission: rec}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+submissionsPath, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tunnelSkipHeader, "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("append submission: %w", err)
	}
	return resp.Body.Close()
}
