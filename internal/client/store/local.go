package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"formvault/internal/models"
)

// keyPrefix and keySeparator fix the storage key format:
// "submissions:" + base64(username + "\x00" + password).
const (
	keyPrefix    = "submissions:"
	keySeparator = "\x00"
)

// ErrMalformedValue reports that the stored value under a credential
// key was not a JSON array of submissions.
var ErrMalformedValue = errors.New("stored value is not a submission array")

// LocalStore keeps submissions in a single JSON key/value file, one key
// per credential pair. The key derivation is a reversible encoding, not
// encryption: it provides lookup isolation between credential pairs and
// nothing else. Changing the password changes the key, so previously
// stored submissions become unreachable.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

// NewLocalStore creates a LocalStore backed by the file at path. The
// file is created on first write.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

// StorageKey derives the deterministic storage key for a credential
// pair. The same pair always maps to the same key; any difference in
// username or password yields a different key.
func StorageKey(creds models.Credentials) string {
	raw := creds.Username + keySeparator + creds.Password
	return keyPrefix + base64.StdEncoding.EncodeToString([]byte(raw))
}

// Read returns the submissions stored under the credential key. A
// missing file or key reads as an empty list. A value that exists but
// does not parse as a JSON array is an error, left to the caller to
// degrade.
func (s *LocalStore) Read(ctx context.Context, creds models.Credentials) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv, err := s.load()
	if err != nil {
		return nil, err
	}

	raw, ok := kv[StorageKey(creds)]
	if !ok {
		return nil, nil
	}

	var subs []models.Submission
	if err := json.Unmarshal(raw, &subs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	return subs, nil
}

// Append rewrites the full submission list under the credential key,
// overwriting any previous value. Other keys in the file are untouched.
func (s *LocalStore) Append(ctx context.Context, creds models.Credentials, _ models.Submission, all []models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv, err := s.load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode submissions: %w", err)
	}
	kv[StorageKey(creds)] = raw

	return s.save(kv)
}

// load reads the key/value file. A missing file is an empty store.
func (s *LocalStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	kv := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &kv); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return kv, nil
}

func (s *LocalStore) save(kv map[string]json.RawMessage) error {
	data, err := json.Marshal(kv)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
