package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formvault/internal/client/session"
	"formvault/internal/client/store"
	"formvault/internal/models"
)

// fakeStore records calls and returns preconfigured results.
type fakeStore struct {
	readCreds models.Credentials
	readOut   []models.Submission
	readErr   error

	appendCreds models.Credentials
	appendRec   models.Submission
	appendAll   []models.Submission
	appendErr   error
	appendCalls int
}

func (f *fakeStore) Read(ctx context.Context, creds models.Credentials) ([]models.Submission, error) {
	f.readCreds = creds
	return f.readOut, f.readErr
}

func (f *fakeStore) Append(ctx context.Context, creds models.Credentials, rec models.Submission, all []models.Submission) error {
	f.appendCreds = creds
	f.appendRec = rec
	f.appendAll = append([]models.Submission(nil), all...)
	f.appendCalls++
	return f.appendErr
}

func TestLogin_Success(t *testing.T) {
	stored := []models.Submission{{Name: "Bob", Message: "hi"}}
	fake := &fakeStore{readOut: stored}
	s := session.New(fake, nil)

	require.NoError(t, s.Login(context.Background(), "alice", "secret"))

	assert.True(t, s.Authenticated())
	assert.Equal(t, "alice", s.Username())
	assert.Equal(t, stored, s.Submissions())
	assert.Equal(t, models.Credentials{Username: "alice", Password: "secret"}, fake.readCreds)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret"},
		{"empty password", "alice", ""},
		{"both empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := session.New(&fakeStore{}, nil)
			err := s.Login(context.Background(), tc.username, tc.password)
			require.ErrorIs(t, err, session.ErrEmptyCredentials)
			assert.False(t, s.Authenticated())
			assert.Empty(t, s.Submissions())
		})
	}
}

func TestLogin_ReadFailureDegradesToEmptyList(t *testing.T) {
	fake := &fakeStore{readErr: errors.New("server returned 500")}
	s := session.New(fake, nil)

	require.NoError(t, s.Login(context.Background(), "alice", "secret"), "store failures never fail a login")
	assert.True(t, s.Authenticated())
	assert.Empty(t, s.Submissions())
}

func TestSubmit_AppendsInOrder(t *testing.T) {
	fake := &fakeStore{}
	s := session.New(fake, nil)
	require.NoError(t, s.Login(context.Background(), "alice", "secret"))

	recs := []models.Submission{
		{Name: "Bob", Email: "b@x.com", Phone: "555", Address: "1 Rd", Message: "hi"},
		{Name: "Ann", Email: "a@x.com", Phone: "777", Address: "2 Rd", Message: "ho"},
		{Name: "Cid", Email: "c@x.com", Phone: "888", Address: "3 Rd", Message: "hey"},
	}
	for _, r := range recs {
		require.NoError(t, s.Submit(context.Background(), r))
	}

	assert.Equal(t, recs, s.Submissions(), "list equals appended records, in order")
	assert.Equal(t, len(recs), fake.appendCalls)
	assert.Equal(t, recs[len(recs)-1], fake.appendRec)
	assert.Equal(t, recs, fake.appendAll, "adapter sees the full list including the new record")
}

func TestSubmit_PersistFailureKeepsRecordInMemory(t *testing.T) {
	fake := &fakeStore{appendErr: errors.New("quota exceeded")}
	s := session.New(fake, nil)
	require.NoError(t, s.Login(context.Background(), "alice", "secret"))

	rec := models.Submission{Name: "Bob", Message: "hi"}
	require.NoError(t, s.Submit(context.Background(), rec), "persistence failures are absorbed")
	assert.Equal(t, []models.Submission{rec}, s.Submissions())
}

func TestSubmit_WhileAnonymous(t *testing.T) {
	s := session.New(&fakeStore{}, nil)
	err := s.Submit(context.Background(), models.Submission{Name: "Bob"})
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestLogout_ResetsState(t *testing.T) {
	fake := &fakeStore{readOut: []models.Submission{{Name: "Bob"}}}
	s := session.New(fake, nil)
	require.NoError(t, s.Login(context.Background(), "alice", "secret"))

	s.Logout()

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Username())
	assert.Empty(t, s.Submissions())
}

func TestLogout_WhileAnonymousIsNoop(t *testing.T) {
	s := session.New(&fakeStore{}, nil)
	s.Logout()
	assert.False(t, s.Authenticated())
}

// The scenarios below run the session against the real local store to
// exercise the full record lifecycle.

func TestScenario_LocalFirstLoginSubmitAndRelogin(t *testing.T) {
	ctx := context.Background()
	ls := store.NewLocalStore(filepath.Join(t.TempDir(), "store.json"))

	s := session.New(ls, nil)
	require.NoError(t, s.Login(ctx, "alice", "secret"))
	assert.Empty(t, s.Submissions(), "no prior storage means an empty list")

	rec := models.Submission{Name: "Bob", Email: "b@x.com", Phone: "555", Address: "1 Rd", Message: "hi"}
	require.NoError(t, s.Submit(ctx, rec))
	require.Len(t, s.Submissions(), 1)
	assert.Equal(t, rec, s.Submissions()[0], "record visible at display index 1")

	s.Logout()
	require.NoError(t, s.Login(ctx, "alice", "secret"))
	assert.Equal(t, []models.Submission{rec}, s.Submissions(), "previously submitted record reappears")
}

func TestScenario_LocalDifferentPasswordSeesEmptyList(t *testing.T) {
	ctx := context.Background()
	ls := store.NewLocalStore(filepath.Join(t.TempDir(), "store.json"))

	s := session.New(ls, nil)
	require.NoError(t, s.Login(ctx, "alice", "secret"))
	require.NoError(t, s.Submit(ctx, models.Submission{Name: "Bob", Message: "hi"}))

	s.Logout()
	require.NoError(t, s.Login(ctx, "alice", "changed"))
	assert.Empty(t, s.Submissions(), "different password maps to a different storage key")
}
