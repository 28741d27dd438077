package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"formvault/internal/models"
	"formvault/internal/service"
)

type mockRepo struct {
	ListByUserFunc func(ctx context.Context, username string) ([]models.Submission, error)
	CreateFunc     func(ctx context.Context, username string, sub models.Submission) error
}

func (m *mockRepo) ListByUser(ctx context.Context, username string) ([]models.Submission, error) {
	return m.ListByUserFunc(ctx, username)
}
func (m *mockRepo) Create(ctx context.Context, username string, sub models.Submission) error {
	return m.CreateFunc(ctx, username, sub)
}

func TestListByUser_Delegates(t *testing.T) {
	want := []models.Submission{
		{Name: "Bob", Email: "b@x.com", Phone: "555", Address: "1 Rd", Message: "hi"},
	}
	var gotUser string
	repo := &mockRepo{
		ListByUserFunc: func(_ context.Context, username string) ([]models.Submission, error) {
			gotUser = username
			return want, nil
		},
	}
	svc := service.NewSubmissionService(repo)

	got, err := svc.ListByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != "alice" {
		t.Errorf("repo called with username %q; want %q", gotUser, "alice")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListByUser = %+v; want %+v", got, want)
	}
}

func TestListByUser_Error(t *testing.T) {
	wantErr := errors.New("db down")
	repo := &mockRepo{
		ListByUserFunc: func(context.Context, string) ([]models.Submission, error) {
			return nil, wantErr
		},
	}
	svc := service.NewSubmissionService(repo)

	_, err := svc.ListByUser(context.Background(), "alice")
	if err != wantErr {
		t.Fatalf("error = %v; want %v", err, wantErr)
	}
}

func TestCreate_Delegates(t *testing.T) {
	sub := models.Submission{Name: "Bob", Message: "hi"}
	var gotUser string
	var gotSub models.Submission
	repo := &mockRepo{
		CreateFunc: func(_ context.Context, username string, s models.Submission) error {
			gotUser = username
			gotSub = s
			return nil
		},
	}
	svc := service.NewSubmissionService(repo)

	if err := svc.Create(context.Background(), "alice", sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != "alice" || gotSub != sub {
		t.Errorf("repo called with (%q, %+v); want (%q, %+v)", gotUser, gotSub, "alice", sub)
	}
}

func TestCreate_Error(t *testing.T) {
	wantErr := errors.New("insert failed")
	repo := &mockRepo{
		CreateFunc: func(context.Context, string, models.Submission) error {
			return wantErr
		},
	}
	svc := service.NewSubmissionService(repo)

	if err := svc.Create(context.Background(), "alice", models.Submission{}); err != wantErr {
		t.Fatalf("error = %v; want %v", err, wantErr)
	}
}
