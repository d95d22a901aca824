package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ribgsilva/audio-note-api/persistence/v1/schema"
	"github.com/ribgsilva/audio-note-api/platform/token"
	"github.com/ribgsilva/audio-note-api/sys"
	"go.uber.org/zap"

	_ "github.com/proullon/ramsql/driver"
)

func TestUser(t *testing.T) {
	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Auth.Secret = "test-secret"
	sys.Configs.Auth.TokenValidity = time.Hour
	sys.R.Log = zap.NewNop().Sugar()

	db, err := sql.Open("ramsql", "UserTest")
	if err != nil {
		t.Fatalf("failed to open ramsql: %v", err)
	}
	defer db.Close()
	sys.R.Database = db

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	defer func() {
		_ = schema.Drop(context.Background())
	}()

	ctx := context.Background()

	t.Run("register", func(t *testing.T) {
		created, err := Register(ctx, NewUser{Username: "alice", Password: "s3cret"})
		if err != nil {
			t.Fatalf("Register error: %v", err)
		}
		if created.Id == "" || created.Username != "alice" {
			t.Fatalf("unexpected user: %+v", created)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		_, err := Register(ctx, NewUser{Username: "alice", Password: "other"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("register missing fields", func(t *testing.T) {
		if _, err := Register(ctx, NewUser{Username: "bob"}); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("login", func(t *testing.T) {
		session, err := Login(ctx, Credentials{Username: "alice", Password: "s3cret"})
		if err != nil {
			t.Fatalf("Login error: %v", err)
		}
		if _, err := token.Parse(session.Token, []byte(sys.Configs.Auth.Secret)); err != nil {
			t.Fatalf("minted token does not parse: %v", err)
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		if _, err := Login(ctx, Credentials{Username: "alice", Password: "nope"}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("login unknown user", func(t *testing.T) {
		if _, err := Login(ctx, Credentials{Username: "carol", Password: "s3cret"}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})
}
