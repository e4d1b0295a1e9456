// Package session owns the current bearer token and authenticated identity.
// Both live in two durable slots of the client-local database and are always
// written and removed together: there is no observable state where one slot
// is set and the other is not.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/young-sensey/dochub/internal/client/models"
	"github.com/young-sensey/dochub/internal/client/repositories/metadata"
	"github.com/young-sensey/dochub/internal/dbx"
	"github.com/young-sensey/dochub/internal/logging"
)

const (
	slotToken = "token"
	slotUser  = "user"
)

// Store is the single process-wide owner of session state. All reads and
// writes of the token and user pass through it; nothing else touches the
// underlying slots.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "session")}
}

// Set persists the token and user in one transaction.
func (s *Store) Set(ctx context.Context, token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, slotToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, slotUser, raw)
	})
}

// Clear removes both slots in one transaction. Clearing an already empty
// session is a no-op, so repeated authorization failures stay idempotent.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, slotToken); err != nil {
			return err
		}
		return repo.Delete(ctx, slotUser)
	})
}

// Token returns the current bearer token. Storage failures read as "no
// session": an unreadable session must never break navigation.
func (s *Store) Token(ctx context.Context) (string, bool) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, slotToken)
	if err != nil {
		s.log.Warn(ctx, "token read failed, treating as logged out", "error", err)
		return "", false
	}
	if v == nil {
		return "", false
	}
	return string(v), true
}

// User returns the current authenticated identity, with the same fail-safe
// behavior as Token.
func (s *Store) User(ctx context.Context) (*models.User, bool) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, slotUser)
	if err != nil {
		s.log.Warn(ctx, "user read failed, treating as logged out", "error", err)
		return nil, false
	}
	if v == nil {
		return nil, false
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		s.log.Warn(ctx, "stored user is unreadable, treating as logged out", "error", err)
		return nil, false
	}
	return &u, true
}

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}
