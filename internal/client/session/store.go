// Package session is the single source of truth for "who is logged in and
// with what credential". The identity record and the bearer token live and
// die together: every writer replaces or clears both in one step, both in
// memory and in the local state database, so no reader can ever observe a
// token without an identity or vice versa.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/repositories/metadata"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/cryptox"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/dbx"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/logging"
)

// Storage slots for the persisted session. Both are sealed blobs.
const (
	slotToken    = "token"
	slotIdentity = "identity"
)

// API is the subset of the gateway the store needs for its own lifecycle
// calls. These bypass the refresh-and-retry interceptor.
type API interface {
	LoginRequest(ctx context.Context, email, password string) (*models.User, string, error)
	RefreshRequest(ctx context.Context) (*models.User, string, error)
	LogoutRequest(ctx context.Context) error
}

// Snapshot is a momentarily-consistent view of the session.
type Snapshot struct {
	User    *models.User
	Token   string
	Loading bool
}

// IsAuthenticated is derived, never stored: true iff both fields are set.
func (s Snapshot) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

type Store struct {
	mu      sync.Mutex
	user    *models.User
	token   string
	loading bool

	api    API
	db     *sql.DB
	sealer *cryptox.Sealer
	log    logging.Logger
}

func NewStore(api API, db *sql.DB, sealer *cryptox.Sealer, log logging.Logger) *Store {
	return &Store{api: api, db: db, sealer: sealer, log: log}
}

// Snapshot returns a copy of the current session state. The user record is
// copied so callers cannot mutate the store's view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Token: s.token, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

// Token implements api.CredentialSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) adopt(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()
}

func (s *Store) clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}

// Restore reads the persisted session at startup. The persisted token is
// trusted until first use; no network call is made. Missing or corrupted
// data yields an empty session and purges whatever partial state was found.
// Only an unexpected storage failure is returned as an error.
func (s *Store) Restore(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	repo := metadata.NewSQLiteRepository(s.db)

	sealedToken, err := repo.Get(ctx, slotToken)
	if err != nil {
		return err
	}
	sealedIdentity, err := repo.Get(ctx, slotIdentity)
	if err != nil {
		return err
	}

	if sealedToken == nil || sealedIdentity == nil {
		if sealedToken != nil || sealedIdentity != nil {
			s.log.Warn(ctx, "partial persisted session, purging")
			return s.purge(ctx)
		}
		return nil
	}

	token, err := s.sealer.Open(sealedToken)
	if err != nil {
		s.log.Warn(ctx, "persisted token unreadable, purging", "err", err)
		return s.purge(ctx)
	}
	identity, err := s.sealer.Open(sealedIdentity)
	if err != nil {
		s.log.Warn(ctx, "persisted identity unreadable, purging", "err", err)
		return s.purge(ctx)
	}

	var user models.User
	if err := json.Unmarshal(identity, &user); err != nil {
		s.log.Warn(ctx, "persisted identity does not parse, purging", "err", err)
		return s.purge(ctx)
	}
	if user.ID == "" || len(token) == 0 {
		s.log.Warn(ctx, "persisted session incomplete, purging")
		return s.purge(ctx)
	}

	s.adopt(&user, string(token))
	s.log.Info(ctx, "session restored", "user", user.Email)
	return nil
}

// Login authenticates against the server and, on success, adopts and
// persists the new session. Failures come back as error values (match with
// errors.Is against api sentinels); the session stays empty.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	user, token, err := s.api.LoginRequest(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, user, token); err != nil {
		return err
	}
	s.adopt(user, token)
	return nil
}

// Refresh exchanges the current token for a fresh pair. A failed refresh is
// fatal to the session: the store logs out fully so no stale token stays
// active, then returns the error.
func (s *Store) Refresh(ctx context.Context) error {
	user, token, err := s.api.RefreshRequest(ctx)
	if err != nil {
		_ = s.Logout(ctx)
		return err
	}
	if err := s.persist(ctx, user, token); err != nil {
		_ = s.Logout(ctx)
		return err
	}
	s.adopt(user, token)
	return nil
}

// Logout clears the in-memory session and the persisted slots
// unconditionally. Server-side invalidation is attempted on a short leash
// but its failure never blocks the local logout.
func (s *Store) Logout(ctx context.Context) error {
	if s.Token() != "" {
		invCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := s.api.LogoutRequest(invCtx); err != nil {
			s.log.Debug(ctx, "server-side logout failed", "err", err)
		}
		cancel()
	}

	s.clear()
	return s.purge(ctx)
}

// persist writes both slots in one transaction.
func (s *Store) persist(ctx context.Context, user *models.User, token string) error {
	identity, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, slotToken, s.sealer.Seal([]byte(token))); err != nil {
			return err
		}
		return repo.Set(ctx, slotIdentity, s.sealer.Seal(identity))
	})
}

// purge removes both slots in one transaction.
func (s *Store) purge(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, slotToken); err != nil {
			return err
		}
		return repo.Delete(ctx, slotIdentity)
	})
}
