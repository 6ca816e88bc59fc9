package session

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/repositories/metadata"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/common"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/cryptox"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)
	return db
}

func testSealer(t *testing.T) *cryptox.Sealer {
	t.Helper()
	s, err := cryptox.NewSealer(cryptox.DeriveStorageKey([]byte("test-secret"), []byte("test-salt-16byte")))
	require.NoError(t, err)
	return s
}

func slotValue(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	repo := metadata.NewSQLiteRepository(db)
	v, err := repo.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

// fakeAPI implements the API interface for store tests.
type fakeAPI struct {
	loginUser  *models.User
	loginToken string
	loginErr   error

	refreshUser  *models.User
	refreshToken string
	refreshErr   error
	refreshCalls int

	logoutCalls int
	logoutErr   error
}

func (f *fakeAPI) LoginRequest(ctx context.Context, email, password string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginUser, f.loginToken, nil
}

func (f *fakeAPI) RefreshRequest(ctx context.Context) (*models.User, string, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return nil, "", f.refreshErr
	}
	return f.refreshUser, f.refreshToken, nil
}

func (f *fakeAPI) LogoutRequest(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func user1() *models.User {
	return &models.User{ID: "1", Email: "a@b.com", Name: "A"}
}

// ---- TESTS ----

func TestLoginAdoptsAndPersists(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	store := NewStore(&fakeAPI{loginUser: user1(), loginToken: "T1"}, db, testSealer(t), testLogger())

	require.NoError(t, store.Login(ctx, "a@b.com", "x"))

	snap := store.Snapshot()
	assert.True(t, snap.IsAuthenticated())
	assert.Equal(t, "T1", snap.Token)
	assert.Equal(t, "a@b.com", snap.User.Email)
	assert.False(t, snap.Loading)

	assert.NotNil(t, slotValue(t, db, "token"))
	assert.NotNil(t, slotValue(t, db, "identity"))
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	store := NewStore(&fakeAPI{loginErr: common.ErrUnauthorized}, db, testSealer(t), testLogger())

	err := store.Login(ctx, "a@b.com", "bad")
	require.ErrorIs(t, err, common.ErrUnauthorized)

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated())
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Token)
	assert.Nil(t, slotValue(t, db, "token"))
	assert.Nil(t, slotValue(t, db, "identity"))
}

func TestRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	sealer := testSealer(t)

	store := NewStore(&fakeAPI{loginUser: user1(), loginToken: "T1"}, db, sealer, testLogger())
	require.NoError(t, store.Login(ctx, "a@b.com", "x"))

	// A fresh store over the same database restores the session without
	// any network call.
	restored := NewStore(&fakeAPI{}, db, sealer, testLogger())
	require.NoError(t, restored.Restore(ctx))

	snap := restored.Snapshot()
	assert.True(t, snap.IsAuthenticated())
	assert.Equal(t, "T1", snap.Token)
	assert.Equal(t, "1", snap.User.ID)
}

func TestRestoreEmptyStorage(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeAPI{}, setupDB(t), testSealer(t), testLogger())

	require.NoError(t, store.Restore(ctx))
	assert.False(t, store.IsAuthenticated())
	assert.False(t, store.Snapshot().Loading)
}

func TestRestorePurgesPartialData(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	sealer := testSealer(t)
	repo := metadata.NewSQLiteRepository(db)

	// Token slot present, identity slot missing.
	require.NoError(t, repo.Set(ctx, "token", sealer.Seal([]byte("T1"))))

	store := NewStore(&fakeAPI{}, db, sealer, testLogger())
	require.NoError(t, store.Restore(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, slotValue(t, db, "token"))
}

func TestRestorePurgesCorruptedData(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	sealer := testSealer(t)
	repo := metadata.NewSQLiteRepository(db)

	require.NoError(t, repo.Set(ctx, "token", []byte("not sealed")))
	require.NoError(t, repo.Set(ctx, "identity", []byte("garbage")))

	store := NewStore(&fakeAPI{}, db, sealer, testLogger())
	require.NoError(t, store.Restore(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, slotValue(t, db, "token"))
	assert.Nil(t, slotValue(t, db, "identity"))
}

func TestRestorePurgesUnparseableIdentity(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	sealer := testSealer(t)
	repo := metadata.NewSQLiteRepository(db)

	require.NoError(t, repo.Set(ctx, "token", sealer.Seal([]byte("T1"))))
	require.NoError(t, repo.Set(ctx, "identity", sealer.Seal([]byte("{not json"))))

	store := NewStore(&fakeAPI{}, db, sealer, testLogger())
	require.NoError(t, store.Restore(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, slotValue(t, db, "identity"))
}

func TestRefreshAdoptsNewPair(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	sealer := testSealer(t)
	api := &fakeAPI{loginUser: user1(), loginToken: "T1", refreshUser: user1(), refreshToken: "T2"}
	store := NewStore(api, db, sealer, testLogger())

	require.NoError(t, store.Login(ctx, "a@b.com", "x"))
	require.NoError(t, store.Refresh(ctx))

	assert.Equal(t, "T2", store.Token())

	// The new token survives a restart.
	restored := NewStore(&fakeAPI{}, db, sealer, testLogger())
	require.NoError(t, restored.Restore(ctx))
	assert.Equal(t, "T2", restored.Token())
}

func TestFailedRefreshForcesLogout(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	api := &fakeAPI{loginUser: user1(), loginToken: "T1", refreshErr: common.ErrTokenExpired}
	store := NewStore(api, db, testSealer(t), testLogger())

	require.NoError(t, store.Login(ctx, "a@b.com", "x"))
	require.ErrorIs(t, store.Refresh(ctx), common.ErrTokenExpired)

	snap := store.Snapshot()
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Token)
	assert.Nil(t, slotValue(t, db, "token"))
	assert.Nil(t, slotValue(t, db, "identity"))
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	api := &fakeAPI{loginUser: user1(), loginToken: "T1", refreshUser: user1(), refreshToken: "T2"}
	store := NewStore(api, db, testSealer(t), testLogger())

	// login -> refresh -> refresh -> logout ends fully empty.
	require.NoError(t, store.Login(ctx, "a@b.com", "x"))
	require.NoError(t, store.Refresh(ctx))
	require.NoError(t, store.Refresh(ctx))
	require.NoError(t, store.Logout(ctx))

	snap := store.Snapshot()
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Token)
	assert.Nil(t, slotValue(t, db, "token"))
	assert.Nil(t, slotValue(t, db, "identity"))
	assert.Equal(t, 1, api.logoutCalls)
}

func TestLogoutIgnoresServerFailure(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	api := &fakeAPI{loginUser: user1(), loginToken: "T1", logoutErr: errors.New("server down")}
	store := NewStore(api, db, testSealer(t), testLogger())

	require.NoError(t, store.Login(ctx, "a@b.com", "x"))
	require.NoError(t, store.Logout(ctx))
	assert.False(t, store.IsAuthenticated())
}

func TestLogoutWithoutSessionSkipsServerCall(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{}
	store := NewStore(api, setupDB(t), testSealer(t), testLogger())

	require.NoError(t, store.Logout(ctx))
	assert.Equal(t, 0, api.logoutCalls)
}

func TestIsAuthenticatedIsDerived(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{loginUser: user1(), loginToken: "T1"}
	store := NewStore(api, setupDB(t), testSealer(t), testLogger())

	assert.False(t, store.IsAuthenticated())
	require.NoError(t, store.Login(ctx, "a@b.com", "x"))
	assert.True(t, store.IsAuthenticated())
	require.NoError(t, store.Logout(ctx))
	assert.False(t, store.IsAuthenticated())
}

func TestSnapshotCopiesUser(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeAPI{loginUser: user1(), loginToken: "T1"}, setupDB(t), testSealer(t), testLogger())
	require.NoError(t, store.Login(ctx, "a@b.com", "x"))

	snap := store.Snapshot()
	snap.User.Email = "tampered"
	assert.Equal(t, "a@b.com", store.Snapshot().User.Email)
}
