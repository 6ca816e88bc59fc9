// Package state owns the local state database (sqlite) and the per-device
// secret used to seal the persisted session.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/migrations"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/repositories/metadata"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/common"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/cryptox"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	dbFileName      = "dashboard.db"
	secretFileName  = "device.key"
	secretLen       = 32
	slotStorageSalt = "storage_salt"
)

// DatabasePath returns the state database location inside dir.
func DatabasePath(dir string) string {
	return filepath.Join(dir, dbFileName)
}

// OpenDatabase opens (creating if needed) the state database and applies
// the embedded migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// loadOrCreateDeviceSecret reads the device secret file from dir, creating
// it with a fresh random secret on first run. The file is kept separate from
// the database so the database alone does not expose the sealed session.
func loadOrCreateDeviceSecret(dir string) ([]byte, error) {
	path := filepath.Join(dir, secretFileName)

	secret, err := os.ReadFile(path)
	if err == nil && len(secret) == secretLen {
		return secret, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	secret = common.GenerateRandByteArray(secretLen)
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, err
	}
	return secret, nil
}

// NewSealer derives the storage sealer for this device: a random secret from
// the state dir plus a salt slot in the database, fed through argon2id.
func NewSealer(ctx context.Context, db *sql.DB, dir string) (*cryptox.Sealer, error) {
	secret, err := loadOrCreateDeviceSecret(dir)
	if err != nil {
		return nil, err
	}

	repo := metadata.NewSQLiteRepository(db)
	salt, err := repo.Get(ctx, slotStorageSalt)
	if err != nil {
		return nil, err
	}
	if len(salt) == 0 {
		salt = common.GenerateRandByteArray(16)
		if err := repo.Set(ctx, slotStorageSalt, salt); err != nil {
			return nil, err
		}
	}

	return cryptox.NewSealer(cryptox.DeriveStorageKey(secret, salt))
}
