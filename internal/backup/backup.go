// Package backup copies save files aside before they are overwritten and
// keeps a small sqlite catalog of every backup taken.
package backup

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Record is one catalog row.
type Record struct {
	ID         string
	SourcePath string
	BackupPath string
	SizeBytes  int64
	SHA256     string
	CreatedAt  time.Time
}

// Manager owns the catalog database.
type Manager struct {
	db  *sql.DB
	mu  sync.Mutex
	log *zap.Logger
}

// Open initializes the catalog at dir/backups.db, creating the schema when
// missing.
func Open(dir string, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "backups.db"))
	if err != nil {
		return nil, fmt.Errorf("open backup catalog: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Debug("set journal_mode failed", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debug("set busy_timeout failed", zap.Error(err))
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS backups (
			id          TEXT PRIMARY KEY,
			source_path TEXT NOT NULL,
			backup_path TEXT NOT NULL,
			size_bytes  INTEGER NOT NULL,
			sha256      TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_backups_source ON backups(source_path);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate backup catalog: %w", err)
	}

	return &Manager{db: db, log: log}, nil
}

// Close releases the catalog database.
func (m *Manager) Close() error { return m.db.Close() }

// Create copies path to path.backup_YYYYMMDD_HHMMSS and records it. The
// timestamped suffix matches what the game community's tooling expects.
func (m *Manager) Create(path string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	src, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("open save for backup: %w", err)
	}
	defer src.Close()

	now := time.Now()
	backupPath := fmt.Sprintf("%s.backup_%s", path, now.Format("20060102_150405"))

	dst, err := os.Create(backupPath)
	if err != nil {
		return Record{}, fmt.Errorf("create backup file: %w", err)
	}

	hash := sha256.New()
	size, err := io.Copy(io.MultiWriter(dst, hash), src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(backupPath)
		return Record{}, fmt.Errorf("write backup file: %w", err)
	}

	rec := Record{
		ID:         uuid.NewString(),
		SourcePath: path,
		BackupPath: backupPath,
		SizeBytes:  size,
		SHA256:     hex.EncodeToString(hash.Sum(nil)),
		CreatedAt:  now,
	}
	if _, err := m.db.Exec(
		`INSERT INTO backups (id, source_path, backup_path, size_bytes, sha256, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SourcePath, rec.BackupPath, rec.SizeBytes, rec.SHA256, rec.CreatedAt,
	); err != nil {
		return Record{}, fmt.Errorf("record backup: %w", err)
	}

	m.log.Info("backup created",
		zap.String("source", rec.SourcePath),
		zap.String("backup", rec.BackupPath),
		zap.Int64("bytes", rec.SizeBytes))
	return rec, nil
}

// List returns the catalog rows for one source path, newest first.
func (m *Manager) List(sourcePath string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, err := m.db.Query(
		`SELECT id, source_path, backup_path, size_bytes, sha256, created_at
		 FROM backups WHERE source_path = ? ORDER BY created_at DESC`,
		sourcePath,
	)
	if err != nil {
		return nil, fmt.Errorf("query backups: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.SourcePath, &r.BackupPath, &r.SizeBytes, &r.SHA256, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan backup row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
