package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
)

const snapshotExt = ".json"

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// SnapshotName is the default file name for a snapshot taken at t.
func SnapshotName(userID string, t time.Time) string {
	return fmt.Sprintf("caltrack-%s-%s%s", userID, t.UTC().Format("20060102-150405"), snapshotExt)
}

// CreateBackup writes a JSON snapshot of the document to outPath with a
// sibling .sha256 file.
func (s *Session) CreateBackup(outPath string) (BackupInfo, error) {
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, ledger.Invalidf("backup output path is required")
	}
	body, err := s.Export(FormatJSON)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := os.WriteFile(outPath, body, 0o600); err != nil {
		return BackupInfo{}, fmt.Errorf("write backup: %w", err)
	}
	checksum := checksumOf(body)
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	s.log.WithField("path", outPath).Debug("created backup")
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

// RestoreBackup replaces the document with a snapshot. A checksum file next
// to the snapshot must match when present.
func (s *Session) RestoreBackup(ctx context.Context, backupPath string) (ImportReport, error) {
	if strings.TrimSpace(backupPath) == "" {
		return ImportReport{}, ledger.Invalidf("backup path is required")
	}
	body, err := os.ReadFile(backupPath)
	if err != nil {
		return ImportReport{}, fmt.Errorf("read backup: %w", err)
	}
	if expected, err := os.ReadFile(backupPath + ".sha256"); err == nil {
		if strings.TrimSpace(string(expected)) != checksumOf(body) {
			return ImportReport{}, fmt.Errorf("backup checksum mismatch")
		}
	}
	return s.Import(ctx, body, FormatJSON, ImportOptions{Mode: ImportModeReplace})
}

// ListBackups returns the snapshots in dir, newest first.
func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), snapshotExt) {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func checksumOf(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
