// Package backup reads and writes the JSON export document.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

// Filename returns the export file name for the given day,
// focus-flow-backup-YYYY-MM-DD.json.
func Filename(now time.Time) string {
	return fmt.Sprintf("focus-flow-backup-%s.json", now.Format("2006-01-02"))
}

// Write serializes the backup document with 2-space indentation.
func Write(w io.Writer, data model.BackupData) error {
	if data.Sessions == nil {
		data.Sessions = []model.StudySession{}
	}
	if data.Profiles == nil {
		data.Profiles = []model.TimerProfile{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// WriteFile writes the backup document to dir using the dated filename and
// returns the full path.
func WriteFile(dir string, data model.BackupData, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, Filename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close; Write already reported real failures.
			_ = cerr
		}
	}()
	if err := Write(f, data); err != nil {
		return "", err
	}
	return path, nil
}

// Parse validates and decodes an uploaded backup document. Both the sessions
// and profiles fields must be present and be arrays; no deeper schema
// validation is applied. Callers must not touch stored collections unless
// Parse succeeds.
func Parse(raw []byte) (model.BackupData, error) {
	var probe struct {
		Sessions json.RawMessage `json:"sessions"`
		Profiles json.RawMessage `json:"profiles"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return model.BackupData{}, fmt.Errorf("malformed backup document: %w", err)
	}
	if err := requireArray("sessions", probe.Sessions); err != nil {
		return model.BackupData{}, err
	}
	if err := requireArray("profiles", probe.Profiles); err != nil {
		return model.BackupData{}, err
	}

	data := model.BackupData{
		Sessions: []model.StudySession{},
		Profiles: []model.TimerProfile{},
	}
	if err := json.Unmarshal(probe.Sessions, &data.Sessions); err != nil {
		return model.BackupData{}, fmt.Errorf("invalid sessions array: %w", err)
	}
	if err := json.Unmarshal(probe.Profiles, &data.Profiles); err != nil {
		return model.BackupData{}, fmt.Errorf("invalid profiles array: %w", err)
	}
	return data, nil
}

// ParseFile reads and parses a backup document from disk.
func ParseFile(path string) (model.BackupData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	return Parse(raw)
}

func requireArray(name string, raw json.RawMessage) error {
	if len(raw) == 0 || string(raw) == "null" {
		return fmt.Errorf("backup document is missing the %s array", name)
	}
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return nil
		default:
			return fmt.Errorf("backup field %s is not an array", name)
		}
	}
	return fmt.Errorf("backup field %s is not an array", name)
}
