package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"

	"aluno-sync/internal/domain"
)

// WriteSnapshot serializes the consolidated snapshot to path. The write is
// all-or-nothing: the document lands in a temp file first and is renamed
// into place, so a mid-run failure never leaves a partial snapshot behind.
// With compress set, a brotli-compressed .br sibling is written as well,
// for cheap archiving of past semesters.
func WriteSnapshot(path string, snap domain.Snapshot, compress bool) error {
	b, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return fmt.Errorf("export: marshal snapshot: %w", err)
	}

	if err := WriteFileAtomic(path, b); err != nil {
		return fmt.Errorf("export: write snapshot: %w", err)
	}

	if compress {
		if err := writeBrotli(path+".br", b); err != nil {
			return fmt.Errorf("export: compress snapshot: %w", err)
		}
	}
	return nil
}

// WriteFileAtomic writes data via a temp file in the target directory and an
// atomic rename. The parent directory is created if missing.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func writeBrotli(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := brotli.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
