// Package snapshot archives whole worlds to zstd-compressed files. Each
// archive carries a one-line JSON header so operators can inspect a
// file with zstdcat | head -1 without decoding the body.
package snapshot

import (
	"bufio"
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

type header struct {
	WorldID string    `json:"world_id"`
	Version int64     `json:"version"`
	Tick    int64     `json:"tick"`
	SavedAt time.Time `json:"saved_at"`
}

// FileStore writes one directory per world under root. Archives are
// named by tick, so the lexicographically last file is the newest.
type FileStore struct {
	root string
	now  func() time.Time
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot root: %w", err)
	}
	return &FileStore{root: root, now: time.Now}, nil
}

// Write archives the world and returns the path relative to the store
// root. Writing the same tick twice replaces the earlier archive.
func (s *FileStore) Write(ctx context.Context, state *survival.WorldState) (string, error) {
	dir := filepath.Join(s.root, state.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create world dir: %w", err)
	}
	name := fmt.Sprintf("%012d.snap", state.Clock.Tick)

	tmp, err := os.CreateTemp(dir, ".snap-*")
	if err != nil {
		return "", fmt.Errorf("create temp archive: %w", err)
	}
	if err := s.encode(tmp, state); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	// Rename last so readers only ever see complete archives.
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return filepath.Join(state.ID, name), nil
}

func (s *FileStore) encode(f *os.File, state *survival.WorldState) error {
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("open zstd writer: %w", err)
	}
	head, err := json.Marshal(header{
		WorldID: state.ID,
		Version: state.Version,
		Tick:    state.Clock.Tick,
		SavedAt: s.now().UTC(),
	})
	if err != nil {
		zw.Close()
		return err
	}
	if _, err := zw.Write(append(head, '\n')); err != nil {
		zw.Close()
		return err
	}
	if err := gob.NewEncoder(zw).Encode(state); err != nil {
		zw.Close()
		return fmt.Errorf("encode world %s: %w", state.ID, err)
	}
	return zw.Close()
}

// Read loads the newest archive for the world, or ErrNotFound when the
// world has never been archived.
func (s *FileStore) Read(ctx context.Context, worldID string) (*survival.WorldState, error) {
	dir := filepath.Join(s.root, worldID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	latest := ""
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".snap") {
			continue
		}
		if name > latest {
			latest = name
		}
	}
	if latest == "" {
		return nil, ports.ErrNotFound
	}

	f, err := os.Open(filepath.Join(dir, latest))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open zstd reader: %w", err)
	}
	defer zr.Close()

	br := bufio.NewReader(zr)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read archive header: %w", err)
	}
	var h header
	if err := json.Unmarshal(line, &h); err != nil {
		return nil, fmt.Errorf("decode archive header: %w", err)
	}
	if h.WorldID != worldID {
		return nil, fmt.Errorf("archive %s names world %q", latest, h.WorldID)
	}

	var state survival.WorldState
	if err := gob.NewDecoder(br).Decode(&state); err != nil {
		return nil, fmt.Errorf("decode world %s: %w", worldID, err)
	}
	return &state, nil
}
