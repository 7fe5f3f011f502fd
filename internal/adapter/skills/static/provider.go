package staticskills

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"emberside/internal/app/ports"
)

// Provider serves the field-guide files straight from disk. Content is
// static; there is nothing to cache or invalidate.
type Provider struct {
	Root string
}

func (p Provider) Index(_ context.Context) ([]byte, error) {
	return readGuarded(filepath.Join(p.Root, "index.json"))
}

func (p Provider) File(_ context.Context, path string) ([]byte, error) {
	safePath, err := secureJoin(p.Root, path)
	if err != nil {
		return nil, err
	}
	return readGuarded(safePath)
}

func readGuarded(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

var ErrInvalidSkillsPath = errors.New("invalid skills filepath")

func secureJoin(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", ErrInvalidSkillsPath
	}
	if filepath.IsAbs(rel) {
		return "", ErrInvalidSkillsPath
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	prefix := rootAbs + string(filepath.Separator)
	if target != rootAbs && !strings.HasPrefix(target, prefix) {
		return "", ErrInvalidSkillsPath
	}
	return target, nil
}
