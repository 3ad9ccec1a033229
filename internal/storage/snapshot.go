package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/domain"
)

// SnapshotKey is the fixed key the cart snapshot is stored under. There is
// exactly one cart per process, so one key is enough.
const SnapshotKey = "restaurant_cart"

// SnapshotStore persists the cart as a wholesale snapshot under a single
// fixed key. Load never fails: absent or malformed data is treated as an
// empty cart so a bad snapshot can never take the ordering flow down.
type SnapshotStore interface {
	Load() []domain.CartLine
	Save(lines []domain.CartLine) error
}

type fileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a snapshot store backed by a JSON file in dir
func NewFileStore(dir string, logger *zap.Logger) SnapshotStore {
	return &fileStore{
		path:   filepath.Join(dir, SnapshotKey+".json"),
		logger: logger,
	}
}

func (s *fileStore) Load() []domain.CartLine {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Failed to read cart snapshot", zap.String("path", s.path), zap.Error(err))
		}
		return nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		// Lenient recovery: a snapshot we cannot parse is treated as absent
		s.logger.Error("Failed to load cart snapshot", zap.String("path", s.path), zap.Error(err))
		return nil
	}

	return lines
}

func (s *fileStore) Save(lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	// Write-then-rename so a crash mid-save never leaves a torn snapshot
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

type memoryStore struct {
	lines []domain.CartLine
}

// NewMemoryStore creates an in-memory snapshot store for tests and tooling
func NewMemoryStore() SnapshotStore {
	return &memoryStore{}
}

func (s *memoryStore) Load() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *memoryStore) Save(lines []domain.CartLine) error {
	s.lines = make([]domain.CartLine, len(lines))
	copy(s.lines, lines)
	return nil
}
