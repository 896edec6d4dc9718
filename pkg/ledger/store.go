package ledger

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/logging"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Store loads and saves whole ledger snapshots
type Store interface {
	// Load returns the current ledger. It never fails: missing or damaged
	// ledgers load as empty.
	Load() Snapshot

	// Save replaces the stored ledger with snap.
	Save(snap Snapshot) error
}

// FileStore keeps the ledger as a JSON file
type FileStore struct {
	fs     types.FS
	path   string
	logger zerolog.Logger
}

// NewFileStore creates a store backed by the JSON file at path
func NewFileStore(fsys types.FS, path string) *FileStore {
	return &FileStore{
		fs:     fsys,
		path:   path,
		logger: logging.GetLogger("ledger"),
	}
}

// Path returns the ledger file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the ledger file
func (s *FileStore) Load() Snapshot {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			s.logger.Trace().Str("path", s.path).Msg("No ledger yet")
			return Snapshot{}
		}
		s.warnCorrupt(errors.Wrap(err, errors.ErrLedgerCorrupt, "failed to read ledger"))
		return Snapshot{}
	}

	var list types.PackageList
	if err := json.Unmarshal(data, &list); err != nil {
		s.warnCorrupt(errors.Wrap(err, errors.ErrLedgerCorrupt, "failed to parse ledger"))
		return Snapshot{}
	}

	s.logger.Trace().Str("path", s.path).Int("packages", len(list.Packages)).Msg("Ledger loaded")
	return Snapshot{packages: list.Packages}
}

// tempPath names the scratch file Save writes before renaming
func tempPath(path string) string {
	return filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%d.tmp", filepath.Base(path), os.Getpid()))
}

func (s *FileStore) warnCorrupt(err error) {
	s.logger.Warn().Err(err).Str("path", s.path).Msg("Ledger unreadable, treating as empty")
}

// Save writes the ledger to a temporary file next to the target and renames
// it into place, so a concurrent Load sees either the old or the new ledger.
func (s *FileStore) Save(snap Snapshot) error {
	list := types.PackageList{Packages: snap.packages}
	if list.Packages == nil {
		list.Packages = []types.Package{}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrLedgerWrite, "failed to encode ledger")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLedgerWrite, "failed to create ledger directory %s", dir).
			WithDetail("path", s.path)
	}

	tmp := tempPath(s.path)
	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrap(err, errors.ErrLedgerWrite, "failed to write ledger").
			WithDetail("path", s.path)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrap(err, errors.ErrLedgerWrite, "failed to replace ledger").
			WithDetail("path", s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("packages", snap.Len()).Msg("Ledger saved")
	return nil
}

// MemoryStore keeps the ledger in memory
type MemoryStore struct {
	mu    sync.Mutex
	snap  Snapshot
	saves int
}

// NewMemoryStore creates an in-memory store holding pkgs
func NewMemoryStore(pkgs ...types.Package) *MemoryStore {
	return &MemoryStore{snap: NewSnapshot(pkgs...)}
}

// Load returns the stored snapshot
func (m *MemoryStore) Load() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// Save replaces the stored snapshot
func (m *MemoryStore) Save(snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap
	m.saves++
	return nil
}

// Saves returns how many times Save was called
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
