package engine

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mtr/pkg/ledger"
	"github.com/arthur-debert/mtr/pkg/logging"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Catalog looks up packages available for installation
type Catalog interface {
	Find(name string) (types.Package, bool)
}

// Executor runs the install recipe of a package
type Executor interface {
	Run(pkg types.Package) error
}

// Options configures an Engine
type Options struct {
	Catalog  Catalog
	Store    ledger.Store
	Executor Executor
	Cleaner  Cleaner
	FS       types.FS

	// WorkDir is where recipes run. Relative archive paths are resolved
	// against it.
	WorkDir string

	Reporter Reporter
}

// Engine drives installs, removals and updates
type Engine struct {
	catalog  Catalog
	store    ledger.Store
	executor Executor
	cleaner  Cleaner
	fs       types.FS
	workDir  string
	reporter Reporter
	logger   zerolog.Logger
}

// New creates an engine. A nil Reporter discards events; a nil Cleaner
// becomes a FileCleaner without a remove recipe.
func New(opts Options) *Engine {
	e := &Engine{
		catalog:  opts.Catalog,
		store:    opts.Store,
		executor: opts.Executor,
		cleaner:  opts.Cleaner,
		fs:       opts.FS,
		workDir:  opts.WorkDir,
		reporter: opts.Reporter,
		logger:   logging.GetLogger("engine"),
	}
	if e.reporter == nil {
		e.reporter = NopReporter{}
	}
	if e.cleaner == nil {
		e.cleaner = NewFileCleaner(opts.FS, opts.WorkDir, nil, nil)
	}
	return e
}

// resolvePath anchors relative package paths at workDir
func resolvePath(workDir, p string) string {
	if p == "" || filepath.IsAbs(p) || workDir == "" {
		return p
	}
	return filepath.Join(workDir, p)
}
