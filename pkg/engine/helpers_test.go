package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/filesystem"
	"github.com/arthur-debert/mtr/pkg/index"
	"github.com/arthur-debert/mtr/pkg/ledger"
	"github.com/arthur-debert/mtr/pkg/types"
)

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) Skipped(name, reason string) { r.add("skipped", name) }
func (r *recordingReporter) Installing(pkg types.Package) { r.add("installing", pkg.Name) }
func (r *recordingReporter) Installed(pkg types.Package) { r.add("installed", pkg.Name) }
func (r *recordingReporter) Removing(pkg types.Package) { r.add("removing", pkg.Name) }
func (r *recordingReporter) Removed(pkg types.Package) { r.add("removed", pkg.Name) }
func (r *recordingReporter) Kept(dep string, by []string) { r.add("kept", dep) }
func (r *recordingReporter) Warning(msg string) { r.add("warning", msg) }

func (r *recordingReporter) add(kind, subject string) {
	r.events = append(r.events, kind+":"+subject)
}

func (r *recordingReporter) count(kind string) int {
	n := 0
	for _, e := range r.events {
		if len(e) > len(kind) && e[:len(kind)+1] == kind+":" {
			n++
		}
	}
	return n
}

// spyExecutor records which packages had their recipe run
type spyExecutor struct {
	runs  []string
	fail  map[string]bool
	hooks map[string]func()
}

func (s *spyExecutor) Run(pkg types.Package) error {
	s.runs = append(s.runs, pkg.Name)
	if hook := s.hooks[pkg.Name]; hook != nil {
		hook()
	}
	if s.fail[pkg.Name] {
		return errors.Newf(errors.ErrStepFailed, "command failed: make %s", pkg.Name).
			WithDetail("package", pkg.Name)
	}
	return nil
}

type spyCleaner struct {
	cleaned []string
	err     error
}

func (s *spyCleaner) Clean(pkg types.Package) error {
	s.cleaned = append(s.cleaned, pkg.RemovalKey())
	return s.err
}

type harness struct {
	engine   *Engine
	store    *ledger.MemoryStore
	exec     *spyExecutor
	cleaner  *spyCleaner
	reporter *recordingReporter
	fs       types.FS
}

func newHarness(t *testing.T, available []types.Package, installed ...types.Package) *harness {
	t.Helper()

	idx, err := index.New(available)
	require.NoError(t, err)

	h := &harness{
		store:    ledger.NewMemoryStore(installed...),
		exec:     &spyExecutor{fail: map[string]bool{}, hooks: map[string]func(){}},
		cleaner:  &spyCleaner{},
		reporter: &recordingReporter{},
		fs:       filesystem.NewMemory(),
	}
	h.engine = New(Options{
		Catalog:  idx,
		Store:    h.store,
		Executor: h.exec,
		Cleaner:  h.cleaner,
		FS:       h.fs,
		WorkDir:  "/build",
		Reporter: h.reporter,
	})
	return h
}

func (h *harness) installedNames() []string {
	var names []string
	for _, p := range h.store.Load().Packages() {
		names = append(names, p.Name)
	}
	return names
}

// pkg builds a package whose dirname is name-version
func pkg(name, version string, deps ...string) types.Package {
	return types.Package{
		Name:         name,
		Version:      version,
		Source:       fmt.Sprintf("https://example.com/%s-%s.tar.gz", name, version),
		Archive:      fmt.Sprintf("%s-%s.tar.gz", name, version),
		Dirname:      fmt.Sprintf("%s-%s", name, version),
		Dependencies: deps,
	}
}
