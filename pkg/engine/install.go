package engine

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/logging"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Install installs name and, first, every dependency it lists. Packages
// that are already installed are left untouched.
func (e *Engine) Install(name string) error {
	defer logging.LogOperationStart(e.logger, "install "+name)()
	return e.install(name, newVisitTracker())
}

func (e *Engine) install(name string, visits *visitTracker) error {
	log := e.logger.With().Str("package", name).Logger()

	if visits.inProgress(name) {
		return visits.cycleError(name)
	}

	// Pre-check
	snap := e.store.Load()
	if snap.HasName(name) {
		log.Debug().Msg("Already installed")
		if visits.state(name) == white {
			e.reporter.Skipped(name, "already installed")
		}
		visits.leave(name)
		return nil
	}

	pkg, ok := e.catalog.Find(name)
	if !ok {
		return errors.Newf(errors.ErrNotFound, "package %s not found in index", name).
			WithDetail("package", name)
	}

	if err := visits.enter(name); err != nil {
		return err
	}

	for _, dep := range pkg.Dependencies {
		log.Trace().Str("dependency", dep).Msg("Resolving dependency")
		if err := e.install(dep, visits); err != nil {
			return err
		}
	}

	// Post-check: a dependency's recipe may have installed us already.
	if e.store.Load().HasName(name) {
		log.Debug().Msg("Installed while resolving dependencies")
		e.reporter.Skipped(name, "installed while resolving dependencies")
		visits.leave(name)
		return nil
	}

	e.reporter.Installing(pkg)
	if err := e.executor.Run(pkg.Clone()); err != nil {
		return err
	}

	if err := e.store.Save(e.store.Load().Append(pkg)); err != nil {
		return err
	}
	log.Info().Str("version", pkg.Version).Msg("Package installed")

	e.deleteArchive(pkg)

	visits.leave(name)
	e.reporter.Installed(pkg)
	return nil
}

// deleteArchive removes the downloaded archive once it is no longer needed
func (e *Engine) deleteArchive(pkg types.Package) {
	if pkg.Archive == "" || e.fs == nil {
		return
	}

	path := resolvePath(e.workDir, pkg.Archive)
	err := e.fs.Remove(path)
	switch {
	case err == nil:
		e.logger.Debug().Str("archive", path).Msg("Archive deleted")
	case stderrors.Is(err, fs.ErrNotExist):
		e.logger.Debug().Str("archive", path).Msg("Archive already gone")
	default:
		e.logger.Warn().Err(err).Str("archive", path).Msg("Failed to delete archive")
		e.reporter.Warning(fmt.Sprintf("could not delete archive %s: %v", path, err))
	}
}
