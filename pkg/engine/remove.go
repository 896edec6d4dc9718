package engine

import (
	"fmt"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/logging"
)

// RemoveByName removes the installed package called name
func (e *Engine) RemoveByName(name string) error {
	pkg, ok := e.store.Load().FindByName(name)
	if !ok {
		return errors.Newf(errors.ErrNotFound, "package %s is not installed", name).
			WithDetail("package", name)
	}
	return e.Remove(pkg.RemovalKey())
}

// Remove removes the installed package with the given removal key, then
// every dependency of it that no other installed package still needs.
func (e *Engine) Remove(key string) error {
	defer logging.LogOperationStart(e.logger, "remove "+key)()
	return e.remove(key, newVisitTracker())
}

func (e *Engine) remove(key string, visits *visitTracker) error {
	log := e.logger.With().Str("key", key).Logger()

	if visits.inProgress(key) {
		return visits.cycleError(key)
	}

	// Pre-check
	pkg, ok := e.store.Load().FindByKey(key)
	if !ok {
		log.Debug().Msg("Not installed")
		if visits.state(key) == white {
			e.reporter.Skipped(key, "not installed")
		}
		return nil
	}

	if err := visits.enter(key); err != nil {
		return err
	}

	for _, dep := range pkg.Dependencies {
		snap := e.store.Load()

		if snap.ReferencedByOther(dep, key) {
			requiredBy := snap.Dependents(dep, key)
			log.Debug().Str("dependency", dep).Strs("required_by", requiredBy).Msg("Dependency still required, keeping")
			e.reporter.Kept(dep, requiredBy)
			continue
		}

		depPkg, installed := snap.FindByName(dep)
		if !installed {
			log.Warn().Str("dependency", dep).Msg("Dependency not installed, skipping")
			e.reporter.Warning(fmt.Sprintf("dependency %s of %s is not installed", dep, pkg.Name))
			continue
		}

		if err := e.remove(depPkg.RemovalKey(), visits); err != nil {
			return err
		}
	}

	// Post-check
	if !e.store.Load().HasKey(key) {
		log.Debug().Msg("Removed while handling dependencies")
		visits.leave(key)
		return nil
	}

	e.reporter.Removing(pkg)
	if err := e.cleaner.Clean(pkg); err != nil {
		log.Warn().Err(err).Msg("Cleanup incomplete")
		e.reporter.Warning(fmt.Sprintf("cleanup of %s incomplete: %v", pkg.Name, err))
	}

	if err := e.store.Save(e.store.Load().RemoveKey(key)); err != nil {
		return err
	}
	log.Info().Str("package", pkg.Name).Msg("Package removed")

	visits.leave(key)
	e.reporter.Removed(pkg)
	return nil
}
