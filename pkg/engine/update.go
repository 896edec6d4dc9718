package engine

import (
	"github.com/arthur-debert/mtr/pkg/errors"
)

// UpdateResult tells what Update did
type UpdateResult int

const (
	// UpdateInstalled means the package was not installed and now is
	UpdateInstalled UpdateResult = iota + 1
	// UpdateUpToDate means the installed version already matches the index
	UpdateUpToDate
	// UpdateReplaced means the old version was removed and the index
	// version installed
	UpdateReplaced
)

func (r UpdateResult) String() string {
	switch r {
	case UpdateInstalled:
		return "installed"
	case UpdateUpToDate:
		return "up to date"
	case UpdateReplaced:
		return "updated"
	default:
		return "unknown"
	}
}

// Update brings name to the version listed in the index. Versions are
// compared as plain strings: any difference, including a lower index
// version, removes the installed package and installs the index one.
func (e *Engine) Update(name string) (UpdateResult, error) {
	want, ok := e.catalog.Find(name)
	if !ok {
		return 0, errors.Newf(errors.ErrNotFound, "package %s not found in index", name).
			WithDetail("package", name)
	}

	installed, ok := e.store.Load().FindByName(name)
	if !ok {
		e.logger.Debug().Str("package", name).Msg("Not installed, installing")
		if err := e.Install(name); err != nil {
			return 0, err
		}
		return UpdateInstalled, nil
	}

	if installed.Version == want.Version {
		e.logger.Debug().Str("package", name).Str("version", want.Version).Msg("Up to date")
		return UpdateUpToDate, nil
	}

	e.logger.Info().
		Str("package", name).
		Str("from", installed.Version).
		Str("to", want.Version).
		Msg("Replacing package")

	if err := e.Remove(installed.RemovalKey()); err != nil {
		return 0, err
	}
	if err := e.Install(name); err != nil {
		return 0, err
	}
	return UpdateReplaced, nil
}
