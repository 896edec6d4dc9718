package commands

import (
	"context"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/index"
	"github.com/arthur-debert/mtr/pkg/logging"
)

const maxSuggestions = 3

// InstallPackages installs each name with its dependencies
func InstallPackages(ctx context.Context, env *Environment, names []string) (*BatchResult, error) {
	defer logging.LogOperationStart(env.logger, "install packages")()

	idx, err := env.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}
	eng := env.Engine(idx)

	result := &BatchResult{}
	for _, name := range names {
		err := eng.Install(name)
		if err != nil {
			err = withSuggestions(err, idx, name)
			env.Printer.Error(name, err)
		}
		result.record(name, err)
	}
	return result, nil
}

// RemovePackages removes each installed package by name. The index is not
// needed, so removal works offline.
func RemovePackages(env *Environment, names []string) (*BatchResult, error) {
	defer logging.LogOperationStart(env.logger, "remove packages")()

	empty, err := index.New(nil)
	if err != nil {
		return nil, err
	}
	eng := env.Engine(empty)

	result := &BatchResult{}
	for _, name := range names {
		err := eng.RemoveByName(name)
		if err != nil {
			env.Printer.Error(name, err)
		}
		result.record(name, err)
	}
	return result, nil
}

// UpdatePackages brings each name to its index version
func UpdatePackages(ctx context.Context, env *Environment, names []string) (*BatchResult, error) {
	defer logging.LogOperationStart(env.logger, "update packages")()

	idx, err := env.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}
	eng := env.Engine(idx)
	store := env.Store()

	result := &BatchResult{}
	for _, name := range names {
		from := ""
		if rec, ok := store.Load().FindByName(name); ok {
			from = rec.Version
		}

		res, err := eng.Update(name)
		if err != nil {
			err = withSuggestions(err, idx, name)
			env.Printer.Error(name, err)
			result.record(name, err)
			continue
		}

		to := ""
		if pkg, ok := idx.Find(name); ok {
			to = pkg.Version
		}
		env.Printer.Updated(name, res, from, to)
		result.record(name, nil)
	}
	return result, nil
}

// withSuggestions attaches close index names to NOT_FOUND errors for name
func withSuggestions(err error, idx *index.Index, name string) error {
	var mtrErr *errors.MtrError
	if !errors.As(err, &mtrErr) || mtrErr.Code != errors.ErrNotFound {
		return err
	}
	missing, _ := mtrErr.Details["package"].(string)
	if missing == "" {
		missing = name
	}
	if s := idx.Suggest(missing, maxSuggestions); len(s) > 0 {
		mtrErr.WithDetail("suggestions", s)
	}
	return err
}
