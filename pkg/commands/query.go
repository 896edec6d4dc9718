package commands

import (
	"context"
	"fmt"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/style"
	"github.com/arthur-debert/mtr/pkg/types"
)

// SearchResult lists index packages matching a search
type SearchResult struct {
	Matches []types.Package
	// Missing holds requested names absent from the index (exists mode)
	Missing []string
}

// SearchPackages prints the index packages whose name contains term
func SearchPackages(ctx context.Context, env *Environment, term string) (*SearchResult, error) {
	idx, err := env.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Matches: idx.Search(term)}
	if len(result.Matches) == 0 {
		_, _ = fmt.Fprintf(env.Stdout, MsgNoMatches, term)
		return result, nil
	}

	if err := printTable(env, result.Matches); err != nil {
		return nil, err
	}
	return result, nil
}

// CheckPackages reports, for each name, whether the index has it
func CheckPackages(ctx context.Context, env *Environment, names []string) (*SearchResult, error) {
	idx, err := env.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{}
	for _, name := range names {
		if pkg, ok := idx.Find(name); ok {
			result.Matches = append(result.Matches, pkg)
			_, _ = fmt.Fprintf(env.Stdout, MsgPackageExists, style.Name(pkg.Name), style.Version(pkg.Version))
			continue
		}
		result.Missing = append(result.Missing, name)
		_, _ = fmt.Fprintf(env.Stdout, MsgPackageMissing, name)
	}
	return result, nil
}

// ListInstalled prints the ledger
func ListInstalled(env *Environment) ([]types.Package, error) {
	pkgs := env.Store().Load().Packages()
	if len(pkgs) == 0 {
		_, _ = fmt.Fprintln(env.Stdout, MsgNothingInstalled)
		return pkgs, nil
	}
	return pkgs, printTable(env, pkgs)
}

// ShowInfo prints the details of name, taken from the index or, failing
// that, from the ledger. plain skips markdown rendering.
func ShowInfo(ctx context.Context, env *Environment, name string, plain bool) error {
	snap := env.Store().Load()
	var installed *types.Package
	if rec, ok := snap.FindByName(name); ok {
		installed = &rec
	}

	pkg, found := types.Package{}, false
	idx, err := env.LoadIndex(ctx)
	if err == nil {
		pkg, found = idx.Find(name)
	} else if installed == nil {
		return err
	} else {
		env.logger.Warn().Err(err).Msg("Index unavailable, showing installed record")
	}

	if !found {
		if installed == nil {
			err := errors.Newf(errors.ErrNotFound, "package %s not found", name).WithDetail("package", name)
			if idx != nil {
				return withSuggestions(err, idx, name)
			}
			return err
		}
		pkg = *installed
	}

	md := style.PackageMarkdown(pkg, installed)
	_, _ = fmt.Fprint(env.Stdout, style.RenderMarkdown(md, plain, 80))
	return nil
}

func printTable(env *Environment, pkgs []types.Package) error {
	installed := map[string]bool{}
	for _, p := range env.Store().Load().Packages() {
		installed[p.Name] = true
	}

	table, err := style.PackageTable(pkgs, installed)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, _ = fmt.Fprint(env.Stdout, table)
	return nil
}
