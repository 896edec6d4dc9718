package engine

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mtr/pkg/logging"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Cleaner deletes the on-disk artifacts of a package being removed
type Cleaner interface {
	Clean(pkg types.Package) error
}

// RecipeRunner runs an explicit recipe for a package
type RecipeRunner interface {
	RunRecipe(pkg types.Package, r *types.Recipe) error
}

// FileCleaner removes a package's extraction directory and archive. When
// a remove recipe is configured it runs that instead of deleting the
// directory itself.
type FileCleaner struct {
	fs      types.FS
	workDir string
	recipe  *types.Recipe
	runner  RecipeRunner
	logger  zerolog.Logger
}

// NewFileCleaner creates a cleaner. recipe and runner may be nil.
func NewFileCleaner(fsys types.FS, workDir string, recipe *types.Recipe, runner RecipeRunner) *FileCleaner {
	return &FileCleaner{
		fs:      fsys,
		workDir: workDir,
		recipe:  recipe,
		runner:  runner,
		logger:  logging.GetLogger("cleaner"),
	}
}

// Clean removes what it can and reports everything that failed
func (c *FileCleaner) Clean(pkg types.Package) error {
	var errs []error

	if c.recipe != nil && c.runner != nil {
		c.logger.Debug().Str("package", pkg.Name).Msg("Running remove recipe")
		if err := c.runner.RunRecipe(pkg, c.recipe); err != nil {
			errs = append(errs, fmt.Errorf("remove recipe: %w", err))
		}
	} else if pkg.Dirname != "" {
		if err := c.removeDir(pkg.Dirname); err != nil {
			errs = append(errs, err)
		}
	}

	if pkg.Archive != "" && c.fs != nil {
		path := resolvePath(c.workDir, pkg.Archive)
		if err := c.fs.Remove(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove archive %s: %w", path, err))
		}
	}

	return stderrors.Join(errs...)
}

func (c *FileCleaner) removeDir(dirname string) error {
	if c.fs == nil {
		return nil
	}

	rel := filepath.Clean(dirname)
	escapes := !filepath.IsAbs(rel) && (rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)))

	path := filepath.Clean(resolvePath(c.workDir, dirname))
	if escapes || path == "/" || path == "." || path == filepath.Clean(c.workDir) {
		return fmt.Errorf("refusing to remove %s for dirname %q", path, dirname)
	}

	c.logger.Debug().Str("dir", path).Msg("Removing package directory")
	if err := c.fs.RemoveAll(path); err != nil {
		return fmt.Errorf("remove directory %s: %w", path, err)
	}
	return nil
}
