package commands

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mtr/pkg/config"
	"github.com/arthur-debert/mtr/pkg/engine"
	"github.com/arthur-debert/mtr/pkg/filesystem"
	"github.com/arthur-debert/mtr/pkg/index"
	"github.com/arthur-debert/mtr/pkg/ledger"
	"github.com/arthur-debert/mtr/pkg/logging"
	"github.com/arthur-debert/mtr/pkg/paths"
	"github.com/arthur-debert/mtr/pkg/recipe"
	"github.com/arthur-debert/mtr/pkg/style"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Options describes how to build an Environment. Zero values select the
// production defaults.
type Options struct {
	// ConfigFile replaces the default config file location.
	ConfigFile string
	// IndexURL overrides index.url.
	IndexURL string
	// WorkDir overrides paths.workdir.
	WorkDir string

	FS         types.FS
	Runner     recipe.Runner
	HTTPClient *http.Client
	Stdout     io.Writer
	Stderr     io.Writer
}

// Environment is the resolved configuration and collaborators shared by
// all commands
type Environment struct {
	Config  *config.Config
	Paths   paths.Paths
	FS      types.FS
	Runner  recipe.Runner
	Printer *style.Printer
	Stdout  io.Writer

	client *http.Client
	logger zerolog.Logger
}

// NewEnvironment resolves paths and configuration
func NewEnvironment(opts Options) (*Environment, error) {
	p, err := paths.New(paths.Overrides{ConfigFile: opts.ConfigFile})
	if err != nil {
		return nil, err
	}

	overrides := map[string]interface{}{}
	if opts.IndexURL != "" {
		overrides["index.url"] = opts.IndexURL
	}
	if opts.WorkDir != "" {
		overrides["paths.workdir"] = opts.WorkDir
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	cfg, err := config.Load(config.Options{
		File:      p.ConfigFilePath(),
		Required:  opts.ConfigFile != "",
		FS:        fsys,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	// Config may relocate individual files
	p, err = paths.New(paths.Overrides{
		ConfigFile:   opts.ConfigFile,
		Ledger:       cfg.Paths.Ledger,
		GlobalRecipe: cfg.Paths.GlobalRecipe,
		RemoveRecipe: cfg.Paths.RemoveRecipe,
		SourceRecipe: cfg.Paths.SourceRecipe,
	})
	if err != nil {
		return nil, err
	}

	env := &Environment{
		Config: cfg,
		Paths:  p,
		FS:     fsys,
		Runner: opts.Runner,
		Stdout: opts.Stdout,
		client: opts.HTTPClient,
		logger: logging.GetLogger("commands"),
	}
	if env.Runner == nil {
		env.Runner = recipe.ExecRunner{}
	}
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	env.Printer = style.NewPrinter(env.Stdout, stderr)
	if env.client == nil {
		env.client = &http.Client{Timeout: cfg.Index.Timeout}
	}

	env.logger.Debug().
		Str("config", p.ConfigFilePath()).
		Str("ledger", p.LedgerPath()).
		Str("index", cfg.Index.URL).
		Msg("Environment ready")

	return env, nil
}

// WorkDir is where recipes run; empty means the current directory
func (env *Environment) WorkDir() string {
	return env.Config.Paths.WorkDir
}

// Store returns the ledger store
func (env *Environment) Store() *ledger.FileStore {
	return ledger.NewFileStore(env.FS, env.Paths.LedgerPath())
}

// LoadIndex fetches the configured package index
func (env *Environment) LoadIndex(ctx context.Context) (*index.Index, error) {
	cachePath := ""
	if env.Config.Index.Cache {
		cachePath = env.Paths.IndexCachePath()
	}
	return index.NewLoader(env.FS, env.client, cachePath).Load(ctx, env.Config.Index.URL)
}

// optionalRecipe loads a recipe file, treating unreadable files as absent
func (env *Environment) optionalRecipe(path string) *types.Recipe {
	r, err := recipe.LoadRecipe(env.FS, path)
	if err != nil {
		env.logger.Warn().Err(err).Str("path", path).Msg("Ignoring unusable recipe file")
		env.Printer.Warning(err.Error())
		return nil
	}
	return r
}

// Engine assembles an engine over catalog
func (env *Environment) Engine(catalog engine.Catalog) *engine.Engine {
	global := env.optionalRecipe(env.Paths.GlobalRecipePath())
	remove := env.optionalRecipe(env.Paths.RemoveRecipePath())

	exec := recipe.NewExecutor(env.Runner, global, env.WorkDir())
	exec.OnStep = env.Printer.Step

	return engine.New(engine.Options{
		Catalog:  catalog,
		Store:    env.Store(),
		Executor: exec,
		Cleaner:  engine.NewFileCleaner(env.FS, env.WorkDir(), remove, exec),
		FS:       env.FS,
		WorkDir:  env.WorkDir(),
		Reporter: env.Printer,
	})
}
