package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for mtr
	EnvDataDir = "MTR_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for mtr
	EnvConfigDir = "MTR_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for mtr
	EnvCacheDir = "MTR_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for mtr-specific files
	AppDirName = "mtr"

	// LedgerFileName is the name of the installed-package ledger
	LedgerFileName = "installed.json"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// GlobalRecipeFileName is the name of the global fallback recipe
	GlobalRecipeFileName = "recipe.json"

	// RemoveRecipeFileName is the name of the removal recipe
	RemoveRecipeFileName = "remove.json"

	// SourceRecipeFileName is the name of the source build notes recipe
	SourceRecipeFileName = "source.json"

	// IndexCacheFileName is the name of the cached package index
	IndexCacheFileName = "packages.json"

	// LogFileName is the name of the log file
	LogFileName = "mtr.log"
)

// Overrides replaces individual file locations. Empty fields keep the
// defaults derived from the XDG directories.
type Overrides struct {
	ConfigFile   string
	Ledger       string
	GlobalRecipe string
	RemoveRecipe string
	SourceRecipe string
}

// Paths provides centralized path management for mtr
type Paths interface {
	DataDir() string
	ConfigDir() string
	CacheDir() string
	StateDir() string
	LedgerPath() string
	ConfigFilePath() string
	GlobalRecipePath() string
	RemoveRecipePath() string
	SourceRecipePath() string
	IndexCachePath() string
	LogFilePath() string
}

type paths struct {
	xdgData   string
	xdgConfig string
	xdgCache  string
	xdgState  string

	overrides Overrides
}

// New creates a Paths instance rooted at the XDG directories, honoring the
// MTR_*_DIR environment overrides and the given file overrides.
func New(o Overrides) (Paths, error) {
	xdg.Reload()

	p := &paths{
		overrides: Overrides{
			ConfigFile:   expandHome(o.ConfigFile),
			Ledger:       expandHome(o.Ledger),
			GlobalRecipe: expandHome(o.GlobalRecipe),
			RemoveRecipe: expandHome(o.RemoveRecipe),
		},
	}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, AppDirName)
	}

	p.xdgState = filepath.Join(xdg.StateHome, AppDirName)

	return p, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

func (p *paths) DataDir() string   { return p.xdgData }
func (p *paths) ConfigDir() string { return p.xdgConfig }
func (p *paths) CacheDir() string  { return p.xdgCache }
func (p *paths) StateDir() string  { return p.xdgState }

// LedgerPath returns the path of the installed-package ledger
func (p *paths) LedgerPath() string {
	return orDefault(p.overrides.Ledger, filepath.Join(p.xdgData, LedgerFileName))
}

// ConfigFilePath returns the path of the user configuration file
func (p *paths) ConfigFilePath() string {
	return orDefault(p.overrides.ConfigFile, filepath.Join(p.xdgConfig, ConfigFileName))
}

// GlobalRecipePath returns the path of the global fallback recipe
func (p *paths) GlobalRecipePath() string {
	return orDefault(p.overrides.GlobalRecipe, filepath.Join(p.xdgConfig, GlobalRecipeFileName))
}

// RemoveRecipePath returns the path of the removal recipe
func (p *paths) RemoveRecipePath() string {
	return orDefault(p.overrides.RemoveRecipe, filepath.Join(p.xdgConfig, RemoveRecipeFileName))
}

// SourceRecipePath returns the path of the source recipe. mtr only opens
// it for editing; it is kept next to the other recipes for hand-run
// source builds.
func (p *paths) SourceRecipePath() string {
	return orDefault(p.overrides.SourceRecipe, filepath.Join(p.xdgConfig, SourceRecipeFileName))
}

// IndexCachePath returns the path where the last fetched index is cached
func (p *paths) IndexCachePath() string {
	return filepath.Join(p.xdgCache, IndexCacheFileName)
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
