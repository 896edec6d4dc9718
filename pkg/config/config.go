package config

import (
	"os"
	"time"

	"github.com/arthur-debert/mtr/pkg/errors"
)

// EnvEditor is the conventional editor variable; it wins over editor.command
const EnvEditor = "EDITOR"

// Config is the root configuration structure
type Config struct {
	Index  Index  `koanf:"index"`
	Paths  Paths  `koanf:"paths"`
	Editor Editor `koanf:"editor"`
}

// Index configures where the package index comes from
type Index struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
	Cache   bool          `koanf:"cache"`
}

// Paths overrides file locations. Empty values keep the XDG defaults.
type Paths struct {
	Ledger       string `koanf:"ledger"`
	GlobalRecipe string `koanf:"global_recipe"`
	RemoveRecipe string `koanf:"remove_recipe"`
	SourceRecipe string `koanf:"source_recipe"`
	WorkDir      string `koanf:"workdir"`
}

// Editor configures `mtr edit`
type Editor struct {
	Command string `koanf:"command"`
}

// Validate checks the values that the rest of mtr relies on
func (c *Config) Validate() error {
	if c.Index.URL == "" {
		return errors.New(errors.ErrConfigValid, "index.url must not be empty").
			WithDetail("key", "index.url")
	}
	if c.Index.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "index.timeout must be positive, got %s", c.Index.Timeout).
			WithDetail("key", "index.timeout")
	}
	return nil
}

// EditorCommand returns the editor to launch: $EDITOR, then editor.command,
// then nano.
func (c *Config) EditorCommand() string {
	if e := os.Getenv(EnvEditor); e != "" {
		return e
	}
	if c.Editor.Command != "" {
		return c.Editor.Command
	}
	return "nano"
}
