package config

import (
	_ "embed"
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/filesystem"
	"github.com/arthur-debert/mtr/pkg/types"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "MTR_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options controls a configuration load
type Options struct {
	// File is the user config file. Missing files are skipped unless
	// Required is set.
	File     string
	Required bool

	// FS reads File; nil means the OS filesystem.
	FS types.FS

	// Overrides are flattened keys ("index.url") applied last.
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers and validates it
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	if opts.File != "" {
		if err := loadFile(k, opts); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFile merges the user config file into k
func loadFile(k *koanf.Koanf, opts Options) error {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	data, err := fsys.ReadFile(opts.File)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) && !opts.Required {
			log.Debug().Str("path", opts.File).Msg("No user config, using defaults")
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config %s", opts.File).
			WithDetail("path", opts.File)
	}

	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.File).
			WithDetail("path", opts.File)
	}
	log.Debug().Str("path", opts.File).Msg("Loaded user config")
	return nil
}

// Default returns the configuration made of the embedded defaults only
func Default() *Config {
	cfg, err := Load(Options{})
	if err != nil {
		// The embedded defaults are valid; only a broken environment lands here.
		log.Warn().Err(err).Msg("Falling back to built-in defaults")
		return &Config{Editor: Editor{Command: "nano"}}
	}
	return cfg
}

// DefaultConfigContent returns the embedded defaults, used by `mtr config init`
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// envKey maps MTR_INDEX_URL to index.url and MTR_PATHS_GLOBAL_RECIPE to
// paths.global_recipe: the first underscore separates section from key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}
