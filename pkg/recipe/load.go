package recipe

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/types"
)

// LoadRecipe reads an optional recipe document. The format follows the
// extension: .yaml and .yml are YAML, .toml is TOML, anything else JSON.
// A missing file yields a nil recipe and no error.
func LoadRecipe(fsys types.FS, path string) (*types.Recipe, error) {
	if path == "" {
		return nil, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrRecipeLoad, "failed to read recipe %s", path).
			WithDetail("path", path)
	}

	var r types.Recipe
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &r)
	case ".toml":
		err = toml.Unmarshal(data, &r)
	default:
		err = json.Unmarshal(data, &r)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRecipeLoad, "invalid recipe %s", path).
			WithDetail("path", path)
	}

	return &r, nil
}
