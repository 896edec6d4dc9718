package index

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Format is an index document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file path or URL extension,
// defaulting to JSON.
func FormatFromPath(location string) Format {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Parse decodes and validates an index document
func Parse(data []byte, format Format) (*Index, error) {
	var list types.PackageList
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &list)
	case FormatTOML:
		err = toml.Unmarshal(data, &list)
	case FormatJSON, "":
		err = json.Unmarshal(data, &list)
	default:
		return nil, errors.Newf(errors.ErrIndexParse, "unknown index format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexParse, "invalid %s package index", format)
	}

	return New(list.Packages)
}
