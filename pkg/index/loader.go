package index

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/logging"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Loader fetches the package index from a URL or a local file
type Loader struct {
	FS     types.FS
	Client *http.Client

	// CachePath receives a copy of every successfully fetched remote
	// index. Empty disables caching.
	CachePath string

	logger zerolog.Logger
}

// NewLoader creates a loader. A nil client means http.DefaultClient.
func NewLoader(fsys types.FS, client *http.Client, cachePath string) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		FS:        fsys,
		Client:    client,
		CachePath: cachePath,
		logger:    logging.GetLogger("index"),
	}
}

// IsRemote reports whether location is an http(s) URL
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load reads and parses the index at location
func (l *Loader) Load(ctx context.Context, location string) (*Index, error) {
	defer logging.LogOperationStart(l.logger, "load index")()

	format := FormatFromPath(location)

	if !IsRemote(location) {
		data, err := l.FS.ReadFile(location)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIndexFetch, "failed to read package index %s", location).
				WithDetail("location", location)
		}
		return Parse(data, format)
	}

	data, err := l.fetch(ctx, location)
	if err != nil {
		cached, cacheErr := l.readCache()
		if cacheErr != nil {
			return nil, err
		}
		l.logger.Warn().Err(err).Str("cache", l.CachePath).Msg("Package index unreachable, using cached copy")
		return Parse(cached, format)
	}

	idx, err := Parse(data, format)
	if err != nil {
		return nil, err
	}

	l.writeCache(data)
	return idx, nil
}

func (l *Loader) fetch(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexFetch, "invalid index URL %s", location).
			WithDetail("location", location)
	}

	l.logger.Debug().Str("url", location).Msg("Fetching package index")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexFetch, "failed to fetch package index from %s", location).
			WithDetail("location", location)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf(errors.ErrIndexFetch, "package index server returned %s for %s", resp.Status, location).
			WithDetails(map[string]interface{}{
				"location": location,
				"status":   resp.StatusCode,
			})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexFetch, "failed to read package index from %s", location).
			WithDetail("location", location)
	}

	return data, nil
}

func (l *Loader) readCache() ([]byte, error) {
	if l.CachePath == "" {
		return nil, fmt.Errorf("index cache disabled")
	}
	return l.FS.ReadFile(l.CachePath)
}

// writeCache is best-effort; a failed cache write never fails the load.
func (l *Loader) writeCache(data []byte) {
	if l.CachePath == "" {
		return
	}
	if err := l.FS.MkdirAll(filepath.Dir(l.CachePath), 0755); err != nil {
		l.logger.Warn().Err(err).Str("cache", l.CachePath).Msg("Failed to create index cache directory")
		return
	}
	if err := l.FS.WriteFile(l.CachePath, data, 0644); err != nil {
		l.logger.Warn().Err(err).Str("cache", l.CachePath).Msg("Failed to write index cache")
		return
	}
	l.logger.Trace().Str("cache", l.CachePath).Msg("Package index cached")
}
