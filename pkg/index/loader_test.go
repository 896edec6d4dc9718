package index

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/filesystem"
)

const cachePath = "/cache/mtr/packages.json"

func TestLoader_Local(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/srv", 0755))
	require.NoError(t, fs.WriteFile("/srv/packages.yaml", []byte(yamlIndex), 0644))

	idx, err := NewLoader(fs, nil, cachePath).Load(context.Background(), "/srv/packages.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	_, err = fs.Stat(cachePath)
	assert.Error(t, err, "local indexes are not cached")

	_, err = NewLoader(fs, nil, cachePath).Load(context.Background(), "/srv/missing.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexFetch))
}

func TestLoader_RemoteCachesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(jsonIndex))
	}))
	defer srv.Close()

	fs := filesystem.NewMemory()
	idx, err := NewLoader(fs, srv.Client(), cachePath).Load(context.Background(), srv.URL+"/packages.json")
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	cached, err := fs.ReadFile(cachePath)
	require.NoError(t, err)
	assert.JSONEq(t, jsonIndex, string(cached))
}

func TestLoader_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	t.Run("no cache", func(t *testing.T) {
		_, err := NewLoader(filesystem.NewMemory(), srv.Client(), cachePath).Load(context.Background(), srv.URL+"/packages.json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexFetch))
		assert.Equal(t, http.StatusNotFound, errors.GetErrorDetails(err)["status"])
	})

	t.Run("falls back to cache", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.MkdirAll("/cache/mtr", 0755))
		require.NoError(t, fs.WriteFile(cachePath, []byte(jsonIndex), 0644))

		idx, err := NewLoader(fs, srv.Client(), cachePath).Load(context.Background(), srv.URL+"/packages.json")
		require.NoError(t, err)
		assert.Equal(t, 3, idx.Len())
	})

	t.Run("caching disabled", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.MkdirAll("/cache/mtr", 0755))
		require.NoError(t, fs.WriteFile(cachePath, []byte(jsonIndex), 0644))

		_, err := NewLoader(fs, srv.Client(), "").Load(context.Background(), srv.URL+"/packages.json")
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexFetch))
	})
}

func TestLoader_RemoteInvalidIsNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"packages": [`))
	}))
	defer srv.Close()

	fs := filesystem.NewMemory()
	_, err := NewLoader(fs, srv.Client(), cachePath).Load(context.Background(), srv.URL+"/packages.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexParse))

	_, err = fs.Stat(cachePath)
	assert.Error(t, err)
}

func TestLoader_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(jsonIndex))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(filesystem.NewMemory(), srv.Client(), "").Load(ctx, srv.URL)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIndexFetch))
}
