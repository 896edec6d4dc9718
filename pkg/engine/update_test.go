package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/types"
)

func TestUpdate(t *testing.T) {
	tests := []struct {
		name        string
		available   []types.Package
		installed   []types.Package
		want        UpdateResult
		wantRuns    []string
		wantCleaned []string
		wantVersion string
	}{
		{
			name:        "not installed",
			available:   []types.Package{pkg("zlib", "1.3")},
			want:        UpdateInstalled,
			wantRuns:    []string{"zlib"},
			wantVersion: "1.3",
		},
		{
			name:        "same version",
			available:   []types.Package{pkg("zlib", "1.3")},
			installed:   []types.Package{pkg("zlib", "1.3")},
			want:        UpdateUpToDate,
			wantVersion: "1.3",
		},
		{
			name:        "newer version",
			available:   []types.Package{pkg("zlib", "1.3")},
			installed:   []types.Package{pkg("zlib", "1.2")},
			want:        UpdateReplaced,
			wantRuns:    []string{"zlib"},
			wantCleaned: []string{"zlib-1.2"},
			wantVersion: "1.3",
		},
		{
			name:        "downgrade is still a change",
			available:   []types.Package{pkg("zlib", "1.2")},
			installed:   []types.Package{pkg("zlib", "1.3")},
			want:        UpdateReplaced,
			wantRuns:    []string{"zlib"},
			wantCleaned: []string{"zlib-1.3"},
			wantVersion: "1.2",
		},
		{
			name:        "versions compare as strings",
			available:   []types.Package{pkg("zlib", "1.3.0")},
			installed:   []types.Package{pkg("zlib", "1.3")},
			want:        UpdateReplaced,
			wantRuns:    []string{"zlib"},
			wantCleaned: []string{"zlib-1.3"},
			wantVersion: "1.3.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.available, tt.installed...)

			got, err := h.engine.Update("zlib")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRuns, h.exec.runs)
			assert.Equal(t, tt.wantCleaned, h.cleaner.cleaned)

			rec, ok := h.store.Load().FindByName("zlib")
			require.True(t, ok)
			assert.Equal(t, tt.wantVersion, rec.Version)
		})
	}
}

func TestUpdate_RemovesBeforeInstalling(t *testing.T) {
	h := newHarness(t,
		[]types.Package{pkg("zlib", "1.3"), pkg("curl", "8.6", "zlib")},
		pkg("zlib", "1.3"), pkg("curl", "8.5", "zlib"),
	)

	got, err := h.engine.Update("curl")
	require.NoError(t, err)
	assert.Equal(t, UpdateReplaced, got)

	// zlib is only needed by curl, so the removal takes it along and the
	// install builds it again
	assert.Equal(t, []string{
		"removing:zlib",
		"removed:zlib",
		"removing:curl",
		"removed:curl",
		"installing:zlib",
		"installed:zlib",
		"installing:curl",
		"installed:curl",
	}, h.reporter.events)
	assert.Equal(t, []string{"zlib-1.3", "curl-8.5"}, h.cleaner.cleaned)
	assert.Equal(t, []string{"zlib", "curl"}, h.exec.runs)
	assert.Equal(t, []string{"zlib", "curl"}, h.installedNames())

	rec, _ := h.store.Load().FindByName("curl")
	assert.Equal(t, "8.6", rec.Version)
}

func TestUpdate_KeepsSharedDependency(t *testing.T) {
	h := newHarness(t,
		[]types.Package{pkg("zlib", "1.3"), pkg("curl", "8.6", "zlib")},
		pkg("zlib", "1.3"), pkg("curl", "8.5", "zlib"), pkg("git", "2.43", "zlib"),
	)

	_, err := h.engine.Update("curl")
	require.NoError(t, err)

	assert.Equal(t, []string{"curl-8.5"}, h.cleaner.cleaned)
	assert.Equal(t, []string{"curl"}, h.exec.runs)
	assert.Equal(t, []string{"zlib", "git", "curl"}, h.installedNames())
}

func TestUpdate_NotInIndex(t *testing.T) {
	h := newHarness(t, nil, pkg("zlib", "1.3"))

	_, err := h.engine.Update("zlib")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Empty(t, h.cleaner.cleaned)
}

func TestUpdateResult_String(t *testing.T) {
	assert.Equal(t, "installed", UpdateInstalled.String())
	assert.Equal(t, "up to date", UpdateUpToDate.String())
	assert.Equal(t, "updated", UpdateReplaced.String())
	assert.Equal(t, "unknown", UpdateResult(0).String())
}
