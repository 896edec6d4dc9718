package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/types"
)

func TestInstall_DependenciesFirst(t *testing.T) {
	h := newHarness(t, []types.Package{
		pkg("zlib", "1.3"),
		pkg("openssl", "3.0", "zlib"),
		pkg("curl", "8.5", "openssl", "zlib"),
	})

	require.NoError(t, h.engine.Install("curl"))

	assert.Equal(t, []string{"zlib", "openssl", "curl"}, h.exec.runs)
	assert.Equal(t, []string{"zlib", "openssl", "curl"}, h.installedNames())
	assert.Equal(t, 3, h.store.Saves())

	rec, ok := h.store.Load().FindByName("curl")
	require.True(t, ok)
	assert.Equal(t, "8.5", rec.Version)
	assert.Equal(t, []string{"openssl", "zlib"}, rec.Dependencies)
}

func TestInstall_Idempotent(t *testing.T) {
	h := newHarness(t, []types.Package{pkg("zlib", "1.3"), pkg("curl", "8.5", "zlib")})

	require.NoError(t, h.engine.Install("curl"))
	before := h.store.Load().Packages()
	saves := h.store.Saves()

	require.NoError(t, h.engine.Install("curl"))

	assert.Equal(t, []string{"zlib", "curl"}, h.exec.runs, "second install must not run any recipe")
	assert.Equal(t, before, h.store.Load().Packages())
	assert.Equal(t, saves, h.store.Saves())
	assert.Contains(t, h.reporter.events, "skipped:curl")
}

func TestInstall_Diamond(t *testing.T) {
	h := newHarness(t, []types.Package{
		pkg("d", "1"),
		pkg("b", "1", "d"),
		pkg("c", "1", "d"),
		pkg("a", "1", "b", "c"),
	})

	require.NoError(t, h.engine.Install("a"))

	assert.Equal(t, []string{"d", "b", "c", "a"}, h.exec.runs)
	assert.Equal(t, []string{"d", "b", "c", "a"}, h.installedNames())
	assert.Zero(t, h.reporter.count("skipped"), "reaching a finished dependency again is silent")
}

func TestInstall_Cycle(t *testing.T) {
	tests := []struct {
		name      string
		available []types.Package
		target    string
		wantCycle []string
	}{
		{
			name:      "two packages",
			available: []types.Package{pkg("a", "1", "b"), pkg("b", "1", "a")},
			target:    "a",
			wantCycle: []string{"a", "b", "a"},
		},
		{
			name:      "cycle below the target",
			available: []types.Package{pkg("x", "1", "y"), pkg("y", "1", "z"), pkg("z", "1", "y")},
			target:    "x",
			wantCycle: []string{"y", "z", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.available)

			err := h.engine.Install(tt.target)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCycleDetected))
			assert.Equal(t, tt.wantCycle, errors.GetErrorDetails(err)["cycle"])

			assert.Empty(t, h.exec.runs)
			assert.Zero(t, h.store.Load().Len())
		})
	}
}

func TestInstall_NotFound(t *testing.T) {
	h := newHarness(t, []types.Package{pkg("zlib", "1.3"), pkg("app", "1", "zlib", "missing")})

	err := h.engine.Install("app")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["package"])

	// zlib finished before the missing dependency was reached
	assert.Equal(t, []string{"zlib"}, h.installedNames())

	err = h.engine.Install("nothing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestInstall_StepFailureAborts(t *testing.T) {
	h := newHarness(t, []types.Package{
		pkg("base", "1"),
		pkg("broken", "1"),
		pkg("later", "1"),
		pkg("app", "1", "base", "broken", "later"),
	})
	h.exec.fail["broken"] = true

	err := h.engine.Install("app")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStepFailed))

	assert.Equal(t, []string{"base", "broken"}, h.exec.runs)
	assert.Equal(t, []string{"base"}, h.installedNames(), "no rollback, no record for the failed package")
}

func TestInstall_DependencyAlreadyInstalled(t *testing.T) {
	h := newHarness(t,
		[]types.Package{pkg("zlib", "1.3"), pkg("curl", "8.5", "zlib")},
		pkg("zlib", "1.2"),
	)

	require.NoError(t, h.engine.Install("curl"))

	assert.Equal(t, []string{"curl"}, h.exec.runs)
	rec, _ := h.store.Load().FindByName("zlib")
	assert.Equal(t, "1.2", rec.Version, "install never upgrades")
}

func TestInstall_PostCheckSkipsWorkDoneByDependency(t *testing.T) {
	app := pkg("app", "1", "lib")
	h := newHarness(t, []types.Package{pkg("lib", "1"), app})
	h.exec.hooks["lib"] = func() {
		// lib's recipe happens to install app as well
		require.NoError(t, h.store.Save(h.store.Load().Append(app)))
	}

	require.NoError(t, h.engine.Install("app"))

	assert.Equal(t, []string{"lib"}, h.exec.runs)
	assert.ElementsMatch(t, []string{"app", "lib"}, h.installedNames())
	assert.Contains(t, h.reporter.events, "skipped:app")
}

func TestInstall_RecipeSeesIsolatedCopy(t *testing.T) {
	h := newHarness(t, []types.Package{pkg("zlib", "1.3")})
	h.exec.hooks["zlib"] = func() {
		// concurrent ledger churn while the recipe runs
		require.NoError(t, h.store.Save(h.store.Load().Append(types.Package{Name: "other"})))
	}

	require.NoError(t, h.engine.Install("zlib"))
	assert.Equal(t, []string{"other", "zlib"}, h.installedNames(), "the record is appended to a fresh snapshot")
}

func TestInstall_DeletesArchive(t *testing.T) {
	h := newHarness(t, []types.Package{pkg("zlib", "1.3"), pkg("curl", "8.5", "zlib")})
	require.NoError(t, h.fs.MkdirAll("/build", 0755))
	require.NoError(t, h.fs.WriteFile("/build/curl-8.5.tar.gz", []byte("archive"), 0644))

	require.NoError(t, h.engine.Install("curl"))

	_, err := h.fs.Stat("/build/curl-8.5.tar.gz")
	assert.Error(t, err)
	assert.Zero(t, h.reporter.count("warning"), "a missing archive is not worth a warning")
}
