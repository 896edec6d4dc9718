package style

import (
	"bytes"
	stderrors "errors"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mtr/pkg/engine"
	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/types"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var curl = types.Package{
	Name:         "curl",
	Version:      "8.5",
	Source:       "https://curl.se/download/curl-8.5.tar.gz",
	Archive:      "curl-8.5.tar.gz",
	Dirname:      "curl-8.5",
	Dependencies: []string{"openssl", "zlib"},
}

func TestPrinter_Events(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Installing(curl)
	p.Step(curl, "make", []string{"-C", "curl-8.5"})
	p.Installed(curl)
	p.Skipped("zlib", "already installed")
	p.Kept("zlib", []string{"git"})
	p.Removed(curl)
	p.Warning("could not delete archive")

	text := out.String()
	assert.Contains(t, text, "installing curl 8.5")
	assert.Contains(t, text, "run: make -C curl-8.5")
	assert.Contains(t, text, "✓ installed curl 8.5")
	assert.Contains(t, text, "zlib already installed")
	assert.Contains(t, text, "keeping zlib (required by git)")
	assert.Contains(t, text, "removed curl 8.5")

	assert.Contains(t, errOut.String(), "warning: could not delete archive")
	assert.NotContains(t, text, "warning")
}

func TestPrinter_Updated(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out)

	p.Updated("curl", engine.UpdateReplaced, "8.5", "8.6")
	p.Updated("zlib", engine.UpdateUpToDate, "1.3", "1.3")
	p.Updated("git", engine.UpdateInstalled, "", "2.43")

	assert.Contains(t, out.String(), "updated curl 8.5 → 8.6")
	assert.Contains(t, out.String(), "zlib is up to date (1.3)")
	assert.Contains(t, out.String(), "installed git 2.43")
}

func TestPrinter_Error(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	err := errors.New(errors.ErrNotFound, "package crul not found in index").
		WithDetail("suggestions", []string{"curl"})
	p.Error("crul", err)
	p.Error("", stderrors.New("plain failure"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "crul: package crul not found in index")
	assert.Contains(t, errOut.String(), "did you mean: curl?")
	assert.Contains(t, errOut.String(), "error: plain failure")
}

func TestPackageTable(t *testing.T) {
	table, err := PackageTable([]types.Package{curl, {Name: "zlib", Version: "1.3"}}, map[string]bool{"zlib": true})
	require.NoError(t, err)

	assert.Contains(t, table, "Name")
	assert.Contains(t, table, "openssl, zlib")
	assert.Contains(t, table, "1.3")
	assert.Contains(t, table, SuccessGlyph)
}

func TestPackageMarkdown(t *testing.T) {
	md := PackageMarkdown(curl, nil)
	assert.Contains(t, md, "# curl")
	assert.Contains(t, md, "**Status:** not installed")
	assert.Contains(t, md, "- openssl\n- zlib\n")
	assert.Contains(t, md, "Uses the global recipe.")

	withRecipe := curl.Clone()
	withRecipe.Recipe = &types.Recipe{Steps: []types.Step{{Program: "make", Args: []string{"install"}}}}
	old := curl.Clone()
	old.Version = "8.4"

	md = PackageMarkdown(withRecipe, &old)
	assert.Contains(t, md, "**Status:** installed (8.4)")
	assert.Contains(t, md, "make install")
}

func TestRenderMarkdown(t *testing.T) {
	md := PackageMarkdown(curl, nil)
	assert.Equal(t, md, RenderMarkdown(md, true, 0))
	assert.Contains(t, RenderMarkdown(md, false, 80), "curl")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"plain", FormatText, false},
		{"json", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
}

func TestApply(t *testing.T) {
	defer lipgloss.SetColorProfile(termenv.Ascii)

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, FormatTerminal, Apply(FormatTerminal, os.Stdout))
	assert.NotEqual(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.Contains(t, ErrorStyle.Render("boom"), "\x1b[")

	assert.Equal(t, FormatText, Apply(FormatText, os.Stdout))
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.Equal(t, "boom", ErrorStyle.Render("boom"))
}
