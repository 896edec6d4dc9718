package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/mtr/internal/version"
)

// GenMan writes the man page for root to w
func GenMan(root *cobra.Command, w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "MTR",
		Section: "1",
		Source:  "mtr " + version.Version,
		Manual:  "mtr manual",
	}
	return doc.GenMan(root, header, w)
}
