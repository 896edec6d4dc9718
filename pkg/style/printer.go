package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/mtr/pkg/engine"
	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/types"
)

var _ engine.Reporter = (*Printer)(nil)

// Printer writes lifecycle events as styled status lines
type Printer struct {
	out io.Writer
	err io.Writer
}

// NewPrinter creates a printer writing events to out and errors to errOut
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, err: errOut}
}

func (p *Printer) line(w io.Writer, indicator, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", indicator, msg)
}

func label(pkg types.Package) string {
	if pkg.Version == "" {
		return Name(pkg.Name)
	}
	return Name(pkg.Name) + " " + Version(pkg.Version)
}

// Skipped implements engine.Reporter
func (p *Printer) Skipped(name, reason string) {
	p.line(p.out, SkippedStyle.Render(SkippedGlyph), Name(name)+" "+MutedStyle.Render(reason))
}

// Installing implements engine.Reporter
func (p *Printer) Installing(pkg types.Package) {
	p.line(p.out, InfoStyle.Render(ProgressGlyph), "installing "+label(pkg))
}

// Installed implements engine.Reporter
func (p *Printer) Installed(pkg types.Package) {
	p.line(p.out, SuccessStyle.Render(SuccessGlyph), "installed "+label(pkg))
}

// Removing implements engine.Reporter
func (p *Printer) Removing(pkg types.Package) {
	p.line(p.out, InfoStyle.Render(ProgressGlyph), "removing "+label(pkg))
}

// Removed implements engine.Reporter
func (p *Printer) Removed(pkg types.Package) {
	p.line(p.out, SuccessStyle.Render(SuccessGlyph), "removed "+label(pkg))
}

// Kept implements engine.Reporter
func (p *Printer) Kept(dep string, requiredBy []string) {
	p.line(p.out, SkippedStyle.Render(SkippedGlyph),
		fmt.Sprintf("keeping %s %s", Name(dep), MutedStyle.Render("(required by "+strings.Join(requiredBy, ", ")+")")))
}

// Warning implements engine.Reporter
func (p *Printer) Warning(msg string) {
	p.line(p.err, WarningStyle.Render(WarningGlyph), WarningStyle.Render("warning: ")+msg)
}

// Step announces an external command before it runs
func (p *Printer) Step(pkg types.Package, program string, args []string) {
	cmd := strings.TrimSpace(program + " " + strings.Join(args, " "))
	p.line(p.out, MutedStyle.Render(StepGlyph), MutedStyle.Render("run: "+cmd))
}

// Updated reports the outcome of an update
func (p *Printer) Updated(name string, result engine.UpdateResult, from, to string) {
	switch result {
	case engine.UpdateUpToDate:
		p.line(p.out, SkippedStyle.Render(SkippedGlyph), Name(name)+" "+MutedStyle.Render("is up to date ("+to+")"))
	case engine.UpdateReplaced:
		p.line(p.out, SuccessStyle.Render(SuccessGlyph), fmt.Sprintf("updated %s %s → %s", Name(name), Version(from), Version(to)))
	default:
		p.line(p.out, SuccessStyle.Render(SuccessGlyph), fmt.Sprintf("installed %s %s", Name(name), Version(to)))
	}
}

// Error reports a failed request. Structured errors get their details
// appended as a hint.
func (p *Printer) Error(subject string, err error) {
	msg := err.Error()
	var mtrErr *errors.MtrError
	if errors.As(err, &mtrErr) {
		msg = mtrErr.Message
		if mtrErr.Wrapped != nil {
			msg += ": " + mtrErr.Wrapped.Error()
		}
	}

	prefix := ErrorStyle.Render("error:")
	if subject != "" {
		prefix = ErrorStyle.Render(subject + ":")
	}
	p.line(p.err, ErrorStyle.Render(ErrorGlyph), prefix+" "+msg)

	if suggestions, ok := errors.GetErrorDetails(err)["suggestions"].([]string); ok && len(suggestions) > 0 {
		p.line(p.err, " ", MutedStyle.Render("did you mean: "+strings.Join(suggestions, ", ")+"?"))
	}
}

// Println writes a plain line
func (p *Printer) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(p.out, a...)
}
