package recipe

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/logging"
	"github.com/arthur-debert/mtr/pkg/types"
)

// StepFunc is notified before each step runs, with arguments already
// substituted.
type StepFunc func(pkg types.Package, program string, args []string)

// Executor runs recipes for packages
type Executor struct {
	Runner  Runner
	Global  *types.Recipe
	WorkDir string
	OnStep  StepFunc

	logger zerolog.Logger
}

// NewExecutor creates an executor. global may be nil.
func NewExecutor(runner Runner, global *types.Recipe, workDir string) *Executor {
	return &Executor{
		Runner:  runner,
		Global:  global,
		WorkDir: workDir,
		logger:  logging.GetLogger("recipe"),
	}
}

// Run selects the recipe for pkg and runs it
func (e *Executor) Run(pkg types.Package) error {
	r, err := Select(pkg, e.Global)
	if err != nil {
		return err
	}
	return e.RunRecipe(pkg, r)
}

// RunRecipe runs the steps of r for pkg in order, stopping at the first
// step that fails to launch or exits non-zero.
func (e *Executor) RunRecipe(pkg types.Package, r *types.Recipe) error {
	if r == nil {
		return errors.Newf(errors.ErrNoRecipe, "no recipe for package %s", pkg.Name).
			WithDetail("package", pkg.Name)
	}

	for i, step := range r.Steps {
		args := SubstituteAll(step.Args, pkg)

		e.logger.Debug().
			Str("package", pkg.Name).
			Int("step", i+1).
			Int("steps", len(r.Steps)).
			Str("program", step.Program).
			Strs("args", args).
			Msg("Running step")

		if e.OnStep != nil {
			e.OnStep(pkg, step.Program, args)
		}

		outcome := e.Runner.Run(step.Program, args, e.WorkDir)
		if !outcome.Failed() {
			continue
		}

		msg := "command failed: " + strings.TrimSpace(step.Program+" "+strings.Join(args, " "))
		var failure *errors.MtrError
		if outcome.Err != nil {
			failure = errors.Wrap(outcome.Err, errors.ErrStepFailed, msg)
		} else {
			failure = errors.New(errors.ErrStepFailed, msg)
		}
		return failure.WithDetails(map[string]interface{}{
			"package":   pkg.Name,
			"program":   step.Program,
			"args":      args,
			"exit_code": outcome.ExitCode,
			"step":      i + 1,
		})
	}

	return nil
}
