package commands

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mtr/pkg/config"
	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/recipe"
)

// Edit targets
const (
	EditGlobal = "global"
	EditRemove = "remove"
	EditSource = "source"
	EditConfig = "config"
)

// EditTargets lists the accepted edit targets, for completion
var EditTargets = []string{EditGlobal, EditRemove, EditSource, EditConfig}

// EditTargetPath maps an edit target to the file it opens. "binary" is
// accepted as another name for the global recipe.
func EditTargetPath(env *Environment, target string) (string, error) {
	switch target {
	case EditGlobal, "binary":
		return env.Paths.GlobalRecipePath(), nil
	case EditRemove:
		return env.Paths.RemoveRecipePath(), nil
	case EditSource:
		return env.Paths.SourceRecipePath(), nil
	case EditConfig:
		return env.Paths.ConfigFilePath(), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown edit target: %s (use %s)", target, strings.Join(EditTargets, ", ")).
			WithDetail("target", target)
	}
}

// Edit opens the file for target in the user's editor. An editor that
// exits non-zero is reported but is not an error; one that cannot be
// started is.
func Edit(env *Environment, target string) error {
	path, err := EditTargetPath(env, target)
	if err != nil {
		return err
	}

	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrEditor, "failed to create %s", filepath.Dir(path))
	}

	editor := strings.Fields(env.Config.EditorCommand())
	if len(editor) == 0 {
		return errors.New(errors.ErrEditor, "no editor configured")
	}

	args := append(editor[1:], path)
	outcome := env.Runner.Run(editor[0], args, "")
	switch {
	case !outcome.Failed():
		return nil
	case outcome.ExitCode == recipe.ExitCodeLaunchFailed && outcome.Err != nil:
		return errors.Wrapf(outcome.Err, errors.ErrEditor, "failed to launch editor %s", editor[0]).
			WithDetail("editor", editor[0])
	default:
		env.Printer.Warning(fmt.Sprintf("editor exited with non-zero status (%d)", outcome.ExitCode))
		return nil
	}
}

// InitConfig writes the default configuration file unless one exists.
// It returns the file path and whether it was created.
func InitConfig(env *Environment) (string, bool, error) {
	path := env.Paths.ConfigFilePath()

	if _, err := env.FS.Stat(path); err == nil {
		_, _ = fmt.Fprintf(env.Stdout, MsgConfigExists, path)
		return path, false, nil
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return path, false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to check %s", path)
	}

	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to create %s", filepath.Dir(path))
	}
	if err := env.FS.WriteFile(path, []byte(config.DefaultConfigContent()), 0644); err != nil {
		return path, false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}

	_, _ = fmt.Fprintf(env.Stdout, MsgConfigWritten, path)
	return path, true, nil
}
