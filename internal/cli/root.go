package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/mtr/internal/version"
	"github.com/arthur-debert/mtr/pkg/commands"
	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/logging"
	"github.com/arthur-debert/mtr/pkg/style"
)

// globalFlags holds the persistent flag values shared by every command
type globalFlags struct {
	verbosity int
	config    string
	index     string
	workDir   string
	format    string
}

// reportedError wraps an error whose details were already printed, one
// line per failed package.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// NewRootCmd creates the mtr command tree with production collaborators
func NewRootCmd() *cobra.Command {
	return newRootCmd(commands.Options{})
}

// newRootCmd creates the command tree. base supplies collaborators (file
// system, runner, streams) that tests replace; flags fill in the rest.
func newRootCmd(base commands.Options) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "mtr",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			f, err := style.ParseFormat(flags.format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}
			style.Apply(f, os.Stdout)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&flags.config, "config", "c", "", MsgFlagConfig)
	pf.StringVar(&flags.index, "index", "", MsgFlagIndex)
	pf.StringVar(&flags.workDir, "workdir", "", MsgFlagWorkDir)
	pf.StringVar(&flags.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "packages", Title: "PACKAGES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	// env resolves the environment lazily, after flags are parsed
	env := func(cmd *cobra.Command) (*commands.Environment, error) {
		opts := base
		opts.ConfigFile = flags.config
		opts.IndexURL = flags.index
		opts.WorkDir = flags.workDir
		if opts.Stdout == nil {
			opts.Stdout = cmd.OutOrStdout()
		}
		if opts.Stderr == nil {
			opts.Stderr = cmd.ErrOrStderr()
		}
		return commands.NewEnvironment(opts)
	}

	rootCmd.AddCommand(newInstallCmd(env))
	rootCmd.AddCommand(newRemoveCmd(env))
	rootCmd.AddCommand(newUpdateCmd(env))
	rootCmd.AddCommand(newSearchCmd(env))
	rootCmd.AddCommand(newListCmd(env))
	rootCmd.AddCommand(newInfoCmd(env))
	rootCmd.AddCommand(newEditCmd(env))
	rootCmd.AddCommand(newConfigCmd(env))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// Execute runs cmd and prints any error not already reported. It returns
// the process exit code.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported reportedError
	if !stderrors.As(err, &reported) {
		style.NewPrinter(io.Discard, cmd.ErrOrStderr()).Error("", err)
	}
	log.Debug().Err(err).Msg("Command failed")
	return 1
}
