package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/mtr/internal/version"
	"github.com/arthur-debert/mtr/pkg/commands"
	"github.com/arthur-debert/mtr/pkg/errors"
)

// envFunc builds the command environment once flags are parsed
type envFunc func(cmd *cobra.Command) (*commands.Environment, error)

// batchErr turns a batch outcome into the command error. Failures were
// printed as they happened.
func batchErr(result *commands.BatchResult) error {
	if err := result.Err(); err != nil {
		return reportedError{err}
	}
	return nil
}

func newInstallCmd(env envFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "install <package>...",
		Short: MsgInstallShort,
		Long: `Install builds each package after its dependencies, skipping anything the
ledger already records. Each named package is attempted independently; the
command fails if any of them failed.`,
		Example: `  mtr install curl
  mtr install --workdir ~/src zlib openssl`,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			result, err := commands.InstallPackages(cmd.Context(), e, args)
			if err != nil {
				return err
			}
			return batchErr(result)
		},
	}
}

func newRemoveCmd(env envFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <package>...",
		Aliases: []string{"rm", "uninstall"},
		Short:   MsgRemoveShort,
		Long: `Remove deletes installed packages. Dependencies go too, unless another
installed package still requires them. Removal works without network access.`,
		Args:              cobra.MinimumNArgs(1),
		GroupID:           "packages",
		ValidArgsFunction: installedCompletion(env),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			result, err := commands.RemovePackages(e, args)
			if err != nil {
				return err
			}
			return batchErr(result)
		},
	}
}

func newUpdateCmd(env envFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "update <package>...",
		Short: MsgUpdateShort,
		Long: `Update compares each package's installed version with the index. A package
that is not installed is installed; a different version is removed and then
rebuilt from the index entry.`,
		Args:              cobra.MinimumNArgs(1),
		GroupID:           "packages",
		ValidArgsFunction: installedCompletion(env),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			result, err := commands.UpdatePackages(cmd.Context(), e, args)
			if err != nil {
				return err
			}
			return batchErr(result)
		},
	}
}

func newSearchCmd(env envFunc) *cobra.Command {
	var exists bool

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: MsgSearchShort,
		Long: `Search lists index packages whose name contains term, or every package when
no term is given. With --exists each argument is checked by exact name and
the command fails if any is missing.`,
		Example: `  mtr search ssl
  mtr search --exists zlib curl`,
		GroupID: "packages",
		Args: func(cmd *cobra.Command, args []string) error {
			if exists {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}

			if exists {
				result, err := commands.CheckPackages(cmd.Context(), e, args)
				if err != nil {
					return err
				}
				if len(result.Missing) > 0 {
					return reportedError{errors.Newf(errors.ErrNotFound, "%d of %d packages not found", len(result.Missing), len(args))}
				}
				return nil
			}

			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			_, err = commands.SearchPackages(cmd.Context(), e, term)
			return err
		},
	}

	cmd.Flags().BoolVarP(&exists, "exists", "e", false, MsgFlagExists)
	return cmd
}

func newListCmd(env envFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		GroupID: "packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			_, err = commands.ListInstalled(e)
			return err
		},
	}
}

func newInfoCmd(env envFunc) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "info <package>",
		Aliases: []string{"show"},
		Short:   MsgInfoShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			return commands.ShowInfo(cmd.Context(), e, args[0], plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	return cmd
}

func newEditCmd(env envFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <global|remove|source|config>",
		Short: MsgEditShort,
		Long: `Edit opens one of mtr's files in $EDITOR, falling back to editor.command and
then nano:

  global  the recipe used by packages without their own
  remove  the recipe run when a package is removed
  source  the recipe kept for building packages from source by hand
  config  the configuration file`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: commands.EditTargets,
		GroupID:   "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			return commands.Edit(e, args[0])
		},
	}
}

func newConfigCmd(env envFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			_, _, err = commands.InitConfig(e)
			return err
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenMan(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// installedCompletion completes names from the ledger
func installedCompletion(env envFunc) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		e, err := env(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		given := map[string]bool{}
		for _, a := range args {
			given[a] = true
		}

		var names []string
		for _, p := range e.Store().Load().Packages() {
			if !given[p.Name] {
				names = append(names, p.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
