package cli

// Command descriptions
const (
	MsgRootShort = "A minimal source and binary package manager"
	MsgRootLong  = `mtr installs packages described by a package index, running a build recipe
for each one and its dependencies. Installed packages are recorded in a ledger
so that later installs skip them and removals keep dependencies other
packages still need.`

	MsgInstallShort    = "Install packages and their dependencies"
	MsgRemoveShort     = "Remove installed packages and unused dependencies"
	MsgUpdateShort     = "Rebuild packages whose index version changed"
	MsgSearchShort     = "Search the package index"
	MsgListShort       = "List installed packages"
	MsgInfoShort       = "Show package details"
	MsgEditShort       = "Open a recipe or the config file in your editor"
	MsgConfigShort     = "Manage the configuration file"
	MsgConfigInitShort = "Write the default configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Print the man page"

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(mtr completion bash)

Zsh:
  $ mtr completion zsh > "${fpath[1]}/_mtr"

Fish:
  $ mtr completion fish | source

PowerShell:
  PS> mtr completion powershell | Out-String | Invoke-Expression
`
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/mtr/config.toml)"
	MsgFlagIndex   = "Package index URL or file, overrides index.url"
	MsgFlagWorkDir = "Directory recipes run in, overrides paths.workdir"
	MsgFlagFormat  = "Output format: auto, term or text"
	MsgFlagExists  = "Check that each argument names an index package"
	MsgFlagPlain   = "Print info as plain markdown"
)

// Output formats
const (
	MsgVersionFormat = "mtr version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgNoCommand     = "no command specified"
)
