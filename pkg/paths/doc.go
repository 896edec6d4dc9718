// Package paths provides centralized path handling for mtr.
//
// All of mtr's persistent files live in XDG base directories:
//
//	$XDG_DATA_HOME/mtr/installed.json   the installed-package ledger
//	$XDG_CONFIG_HOME/mtr/config.toml    user configuration
//	$XDG_CONFIG_HOME/mtr/recipe.json    the global fallback recipe
//	$XDG_CONFIG_HOME/mtr/remove.json    the optional removal recipe
//	$XDG_CACHE_HOME/mtr/packages.json   last successfully fetched index
//	$XDG_STATE_HOME/mtr/mtr.log         log file
//
// Each base directory can be redirected with MTR_DATA_DIR, MTR_CONFIG_DIR
// and MTR_CACHE_DIR, and individual files can be overridden through
// configuration.
package paths
