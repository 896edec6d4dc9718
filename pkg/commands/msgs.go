package commands

// Output messages
const (
	MsgNoMatches        = "no packages match '%s'\n"
	MsgPackageExists    = "package exists: %s %s\n"
	MsgPackageMissing   = "package doesn't exist: %s\n"
	MsgNothingInstalled = "No packages installed."
	MsgConfigWritten    = "Wrote default configuration to %s\n"
	MsgConfigExists     = "Configuration already exists at %s\n"
)
