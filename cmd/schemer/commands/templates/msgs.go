package templates

// Message constants
const (
	MsgShort        = "Inspect and install script templates"
	MsgLong         = "Templates shows which template governs each script kind and installs the built-in templates."
	MsgListShort    = "Show the template each script kind resolves to"
	MsgListLong     = "List resolves the deploy, revert and test templates exactly as \"schemer add\" would, honoring the same template flags, and prints the search chain."
	MsgListExample  = "  schemer templates list\n  schemer templates list --template-directory etc/templates"
	MsgInstallShort = "Install the built-in templates"
	MsgInstallLong  = "Install writes the built-in deploy.tmpl, revert.tmpl and test.tmpl into the user templates directory (or the system one with --system). Existing templates are kept."
	MsgInstallEx    = "  schemer templates install\n  schemer templates install --system\n  schemer templates install --dir etc/templates"

	MsgFlagSystem  = "Install into the system templates directory"
	MsgFlagDir     = "Install into this directory instead"
	MsgErrList     = "failed to list templates: %w"
	MsgErrInstall  = "failed to install templates: %w"
	MsgErrDirFlags = "--system and --dir cannot be combined"
)
