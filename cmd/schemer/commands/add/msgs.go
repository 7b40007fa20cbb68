package add

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort            = "Add a change to the plan and scaffold its scripts"
	MsgErrAddChange     = "failed to add change: %w"
	MsgErrBadSet        = "invalid --set value %q: expected key=value"
	MsgErrKindConflict  = "script kind %s given to both --with and --without"
	MsgFlagRequires     = "Change required by the new change (repeatable)"
	MsgFlagConflicts    = "Change the new change conflicts with (repeatable)"
	MsgFlagSet          = "Set a template variable as key=value (repeatable; repeat a key for a list)"
	MsgFlagTemplateDir  = "Directory searched first for <kind>.tmpl templates"
	MsgFlagTemplateFile = "Template file for %s scripts"
	MsgFlagWith         = "Generate the given script kind (deploy, revert, test)"
	MsgFlagWithout      = "Do not generate the given script kind (deploy, revert, test)"
	MsgFlagNote         = "Note for the plan entry (repeatable; one paragraph each)"
)

// Embedded message files
var (
	//go:embed add-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed add-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
