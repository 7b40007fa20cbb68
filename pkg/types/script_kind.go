package types

import (
	"fmt"
	"strings"
)

// ScriptKind identifies one of the companion scripts generated for a change
type ScriptKind int

const (
	// Deploy applies the change
	Deploy ScriptKind = iota
	// Revert undoes the change
	Revert
	// Test checks that the change was applied
	Test
)

// NumScriptKinds is the size of arrays indexed by ScriptKind
const NumScriptKinds = 3

// ScriptKinds lists every kind in scaffolding order
var ScriptKinds = [NumScriptKinds]ScriptKind{Deploy, Revert, Test}

var scriptKindNames = [NumScriptKinds]string{"deploy", "revert", "test"}

// String returns the lower-case kind name used in file and key names
func (k ScriptKind) String() string {
	if k < 0 || int(k) >= NumScriptKinds {
		return fmt.Sprintf("ScriptKind(%d)", int(k))
	}
	return scriptKindNames[k]
}

// TemplateFile returns the template file name searched for this kind
func (k ScriptKind) TemplateFile() string {
	return k.String() + ".tmpl"
}

// ParseScriptKind converts a kind name into a ScriptKind
func ParseScriptKind(s string) (ScriptKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range scriptKindNames {
		if n == name {
			return ScriptKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown script kind %q (want one of %s)", s, strings.Join(scriptKindNames[:], ", "))
}
