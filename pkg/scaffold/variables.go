package scaffold

import (
	"fmt"

	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/types"
)

// MergeVariables returns the shallow union of configured and overrides, with
// overrides winning on collision. Nested tables are not merged.
func MergeVariables(configured, overrides map[string]interface{}) types.Variables {
	out := make(types.Variables, len(configured)+len(overrides))
	for k, v := range configured {
		out[k] = normalize(v)
	}
	for k, v := range overrides {
		out[k] = normalize(v)
	}
	return out
}

// InjectReserved sets the change name and its requires and conflicts lists,
// replacing whatever configuration or overrides put under those names.
func InjectReserved(vars types.Variables, change types.Change) types.Variables {
	log := logging.GetLogger("scaffold")
	out := vars.Clone()
	for _, key := range []string{types.VarChange, types.VarRequires, types.VarConflicts} {
		if _, taken := out[key]; taken {
			log.Debug().Str("variable", key).Msg("Reserved variable replaces configured value")
		}
	}
	out[types.VarChange] = change.Name
	out[types.VarRequires] = nonNil(change.Requires)
	out[types.VarConflicts] = nonNil(change.Conflicts)
	return out
}

// normalize turns TOML arrays into string lists
func normalize(v interface{}) interface{} {
	list, ok := v.([]interface{})
	if !ok {
		return v
	}
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = fmt.Sprint(item)
	}
	return out
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return append([]string(nil), list...)
}
