package types

// Reserved variable names injected into every template
const (
	VarChange    = "change"
	VarRequires  = "requires"
	VarConflicts = "conflicts"
)

// Variables maps template variable names to values. Values are strings or
// string slices.
type Variables map[string]interface{}

// Clone returns a shallow copy
func (v Variables) Clone() Variables {
	out := make(Variables, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
