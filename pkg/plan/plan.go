package plan

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/types"
)

// SyntaxVersion is written to new plans
const SyntaxVersion = "1.0.0"

// TimeFormat is the planned-at timestamp layout
const TimeFormat = "2006-01-02T15:04:05Z"

var changeLine = regexp.MustCompile(
	`^[+-]?(\S+?)(?:\s+\[([^\]]*)\])?\s+(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z)\s+(.*?)\s*<([^>]*)>(?:\s+#\s?(.*))?$`,
)

// Plan is a parsed plan file. Unrecognized lines are kept as is.
type Plan struct {
	pragmas map[string]string
	lines   []string
	changes []types.Change
	index   map[string]int
}

// New returns an empty plan for project
func New(project string) *Plan {
	p := &Plan{pragmas: map[string]string{}, index: map[string]int{}}
	p.lines = []string{
		"%syntax-version=" + SyntaxVersion,
		"%project=" + project,
		"",
	}
	p.pragmas["syntax-version"] = SyntaxVersion
	p.pragmas["project"] = project
	return p
}

// Parse reads plan text
func Parse(text string) (*Plan, error) {
	p := &Plan{pragmas: map[string]string{}, index: map[string]int{}}

	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return p, nil
	}

	for i, line := range strings.Split(text, "\n") {
		p.lines = append(p.lines, line)
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"), strings.HasPrefix(trimmed, "@"):
			continue
		case strings.HasPrefix(trimmed, "%"):
			key, value, ok := strings.Cut(trimmed[1:], "=")
			if !ok {
				return nil, errors.Newf(errors.ErrPlanParse, "invalid pragma on line %d", i+1).
					WithDetail("line", i+1)
			}
			p.pragmas[strings.TrimSpace(key)] = strings.TrimSpace(value)
		default:
			change, ok := parseChange(trimmed)
			if !ok {
				continue
			}
			if _, dup := p.index[change.Name]; dup {
				return nil, errors.Newf(errors.ErrPlanParse, "change %q planned twice (line %d)", change.Name, i+1).
					WithDetail("line", i+1).
					WithDetail("change", change.Name)
			}
			p.index[change.Name] = len(p.changes)
			p.changes = append(p.changes, change)
		}
	}

	return p, nil
}

func parseChange(line string) (types.Change, bool) {
	m := changeLine.FindStringSubmatch(line)
	if m == nil {
		return types.Change{}, false
	}

	planned, err := time.Parse(TimeFormat, m[3])
	if err != nil {
		return types.Change{}, false
	}

	c := types.Change{
		Name:         m[1],
		PlannedAt:    planned,
		PlannerName:  m[4],
		PlannerEmail: m[5],
		Note:         unescapeNote(m[6]),
	}
	for _, dep := range strings.Fields(m[2]) {
		if strings.HasPrefix(dep, "!") {
			c.Conflicts = append(c.Conflicts, dep[1:])
		} else {
			c.Requires = append(c.Requires, dep)
		}
	}
	return c, true
}

// Project returns the %project pragma
func (p *Plan) Project() string {
	return p.pragmas["project"]
}

// Pragma returns the value of a % pragma
func (p *Plan) Pragma(key string) string {
	return p.pragmas[key]
}

// Changes returns the planned changes in order
func (p *Plan) Changes() []types.Change {
	return append([]types.Change(nil), p.changes...)
}

// Has reports whether a change named name is planned
func (p *Plan) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Add appends change to the plan. Required changes must already be planned.
func (p *Plan) Add(change types.Change) error {
	log := logging.GetLogger("plan")

	if err := ValidateName(change.Name); err != nil {
		return err
	}
	if p.Has(change.Name) {
		return errors.Newf(errors.ErrChangeExists, "change %q already exists in plan", change.Name).
			WithDetail("change", change.Name)
	}
	for _, dep := range change.Requires {
		// project:change references point at other plans
		if !strings.Contains(dep, ":") && !p.Has(dep) {
			return errors.Newf(errors.ErrInvalidInput, "unknown required change %q", dep).
				WithDetail("change", dep)
		}
	}

	if len(p.lines) > 0 && strings.TrimSpace(p.lines[len(p.lines)-1]) != "" && len(p.changes) == 0 {
		p.lines = append(p.lines, "")
	}
	p.lines = append(p.lines, FormatChange(change))
	p.index[change.Name] = len(p.changes)
	p.changes = append(p.changes, change)

	log.Debug().Str("change", change.Name).Int("position", len(p.changes)).Msg("Added change to plan")
	return nil
}

// String renders the plan file content
func (p *Plan) String() string {
	if len(p.lines) == 0 {
		return ""
	}
	return strings.Join(p.lines, "\n") + "\n"
}

// FormatChange renders the plan line for change
func FormatChange(c types.Change) string {
	var b strings.Builder
	b.WriteString(c.Name)

	deps := make([]string, 0, len(c.Requires)+len(c.Conflicts))
	deps = append(deps, c.Requires...)
	for _, conflict := range c.Conflicts {
		deps = append(deps, "!"+conflict)
	}
	if len(deps) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(deps, " "))
	}

	fmt.Fprintf(&b, " %s %s <%s>", c.PlannedAt.UTC().Format(TimeFormat), c.PlannerName, c.PlannerEmail)
	if c.Note != "" {
		b.WriteString(" # ")
		b.WriteString(escapeNote(c.Note))
	}
	return b.String()
}

func escapeNote(note string) string {
	note = strings.ReplaceAll(note, `\`, `\\`)
	return strings.ReplaceAll(note, "\n", `\n`)
}

func unescapeNote(note string) string {
	var b strings.Builder
	for i := 0; i < len(note); i++ {
		if note[i] == '\\' && i+1 < len(note) {
			switch note[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(note[i])
	}
	return b.String()
}
