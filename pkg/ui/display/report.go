// Package display turns command results into a format-neutral report that the
// text and terminal renderers lay out.
package display

import (
	"fmt"

	"github.com/arthur-debert/schemer/pkg/commands/addchange"
	"github.com/arthur-debert/schemer/pkg/commands/genconfig"
	"github.com/arthur-debert/schemer/pkg/commands/templates"
)

// Status values used on report lines
const (
	StatusCreated  = "created"
	StatusSkipped  = "skipped"
	StatusFailed   = "failed"
	StatusPlanned  = "planned"
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
	StatusMissing  = "missing"
)

// Line is one row of a report
type Line struct {
	Status string
	Label  string
	Path   string
	Detail string
}

// Report is the format-neutral rendering of a command result
type Report struct {
	Title  string
	Lines  []Line
	Body   string
	Footer string
}

// Build converts a known result type into a report
func Build(result interface{}) (*Report, bool) {
	switch v := result.(type) {
	case *addchange.AddChangeResult:
		return fromAddChange(v), true
	case *templates.ListResult:
		return fromList(v), true
	case *templates.InstallResult:
		return fromInstall(v), true
	case *genconfig.GenConfigResult:
		return fromGenConfig(v), true
	default:
		return nil, false
	}
}

func fromAddChange(r *addchange.AddChangeResult) *Report {
	rep := &Report{Title: fmt.Sprintf("Adding change %s to %s", r.Change, r.Project)}
	for _, ev := range r.Scripts {
		rep.Lines = append(rep.Lines, Line{
			Status: ev.Outcome.String(),
			Label:  ev.KindName,
			Path:   ev.Path,
		})
	}
	if r.Planned {
		rep.Lines = append(rep.Lines, Line{Status: StatusPlanned, Label: "plan", Path: r.PlanFile})
		rep.Footer = fmt.Sprintf("Added %q to %s", r.Change, r.PlanFile)
	}
	return rep
}

func fromList(r *templates.ListResult) *Report {
	rep := &Report{Title: "Templates"}
	for _, k := range r.Kinds {
		line := Line{Label: k.Kind, Path: k.Template, Detail: k.Source}
		switch {
		case !k.Enabled:
			line.Status = StatusDisabled
		case k.Error != "":
			line.Status = StatusMissing
		default:
			line.Status = StatusEnabled
		}
		if k.Error != "" {
			line.Detail = k.Error
		}
		rep.Lines = append(rep.Lines, line)
	}
	if len(r.Chain) > 0 {
		rep.Footer = "Search chain:"
		for _, dir := range r.Chain {
			rep.Footer += "\n  " + dir
		}
	}
	return rep
}

func fromInstall(r *templates.InstallResult) *Report {
	rep := &Report{Title: "Installing templates into " + r.Dir}
	for _, f := range r.Files {
		rep.Lines = append(rep.Lines, Line{Status: f.Outcome.String(), Label: f.Kind, Path: f.Path})
	}
	return rep
}

func fromGenConfig(r *genconfig.GenConfigResult) *Report {
	rep := &Report{}
	if len(r.FilesWritten) == 0 && len(r.FilesSkipped) == 0 {
		rep.Body = r.ConfigContent
		return rep
	}
	for _, p := range r.FilesWritten {
		rep.Lines = append(rep.Lines, Line{Status: StatusCreated, Label: "config", Path: p})
	}
	for _, p := range r.FilesSkipped {
		rep.Lines = append(rep.Lines, Line{Status: StatusSkipped, Label: "config", Path: p})
	}
	return rep
}
