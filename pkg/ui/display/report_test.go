package display

import (
	"testing"

	"github.com/arthur-debert/schemer/pkg/commands/addchange"
	"github.com/arthur-debert/schemer/pkg/commands/genconfig"
	"github.com/arthur-debert/schemer/pkg/commands/templates"
	"github.com/arthur-debert/schemer/pkg/scaffold"
	"github.com/arthur-debert/schemer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAddChange(t *testing.T) {
	rep, ok := Build(&addchange.AddChangeResult{
		Change:   "widgets",
		Project:  "flipr",
		PlanFile: "/p/schemer.plan",
		Planned:  true,
		Scripts: []scaffold.Event{
			{Kind: types.Deploy, KindName: "deploy", Path: "/p/deploy/widgets.sql", Outcome: scaffold.Created},
			{Kind: types.Revert, KindName: "revert", Path: "/p/revert/widgets.sql", Outcome: scaffold.Skipped},
		},
	})
	require.True(t, ok)

	assert.Equal(t, "Adding change widgets to flipr", rep.Title)
	assert.Equal(t, []Line{
		{Status: StatusCreated, Label: "deploy", Path: "/p/deploy/widgets.sql"},
		{Status: StatusSkipped, Label: "revert", Path: "/p/revert/widgets.sql"},
		{Status: StatusPlanned, Label: "plan", Path: "/p/schemer.plan"},
	}, rep.Lines)
	assert.Contains(t, rep.Footer, `"widgets"`)
}

func TestBuildAddChangeNotPlanned(t *testing.T) {
	rep, ok := Build(&addchange.AddChangeResult{Change: "widgets"})
	require.True(t, ok)
	assert.Empty(t, rep.Lines)
	assert.Empty(t, rep.Footer)
}

func TestBuildList(t *testing.T) {
	rep, ok := Build(&templates.ListResult{
		Chain: []string{"/u/templates"},
		Kinds: []templates.KindStatus{
			{Kind: "deploy", Enabled: true, Template: "/u/templates/deploy.tmpl", Source: templates.SourceSearch},
			{Kind: "revert", Enabled: true, Error: "not found"},
			{Kind: "test", Enabled: false, Template: "/u/templates/test.tmpl", Source: templates.SourceSearch},
		},
	})
	require.True(t, ok)
	require.Len(t, rep.Lines, 3)
	assert.Equal(t, StatusEnabled, rep.Lines[0].Status)
	assert.Equal(t, StatusMissing, rep.Lines[1].Status)
	assert.Equal(t, "not found", rep.Lines[1].Detail)
	assert.Equal(t, StatusDisabled, rep.Lines[2].Status)
	assert.Equal(t, "Search chain:\n  /u/templates", rep.Footer)
}

func TestBuildGenConfig(t *testing.T) {
	rep, ok := Build(&genconfig.GenConfigResult{ConfigContent: "[core]\n"})
	require.True(t, ok)
	assert.Equal(t, "[core]\n", rep.Body)

	rep, _ = Build(&genconfig.GenConfigResult{ConfigContent: "x", FilesWritten: []string{"schemer.toml"}})
	assert.Empty(t, rep.Body)
	assert.Equal(t, StatusCreated, rep.Lines[0].Status)
}

func TestBuildUnknown(t *testing.T) {
	_, ok := Build("plain")
	assert.False(t, ok)
}
