package addchange

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/filesystem"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/plan"
	"github.com/arthur-debert/schemer/pkg/scaffold"
	"github.com/arthur-debert/schemer/pkg/types"
)

// AddChangeOptions defines the options for the AddChange command.
type AddChangeOptions struct {
	// Name is the new change's name
	Name string
	// Requires and Conflicts list other changes by name
	Requires  []string
	Conflicts []string
	// Notes are joined into the plan note, one paragraph each
	Notes []string

	// Scaffold carries template and variable settings from the command line
	Scaffold scaffold.Options

	// Config is the layered configuration
	Config config.Reader
	// ProjectDir anchors relative core.* paths (defaults to the working directory)
	ProjectDir string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
	// Lock guards the plan file (optional, defaults to plan.FileLock)
	Lock plan.LockFunc
	// Now stamps the change (optional, defaults to time.Now)
	Now func() time.Time
}

// AddChangeResult reports what the command did
type AddChangeResult struct {
	Change   string           `json:"change"`
	Project  string           `json:"project"`
	PlanFile string           `json:"planFile"`
	Planned  bool             `json:"planned"`
	Scripts  []scaffold.Event `json:"scripts"`
}

// AddChange scaffolds the scripts of a new change and appends it to the plan.
// When scaffolding fails the partial result is returned with the error.
func AddChange(ctx context.Context, opts AddChangeOptions) (*AddChangeResult, error) {
	log := logging.GetLogger("commands.add")
	done := logging.LogOperationStart(log, "add")
	defer done()

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInternal, "no configuration given")
	}
	if err := plan.ValidateName(opts.Name); err != nil {
		return nil, err
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	projectDir := opts.ProjectDir
	if projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		projectDir = wd
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	layout := ResolveLayout(opts.Config, projectDir)
	plannerName, plannerEmail := Planner(opts.Config)
	change := types.Change{
		Name:         opts.Name,
		Requires:     opts.Requires,
		Conflicts:    opts.Conflicts,
		Note:         strings.Join(opts.Notes, "\n\n"),
		PlannerName:  plannerName,
		PlannerEmail: plannerEmail,
		PlannedAt:    now().UTC().Truncate(time.Second),
		Paths:        layout.ChangePaths(opts.Name),
	}

	log.Debug().
		Str("change", change.Name).
		Str("plan", layout.PlanFile).
		Strs("requires", change.Requires).
		Strs("conflicts", change.Conflicts).
		Msg("Adding change")

	result := &AddChangeResult{
		Change:   change.Name,
		Project:  layout.Project,
		PlanFile: layout.PlanFile,
	}

	// Reject duplicates and unknown dependencies before touching the disk
	store := plan.NewStore(fs, opts.Lock)
	current, err := store.Load(layout.PlanFile, layout.Project)
	if err != nil {
		return nil, err
	}
	if current.Project() != "" {
		result.Project = current.Project()
	}
	if err := current.Add(change); err != nil {
		return nil, err
	}

	events, err := scaffold.New(fs, opts.Config, opts.Scaffold).Scaffold(change)
	result.Scripts = events
	if err != nil {
		return result, err
	}

	if _, err := store.Append(ctx, layout.PlanFile, layout.Project, change); err != nil {
		return result, err
	}
	result.Planned = true

	log.Info().Str("change", change.Name).Int("scripts", len(events)).Msg("Change added")
	return result, nil
}
