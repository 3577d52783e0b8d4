// Package pipeline runs diagram batches: render each job in sequence
// and write one PNG artifact per job into the output directory.
//
// The runner holds no state between runs. Every render call allocates
// and releases its own drawing surface, so repeated batches cannot leak
// canvas state into each other. Artifact names are deterministic
// (<name>.png) and overwritten on every run; there is no versioning and
// no caching. The first failure aborts the whole batch — this is a
// fire-once rendering tool with no partial-success mode.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/archviz/archviz/pkg/diagram"
	"github.com/archviz/archviz/pkg/render"
)

// ErrNoJobs is returned when Execute is called with an empty batch.
var ErrNoJobs = errors.New("no diagrams to render")

// Job names one diagram to render.
type Job struct {
	Name    string // artifact base name, becomes <name>.png
	Diagram *diagram.Diagram
}

// Options configures a batch run.
type Options struct {
	OutDir string // created idempotently before the first write
	Render render.Options
}

// Result reports what a run produced.
type Result struct {
	RunID   string
	Paths   []string // artifact paths in job order
	Elapsed time.Duration
}

// Runner executes diagram batches.
type Runner struct {
	Logger *log.Logger
}

// New creates a runner. A nil logger falls back to log.Default().
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute renders every job in order and writes the artifacts.
// The output directory is created before the first write. Rendering is
// strictly sequential and synchronous; ctx is only consulted between
// jobs so a finished artifact is never half-written by cancellation.
func (r *Runner) Execute(ctx context.Context, jobs []Job, opts Options) (*Result, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	if opts.OutDir == "" {
		opts.OutDir = "out"
	}

	start := time.Now()
	result := &Result{RunID: uuid.NewString()}
	r.Logger.Debug("starting render run", "run_id", result.RunID, "jobs", len(jobs))

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if job.Name == "" {
			return nil, fmt.Errorf("job with title %q has no artifact name", job.Diagram.Title)
		}

		jobStart := time.Now()
		data, err := render.Render(job.Diagram, opts.Render)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", job.Name, err)
		}

		path := filepath.Join(opts.OutDir, job.Name+".png")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}

		result.Paths = append(result.Paths, path)
		r.Logger.Info("generated diagram",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(jobStart).Round(time.Millisecond))
	}

	result.Elapsed = time.Since(start)
	return result, nil
}
