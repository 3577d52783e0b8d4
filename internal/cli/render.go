package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archviz/archviz/pkg/config"
	"github.com/archviz/archviz/pkg/pipeline"
)

// renderCommand creates the render command for TOML spec files.
func (c *CLI) renderCommand() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "render <spec.toml> [spec.toml...]",
		Short: "Render diagrams described by TOML spec files",
		Long: `Render one PNG per spec file. A spec file declares either a full
diagram (kind = "diagram") or a role-flow template (kind = "roleflow")
that is expanded before rendering. The artifact name defaults to the
spec's name field, falling back to the file's base name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			var jobs []pipeline.Job
			for _, path := range args {
				job, err := loadJob(path)
				if err != nil {
					printError("Failed to load %s: %v", path, err)
					return err
				}
				logger.Debug("loaded spec", "path", path, "name", job.Name)
				jobs = append(jobs, job)
			}

			prog := newProgress(logger)
			result, err := c.runner().Execute(ctx, jobs, flags.pipelineOptions(logger))
			if err != nil {
				printError("Render failed: %v", err)
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d diagrams", len(result.Paths)))

			printSuccess("Rendered %d spec file(s)", len(args))
			for _, path := range result.Paths {
				printFile(path)
			}
			printStats(len(result.Paths), result.Elapsed.Round(roundTo).String())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// loadJob parses a spec file and builds its render job.
func loadJob(path string) (pipeline.Job, error) {
	f, err := config.Load(path)
	if err != nil {
		return pipeline.Job{}, err
	}
	d, err := f.Build()
	if err != nil {
		return pipeline.Job{}, err
	}

	name := f.Name
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return pipeline.Job{Name: name, Diagram: d}, nil
}
