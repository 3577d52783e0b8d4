package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// generateCommand creates the generate command for rendering the
// built-in diagram set.
func (c *CLI) generateCommand() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the built-in architecture and role-flow diagrams",
		Long: `Render the built-in diagram set: a layered system architecture
overview plus one data-flow diagram per role. One PNG is written per
diagram into the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			jobs, err := builtinJobs()
			if err != nil {
				printError("Failed to build diagram set: %v", err)
				return err
			}
			printInfo("Rendering %d built-in diagrams", len(jobs))

			prog := newProgress(logger)
			result, err := c.runner().Execute(ctx, jobs, flags.pipelineOptions(logger))
			if err != nil {
				printError("Render failed: %v", err)
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d diagrams", len(result.Paths)))

			printSuccess("Generated diagram set")
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
