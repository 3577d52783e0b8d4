// Package cli implements the archviz command-line interface.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/archviz/archviz/pkg/buildinfo"
	"github.com/archviz/archviz/pkg/pipeline"
	"github.com/archviz/archviz/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "archviz"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "archviz",
		Short:        "Archviz renders architecture and data-flow diagrams as PNGs",
		Long:         `Archviz is a CLI tool for rendering declarative architecture and data-flow diagrams into PNG images, from either a built-in diagram set or TOML spec files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// roundTo is the precision used when printing elapsed durations.
const roundTo = time.Millisecond

// runner creates a pipeline runner for CLI use.
func (c *CLI) runner() *pipeline.Runner {
	return pipeline.New(c.Logger)
}

// =============================================================================
// Shared Flags
// =============================================================================

// outputFlags are the render options shared by generate and render.
type outputFlags struct {
	outDir string
	width  int
	height int
	scale  float64
	font   string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.outDir, "out", "o", "out", "Output directory for PNG artifacts")
	cmd.Flags().IntVar(&f.width, "width", 0, "Canvas width in pixels (default 1600)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Canvas height in pixels (default 900)")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "Resolution multiplier applied to width and height")
	cmd.Flags().StringVar(&f.font, "font", "", "Path to a TTF font file (default: discover system fonts)")
}

func (f *outputFlags) pipelineOptions(logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		OutDir: f.outDir,
		Render: render.Options{
			Width:    f.width,
			Height:   f.height,
			Scale:    f.scale,
			FontPath: f.font,
			Logger:   logger,
		},
	}
}
