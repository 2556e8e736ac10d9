// Package cli implements the splitviz command-line interface.
//
// splitviz sits at the end of a shell pipeline. It reads the output of a
// visualisation run on stdin, echoes every ordinary line to stdout, draws the
// "@W" and "@E" directives it finds, saves the figure as "<run>.jpeg" and
// finally shows it in a window.
//
// # Logging
//
// --verbose (-v) switches the logger to debug level. Logs and status lines go
// to stderr because stdout carries the pass-through text.
//
// # Configuration
//
// Figure defaults can be set in a TOML file, see [configPath]. Flags that are
// set explicitly win over the file.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/splitviz/pkg/buildinfo"
	"github.com/matzehuels/splitviz/pkg/errors"
	"github.com/matzehuels/splitviz/pkg/pipeline"
	"github.com/matzehuels/splitviz/pkg/viewer"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "splitviz"

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

// runOpts holds the command-line flags of the root command.
type runOpts struct {
	configFile string
	noShow     bool
	viewer     string
	legend     bool
	dpi        float64
	width      float64
	height     float64
	quality    int
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts runOpts

	root := &cobra.Command{
		Use:   appName + " [flags] <run_name>",
		Short: "Splitviz draws watchtowers and split edges from an annotated stream",
		Long: `Splitviz reads annotated output on stdin and echoes every ordinary line to stdout.

Directive lines are drawn instead of echoed:
  @W<id> <x> <y>                   watchtower marker colored by id
  @E<face> <x1> <y1> <x2> <y2>     split edge arrow colored by face

The figure is saved as <run_name>.jpeg and then shown in a window.`,
		Example: `  ./split sq1 | splitviz sq1
  ./split irr2 | splitviz --no-show irr2`,
		Version:       buildinfo.Version,
		Args:          runNameArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			applyFlags(cmd, &opts, cfg)
			return c.run(cmd, args[0], cfg)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVar(&opts.configFile, "config", "", "TOML config file (default $XDG_CONFIG_HOME/splitviz/config.toml)")
	root.Flags().BoolVar(&opts.noShow, "no-show", false, "save the image without opening a window")
	root.Flags().StringVar(&opts.viewer, "viewer", viewer.NameWindow, "viewer: window, none")
	root.Flags().BoolVar(&opts.legend, "legend", false, "draw a legend of watchtower labels")
	root.Flags().Float64Var(&opts.dpi, "dpi", 0, "resolution in pixels per inch (default 100)")
	root.Flags().Float64Var(&opts.width, "width", 0, "figure width in inches (default 6.4)")
	root.Flags().Float64Var(&opts.height, "height", 0, "figure height in inches (default 4.8)")
	root.Flags().IntVar(&opts.quality, "quality", 0, "JPEG quality 1-100 (default 75)")

	return root
}

// runNameArg requires exactly one non-empty run name. It runs before stdin
// is touched, so a bad invocation never consumes the stream.
func runNameArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrCodeInvalidArgument, "expected exactly one run name, got %d arguments", len(args))
	}
	return errors.ValidateRunName(args[0])
}

// applyFlags copies explicitly set flags over the file configuration.
func applyFlags(cmd *cobra.Command, opts *runOpts, cfg *fileConfig) {
	flags := cmd.Flags()
	if flags.Changed("viewer") {
		cfg.Viewer = opts.viewer
	}
	if opts.noShow {
		cfg.Viewer = viewer.NameNone
	}
	if flags.Changed("legend") {
		cfg.Figure.Legend = opts.legend
	}
	if flags.Changed("dpi") {
		cfg.Figure.DPI = opts.dpi
	}
	if flags.Changed("width") {
		cfg.Figure.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Figure.Height = opts.height
	}
	if flags.Changed("quality") {
		cfg.Figure.Quality = opts.quality
	}
}

// =============================================================================
// Run
// =============================================================================

func (c *CLI) run(cmd *cobra.Command, runName string, cfg *fileConfig) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	stderr := cmd.ErrOrStderr()

	v, err := c.newViewer(cfg.Viewer, stderr)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		RunName: runName,
		Figure:  cfg.Figure,
		Logger:  logger,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	logger.Debug("starting run", "run", runName, "viewer", cfg.Viewer,
		"dpi", opts.Figure.DPI, "width", opts.Figure.Width, "height", opts.Figure.Height)

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(v, logger).Run(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	prog.done("Finished "+runName, "shown", result.Shown)

	printSuccess(stderr, "%s", result.Title)
	printFile(stderr, result.OutputPath)
	printStats(stderr, result.Stream, result.Shown)
	return nil
}

// newViewer resolves the configured viewer. It returns nil for "none", so
// the run saves without showing. The window viewer is wrapped in a spinner
// when stderr is a terminal.
func (c *CLI) newViewer(name string, stderr io.Writer) (pipeline.Viewer, error) {
	v, err := viewer.New(name)
	if err != nil || v == nil {
		return nil, err
	}
	if name == viewer.NameWindow && isTerminal(stderr) {
		return spinnerViewer{Viewer: v, w: stderr}, nil
	}
	return v, nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/splitviz/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
