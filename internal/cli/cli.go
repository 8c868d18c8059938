// Package cli implements the puml2drawio command-line interface.
//
// The root command converts one PlantUML file into a drawio document. The
// document goes to stdout (or to --output); logs, status lines and the
// spinner go to stderr so the document stream stays clean.
//
// # Configuration
//
// Renderer settings come from, in increasing priority: built-in defaults,
// a TOML config file (--config, or ./.puml2drawio.toml when present), and
// flags given on the command line.
//
// # Logging
//
// --verbose (-v) switches the logger to debug level, which also dumps every
// intermediate value of the conversion.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/puml2drawio/pkg/buildinfo"
	"github.com/matzehuels/puml2drawio/pkg/errors"
	"github.com/matzehuels/puml2drawio/pkg/pipeline"
	"github.com/matzehuels/puml2drawio/pkg/plantuml"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for the config file and display.
	appName = "puml2drawio"

	// defaultConfigFile is read from the working directory when --config is not given.
	defaultConfigFile = "." + appName + ".toml"
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
	Stdout io.Writer // document output
	Stderr io.Writer // logs and status lines

	// renderer replaces the PlantUML jar when set. Tests use it.
	renderer plantuml.Renderer
}

// New creates a new CLI instance writing documents to stdout and
// diagnostics to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	opts := convertOpts{}

	root := &cobra.Command{
		Use:   appName + " <PlantUML-file>",
		Short: "Convert a PlantUML diagram into an editable drawio file",
		Long: `puml2drawio renders a PlantUML file to SVG and writes a drawio (diagrams.net)
document that embeds both the image and the diagram source, so the diagram can
be edited again later with drawio's PlantUML plugin.`,
		Version:       buildinfo.Version,
		Args:          usageArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePaths(args[0], opts.output); err != nil {
				return err
			}
			popts, err := c.pipelineOptions(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args[0], popts, opts.output)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "write the drawio document to a file instead of stdout")
	root.Flags().StringVar(&opts.configPath, "config", "", "TOML config file (default ./"+defaultConfigFile+" when present)")
	root.Flags().StringVar(&opts.java, "java", pipeline.DefaultJava, "java executable")
	root.Flags().StringVar(&opts.jar, "jar", pipeline.DefaultJar, "PlantUML jar")
	root.Flags().DurationVar(&opts.timeout, "timeout", pipeline.DefaultTimeout, "render deadline")
	root.Flags().BoolVar(&opts.strict, "strict", false, "treat a non-zero renderer exit status as an error")

	root.AddCommand(c.completionCommand())

	return root
}

// usageArgs accepts exactly one input path.
func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrCodeUsage, "Usage: %s <PlantUML-file>", appName)
	}
	return nil
}

// validatePaths checks the input path and, when set, the output path.
// An empty input names no file, so it is reported as not found.
func validatePaths(input, output string) error {
	if input == "" {
		return errors.New(errors.ErrCodeFileNotFound, "PlantUML file not found: %q", input)
	}
	if err := errors.ValidatePath(input); err != nil {
		return err
	}
	if output == "" {
		return nil
	}
	return errors.ValidateOutputPath(output, input)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(opts pipeline.Options) *pipeline.Runner {
	if c.renderer != nil {
		opts.Renderer = c.renderer
	}
	return pipeline.NewRunner(opts)
}

// verbose reports whether debug logging is enabled.
func (c *CLI) verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// Execute builds the root command and runs it with ctx.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// renderTimeout is the deadline shown in status output.
func renderTimeout(opts pipeline.Options) time.Duration {
	if opts.Timeout <= 0 {
		return pipeline.DefaultTimeout
	}
	return opts.Timeout
}
