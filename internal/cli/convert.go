package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/puml2drawio/pkg/errors"
	"github.com/matzehuels/puml2drawio/pkg/io"
	"github.com/matzehuels/puml2drawio/pkg/pipeline"
)

// runConvert converts input and writes the document to stdout, or to output
// when it is set. Nothing is written if any step fails.
func (c *CLI) runConvert(ctx context.Context, input string, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := c.newRunner(opts)

	var spinner *Spinner
	if isTerminal(c.Stderr) && !c.verbose() {
		spinner = newSpinner(ctx, c.Stderr, fmt.Sprintf("Rendering %s (timeout %s)", input, renderTimeout(opts)))
		spinner.Start()
	}
	result, err := runner.Convert(ctx, input)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if result.Geometry.IsZero() {
		printWarning(c.Stderr, "Renderer output declares no size; geometry left blank")
	}

	if output == "" {
		if err := io.WriteDocument(result.Document, c.Stdout); err != nil {
			return err
		}
		prog.done("Converted " + input)
		return nil
	}

	if err := io.ExportDocument(result.Document, output); err != nil {
		return err
	}
	prog.done("Converted " + input)

	printSuccess(c.Stderr, "Converted %s", input)
	printFile(c.Stderr, output)
	if !result.Geometry.IsZero() {
		printKeyValue(c.Stderr, "size", result.Geometry.Width+"x"+result.Geometry.Height)
	}
	printKeyValue(c.Stderr, "rendered", result.Stats.RenderTime.Round(time.Millisecond).String())
	return nil
}

// ReportError prints err on the CLI's stderr as a single status line.
func (c *CLI) ReportError(err error) {
	printError(c.Stderr, "%s", errors.UserMessage(err))
}
