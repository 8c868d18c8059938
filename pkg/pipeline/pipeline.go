// Package pipeline provides the PlantUML to drawio conversion pipeline.
//
// This package implements the read → render → assemble sequence that the
// CLI runs for a single input file. Keeping it out of the CLI means the
// same conversion can be driven from tests or another front end.
//
// # Architecture
//
// A conversion runs these steps in order, and the first failure ends it:
//
//  1. Check: the input file and the PlantUML jar must both exist
//  2. Read: load the source text and its modification time
//  3. Render: run PlantUML under a deadline to get SVG
//  4. Assemble: escape the source, encode the SVG, read its size and
//     build the drawio document
//
// Nothing is cached and nothing is retried.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.Options{
//	    Jar:     "/opt/plantuml/plantuml.jar",
//	    Timeout: 10 * time.Second,
//	    Logger:  logger,
//	})
//	result, err := runner.Convert(ctx, "sequence.puml")
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Document)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/puml2drawio/pkg/drawio"
	pumlio "github.com/matzehuels/puml2drawio/pkg/io"
	"github.com/matzehuels/puml2drawio/pkg/plantuml"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultJava is the Java executable used to run PlantUML.
	DefaultJava = plantuml.DefaultJava

	// DefaultJar is the PlantUML jar, relative to the working directory.
	DefaultJar = plantuml.DefaultJar

	// DefaultTimeout is the render deadline.
	DefaultTimeout = plantuml.DefaultTimeout
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a conversion.
type Options struct {
	Java    string
	Jar     string
	Timeout time.Duration
	Strict  bool // fail on a non-zero renderer exit status

	// Runtime options
	Logger   *log.Logger
	Renderer plantuml.Renderer // replaces the jar renderer when set
}

// SetDefaults fills in unset fields.
func (o *Options) SetDefaults() {
	if o.Java == "" {
		o.Java = DefaultJava
	}
	if o.Jar == "" {
		o.Jar = DefaultJar
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks option values after defaults are applied.
func (o *Options) Validate() error {
	if o.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s (must be positive)", o.Timeout)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a conversion.
type Result struct {
	// Document is the serialized drawio file, without a trailing newline.
	Document []byte

	// Source is the diagram source that was converted.
	Source *pumlio.Source

	// SVG is the renderer output embedded in the document.
	SVG []byte

	// Geometry is the size read from the SVG; empty when none was declared.
	Geometry plantuml.Geometry

	// Modified is the document's modification timestamp.
	Modified string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains conversion statistics.
type Stats struct {
	SourceBytes   int
	SVGBytes      int
	DocumentBytes int
	RenderTime    time.Duration
	TotalTime     time.Duration
}

// assemble runs the encoding steps and builds the document for src and svg.
func assemble(src *pumlio.Source, svg []byte) (*drawio.MxFile, plantuml.Geometry, string) {
	geom := plantuml.ExtractGeometry(svg)
	modified := drawio.FormatModified(src.ModTime)
	doc := drawio.NewDocument(drawio.Params{
		Modified: modified,
		Source:   src.Text,
		SVG:      svg,
		Width:    geom.Width,
		Height:   geom.Height,
	})
	return doc, geom, modified
}
