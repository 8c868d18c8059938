package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/puml2drawio/pkg/drawio"
	"github.com/matzehuels/puml2drawio/pkg/errors"
	"github.com/matzehuels/puml2drawio/pkg/io"
	"github.com/matzehuels/puml2drawio/pkg/observability"
	"github.com/matzehuels/puml2drawio/pkg/plantuml"
)

// checker is implemented by renderers that depend on an external resource
// which can be verified before anything is spawned.
type checker interface {
	Check() error
}

// Runner converts PlantUML files to drawio documents.
//
// The Runner holds no per-conversion state, so it can be reused for
// several files.
type Runner struct {
	Renderer plantuml.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner from opts. Unless opts.Renderer is set, the
// PlantUML jar renderer is configured from the Java, Jar, Timeout and
// Strict fields.
func NewRunner(opts Options) *Runner {
	opts.SetDefaults()

	renderer := opts.Renderer
	if renderer == nil {
		renderer = &plantuml.JarRenderer{
			Java:    opts.Java,
			Jar:     opts.Jar,
			Timeout: opts.Timeout,
			Strict:  opts.Strict,
			Logger:  opts.Logger,
		}
	}
	return &Runner{
		Renderer: renderer,
		Logger:   opts.Logger,
	}
}

// Convert turns the PlantUML file at path into a drawio document.
//
// The input file and the renderer are both checked before the renderer is
// started. Errors carry the codes from package errors: FILE_NOT_FOUND,
// RENDERER_NOT_FOUND, RENDER_TIMEOUT and RENDER_FAILED.
func (r *Runner) Convert(ctx context.Context, path string) (result *Result, err error) {
	hooks := observability.Pipeline()
	start := time.Now()
	defer func() {
		hooks.OnConvertComplete(ctx, path, time.Since(start), err)
	}()

	if err := io.CheckSource(path); err != nil {
		return nil, err
	}
	if c, ok := r.Renderer.(checker); ok {
		if err := c.Check(); err != nil {
			return nil, err
		}
	}

	src, err := io.ReadSource(path)
	hooks.OnRead(ctx, path, sourceSize(src), err)
	if err != nil {
		return nil, err
	}

	svg, renderTime, err := r.render(ctx, path, src.Text)
	if err != nil {
		return nil, err
	}

	doc, geom, modified := assemble(src, svg)
	r.dump(src, svg, geom, modified)

	out, err := doc.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize document")
	}

	return &Result{
		Document: out,
		Source:   src,
		SVG:      svg,
		Geometry: geom,
		Modified: modified,
		Stats: Stats{
			SourceBytes:   len(src.Text),
			SVGBytes:      len(svg),
			DocumentBytes: len(out),
			RenderTime:    renderTime,
			TotalTime:     time.Since(start),
		},
	}, nil
}

func (r *Runner) render(ctx context.Context, path, text string) ([]byte, time.Duration, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, path)

	start := time.Now()
	svg, err := r.Renderer.Render(ctx, text)
	elapsed := time.Since(start)

	hooks.OnRenderComplete(ctx, path, len(svg), elapsed, err)
	if err != nil {
		return nil, elapsed, err
	}
	return svg, elapsed, nil
}

// dump logs every intermediate value at debug level.
func (r *Runner) dump(src *io.Source, svg []byte, geom plantuml.Geometry, modified string) {
	if r.Logger.GetLevel() > log.DebugLevel {
		return
	}
	r.Logger.Debugf("source text=[%s]", src.Text)
	r.Logger.Debugf("svg=[%s]", svg)
	r.Logger.Debugf("svg base64=[%s]", drawio.EncodeImage(svg))
	r.Logger.Debugf("escaped text=[%s]", drawio.EscapeSource(src.Text))
	r.Logger.Debug("geometry", "width", geom.Width, "height", geom.Height)
	r.Logger.Debug("timestamp", "modified", modified)
}

func sourceSize(src *io.Source) int {
	if src == nil {
		return 0
	}
	return len(src.Text)
}
