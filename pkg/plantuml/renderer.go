package plantuml

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/puml2drawio/pkg/errors"
)

const (
	// DefaultJava is the Java executable looked up on PATH.
	DefaultJava = "java"

	// DefaultJar is the PlantUML jar, relative to the working directory.
	DefaultJar = "plantuml-1.2024.4.jar"

	// DefaultTimeout bounds a single render.
	DefaultTimeout = 10 * time.Second

	// waitDelay bounds how long Wait keeps reading pipes after the process
	// was killed, in case a grandchild still holds them open.
	waitDelay = time.Second
)

// Renderer turns diagram source into SVG bytes.
type Renderer interface {
	Render(ctx context.Context, source string) ([]byte, error)
}

// JarRenderer renders diagrams with the PlantUML jar.
// The zero value uses the defaults above.
type JarRenderer struct {
	Java    string        // Java executable; DefaultJava when empty
	Jar     string        // PlantUML jar path; DefaultJar when empty
	Timeout time.Duration // render deadline; DefaultTimeout when zero
	Strict  bool          // report a non-zero exit status as RENDER_FAILED
	Logger  *log.Logger   // debug output; discarded when nil

	// execCommand builds the child process. Tests replace it.
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// Check verifies that the jar exists. It is called before any input is
// read so a missing renderer is reported up front.
func (r *JarRenderer) Check() error {
	jar := r.jar()
	info, err := os.Stat(jar)
	if err != nil || info.IsDir() {
		return perrors.New(perrors.ErrCodeRendererNotFound, "PlantUML JAR file not found: %s", jar)
	}
	return nil
}

// Args returns the command line used to render, without the executable.
func (r *JarRenderer) Args() []string {
	return []string{"-jar", r.jar(), "-tsvg", "-pipe"}
}

// Render writes source to PlantUML's stdin and returns its stdout.
//
// The child process is always reaped before Render returns. If the
// deadline passes first the process is killed and a RENDER_TIMEOUT error
// is returned. Cancellation of ctx itself is returned as ctx.Err().
func (r *JarRenderer) Render(ctx context.Context, source string) ([]byte, error) {
	logger := r.logger()

	runCtx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	cmd := r.command(runCtx, r.java(), r.Args()...)
	cmd.Stdin = strings.NewReader(source)
	cmd.WaitDelay = waitDelay

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	logger.Debug("starting renderer", "cmd", r.java(), "args", r.Args(), "timeout", r.timeout())
	err := cmd.Run()
	if err == nil {
		return out.Bytes(), nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if runCtx.Err() != nil {
		return nil, perrors.Wrap(perrors.ErrCodeRenderTimeout, runCtx.Err(), "PlantUML process timed out after %s", r.timeout())
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, perrors.Wrap(perrors.ErrCodeRenderFailed, err, "start PlantUML")
	}
	if r.Strict {
		return nil, perrors.Wrap(perrors.ErrCodeRenderFailed, err, "PlantUML exited with status %d: %s",
			exitErr.ExitCode(), strings.TrimSpace(errBuf.String()))
	}

	logger.Debug("renderer exited with non-zero status, keeping output",
		"status", exitErr.ExitCode(),
		"stderr", strings.TrimSpace(errBuf.String()),
		"bytes", out.Len())
	return out.Bytes(), nil
}

func (r *JarRenderer) command(ctx context.Context, name string, arg ...string) *exec.Cmd {
	if r.execCommand != nil {
		return r.execCommand(ctx, name, arg...)
	}
	return exec.CommandContext(ctx, name, arg...)
}

func (r *JarRenderer) java() string {
	if r.Java == "" {
		return DefaultJava
	}
	return r.Java
}

func (r *JarRenderer) jar() string {
	if r.Jar == "" {
		return DefaultJar
	}
	return r.Jar
}

func (r *JarRenderer) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}

func (r *JarRenderer) logger() *log.Logger {
	if r.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return r.Logger
}

// Ensure JarRenderer implements Renderer.
var _ Renderer = (*JarRenderer)(nil)
