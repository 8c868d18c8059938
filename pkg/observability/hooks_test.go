package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	assert.NotPanics(t, func() {
		p.OnRead(ctx, "seq.puml", 42, nil)
		p.OnRenderStart(ctx, "seq.puml")
		p.OnRenderComplete(ctx, "seq.puml", 1024, time.Second, nil)
		p.OnConvertComplete(ctx, "seq.puml", time.Second, errors.New("boom"))
	})
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.IsType(t, NoopPipelineHooks{}, Pipeline(), "no-op hooks by default")

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	assert.Same(t, custom, Pipeline())

	Pipeline().OnRenderStart(context.Background(), "seq.puml")
	assert.Equal(t, 1, custom.renderStarts)

	Reset()
	assert.IsType(t, NoopPipelineHooks{}, Pipeline(), "Reset restores no-op hooks")
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	assert.Same(t, custom, Pipeline())
}

type testPipelineHooks struct {
	NoopPipelineHooks
	renderStarts int
}

func (h *testPipelineHooks) OnRenderStart(context.Context, string) { h.renderStarts++ }
