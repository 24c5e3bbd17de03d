package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "nodes", "text")
	r.OnRenderComplete(ctx, "nodes", "text", 6, time.Millisecond, nil)

	o := NoopOutputHooks{}
	o.OnOutputWritten(ctx, "tree.txt", 128)
	o.OnOutputError(ctx, "tree.txt", errors.New("disk full"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Output() should return NoopOutputHooks by default")
	}

	customRender := &recordingRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customOutput := &testOutputHooks{}
	SetOutputHooks(customOutput)
	if Output() != customOutput {
		t.Error("SetOutputHooks should set custom hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Reset() should restore NoopOutputHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &recordingRenderHooks{}
	SetRenderHooks(custom)
	SetRenderHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingRenderHooks{}
	SetRenderHooks(rec)

	ctx := context.Background()
	Render().OnRenderStart(ctx, "shared", "dot")
	Render().OnRenderComplete(ctx, "shared", "dot", 4, time.Millisecond, nil)

	if rec.started != "shared/dot" {
		t.Errorf("started = %q, want %q", rec.started, "shared/dot")
	}
	if rec.lines != 4 {
		t.Errorf("lines = %d, want 4", rec.lines)
	}
}

// Test implementations
type recordingRenderHooks struct {
	NoopRenderHooks
	started string
	lines   int
}

func (r *recordingRenderHooks) OnRenderStart(_ context.Context, sample, format string) {
	r.started = sample + "/" + format
}

func (r *recordingRenderHooks) OnRenderComplete(_ context.Context, _, _ string, lines int, _ time.Duration, _ error) {
	r.lines = lines
}

type testOutputHooks struct{ NoopOutputHooks }
