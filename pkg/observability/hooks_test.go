package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnConvertStart(ctx, "gml", "graphml")
	p.OnConvertComplete(ctx, "gml", "graphml", Counts{Nodes: 3}, time.Second, nil)

	s := NoopSpoolHooks{}
	s.OnSpill(ctx, 1<<20)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Spool().(NoopSpoolHooks); !ok {
		t.Error("Spool() should return NoopSpoolHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customSpool := &testSpoolHooks{}
	SetSpoolHooks(customSpool)
	if Spool() != customSpool {
		t.Error("SetSpoolHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Spool().(NoopSpoolHooks); !ok {
		t.Error("Reset() should restore NoopSpoolHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
	Reset()
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testPipelineHooks{}
	SetPipelineHooks(h)

	ctx := context.Background()
	Pipeline().OnConvertStart(ctx, "graphml", "gml")
	Pipeline().OnConvertComplete(ctx, "graphml", "gml", Counts{Nodes: 2, Edges: 1}, time.Millisecond, errors.New("boom"))

	if h.started != 1 || h.completed != 1 {
		t.Errorf("started=%d completed=%d, want 1/1", h.started, h.completed)
	}
	if h.last.Nodes != 2 || h.lastErr == nil {
		t.Errorf("last counts = %+v, err = %v", h.last, h.lastErr)
	}
}

type testPipelineHooks struct {
	started, completed int
	last               Counts
	lastErr            error
}

func (h *testPipelineHooks) OnConvertStart(context.Context, string, string) { h.started++ }
func (h *testPipelineHooks) OnConvertComplete(_ context.Context, _, _ string, c Counts, _ time.Duration, err error) {
	h.completed++
	h.last = c
	h.lastErr = err
}

type testSpoolHooks struct{ spills int }

func (h *testSpoolHooks) OnSpill(context.Context, int64) { h.spills++ }
