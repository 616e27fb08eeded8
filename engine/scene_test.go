package engine

import (
	"testing"
	"time"
)

// tracer records which hooks ran, tagged with its name
type tracer struct {
	name string
	log  *[]string
}

func (tr *tracer) Start(ctx *Context) { *tr.log = append(*tr.log, tr.name+".start") }

func (tr *tracer) Stop(ctx *Context) { *tr.log = append(*tr.log, tr.name+".stop") }

func (tr *tracer) Update(ctx *Context, elapsed time.Duration) { *tr.log = append(*tr.log, tr.name+".update") }

func (tr *tracer) FixedUpdate(ctx *Context, d time.Duration) { *tr.log = append(*tr.log, tr.name+".fixed") }

// drawOnly implements only the render hook
type drawOnly struct {
	log *[]string
}

func (d *drawOnly) Update(ctx *Context, elapsed time.Duration) {
	*d.log = append(*d.log, "drawOnly.update")
}

func TestSceneBroadcastsInInsertionOrder(t *testing.T) {
	var log []string
	s := NewScene(&tracer{name: "a", log: &log}, &tracer{name: "b", log: &log})
	s.Add(&tracer{name: "c", log: &log})

	s.Start(nil)
	s.Update(nil, 0)
	s.FixedUpdate(nil, 0)
	s.Stop(nil)

	want := []string{
		"a.start", "b.start", "c.start",
		"a.update", "b.update", "c.update",
		"a.fixed", "b.fixed", "c.fixed",
		"a.stop", "b.stop", "c.stop",
	}
	if len(log) != len(want) {
		t.Fatalf("hook log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("hook log = %v, want %v", log, want)
		}
	}
}

func TestSceneSkipsUnimplementedHooks(t *testing.T) {
	var log []string
	s := NewScene(&drawOnly{log: &log}, &tracer{name: "t", log: &log})

	s.Start(nil)
	s.FixedUpdate(nil, 0)
	s.Update(nil, 0)

	want := []string{"t.start", "t.fixed", "drawOnly.update", "t.update"}
	if len(log) != len(want) {
		t.Fatalf("hook log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("hook log = %v, want %v", log, want)
		}
	}
}

func TestEmptySceneIsSafe(t *testing.T) {
	s := NewScene()
	s.Start(nil)
	s.Update(nil, time.Millisecond)
	s.FixedUpdate(nil, time.Millisecond)
	s.Stop(nil)
}
