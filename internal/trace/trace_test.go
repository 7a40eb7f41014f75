package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopePass, true},
		{LevelDetail, ScopeArray, false},
		{LevelDebug, ScopeArray, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)

	run := Begin(tr, ScopeDriver, "fmt", 0)
	file := Begin(tr, ScopeFile, "file:a.ts", run.ID())
	Begin(tr, ScopeArray, "array", file.ID()).End("") // filtered by level
	file.WithExtra("arrays", "2").End("changed")
	run.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), buf.String())
	}
	var ev struct {
		Kind     string            `json:"kind"`
		Scope    string            `json:"scope"`
		Name     string            `json:"name"`
		ParentID uint64            `json:"parent_id"`
		Detail   string            `json:"detail"`
		Extra    map[string]string `json:"extra"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Scope != "file" || ev.Detail != "changed" || ev.Extra["arrays"] != "2" || ev.ParentID != run.ID() {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestRingTracerKeepsLastEvents(t *testing.T) {
	tr := NewRingTracer(3, LevelDebug)
	for i := 0; i < 5; i++ {
		Begin(tr, ScopeArray, "array", 0)
	}
	snap := tr.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 events, got %d", len(snap))
	}
	for i := 1; i < len(snap); i++ {
		if snap[i].Seq <= snap[i-1].Seq {
			t.Fatalf("events out of order: %d then %d", snap[i-1].Seq, snap[i].Seq)
		}
	}
	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("unexpected dump:\n%s", buf.String())
	}
}

func TestContextDefaultsToNop(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop tracer")
	}
	span := Begin(FromContext(context.Background()), ScopeDriver, "x", 0)
	if span.End("") != 0 {
		t.Fatal("nop span measured time")
	}
	tr := NewRingTracer(4, LevelPhase)
	if FromContext(WithTracer(context.Background(), tr)) != tr {
		t.Fatal("tracer not found in context")
	}
}

func TestParentPropagation(t *testing.T) {
	ctx := context.Background()
	if ParentFrom(ctx) != 0 {
		t.Fatal("expected no parent")
	}
	inert := Begin(Nop, ScopeDriver, "off", 0)
	if WithParent(ctx, inert) != ctx {
		t.Fatal("inert span changed the context")
	}

	tr := NewRingTracer(8, LevelDetail)
	run := Begin(tr, ScopeDriver, "fmt", 0)
	ctx = WithParent(ctx, run)
	file := Begin(tr, ScopeFile, "file:a.ts", ParentFrom(ctx))
	file.End("")
	run.End("")

	snap := tr.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("expected 4 events, got %d", len(snap))
	}
	if snap[1].ParentID != run.ID() || snap[1].SpanID != file.ID() {
		t.Fatalf("file span not below run span: %+v", snap[1])
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatAuto, "text": FormatText, "NDJSON": FormatNDJSON, "json": FormatNDJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("chrome"); err == nil {
		t.Error("expected error for unknown format")
	}
}
