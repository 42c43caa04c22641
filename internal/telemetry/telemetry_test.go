package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmitterWritesJSONL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	e, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	ts := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: ts, Kind: KindLoadStart, Stage: "missions"},
		{Timestamp: ts, Kind: KindLoadDone, Stage: "missions", Data: map[string]int{"rows": 10}},
		{Timestamp: ts, Kind: KindReconcileDone, Data: map[string]int{"discrepancies": 2}},
	}
	for _, evt := range events {
		if err := e.Emit(evt); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var got []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var evt Event
		if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", len(got)+1, err)
		}
		got = append(got, evt)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
	for i, evt := range got {
		if evt.Kind != events[i].Kind {
			t.Errorf("event %d kind = %q, want %q", i, evt.Kind, events[i].Kind)
		}
	}
}

func TestEmitterAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	for i := 0; i < 2; i++ {
		e, err := NewEmitter(path)
		if err != nil {
			t.Fatalf("NewEmitter: %v", err)
		}
		if err := e.Emit(Event{Kind: KindStatsDone}); err != nil {
			t.Fatalf("Emit: %v", err)
		}
		if err := e.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("got %d lines, want 2", lines)
	}
}

func TestNilEmitter(t *testing.T) {
	t.Parallel()

	var e *Emitter
	if err := e.Emit(Event{Kind: KindFinding}); err != nil {
		t.Errorf("nil Emit returned %v", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("nil Close returned %v", err)
	}
}
