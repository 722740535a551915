package game

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"

	"neoncity/internal/city"
	"neoncity/internal/config"
	"neoncity/internal/world"
)

type recorder struct {
	snaps []city.FrameSnapshot
}

func (r *recorder) Publish(s city.FrameSnapshot) {
	r.snaps = append(r.snaps, s)
}

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(config.Default(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return w
}

func TestRunHeadless(t *testing.T) {
	w := newTestWorld(t)
	rec := &recorder{}
	var buf bytes.Buffer

	RunHeadless(context.Background(), w, 120, 1.0/60, false, rec, log.New(&buf, "", 0))

	if len(rec.snaps) != 120 {
		t.Fatalf("Expected 120 snapshots, got %d", len(rec.snaps))
	}
	if rec.snaps[119].Frame != 120 {
		t.Errorf("Expected last frame 120, got %d", rec.snaps[119].Frame)
	}
	if !strings.Contains(buf.String(), "Headless run: 120 frames") {
		t.Errorf("Expected a run summary, got %q", buf.String())
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	w := newTestWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	RunHeadless(ctx, w, 0, 1.0/60, false, nil, nil)
	if w.State().Frame != 0 {
		t.Errorf("Expected no frames after cancellation, got %d", w.State().Frame)
	}
}

func TestSelectUpdatesPanel(t *testing.T) {
	g := New(newTestWorld(t), nil)
	if lines := g.selectionLines(); len(lines) != 1 || lines[0] != "Click a building" {
		t.Errorf("Expected the empty prompt, got %v", lines)
	}

	var fired int
	g.OnSelect.AddListener(func(*city.Building) { fired++ })

	b := g.World.City.Standing()[0]
	g.Select(b)
	g.Select(b)
	if fired != 1 {
		t.Errorf("Expected one selection event, got %d", fired)
	}

	lines := g.selectionLines()
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "Height: ") || !strings.HasSuffix(lines[0], " m") {
		t.Errorf("Expected Height/Width/Depth rows, got %v", lines)
	}

	g.Select(nil)
	if g.Selected != nil {
		t.Errorf("Expected the selection to clear")
	}
}
