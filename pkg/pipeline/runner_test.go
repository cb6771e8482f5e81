package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/techradar/pkg/cache"
	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/observability"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestExecute(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{
		Definition: testDefinition(),
		Formats:    []string{"svg", "json", "dot"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.RunID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("RunID not set")
	}
	if res.DefinitionHash == "" {
		t.Error("DefinitionHash not set")
	}
	if !bytes.Contains(res.Artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact missing root element")
	}
	if !bytes.Contains(res.Artifacts["json"], []byte(`"blips"`)) {
		t.Error("json artifact missing blips")
	}
	if !bytes.HasPrefix(res.Artifacts["dot"], []byte("digraph")) {
		t.Error("dot artifact missing graph header")
	}

	s := res.Stats
	if s.Segments != 3 || s.Rings != 3 || s.Blips != 4 {
		t.Errorf("Stats = %+v", s)
	}
	if s.Placed != 3 || s.Skipped != 1 {
		t.Errorf("Placed=%d Skipped=%d, want 3/1", s.Placed, s.Skipped)
	}
}

func TestExecuteDeterministic(t *testing.T) {
	a, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Definition: testDefinition()})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Definition: testDefinition()})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts["svg"], b.Artifacts["svg"]) {
		t.Error("same definition and seed should render identical SVG")
	}

	c, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Definition: testDefinition(), Seed: 99})
	if err != nil {
		t.Fatal(err)
	}
	if a.DefinitionHash == c.DefinitionHash {
		t.Error("seed override should change the definition hash")
	}
}

func TestExecuteCache(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Definition: testDefinition(), Formats: []string{"svg", "json"}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.Hits != 0 || first.CacheInfo.RenderHit {
		t.Errorf("first run CacheInfo = %+v, want cold", first.CacheInfo)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheInfo.Hits != 2 || !second.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want all hits", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached svg differs from rendered svg")
	}

	// A new format only renders what is missing.
	mixed, err := r.Execute(ctx, Options{Definition: testDefinition(), Formats: []string{"svg", "dot"}})
	if err != nil {
		t.Fatal(err)
	}
	if mixed.CacheInfo.Hits != 1 || mixed.CacheInfo.RenderHit {
		t.Errorf("mixed run CacheInfo = %+v, want one hit", mixed.CacheInfo)
	}

	refreshed, err := r.Execute(ctx, Options{Definition: testDefinition(), Formats: []string{"svg"}, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.Hits != 0 {
		t.Errorf("refresh run should bypass cache, got %d hits", refreshed.CacheInfo.Hits)
	}
}

func TestExecuteRenderOptionsSplitCache(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	if _, err := r.Execute(ctx, Options{Definition: testDefinition()}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(ctx, Options{Definition: testDefinition(), Style: "mono"})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.Hits != 0 {
		t.Error("a different style must not hit the cached artifact")
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil, nil).Execute(ctx, Options{Definition: testDefinition()})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestExecuteInvalid(t *testing.T) {
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Definition: testDefinition(),
		Formats:    []string{"gif"},
	})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestExecuteCustomRadii(t *testing.T) {
	def := testDefinition()
	def.Options.Radii = "custom"
	called := false

	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{
		Definition: def,
		RadiusFunc: func(radius float64, numRings, _ int) ([]float64, error) {
			called = true
			out := make([]float64, numRings+1)
			for i := range out {
				out[i] = radius * float64(i) / float64(numRings)
			}
			return out, nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("custom radius function not used")
	}
	if res.CacheInfo.Hits != 0 {
		t.Error("custom functions should bypass the cache")
	}

	again, err := r.Execute(context.Background(), Options{Definition: testDefinition()})
	if err != nil {
		t.Fatal(err)
	}
	if again.CacheInfo.Hits != 0 {
		t.Error("custom run should not have written to the cache")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopPlacementHooks

	mu       sync.Mutex
	events   []string
	placed   []int
	skipped  map[int]string
	rendered []string
}

func (h *recordingHooks) OnLayoutStart(_ context.Context, segments, rings, blips int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "layout-start")
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, placed, skipped int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "layout-complete")
}

func (h *recordingHooks) OnRenderStart(_ context.Context, formats []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "render-start")
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "render-complete")
	h.rendered = formats
}

func (h *recordingHooks) OnBlipPlaced(_ context.Context, id, attempts, shrinks int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.placed = append(h.placed, id)
}

func (h *recordingHooks) OnBlipSkipped(_ context.Context, id int, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.skipped == nil {
		h.skipped = make(map[int]string)
	}
	h.skipped[id] = reason
}

func TestExecuteHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetPlacementHooks(h)
	t.Cleanup(observability.Reset)

	if _, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Definition: testDefinition()}); err != nil {
		t.Fatal(err)
	}

	want := []string{"layout-start", "layout-complete", "render-start", "render-complete"}
	if len(h.events) != len(want) {
		t.Fatalf("events = %v, want %v", h.events, want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, h.events[i], want[i])
		}
	}
	if len(h.placed) != 3 {
		t.Errorf("placed = %v, want 3 blips", h.placed)
	}
	if h.skipped[4] != "segment not found" {
		t.Errorf("skipped = %v, want blip 4 with segment not found", h.skipped)
	}
}
