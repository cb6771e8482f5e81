package placement

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/scene"
)

func testScene(t *testing.T, segments, rings []string, radius float64) *scene.Scene {
	t.Helper()
	sc, err := scene.Build(scene.Config{
		Segments: segments,
		Rings:    rings,
		Radius:   radius,
		Profile:  geometry.RadiusProfile{Policy: geometry.PolicyEqualThickness},
	})
	if err != nil {
		t.Fatalf("scene.Build: %v", err)
	}
	return sc
}

func testParams() Params {
	return Params{
		Diameter:      10,
		Stroke:        1,
		LineStroke:    1,
		MaxIterations: 200,
		ShrinkStep:    2,
		MaxShrinks:    3,
	}
}

func blips(n int, segment, ring string) []radar.Blip {
	out := make([]radar.Blip, n)
	for i := range out {
		out[i] = radar.Blip{ID: i + 1, Name: fmt.Sprintf("b%d", i+1), Segment: segment, Ring: ring}
	}
	return out
}

func TestPlaceDeterministic(t *testing.T) {
	sc := testScene(t, []string{"A", "B", "C", "D"}, []string{"r1", "r2", "r3"}, 300)
	in := append(blips(20, "A", "r2"), blips(10, "C", "r1")...)
	for i := range in {
		in[i].ID = i + 1
	}

	run := func() []Outcome {
		return New(sc, NewRand(7), testParams()).Place(in)
	}
	a, b := run(), run()

	for i := range a {
		if a[i].Placed != b[i].Placed || a[i].Reason != b[i].Reason || a[i].Coordinate != b[i].Coordinate {
			t.Fatalf("outcome %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := New(sc, NewRand(8), testParams()).Place(in)
	if c[0].Coordinate == a[0].Coordinate {
		t.Error("different seeds produced the same first coordinate")
	}
}

func TestPlaceOrderSensitive(t *testing.T) {
	sc := testScene(t, []string{"A"}, []string{"only"}, 60)
	a := radar.Blip{ID: 1, Name: "a", Segment: "A", Ring: "only"}
	b := radar.Blip{ID: 2, Name: "b", Segment: "A", Ring: "only"}

	ab := New(sc, NewRand(1), testParams()).Place([]radar.Blip{a, b})
	ba := New(sc, NewRand(1), testParams()).Place([]radar.Blip{b, a})

	if !ab[1].Placed || !ba[0].Placed {
		t.Fatalf("expected b placed in both orders: %+v, %+v", ab[1], ba[0])
	}
	if ab[1].Coordinate == ba[0].Coordinate {
		t.Errorf("b landed on %+v in both orders", ab[1].Coordinate)
	}
	// b placed first takes the first draw, exactly as a did in the other order.
	if ba[0].Coordinate != ab[0].Coordinate {
		t.Errorf("first placement differs: %+v vs %+v", ba[0].Coordinate, ab[0].Coordinate)
	}
}

func TestPlaceNoCollisions(t *testing.T) {
	sc := testScene(t, []string{"A", "B", "C", "D"}, []string{"r1", "r2"}, 200)
	in := append(blips(40, "B", "r1"), blips(40, "B", "r2")...)
	for i := range in {
		in[i].ID = i + 1
	}
	p := testParams()
	out := New(sc, NewRand(3), p).Place(in)

	byRegion := make(map[int][]Outcome)
	for _, o := range out {
		if o.Placed {
			byRegion[o.Region] = append(byRegion[o.Region], o)
		}
	}
	if len(byRegion) != 2 {
		t.Fatalf("placements spread over %d regions, want 2", len(byRegion))
	}
	for region, placed := range byRegion {
		for j := 1; j < len(placed); j++ {
			later := placed[j]
			threshold := later.Diameter + p.Stroke
			for _, earlier := range placed[:j] {
				dx := math.Abs(later.Coordinate.X - earlier.Coordinate.X)
				dy := math.Abs(later.Coordinate.Y - earlier.Coordinate.Y)
				if dx < threshold && dy < threshold {
					t.Errorf("region %d: blip %d collides with blip %d", region, later.Blip.ID, earlier.Blip.ID)
				}
			}
		}
	}
}

func TestPlaceWithinBounds(t *testing.T) {
	sc := testScene(t, []string{"A", "B", "C", "D"}, []string{"r1", "r2", "r3"}, 400)
	var in []radar.Blip
	for _, seg := range sc.Segments() {
		for _, ring := range sc.Rings() {
			in = append(in, blips(8, seg, ring)...)
		}
	}
	for i := range in {
		in[i].ID = i + 1
	}
	p := testParams()
	pl := New(sc, NewRand(11), p)
	out := pl.Place(in)

	const eps = 1e-9
	for _, o := range out {
		if !o.Placed {
			t.Fatalf("blip %d not placed: %v", o.Blip.ID, o.Reason)
		}
		region := sc.Region(o.Region)
		radius, angle := geometry.ToPolar(o.Coordinate)
		inset := o.Diameter/2 + p.Stroke
		if radius < region.RadiusInner+inset-eps || radius > region.RadiusOuter-inset+eps {
			t.Errorf("blip %d radius %v outside [%v, %v]", o.Blip.ID, radius, region.RadiusInner+inset, region.RadiusOuter-inset)
		}
		if angle < region.AngleStart-eps || angle > region.AngleEnd+eps {
			t.Errorf("blip %d angle %v outside [%v, %v]", o.Blip.ID, angle, region.AngleStart, region.AngleEnd)
		}
		if region.RadiusInner == 0 {
			if apex := pl.apexRadius(region, o.Diameter); radius < apex-eps {
				t.Errorf("blip %d radius %v below apex clearance %v", o.Blip.ID, radius, apex)
			}
		}
	}
}

func ringNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("r%d", i+1)
	}
	return out
}

func TestPlaceThinRingShrinks(t *testing.T) {
	// 40 rings over radius 400: every ring is 10 units thick, so with a
	// stroke of 2 only blips of diameter 6 or less fit radially.
	sc := testScene(t, []string{"A", "B", "C", "D"}, ringNames(40), 400)
	region, err := sc.Find(scene.Path{Segment: "A", Ring: "r20"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		maxShrinks int
		wantPlaced bool
		wantDia    float64
		wantShrink int
	}{
		{"default budget shrinks then places", 0, true, 6, 8},
		{"small budget gives up", 3, false, 16, 3},
		{"shrinking disabled", -1, false, 22, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Diameter: 22, Stroke: 2, LineStroke: 2, MaxShrinks: tt.maxShrinks}
			o := New(sc, NewRand(1), p).Place(blips(1, "A", "r20"))[0]

			if o.Placed != tt.wantPlaced || o.Diameter != tt.wantDia || o.Shrinks != tt.wantShrink {
				t.Fatalf("got placed=%v dia=%v shrinks=%d, want %v %v %d",
					o.Placed, o.Diameter, o.Shrinks, tt.wantPlaced, tt.wantDia, tt.wantShrink)
			}
			if !o.Placed {
				if o.Reason != ReasonNoCoordinate || o.Attempts != 0 {
					t.Errorf("reason=%v attempts=%d, want %v and 0", o.Reason, o.Attempts, ReasonNoCoordinate)
				}
				return
			}
			if o.Attempts != 1 {
				t.Errorf("attempts = %d, want 1", o.Attempts)
			}
			radius, _ := geometry.ToPolar(o.Coordinate)
			inset := o.Diameter/2 + p.Stroke
			if radius < region.RadiusInner+inset-1e-9 || radius > region.RadiusOuter-inset+1e-9 {
				t.Errorf("radius %v outside [%v, %v]", radius, region.RadiusInner+inset, region.RadiusOuter-inset)
			}
		})
	}
}

func TestPlaceNarrowWedgeKeepsApexClearance(t *testing.T) {
	// 12 segments of 30° with 8 rings over radius 400: the innermost ring
	// is the wedge [0, 50], too narrow near the apex for the default blip.
	sc := testScene(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}, ringNames(8), 400)
	region, err := sc.Find(scene.Path{Segment: "a", Ring: "r1"})
	if err != nil {
		t.Fatal(err)
	}
	p := DefaultParams()
	pl := New(sc, NewRand(2), p)
	if apex := pl.apexRadius(region, p.Diameter); apex <= region.RadiusOuter-p.Stroke-p.Diameter/2 {
		t.Fatalf("apex clearance %v leaves room for the default blip", apex)
	}

	out := pl.Place(blips(3, "a", "r1"))
	if !out[0].Placed || out[0].Shrinks == 0 {
		t.Fatalf("first blip should fit after shrinking: %+v", out[0])
	}
	for _, o := range out {
		if !o.Placed {
			continue
		}
		radius, angle := geometry.ToPolar(o.Coordinate)
		if apex := pl.apexRadius(region, o.Diameter); radius < apex-1e-9 {
			t.Errorf("blip %d radius %v below apex clearance %v (dia %v)", o.Blip.ID, radius, apex, o.Diameter)
		}
		if limit := region.RadiusOuter - p.Stroke - o.Diameter/2; radius > limit+1e-9 {
			t.Errorf("blip %d radius %v above %v", o.Blip.ID, radius, limit)
		}
		if angle < region.AngleStart-1e-9 || angle > region.AngleEnd+1e-9 {
			t.Errorf("blip %d angle %v outside the wedge", o.Blip.ID, angle)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	p := New(nil, nil, Params{Diameter: 10, Stroke: 1})
	if p.params.MaxIterations != radar.DefaultMaxIterations ||
		p.params.ShrinkStep != radar.DefaultShrinkStep ||
		p.params.MaxShrinks != radar.DefaultMaxShrinks {
		t.Errorf("params = %+v, want option defaults", p.params)
	}
	if q := New(nil, nil, Params{MaxShrinks: -1}); q.params.MaxShrinks != -1 {
		t.Errorf("negative MaxShrinks replaced: %d", q.params.MaxShrinks)
	}
}

func TestPlaceResetsIndex(t *testing.T) {
	sc := testScene(t, []string{"A"}, []string{"only"}, 60)
	pl := New(sc, NewRand(1), testParams())
	in := blips(1, "A", "only")

	first := pl.Place(in)[0]
	second := pl.Place(in)[0]
	if !first.Placed || !second.Placed {
		t.Fatalf("expected both runs to place: %+v, %+v", first, second)
	}
	if second.Attempts != 1 {
		t.Errorf("second run attempts = %d, want 1 against an empty index", second.Attempts)
	}
	if n := pl.Index().Len(); n != 1 {
		t.Errorf("index holds %d points, want only the last run's 1", n)
	}
}

func TestPlaceSkipReasons(t *testing.T) {
	sc, err := scene.Build(scene.Config{
		Segments:    []string{"A"},
		SubSegments: []string{"x"},
		Rings:       []string{"r"},
		Radius:      100,
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		blip radar.Blip
		want SkipReason
	}{
		{"segment missing", radar.Blip{ID: 1, Segment: "nope", Ring: "nope"}, ReasonSegmentNotFound},
		{"segment missing ring ok", radar.Blip{ID: 2, Segment: "nope", Ring: "r"}, ReasonSegmentNotFound},
		{"sub-segment missing", radar.Blip{ID: 3, Segment: "A", SubSegment: "nope", Ring: "nope"}, ReasonSubSegmentNotFound},
		{"ring missing", radar.Blip{ID: 4, Segment: "A", SubSegment: "x", Ring: "nope"}, ReasonRingNotFound},
		{"placed", radar.Blip{ID: 5, Segment: "A", SubSegment: "x", Ring: "r"}, ReasonNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var skipped []SkipReason
			obs := ObserverFuncs{Skipped: func(_ radar.Blip, r SkipReason) { skipped = append(skipped, r) }}
			out := New(sc, NewRand(1), testParams(), WithObserver(obs)).Place([]radar.Blip{tt.blip})[0]

			if out.Reason != tt.want {
				t.Errorf("Reason = %v, want %v", out.Reason, tt.want)
			}
			if tt.want == ReasonNone {
				if !out.Placed || len(skipped) != 0 {
					t.Errorf("expected placement, got %+v", out)
				}
				return
			}
			if out.Placed || out.Region != -1 || out.Attempts != 0 {
				t.Errorf("unresolved blip should not be searched: %+v", out)
			}
			if len(skipped) != 1 || skipped[0] != tt.want {
				t.Errorf("observer saw %v, want [%v]", skipped, tt.want)
			}
		})
	}
}

func TestPlaceGivesUp(t *testing.T) {
	sc := testScene(t, []string{"A"}, []string{"r"}, 50)
	p := Params{Diameter: 20, Stroke: 1, LineStroke: 1, MaxIterations: 50, ShrinkStep: 2, MaxShrinks: 3}
	out := New(sc, NewRand(5), p).Place(blips(200, "A", "r"))

	s := Summarize(out)
	if s.Placed == 0 {
		t.Fatal("expected some blips to fit")
	}
	if s.ByReason[ReasonNoCoordinate] == 0 {
		t.Fatal("expected some blips to give up")
	}
	for _, o := range out {
		if o.Shrinks > p.MaxShrinks {
			t.Errorf("blip %d shrank %d times, limit %d", o.Blip.ID, o.Shrinks, p.MaxShrinks)
		}
		if o.Diameter <= 0 {
			t.Errorf("blip %d diameter %v", o.Blip.ID, o.Diameter)
		}
		if !o.Placed && o.Reason == ReasonNoCoordinate {
			if o.Shrinks != p.MaxShrinks || o.Diameter != 14 {
				t.Errorf("gave up at shrinks=%d dia=%v, want 3 and 14", o.Shrinks, o.Diameter)
			}
			if o.Attempts != (p.MaxShrinks+1)*p.MaxIterations {
				t.Errorf("attempts = %d, want %d", o.Attempts, (p.MaxShrinks+1)*p.MaxIterations)
			}
		}
	}
}

func TestPlaceGivesUpBeforeZeroDiameter(t *testing.T) {
	sc := testScene(t, []string{"A"}, []string{"r"}, 1)
	p := Params{Diameter: 30, Stroke: 1, MaxIterations: 10, ShrinkStep: 4, MaxShrinks: 100}
	out := New(sc, NewRand(1), p).Place(blips(1, "A", "r"))[0]

	if out.Placed || out.Reason != ReasonNoCoordinate {
		t.Fatalf("expected give up, got %+v", out)
	}
	// 30, 26, ..., 2; the next step would reach -2.
	if out.Diameter != 2 || out.Shrinks != 7 {
		t.Errorf("gave up at dia=%v shrinks=%d, want 2 and 7", out.Diameter, out.Shrinks)
	}
	if out.Attempts != 0 {
		t.Errorf("attempts = %d, want 0 for a ring that never fits", out.Attempts)
	}
}

func TestApexRadius(t *testing.T) {
	p := New(nil, NewRand(1), Params{Stroke: 2, LineStroke: 2})
	quarter := scene.Region{AngleStart: 0, AngleEnd: math.Pi / 2}
	// θ = 45°, tan θ = 1: 2 + (22 + 5)/2
	if got, want := p.apexRadius(quarter, 22), 15.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("apexRadius(quarter) = %v, want %v", got, want)
	}
	half := scene.Region{AngleStart: 0, AngleEnd: math.Pi}
	if got := p.apexRadius(half, 22); math.Abs(got-2) > 1e-9 {
		t.Errorf("apexRadius(half) = %v, want 2", got)
	}
}

func TestIndexCollides(t *testing.T) {
	ix := NewIndex()
	ix.Add(1, geometry.Coordinate{X: 0, Y: 0})

	tests := []struct {
		name   string
		region int
		c      geometry.Coordinate
		want   bool
	}{
		{"same point", 1, geometry.Coordinate{X: 0, Y: 0}, true},
		{"close on both axes", 1, geometry.Coordinate{X: 9, Y: -9}, true},
		{"far on x", 1, geometry.Coordinate{X: 10, Y: 0}, false},
		{"far on y", 1, geometry.Coordinate{X: 0, Y: -12}, false},
		{"diagonal box corner", 1, geometry.Coordinate{X: 9.9, Y: 9.9}, true},
		{"other region", 2, geometry.Coordinate{X: 0, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.Collides(tt.region, tt.c, 10); got != tt.want {
				t.Errorf("Collides(%d, %+v) = %v, want %v", tt.region, tt.c, got, tt.want)
			}
		})
	}
	if ix.Len() != 1 || len(ix.Points(1)) != 1 {
		t.Errorf("Len() = %d, Points(1) = %v", ix.Len(), ix.Points(1))
	}
}

func TestSkipReasonString(t *testing.T) {
	want := map[SkipReason]string{
		ReasonSegmentNotFound:    "segment not found",
		ReasonSubSegmentNotFound: "sub-segment not found",
		ReasonRingNotFound:       "ring not found",
		ReasonNoCoordinate:       "no suitable coordinates found",
	}
	for r, s := range want {
		if r.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(r), r.String(), s)
		}
	}
}

func TestObservers(t *testing.T) {
	var placed, skipped int
	counter := ObserverFuncs{
		Placed:  func(radar.Blip, geometry.Coordinate) { placed++ },
		Skipped: func(radar.Blip, SkipReason) { skipped++ },
	}
	obs := Observers(counter, counter, NoopObserver{}, LogObserver{})
	obs.OnBlipPlaced(radar.Blip{}, geometry.Coordinate{})
	obs.OnBlipSkipped(radar.Blip{}, ReasonRingNotFound)
	if placed != 2 || skipped != 2 {
		t.Errorf("placed=%d skipped=%d, want 2 and 2", placed, skipped)
	}
}
