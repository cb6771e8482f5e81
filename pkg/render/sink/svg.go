package sink

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/layout"
	"github.com/matzehuels/techradar/pkg/placement"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/render/styles"
	"github.com/matzehuels/techradar/pkg/scene"
)

const blipInteractionJS = `
    document.querySelectorAll('.blip').forEach(el => {
      const seg = document.getElementById('segment-' + el.dataset.segmentIndex);
      el.addEventListener('mouseenter', () => seg && seg.classList.add('highlight'));
      el.addEventListener('mouseleave', () => seg && seg.classList.remove('highlight'));
    });`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	title       string
	labels      bool
	ringLabels  bool
	responsive  bool
	interactive bool
	css         string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithTitle(t string) SVGOption       { return func(r *svgRenderer) { r.title = t } }
func WithoutLabels() SVGOption           { return func(r *svgRenderer) { r.labels = false } }
func WithRingLabels() SVGOption          { return func(r *svgRenderer) { r.ringLabels = true } }
func WithResponsive() SVGOption          { return func(r *svgRenderer) { r.responsive = true } }
func WithInteraction() SVGOption         { return func(r *svgRenderer) { r.interactive = true } }

// WithCSS appends a stylesheet after the style's own, so its rules win.
func WithCSS(css string) SVGOption { return func(r *svgRenderer) { r.css = css } }

// RenderSVG draws the layout: segment sectors with their ring bands,
// dividing lines, segment labels along the outer arc and every placed blip.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	o := l.Options
	d := l.Diameter()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	if o.Decimals > 0 {
		canvas.Decimals = o.Decimals
	}
	if r.responsive {
		canvas.Startraw(
			fmt.Sprintf(`viewBox="%s %s %s %s"`, num(-d/2), num(-d/2), num(d), num(d)),
			`width="100%"`, `height="100%"`,
		)
	} else {
		canvas.Startview(d, d, -d/2, -d/2, d, d)
	}
	if title := cmp.Or(r.title, l.Title); title != "" {
		canvas.Title(title)
	}

	r.style.RenderDefs(canvas)
	if r.css != "" {
		canvas.Style("text/css", r.css)
	}

	renderSegments(canvas, &r, l)
	renderBlips(canvas, &r, l)

	if r.interactive {
		canvas.Script("application/javascript", blipInteractionJS)
	}
	canvas.End()
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderSegments(canvas *svg.SVG, r *svgRenderer, l layout.Layout) {
	sc := l.Scene
	o := l.Options
	radius := sc.Radius()
	dec := canvas.Decimals

	canvas.Group(`class="segments"`)
	for _, seg := range sc.OfKind(scene.KindSegment) {
		canvas.Group(
			`class="segment"`,
			attr("id", fmt.Sprintf("segment-%d", seg.Ordinal)),
			attr("data-segment", seg.Label),
			attr("data-angle-start", fnum(seg.AngleStart, dec)),
			attr("data-angle-end", fnum(seg.AngleEnd, dec)),
		)

		for _, ring := range ringsUnder(sc, seg) {
			canvas.Group(
				fmt.Sprintf(`class="ring ring-%d"`, ring.Ordinal),
				attr("data-ring", ring.Label),
				attr("data-radius-inner", fnum(ring.RadiusInner, dec)),
				attr("data-radius-outer", fnum(ring.RadiusOuter, dec)),
			)
			canvas.Path(ringPath(ring, dec), attr("stroke-width", num(o.RingStroke)))
			canvas.Gend()
		}

		stroke := attr("stroke-width", num(o.SegmentStroke))
		open := geometry.ToCartesian(radius, seg.AngleStart)
		canvas.Line(0, 0, open.X, open.Y, `class="main open"`, stroke)
		for i, child := range seg.Children {
			sub := sc.Region(child)
			if sub.Kind != scene.KindSubSegment || i == 0 {
				continue
			}
			p := geometry.ToCartesian(radius, sub.AngleStart)
			canvas.Line(0, 0, p.X, p.Y, fmt.Sprintf(`class="sub sub-%d"`, sub.Ordinal), stroke)
		}
		end := geometry.ToCartesian(radius, seg.AngleEnd)
		canvas.Line(0, 0, end.X, end.Y, `class="main close"`, stroke)

		if r.labels {
			renderSegmentLabel(canvas, l, seg)
		}
		canvas.Gend()
	}
	if r.ringLabels {
		renderRingLabels(canvas, l)
	}
	canvas.Gend()
}

// ringsUnder returns the ring bands drawn for a segment. With sub-segments
// the bands of the first sub-segment span the whole segment.
func ringsUnder(sc *scene.Scene, seg scene.Region) []scene.Region {
	var out []scene.Region
	for _, child := range seg.Children {
		c := sc.Region(child)
		switch c.Kind {
		case scene.KindRing:
			out = append(out, c)
		case scene.KindSubSegment:
			for _, i := range c.Children {
				ring := sc.Region(i)
				ring.AngleStart, ring.AngleEnd = seg.AngleStart, seg.AngleEnd
				out = append(out, ring)
			}
			return out
		}
	}
	return out
}

// ringPath outlines an annular sector: along the inner arc clockwise, out
// to the outer arc and back counter-clockwise.
func ringPath(ring scene.Region, dec int) string {
	var b strings.Builder
	in, out := ring.RadiusInner, ring.RadiusOuter
	if in > 0 {
		p := geometry.ToCartesian(in, ring.AngleStart)
		fmt.Fprintf(&b, "M %s", pt(p, dec))
		arcTo(&b, in, ring.AngleStart, ring.AngleEnd, true, dec)
	} else {
		b.WriteString("M 0 0")
	}
	fmt.Fprintf(&b, " L %s", pt(geometry.ToCartesian(out, ring.AngleEnd), dec))
	arcTo(&b, out, ring.AngleEnd, ring.AngleStart, false, dec)
	b.WriteString(" Z")
	return b.String()
}

// arcTo appends arc commands from angle a to angle b. Arcs wider than a
// half turn are split so that full circles stay drawable.
func arcTo(b *strings.Builder, r, from, to float64, clockwise bool, dec int) {
	sweep := 0
	if clockwise {
		sweep = 1
	}
	if math.Abs(to-from) > math.Pi {
		mid := (from + to) / 2
		arcTo(b, r, from, mid, clockwise, dec)
		from = mid
	}
	p := geometry.ToCartesian(r, to)
	fmt.Fprintf(b, " A %s %s 0 0 %d %s", fnum(r, dec), fnum(r, dec), sweep, pt(p, dec))
}

func renderSegmentLabel(canvas *svg.SVG, l layout.Layout, seg scene.Region) {
	o := l.Options
	dec := canvas.Decimals
	id := fmt.Sprintf("segment-%d-label-path", seg.Ordinal)
	r := l.Scene.Radius() + o.RingStroke

	var d strings.Builder
	fmt.Fprintf(&d, "M %s", pt(geometry.ToCartesian(r, seg.AngleStart), dec))
	arcTo(&d, r, seg.AngleStart, seg.AngleEnd, true, dec)

	canvas.Def()
	canvas.Path(d.String(), attr("id", id), `fill="none"`)
	canvas.DefEnd()

	fmt.Fprintf(canvas.Writer, `<text class="segment-label" font-size="%s" font-family="%s" fill="%s" text-anchor="middle">`,
		num(o.Label.Size), esc(o.Label.Font), esc(o.Label.Color))
	fmt.Fprintf(canvas.Writer, `<textPath xlink:href="#%s" startOffset="50%%"><tspan dy="%s">%s</tspan></textPath></text>`+"\n",
		id, num(-o.Label.Offset), html.EscapeString(seg.Label))
}

// renderRingLabels writes ring names along the opening line of the first
// segment, centered in each band.
func renderRingLabels(canvas *svg.SVG, l layout.Layout) {
	sc := l.Scene
	segs := sc.OfKind(scene.KindSegment)
	if len(segs) == 0 {
		return
	}
	o := l.Options
	radii := sc.Radii()
	a := segs[0].AngleStart
	size := o.Blip.FontSize
	for i, name := range sc.Rings() {
		if i+1 >= len(radii) {
			break
		}
		p := geometry.ToCartesian((radii[i]+radii[i+1])/2, a)
		canvas.Text(p.X+size/2, p.Y, name,
			`class="ring-label"`,
			attr("font-size", num(size)),
			attr("font-family", o.Label.Font),
			`dominant-baseline="central"`,
		)
	}
}

func renderBlips(canvas *svg.SVG, r *svgRenderer, l layout.Layout) {
	o := l.Options
	canvas.Group(`class="blips"`)
	for _, out := range l.Placed() {
		b := out.Blip
		ring := l.Scene.Region(out.Region)
		label := fmt.Sprintf("%d. %s", b.ID, b.Name)

		attrs := []string{
			`class="blip"`,
			attr("id", fmt.Sprintf("blip-%d", b.ID)),
			attr("label", label),
			attr("data-tooltip", label),
			attr("data-num-id", strconv.Itoa(b.ID)),
			attr("data-segment", b.Segment),
			attr("data-segment-index", strconv.Itoa(segmentOrdinal(l.Scene, ring))),
			attr("data-ring", b.Ring),
		}
		if b.SubSegment != "" {
			attrs = append(attrs, attr("data-sub-segment", b.SubSegment))
		}
		if len(b.Payload) > 0 {
			if data, err := json.Marshal(b.Payload); err == nil {
				attrs = append(attrs, attr("data-payload", string(data)))
			}
		}
		canvas.Group(attrs...)
		canvas.Title(label)
		r.style.RenderBlip(canvas, toStyleBlip(out, ring, o.Blip))
		canvas.Gend()
	}
	canvas.Gend()
}

func segmentOrdinal(sc *scene.Scene, r scene.Region) int {
	for r.Parent >= 0 {
		r = sc.Region(r.Parent)
	}
	return r.Ordinal
}

func toStyleBlip(out placement.Outcome, ring scene.Region, bo radar.BlipOptions) styles.Blip {
	return styles.Blip{
		ID:        out.Blip.ID,
		Name:      out.Blip.Name,
		Ring:      ring.Ordinal,
		RingLabel: ring.Label,
		CX:        out.Coordinate.X,
		CY:        out.Coordinate.Y,
		Diameter:  out.Diameter,
		Stroke:    bo.Stroke,
		Font:      bo.Font,
		FontSize:  bo.FontSize,
		Weight:    bo.Weight,
	}
}

func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, esc(value))
}

func esc(s string) string { return html.EscapeString(s) }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func fnum(v float64, dec int) string {
	return strconv.FormatFloat(geometry.RoundDec(v, dec), 'f', -1, 64)
}

func pt(c geometry.Coordinate, dec int) string {
	return fnum(c.X, dec) + " " + fnum(c.Y, dec)
}
