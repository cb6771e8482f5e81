package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matzehuels/techradar/pkg/buildinfo"
	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/geometry"
	pkgio "github.com/matzehuels/techradar/pkg/io"
	"github.com/matzehuels/techradar/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// RadiiResponse is the body of GET /v1/radii.
type RadiiResponse struct {
	Policy   geometry.Policy `json:"policy"`
	Radius   float64         `json:"radius"`
	Rings    int             `json:"rings"`
	Segments int             `json:"segments"`
	Radii    []float64       `json:"radii"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleRadii(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	policy, err := geometry.ParsePolicy(queryOr(q, "policy", string(geometry.PolicyEqualArea)))
	if err != nil {
		writeError(w, err)
		return
	}
	if policy == geometry.PolicyCustom {
		writeError(w, errors.New(errors.ErrCodeInvalidPolicy, "custom radius policy is not available over HTTP"))
		return
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidRadius, "radius must be a number, got %q", q.Get("radius")))
		return
	}
	rings, err := strconv.Atoi(q.Get("rings"))
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidRingCount, "rings must be an integer, got %q", q.Get("rings")))
		return
	}
	segments, err := strconv.Atoi(queryOr(q, "segments", "1"))
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidSegmentCount, "segments must be an integer, got %q", q.Get("segments")))
		return
	}

	radii, err := geometry.RadiusProfile{Policy: policy}.Compute(radius, rings, segments)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RadiiResponse{
		Policy:   policy,
		Radius:   radius,
		Rings:    rings,
		Segments: segments,
		Radii:    radii,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	def, err := pkgio.ReadDefinition(http.MaxBytesReader(w, r.Body, MaxBodyBytes), pkgio.FormatJSON)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Definition = def
	opts.Logger = s.logger.With("request", RequestID(r.Context()))

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	format := opts.Formats[0]
	h := w.Header()
	h.Set("Content-Type", contentTypes[format])
	h.Set("X-Run-ID", result.RunID.String())
	h.Set("X-Blips-Placed", strconv.Itoa(result.Stats.Placed))
	h.Set("X-Blips-Skipped", strconv.Itoa(result.Stats.Skipped))
	if result.CacheInfo.RenderHit {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

// renderOptions maps query parameters onto pipeline options.
func renderOptions(q url.Values) (pipeline.Options, error) {
	format := queryOr(q, "format", pipeline.FormatSVG)
	if err := pipeline.ValidateFormat(format); err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		Formats: []string{format},
		Style:   q.Get("style"),
		Shape:   q.Get("shape"),
		Title:   q.Get("title"),
	}

	var err error
	if v := q.Get("seed"); v != "" {
		if opts.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "seed must be a non-negative integer, got %q", v)
		}
	}
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be a number, got %q", v)
		}
	}
	flags := []struct {
		name string
		dst  *bool
	}{
		{"no_labels", &opts.NoLabels},
		{"ring_labels", &opts.RingLabels},
		{"interactive", &opts.Interactive},
		{"responsive", &opts.Responsive},
		{"refresh", &opts.Refresh},
	}
	for _, f := range flags {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		if *f.dst, err = strconv.ParseBool(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", f.name, v)
		}
	}
	return opts, nil
}

func queryOr(q url.Values, key, fallback string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, errors.HTTPStatus(err), errorBody{Error: errors.UserMessage(err), Code: string(code)})
}
