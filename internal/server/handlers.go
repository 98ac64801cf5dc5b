package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/randpix/pkg/buildinfo"
	"github.com/matzehuels/randpix/pkg/cache"
	"github.com/matzehuels/randpix/pkg/core/palette"
	"github.com/matzehuels/randpix/pkg/core/render/sink"
	"github.com/matzehuels/randpix/pkg/errors"
	"github.com/matzehuels/randpix/pkg/pipeline"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

type paletteColor struct {
	Hex    string  `json:"hex"`
	Weight float64 `json:"weight"`
}

func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	out := make(map[string][]paletteColor)
	for _, name := range palette.Names() {
		scheme, err := palette.Lookup(name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		colors := make([]paletteColor, len(scheme))
		for i, c := range scheme {
			colors[i] = paletteColor{Hex: c.Hex(), Weight: c.Weight}
		}
		out[name] = colors
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"default":  palette.DefaultName,
		"palettes": out,
	})
}

// handleRandomTile redirects to a freshly seeded tile so the result can be
// bookmarked and cached like any other.
func (s *Server) handleRandomTile(w http.ResponseWriter, r *http.Request) {
	target := url.URL{
		Path:     fmt.Sprintf("/tiles/%s.%s", uuid.NewString(), chi.URLParam(r, "format")),
		RawQuery: r.URL.RawQuery,
	}
	http.Redirect(w, r, target.String(), http.StatusFound)
}

func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	format, err := sink.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	seed, err := url.PathUnescape(chi.URLParam(r, "seed"))
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInvalidConfig, err, "bad seed"))
		return
	}

	opts, err := s.tileOptions(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	opts.Seed = seed
	opts.Formats = []string{string(format)}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	tile := result.Tiles[0]
	data := tile.Artifacts[string(format)]

	etag := `"` + cache.Hash(data)[:32] + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Randpix-Seed", tile.Seed)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// tileOptions overlays query parameters on the server defaults.
func (s *Server) tileOptions(q url.Values) (pipeline.Options, error) {
	opts := s.defaults.Copy()
	opts.Formats = nil
	opts.Count = 1
	opts.Refresh = false

	ints := []struct {
		name string
		dst  *int
	}{
		{"size", &opts.Size},
		{"scale", &opts.Scale},
		{"bias", &opts.ColorBias},
		{"upscale", &opts.Upscale},
		{"quality", &opts.Quality},
	}
	for _, p := range ints {
		if v := q.Get(p.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidConfig, "%s must be an integer, got %q", p.name, v)
			}
			*p.dst = n
		}
	}

	if v := q.Get("fill"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidConfig, "fill must be a number, got %q", v)
		}
		opts.FillFactor = &f
	}
	if v := q.Get("grayscale"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidConfig, "grayscale must be a boolean, got %q", v)
		}
		opts.Grayscale = b
	}
	if v := q.Get("symmetry"); v != "" {
		opts.Symmetry = v
	}
	if v := q.Get("palette"); v != "" {
		// A named palette in the query replaces a configured file or scheme.
		opts.Palette, opts.PaletteFile, opts.Scheme = v, "", nil
	}
	if v := q.Get("color"); v != "" {
		opts.Color = v
	}
	return opts, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func errNotFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}

// statusFor maps error codes to HTTP status codes. An unknown palette named
// in the query is a bad request rather than a missing tile.
func statusFor(r *http.Request, err error) int {
	switch {
	case r.Context().Err() != nil:
		return http.StatusServiceUnavailable
	case errors.IsInvalid(err), errors.Is(err, errors.ErrCodePaletteNotFound):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(r, err)
	body := errorBody{
		Error:     errors.UserMessage(err),
		Code:      string(errors.GetCode(err)),
		RequestID: requestIDFrom(r.Context()),
	}
	if status == http.StatusInternalServerError {
		body.Error = "internal error"
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
