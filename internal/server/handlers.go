package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/block/outline"
	"github.com/snapblocks/snapblocks/pkg/blockdef"
	"github.com/snapblocks/snapblocks/pkg/cache"
	"github.com/snapblocks/snapblocks/pkg/errors"
	"github.com/snapblocks/snapblocks/pkg/render/nodetree"
	"github.com/snapblocks/snapblocks/pkg/render/sink"
)

const maxBodySize = 1 << 20 // 1 MiB

// renderOpts are the per-request render parameters, parsed from the query.
type renderOpts struct {
	format    string
	maxWidth  int
	maxHeight int
}

func parseRenderOpts(r *http.Request) (renderOpts, error) {
	opts := renderOpts{format: "svg"}
	q := r.URL.Query()

	if f := q.Get("format"); f != "" {
		opts.format = f
	}
	switch opts.format {
	case "svg", "json", "dot", "tree-svg":
	default:
		return opts, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", opts.format)
	}

	var err error
	if v := q.Get("max_width"); v != "" {
		if opts.maxWidth, err = strconv.Atoi(v); err != nil || opts.maxWidth < 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid max_width %q", v)
		}
	}
	if v := q.Get("max_height"); v != "" {
		if opts.maxHeight, err = strconv.Atoi(v); err != nil || opts.maxHeight < 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid max_height %q", v)
		}
	}
	return opts, nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read request body"))
		return
	}

	def, err := blockdef.Unmarshal(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.renderDefinition(w, r, def)
}

func (s *Server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	def, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderDefinition(w, r, def)
}

// renderDefinition runs the render pipeline with artifact caching.
func (s *Server) renderDefinition(w http.ResponseWriter, r *http.Request, def *blockdef.Definition) {
	opts, err := parseRenderOpts(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	canonical, err := blockdef.Marshal(def)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	key := s.keyer.ArtifactKey(cache.Hash(canonical), cache.ArtifactKeyOpts{
		Format:      opts.format,
		MetricsHash: s.metricsHash,
	})
	if opts.maxWidth != 0 || opts.maxHeight != 0 {
		// Bounded renders are keyed with the layout constraints included.
		key = s.keyer.LayoutKey(key, cache.LayoutKeyOpts{
			MaxWidth:  opts.maxWidth,
			MaxHeight: opts.maxHeight,
		})
	}

	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		s.writeArtifact(w, opts.format, data)
		return
	}

	data, err := s.render(r.Context(), def, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.cfg.Cache.TTL.Std()); err != nil {
		// A failed cache write only costs the next request a re-render.
		s.logger.Warn("cache write failed", "err", err, "request_id", requestIDFromContext(r.Context()))
	}

	s.writeArtifact(w, opts.format, data)
}

func (s *Server) render(ctx context.Context, def *blockdef.Definition, opts renderOpts) ([]byte, error) {
	b, err := def.Block()
	if err != nil {
		return nil, err
	}

	switch opts.format {
	case "dot":
		return []byte(nodetree.ToDOT(b, nodetree.Options{Detailed: true})), nil
	case "tree-svg":
		return nodetree.RenderSVG(ctx, nodetree.ToDOT(b, nodetree.Options{Detailed: true}))
	}

	c := block.Constraints{MaxWidth: opts.maxWidth, MaxHeight: opts.maxHeight}
	res := layout.Measure(b, c, s.cfg.Metrics)
	p := outline.Build(b, res, s.cfg.Metrics)

	if opts.format == "json" {
		return sink.RenderJSON(b, res, p)
	}
	return sink.RenderSVG(b, res, p), nil
}

func (s *Server) handleListBlocks(w http.ResponseWriter, r *http.Request) {
	defs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, defs)
}

func (s *Server) handlePutBlock(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read request body"))
		return
	}

	def, err := blockdef.Unmarshal(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.store.Put(r.Context(), def); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, def)
}

func (s *Server) handleGetBlock(w http.ResponseWriter, r *http.Request) {
	def, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

func (s *Server) handleDeleteBlock(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeArtifact(w http.ResponseWriter, format string, data []byte) {
	switch format {
	case "svg", "tree-svg":
		w.Header().Set("Content-Type", "image/svg+xml")
	case "json":
		w.Header().Set("Content-Type", "application/json")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", requestIDFromContext(r.Context()))
	}

	var resp errorResponse
	resp.Error.Code = string(errors.GetCode(err))
	if resp.Error.Code == "" {
		resp.Error.Code = string(errors.ErrCodeInternal)
	}
	resp.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, resp)
}

func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDefinition, errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidColor, errors.ErrCodeInvalidMetrics:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeBlockNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
