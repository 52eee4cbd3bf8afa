package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"skideal/internal/adapters/tools"
)

const maxBody = 1 << 20

// Handlers exposes the tool registry to the out-of-process agent runtime.
type Handlers struct {
	Tools    *tools.Registry
	Workers  int
	MaxBatch int
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type batchRequest struct {
	Calls []tools.Call `json:"calls"`
}

type batchResponse struct {
	Results []tools.Result `json:"results"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/tools", h.listTools)
	s.mux.Post("/v1/tools/{name}", h.invoke)
	s.mux.Post("/v1/batch", h.batch)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// listTools returns the tool catalog the agent runtime registers with the LLM.
func (h *Handlers) listTools(w http.ResponseWriter, r *http.Request) {
	etag, body := calcETagAndBody(h.Tools.All())
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listTools body")
	}
}

// invoke answers 200 for every call that reached a tool, failed or not; the
// failure text is part of the result the agent reads.
func (h *Handlers) invoke(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if h.Tools.Get(name) == nil {
		writeProblem(w, http.StatusNotFound, "Unknown tool", fmt.Sprintf("no tool named %q", name))
		return
	}
	var args map[string]any
	if err := decodeBody(w, r, &args); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid arguments", "body must be a JSON object of tool arguments")
		return
	}
	writeJSON(w, h.Tools.Invoke(r.Context(), name, args))
}

func (h *Handlers) batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid batch", "body must be {\"calls\":[{\"tool\":...,\"args\":{...}}]}")
		return
	}
	if len(req.Calls) == 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid batch", "calls must not be empty")
		return
	}
	if h.MaxBatch > 0 && len(req.Calls) > h.MaxBatch {
		writeProblem(w, http.StatusBadRequest, "Invalid batch", fmt.Sprintf("at most %d calls per batch", h.MaxBatch))
		return
	}
	writeJSON(w, batchResponse{Results: h.Tools.InvokeBatch(r.Context(), req.Calls, h.Workers)})
}
