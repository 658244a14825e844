// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package server is the HTTP/JSON shell over the analyzer core. It does
// no computation of its own: every handler resolves a session, calls
// into the analyzer under the session lock and serializes the result.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/netscope-ml/netscope/internal/arch"
	"github.com/netscope-ml/netscope/internal/metrics"
	"github.com/netscope-ml/netscope/internal/session"
)

// sessionHeader carries the client's session ID. Requests without it
// share the default session.
const sessionHeader = "X-Session-ID"

// Handler produces the response payload and status code for one request.
type Handler func(r *http.Request) (any, int, error)

// Server serves the analyzer API on one port.
type Server struct {
	name     string
	port     int
	mux      *http.ServeMux
	sessions *session.Manager
}

// New creates a server around the given session manager and registers
// all routes.
func New(name string, port int, sessions *session.Manager) *Server {
	s := &Server{
		name:     name,
		port:     port,
		mux:      http.NewServeMux(),
		sessions: sessions,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/sessions", s.handle("sessions", s.createSession))
	s.mux.HandleFunc("GET /api/analysis", s.handle("analysis", s.getAnalysis))
	s.mux.HandleFunc("POST /api/input-shape", s.handle("input-shape", s.setInputShape))
	s.mux.HandleFunc("POST /api/layers", s.handle("add-layer", s.addLayer))
	s.mux.HandleFunc("DELETE /api/layers/{index}", s.handle("remove-layer", s.removeLayer))
	s.mux.HandleFunc("POST /api/layers/clear", s.handle("clear-layers", s.clearLayers))
	s.mux.HandleFunc("GET /api/export", s.handle("export", s.exportArchitecture))
	s.mux.HandleFunc("GET /api/layer-types", s.handle("layer-types", s.layerTypes))
	s.mux.HandleFunc("GET /api/problem-types", s.handle("problem-types", s.problemTypes))
	s.mux.HandleFunc("POST /api/problem", s.handle("problem", s.configureProblem))
	s.mux.HandleFunc("POST /api/diagram", s.handle("diagram", s.generateDiagram))
	s.mux.HandleFunc("GET /live", s.handle("live", func(*http.Request) (any, int, error) {
		return map[string]string{"status": "ok"}, http.StatusOK, nil
	}))
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// Handler exposes the mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	log.Info().Str("server", s.name).Int("port", s.port).Msg("starting server")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("could not start analyzer server: %w", err)
	}
	return nil
}

func (s *Server) handle(route string, exec Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		payload, code, err := exec(r)
		if err != nil {
			code = errorCode(err)
			payload = map[string]string{"status": "error", "detail": err.Error()}
			log.Error().Err(err).Str("route", route).Msg("request failed")
		}
		metrics.Observer.Request(route, strconv.Itoa(code))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if encodeErr := json.NewEncoder(w).Encode(payload); encodeErr != nil {
			log.Error().Err(encodeErr).Str("route", route).Msg("could not write response")
		}

		log.Debug().
			Str("route", route).
			Str("method", r.Method).
			Int("code", code).
			Float64("duration", time.Since(started).Seconds()).
			Msg("handled request")
	}
}

// errorCode maps core errors to HTTP status codes: construction errors
// are the client's to fix, unknown sessions are not found.
func errorCode(err error) int {
	switch {
	case errors.Is(err, session.ErrUnknownSession):
		return http.StatusNotFound
	case errors.Is(err, arch.ErrUnknownLayerType),
		errors.Is(err, arch.ErrMissingField),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// readJSON decodes the request body into v; an empty body is allowed
// and leaves v untouched.
func readJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return badRequest("could not read body: %v", err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return badRequest("invalid json: %v", err)
	}
	return nil
}

func sessionID(r *http.Request) string {
	return r.Header.Get(sessionHeader)
}
