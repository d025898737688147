// Package planfixtest provides a fake Planfix REST API for tests. Handlers
// are registered per endpoint with chi patterns relative to /rest, and every
// request that reaches the server is recorded for later assertions.
package planfixtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Token is the bearer token the fake server accepts.
const Token = "test-token"

// Request is a recorded inbound request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Server is a fake Planfix account.
type Server struct {
	*httptest.Server

	t      testing.TB
	root   chi.Router
	api    chi.Router
	mu     sync.Mutex
	record []Request
}

// NewServer starts a fake Planfix server that is closed when the test ends.
// Requests to /rest without "Bearer " + Token are answered with an error
// envelope and 401.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{t: t}

	s.root = chi.NewRouter()
	s.root.Use(s.recordRequest)
	s.root.Route("/rest", func(r chi.Router) {
		r.Use(requireToken)
		s.api = r
	})
	s.root.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusNotFound, Error(404, "not found"))
	})

	s.Server = httptest.NewServer(s.root)
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the account root as it would appear in configuration.
func (s *Server) BaseURL() string {
	return s.URL + "/"
}

// Handle registers h for method and a chi pattern relative to /rest, for
// example Handle(http.MethodGet, "/task/{id}", h).
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) {
	s.api.Method(method, pattern, h)
}

// HandleRaw registers h outside /rest, without the token check. Use it for
// anonymous download URLs.
func (s *Server) HandleRaw(method, pattern string, h http.HandlerFunc) {
	s.root.Method(method, pattern, h)
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.record))
	copy(out, s.record)
	return out
}

// LastRequest returns the most recent request, failing the test if none
// was received.
func (s *Server) LastRequest() Request {
	s.t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		s.t.Fatal("planfixtest: no requests received")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.record = append(s.record, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token != Token {
			WriteJSON(w, http.StatusUnauthorized, Error(1, "Access denied"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Reply returns a handler answering with v and the given status.
func Reply(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, v)
	}
}

// Success returns a success envelope carrying fields.
func Success(fields map[string]any) map[string]any {
	out := map[string]any{"result": "success"}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// Error returns a Planfix error envelope.
func Error(code int, message string) map[string]any {
	return map[string]any{"result": "fail", "code": code, "error": message}
}
