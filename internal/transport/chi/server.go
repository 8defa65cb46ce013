package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ghsearch"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
	healthuc "github.com/kailas-cloud/ghsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/ghsearch/internal/usecase/search"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// relayedHeaders are copied from the upstream response onto the gateway response.
var relayedHeaders = []string{
	"Content-Type",
	"Link",
	"ETag",
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
	"X-RateLimit-Reset",
	"X-RateLimit-Used",
	"X-RateLimit-Resource",
	"X-GitHub-Request-Id",
}

// Server is the search gateway HTTP API.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{search: search, health: health, logger: logger}
}

// Search handles POST /v1/search/{resource}. The upstream status and body are relayed unchanged.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSearch(w, r)
	if !ok {
		return
	}

	resp, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	relay(w, resp)
}

// SearchURL handles POST /v1/search/{resource}/url: it returns the request URL without sending it.
func (s *Server) SearchURL(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSearch(w, r)
	if !ok {
		return
	}

	u, err := s.search.URL(&req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, urlResponseDTO{URL: u})
}

// BatchSearch handles POST /v1/search/batch. Items fail independently.
func (s *Server) BatchSearch(w http.ResponseWriter, r *http.Request) {
	var body batchRequestDTO
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.Items) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "items must not be empty")
		return
	}

	reqs := make([]searchuc.Request, len(body.Items))
	for i := range body.Items {
		kind, err := resource.Parse(body.Items[i].Resource)
		if err == nil {
			reqs[i], err = body.Items[i].toRequest(kind)
		}
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
	}

	results, err := s.search.Batch(r.Context(), reqs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]batchResultDTO, len(results))
	for i, res := range results {
		if res.Err != nil {
			_, errBody, _ := classify(res.Err)
			items[i] = batchResultDTO{Error: &errBody}
			continue
		}
		items[i] = batchResultDTO{Status: res.Response.StatusCode, Body: rawBody(res.Response.Body)}
	}

	writeJSON(w, http.StatusOK, batchResponseDTO{Items: items})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponseDTO{
		Status: string(report.Status),
		Checks: checks,
	})
}

func (s *Server) decodeSearch(w http.ResponseWriter, r *http.Request) (searchuc.Request, bool) {
	kind, err := resource.Parse(chirouter.URLParam(r, "resource"))
	if err != nil {
		s.handleDomainError(w, err)
		return searchuc.Request{}, false
	}

	var body searchRequestDTO
	if !decodeBody(w, r, &body) {
		return searchuc.Request{}, false
	}

	req, err := body.toRequest(kind)
	if err != nil {
		s.handleDomainError(w, err)
		return searchuc.Request{}, false
	}
	return req, true
}

// decodeBody reads a JSON body. An empty body decodes to the zero value.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func relay(w http.ResponseWriter, resp *ghsearch.Response) {
	for _, h := range relayedHeaders {
		if v := resp.Header.Get(h); v != "" {
			w.Header().Set(h, v)
		}
	}
	if w.Header().Get("Content-Type") == "" && len(resp.Body) > 0 {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

// methodNotAllowed and notFound keep every gateway-local failure in JSON.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed,
		"method "+strings.ToUpper(r.Method)+" not allowed")
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, codeNotFound, "no route for "+r.URL.Path)
}
