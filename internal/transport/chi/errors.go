package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/ghsearch/internal/domain"
)

// sentinelMapping maps a domain sentinel to its HTTP status and error code.
type sentinelMapping struct {
	err    error
	status int
	code   string
}

// Order matters: ErrInvalidOperator is checked before the broader ErrInvalidRequest.
var sentinels = []sentinelMapping{
	{domain.ErrUnknownResource, http.StatusNotFound, codeUnknownResource},
	{domain.ErrRepositoryIDRequired, http.StatusBadRequest, codeRepositoryIDRequired},
	{domain.ErrInvalidOperator, http.StatusBadRequest, codeInvalidOperator},
	{domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed},
	{domain.ErrBatchTooLarge, http.StatusRequestEntityTooLarge, codeBatchTooLarge},
	{domain.ErrUpstreamUnavailable, http.StatusBadGateway, codeUpstreamUnavailable},
}

// classify returns the status and body for err. Client errors keep the full
// message since it names the offending filter; server-side errors expose
// only the sentinel text.
func classify(err error) (int, errorResponse, bool) {
	for _, m := range sentinels {
		if !errors.Is(err, m.err) {
			continue
		}
		msg := err.Error()
		if m.status >= http.StatusInternalServerError {
			msg = m.err.Error()
		}
		return m.status, errorResponse{Code: m.code, Message: msg}, true
	}
	return http.StatusInternalServerError, errorResponse{Code: codeInternalError, Message: "internal error"}, false
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	status, body, known := classify(err)
	if known {
		s.logger.Warn("domain error", zap.Error(err))
	} else {
		s.logger.Error("internal error", zap.Error(err))
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
