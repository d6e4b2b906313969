package webhook

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nimbus-labs/driveingest/internal/core/domain"
	"github.com/nimbus-labs/driveingest/internal/logger"
)

// ResourceStateHeader is the push-notification kind header Drive sets.
const ResourceStateHeader = "X-Goog-Resource-State"

// statusResponse is the body of every webhook reply.
type statusResponse struct {
	Status domain.Status `json:"status"`
}

func (s *Server) handleChange(w http.ResponseWriter, r *http.Request) {
	state := r.Header.Get(ResourceStateHeader)

	status, err := s.handler.HandleChangeNotification(r.Context(), state)
	if err != nil {
		logger.Error("Change notification failed: %v", err)
		writeStatus(w, httpCode(err), status)
		return
	}
	writeStatus(w, http.StatusOK, status)
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	var n domain.FileNotification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeStatus(w, http.StatusBadRequest, domain.StatusError)
		return
	}

	status, err := s.handler.HandleFileNotification(r.Context(), &n)
	if err != nil {
		logger.Error("File notification failed: %v", err)
		writeStatus(w, httpCode(err), status)
		return
	}
	writeStatus(w, http.StatusOK, status)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// httpCode maps handler errors onto status codes. A missing cursor is the
// operator-actionable server fault; bad input is the caller's.
func httpCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingCursor):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeStatus(w http.ResponseWriter, code int, status domain.Status) {
	writeJSON(w, code, statusResponse{Status: status})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Writing response failed: %v", err)
	}
}
