package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
)

const maxBody = 1 << 20

type errorResp struct {
	Error  string              `json:"error"`
	Fields []apperr.FieldError `json:"fields,omitempty"`
}

type messageResp struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads exactly one JSON value from the body into dst.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

func writeBadJSON(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid json: " + err.Error()})
}

// writeError maps the error taxonomy onto status codes. Unexpected errors are
// logged and hidden from the client.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	var verrs apperr.ValidationErrors
	var ierr *apperr.IntegrationError
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, errorResp{Error: verrs.Error(), Fields: verrs})
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResp{Error: err.Error()})
	case errors.Is(err, apperr.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResp{Error: err.Error()})
	case errors.As(err, &ierr):
		log.Warn("integration failed", zap.String("integration", ierr.Integration), zap.Error(ierr.Err))
		writeJSON(w, http.StatusBadGateway, errorResp{Error: ierr.Error()})
	default:
		log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: "internal error"})
	}
}
