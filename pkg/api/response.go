package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/cyclekit/pkg/errors"
)

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError reports err as a coded JSON error. Internal errors are logged
// and their details withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	switch {
	case errors.IsInvalidInput(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: code, Message: errors.UserMessage(err)})
	case code == errors.ErrCodeNotFound:
		writeJSON(w, http.StatusNotFound, errorResponse{Code: code, Message: errors.UserMessage(err)})
	default:
		s.logger.Error("request failed", "id", RequestID(r.Context()), "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "internal error",
		})
	}
}

// decodeBody decodes a JSON request body into v, rejecting unknown fields,
// trailing data and bodies over MaxBodyBytes.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	if dec.More() {
		return errors.New(errors.ErrCodeInvalidFormat, "unexpected data after request body")
	}
	return nil
}
