package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/middlemost/podlink"
)

const (
	ErrNotAcceptable       = podlink.Error("not acceptable")
	ErrInvalidJSON         = podlink.Error("invalid json body")
	ErrInvalidLimit        = podlink.Error("invalid limit")
	ErrHistoryNotAvailable = podlink.Error("history not available")
)

// errorMap is a whitelist that maps errors to status codes.
var errorMap = map[error]int{
	ErrNotAcceptable:              http.StatusNotAcceptable,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidLimit:               http.StatusBadRequest,
	ErrHistoryNotAvailable:        http.StatusNotImplemented,
	podlink.ErrNoMatch:            http.StatusNotFound,
	podlink.ErrResolutionNotFound: http.StatusNotFound,
	podlink.ErrRequestRequired:    http.StatusBadRequest,
	podlink.ErrActionRequired:     http.StatusBadRequest,
	podlink.ErrInvalidExtra:       http.StatusBadRequest,
	podlink.ErrInvalidURL:         http.StatusBadRequest,
}

// ErrorStatusCode returns the HTTP status code for an error object.
func ErrorStatusCode(err error) int {
	if code, ok := errorMap[err]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Error writes an error reponse to the writer.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	// Determine status code.
	code := ErrorStatusCode(err)

	// Log error.
	if logOutput := LogOutputFromContext(r.Context()); logOutput != nil {
		fmt.Fprintf(logOutput, "http error: %d %s: req=%s\n", code, err.Error(), RequestIDFromContext(r.Context()))
	}

	// Mask unrecognized errors from end users.
	if _, ok := errorMap[err]; !ok {
		err = podlink.ErrInternal
	}

	// Write response.
	switch {
	case strings.Contains(r.Header.Get("Accept"), "text/plain"):
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(code)
		w.Write([]byte(err.Error()))

	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(&errorResponse{Err: err.Error()})
	}
}

type errorResponse struct {
	Err string `json:"error,omitempty"`
}
