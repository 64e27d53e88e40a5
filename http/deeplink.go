package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/middlemost/podlink"
)

// DefaultHistoryLimit is the number of resolutions listed when no limit is given.
const DefaultHistoryLimit = 20

// deepLinkHandler represents an HTTP handler for resolving deep links.
type deepLinkHandler struct {
	router chi.Router

	// Services
	dispatchService   podlink.DispatchService
	resolutionService podlink.ResolutionService
}

// newDeepLinkHandler returns a new instance of deepLinkHandler.
func newDeepLinkHandler() *deepLinkHandler {
	h := &deepLinkHandler{router: chi.NewRouter()}
	h.router.Post("/", h.handlePost)
	h.router.Get("/", h.handleGetIndex)
	h.router.Get("/{id}", h.handleGet)
	return h
}

// ServeHTTP implements http.Handler.
func (h *deepLinkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// handlePost resolves a request body to a deep link.
func (h *deepLinkHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !acceptsJSON(r) {
		Error(w, r, ErrNotAcceptable)
		return
	}

	// Decode request body.
	var req podlink.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if _, ok := err.(podlink.Error); !ok {
			err = ErrInvalidJSON
		}
		Error(w, r, err)
		return
	}

	// Route request.
	resolution, err := h.dispatchService.Dispatch(ctx, &req)
	if err != nil {
		Error(w, r, err)
		return
	} else if !resolution.Matched() {
		Error(w, r, podlink.ErrNoMatch)
		return
	}

	encodeJSON(w, r, &resolutionResponse{Resolution: resolution})
}

// handleGetIndex returns the most recent resolutions.
func (h *deepLinkHandler) handleGetIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !acceptsJSON(r) {
		Error(w, r, ErrNotAcceptable)
		return
	} else if h.resolutionService == nil {
		Error(w, r, ErrHistoryNotAvailable)
		return
	}

	// Parse optional limit.
	limit := DefaultHistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			Error(w, r, ErrInvalidLimit)
			return
		}
		limit = n
	}

	resolutions, err := h.resolutionService.FindResolutions(ctx, limit)
	if err != nil {
		Error(w, r, err)
		return
	}

	encodeJSON(w, r, &resolutionsResponse{Resolutions: resolutions})
}

// handleGet returns a single resolution by id.
func (h *deepLinkHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !acceptsJSON(r) {
		Error(w, r, ErrNotAcceptable)
		return
	} else if h.resolutionService == nil {
		Error(w, r, ErrHistoryNotAvailable)
		return
	}

	resolution, err := h.resolutionService.FindResolutionByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err)
		return
	} else if resolution == nil {
		Error(w, r, podlink.ErrResolutionNotFound)
		return
	}

	encodeJSON(w, r, &resolutionResponse{Resolution: resolution})
}

type resolutionResponse struct {
	Resolution *podlink.Resolution `json:"resolution"`
}

type resolutionsResponse struct {
	Resolutions []*podlink.Resolution `json:"resolutions"`
}

// acceptsJSON returns true if the client accepts a JSON response.
func acceptsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return accept == "" ||
		strings.Contains(accept, "application/json") ||
		strings.Contains(accept, "*/*")
}

// encodeJSON writes v as a JSON response.
func encodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Error(w, r, err)
		return
	}
}
