package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookexplorer/internal/httpx"
	"bookexplorer/internal/platform/openlibrary"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Search handles GET /api/catalog/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := strings.TrimSpace(query.Get("q"))
	if q == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			[]httpx.ErrorDetail{{Field: "q", Message: "q is required"}})
		return
	}

	limit := defaultLimit
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				[]httpx.ErrorDetail{{Field: "limit", Message: "limit must be between 1 and 50"}})
			return
		}
		limit = n
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				[]httpx.ErrorDetail{{Field: "page", Message: "page must be at least 1"}})
			return
		}
		page = n
	}

	res, err := h.svc.Search(r.Context(), q, limit, page)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, res)
}

// GetBook handles GET /api/catalog/books/{olid}
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	olid := r.PathValue("olid")
	if olid == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "OLID is required", nil)
		return
	}

	detail, err := h.svc.GetDetails(r.Context(), olid)
	if err != nil {
		if errors.Is(err, openlibrary.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		h.writeUpstreamError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, detail)
}

func (h *HTTPHandler) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, openlibrary.ErrUnavailable) {
		httpx.JSONError(w, r, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Open Library unavailable", nil)
		return
	}
	var statusErr *openlibrary.StatusError
	if errors.As(err, &statusErr) {
		// Pass the upstream's own status through to the caller.
		httpx.JSONError(w, r, statusErr.Code, "UPSTREAM_ERROR", "Open Library error", nil)
		return
	}
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
