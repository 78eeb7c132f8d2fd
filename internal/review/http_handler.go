package review

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookexplorer/internal/httpx"
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

type createUserReq struct {
	Name string `json:"name" validate:"required"`
}

// CreateUser handles POST /api/reviews/users
func (h *HTTPHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.Name)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, user)
}

type createReviewReq struct {
	UserID string `json:"userId" validate:"required"`
	BookID string `json:"bookId" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required"`
}

// CreateReview handles POST /api/reviews/reviews
func (h *HTTPHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Text = strings.TrimSpace(req.Text)

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	rev, err := h.svc.CreateReview(r.Context(), req.UserID, req.BookID, req.Rating, req.Text)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "USER_NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, rev)
}

// ListReviews handles GET /api/reviews/reviews
func (h *HTTPHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	bookID := strings.TrimSpace(query.Get("bookId"))
	if bookID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			[]httpx.ErrorDetail{{Field: "bookId", Message: "bookId is required"}})
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

	offset := 0
	if raw := query.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				[]httpx.ErrorDetail{{Field: "offset", Message: "offset must be at least 0"}})
			return
		}
		offset = n
	}

	reviews, err := h.svc.ListByBook(r.Context(), bookID, limit, offset)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, reviews)
}
