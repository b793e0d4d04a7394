package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type reviewHandler struct {
	reviews service.ReviewService
}

func newReviewHandler(reviews service.ReviewService) *reviewHandler {
	return &reviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	RentalID int32   `json:"rental_id"`
	Rating   float64 `json:"rating_score"`
	Text     string  `json:"review_text"`
}

func (h *reviewHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.RentalID <= 0 {
		writeError(w, domain.Validationf("rental_id is required"))
		return
	}
	review, err := h.reviews.Create(r.Context(), &domain.Review{
		RentalID: req.RentalID,
		Rating:   req.Rating,
		Text:     req.Text,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *reviewHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	review, err := h.reviews.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

type updateReviewRequest struct {
	Rating *float64 `json:"rating_score"`
	Text   *string  `json:"review_text"`
}

func (h *reviewHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.reviews.Update(r.Context(), id, &domain.ReviewUpdate{Rating: req.Rating, Text: req.Text})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *reviewHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.reviews.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
