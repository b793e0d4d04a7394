package http

import (
	"net/http"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type loyaltyHandler struct {
	loyalty service.LoyaltyService
}

func newLoyaltyHandler(loyalty service.LoyaltyService) *loyaltyHandler {
	return &loyaltyHandler{loyalty: loyalty}
}

type enrollRequest struct {
	CustomerID    int32  `json:"customer_id"`
	InitialPoints int32  `json:"initial_points"`
	DateJoined    string `json:"date_joined"`
}

func (h *loyaltyHandler) enroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.CustomerID <= 0 {
		writeError(w, domain.Validationf("customer_id is required"))
		return
	}
	var joined time.Time
	if req.DateJoined != "" {
		var err error
		joined, err = time.Parse("2006-01-02", req.DateJoined)
		if err != nil {
			writeError(w, domain.Validationf("invalid date_joined: %q", req.DateJoined))
			return
		}
	}
	program, err := h.loyalty.Enroll(r.Context(), req.CustomerID, req.InitialPoints, joined)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, program)
}

func (h *loyaltyHandler) get(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customer_id")
	if err != nil {
		writeError(w, err)
		return
	}
	program, err := h.loyalty.Get(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, program)
}

type adjustPointsRequest struct {
	Delta int32 `json:"delta"`
}

func (h *loyaltyHandler) adjustPoints(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customer_id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req adjustPointsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	program, err := h.loyalty.AdjustPoints(r.Context(), customerID, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, program)
}

func (h *loyaltyHandler) unenroll(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customer_id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.loyalty.Unenroll(r.Context(), customerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
