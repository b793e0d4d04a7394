package http

import (
	"net/http"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type rentalHandler struct {
	rentals service.RentalService
	promos  service.PromoService
	reviews service.ReviewService
}

func newRentalHandler(rentals service.RentalService, promos service.PromoService, reviews service.ReviewService) *rentalHandler {
	return &rentalHandler{rentals: rentals, promos: promos, reviews: reviews}
}

type createRentalRequest struct {
	CustomerID       int32     `json:"customer_id"`
	VehicleID        int32     `json:"vehicle_id"`
	PickupAt         time.Time `json:"pickup_datetime"`
	ExpectedReturnAt time.Time `json:"expected_return_datetime"`
	PickupBranchID   int32     `json:"pickup_branch_id"`
	ReturnBranchID   int32     `json:"return_branch_id"`
}

func (h *rentalHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.CustomerID <= 0 || req.VehicleID <= 0 {
		writeError(w, domain.Validationf("customer_id and vehicle_id are required"))
		return
	}
	if req.PickupAt.IsZero() || req.ExpectedReturnAt.IsZero() {
		writeError(w, domain.Validationf("pickup_datetime and expected_return_datetime are required"))
		return
	}
	rental, err := h.rentals.Create(r.Context(), &service.CreateRentalInput{
		CustomerID:       req.CustomerID,
		VehicleID:        req.VehicleID,
		PickupAt:         req.PickupAt,
		ExpectedReturnAt: req.ExpectedReturnAt,
		PickupBranchID:   req.PickupBranchID,
		ReturnBranchID:   req.ReturnBranchID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *rentalHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentals.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *rentalHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := &domain.RentalListFilter{Status: r.URL.Query().Get("status")}
	if customerID, err := queryInt32(r, "customer_id", 0); err != nil {
		writeError(w, err)
		return
	} else if customerID > 0 {
		filter.CustomerID = &customerID
	}
	if vehicleID, err := queryInt32(r, "vehicle_id", 0); err != nil {
		writeError(w, err)
		return
	} else if vehicleID > 0 {
		filter.VehicleID = &vehicleID
	}
	rentals, err := h.rentals.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

type returnVehicleRequest struct {
	ActualReturnAt    time.Time `json:"actual_return_datetime"`
	AdditionalCharges float64   `json:"additional_charges"`
	Notes             string    `json:"notes"`
}

func (h *rentalHandler) returnVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req returnVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ActualReturnAt.IsZero() {
		req.ActualReturnAt = time.Now()
	}
	rental, err := h.rentals.Return(r.Context(), id, &service.ReturnVehicleInput{
		ActualReturnAt:    req.ActualReturnAt,
		AdditionalCharges: req.AdditionalCharges,
		Notes:             req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *rentalHandler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentals.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type applyPromoRequest struct {
	PromoID int32 `json:"promo_id"`
}

func (h *rentalHandler) applyPromo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req applyPromoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.PromoID <= 0 {
		writeError(w, domain.Validationf("promo_id is required"))
		return
	}
	discounted, err := h.promos.Apply(r.Context(), id, req.PromoID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rental_id":        id,
		"promo_id":         req.PromoID,
		"discounted_total": discounted,
	})
}

func (h *rentalHandler) review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	review, err := h.reviews.GetByRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}
