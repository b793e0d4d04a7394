package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type promoHandler struct {
	promos service.PromoService
}

func newPromoHandler(promos service.PromoService) *promoHandler {
	return &promoHandler{promos: promos}
}

type createPromoRequest struct {
	Code               string   `json:"code"`
	Description        string   `json:"description"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	DiscountAmount     *float64 `json:"discount_amount"`
	MinRentalDays      *int32   `json:"min_rental_days"`
	ValidFrom          string   `json:"valid_from"`
	ValidUntil         string   `json:"valid_until"`
	IsActive           *bool    `json:"is_active"`
	RequiresLoyalty    bool     `json:"requires_loyalty"`
	MinLoyaltyPoints   *int32   `json:"min_loyalty_points"`
	UsageLimit         *int32   `json:"usage_limit"`
}

func (h *promoHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPromoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	validFrom, err := time.Parse("2006-01-02", req.ValidFrom)
	if err != nil {
		writeError(w, domain.Validationf("invalid valid_from: %q", req.ValidFrom))
		return
	}
	validUntil, err := time.Parse("2006-01-02", req.ValidUntil)
	if err != nil {
		writeError(w, domain.Validationf("invalid valid_until: %q", req.ValidUntil))
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	promo, err := h.promos.Create(r.Context(), &service.CreatePromoInput{
		Code:               req.Code,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		DiscountAmount:     req.DiscountAmount,
		MinRentalDays:      req.MinRentalDays,
		ValidFrom:          validFrom,
		ValidUntil:         validUntil,
		IsActive:           active,
		RequiresLoyalty:    req.RequiresLoyalty,
		MinLoyaltyPoints:   req.MinLoyaltyPoints,
		UsageLimit:         req.UsageLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, promo)
}

func (h *promoHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	promo, err := h.promos.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promo)
}

func (h *promoHandler) getByCode(w http.ResponseWriter, r *http.Request) {
	promo, err := h.promos.GetByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promo)
}

func (h *promoHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt32(r, "limit", 50)
	if err != nil {
		writeError(w, err)
		return
	}
	offset, err := queryInt32(r, "offset", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	promos, err := h.promos.List(r.Context(), queryBool(r, "active_only"), queryBool(r, "valid_now"), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promos)
}

type updatePromoRequest struct {
	Description        *string  `json:"description"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	DiscountAmount     *float64 `json:"discount_amount"`
	MinRentalDays      *int32   `json:"min_rental_days"`
	ValidUntil         *string  `json:"valid_until"`
	IsActive           *bool    `json:"is_active"`
	RequiresLoyalty    *bool    `json:"requires_loyalty"`
	MinLoyaltyPoints   *int32   `json:"min_loyalty_points"`
	UsageLimit         *int32   `json:"usage_limit"`
}

func (h *promoHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updatePromoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	upd := &domain.PromoUpdate{
		Description:      req.Description,
		DiscountPct:      req.DiscountPercentage,
		DiscountAmt:      req.DiscountAmount,
		MinRentalDays:    req.MinRentalDays,
		IsActive:         req.IsActive,
		RequiresLoyalty:  req.RequiresLoyalty,
		MinLoyaltyPoints: req.MinLoyaltyPoints,
		UsageLimit:       req.UsageLimit,
	}
	if req.ValidUntil != nil {
		until, err := time.Parse("2006-01-02", *req.ValidUntil)
		if err != nil {
			writeError(w, domain.Validationf("invalid valid_until: %q", *req.ValidUntil))
			return
		}
		upd.ValidUntil = &until
	}
	promo, err := h.promos.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promo)
}

func (h *promoHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	hardDeleted, err := h.promos.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"promo_id": id, "deleted": hardDeleted, "deactivated": !hardDeleted})
}

type validatePromoRequest struct {
	RentalDays int32  `json:"rental_days"`
	CustomerID *int32 `json:"customer_id"`
}

func (h *promoHandler) validate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req validatePromoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.promos.Validate(r.Context(), id, req.RentalDays, req.CustomerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
