package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type vehicleHandler struct {
	vehicles    service.VehicleService
	maintenance service.MaintenanceService
	reviews     service.ReviewService
}

func newVehicleHandler(vehicles service.VehicleService, maintenance service.MaintenanceService, reviews service.ReviewService) *vehicleHandler {
	return &vehicleHandler{vehicles: vehicles, maintenance: maintenance, reviews: reviews}
}

type createVehicleRequest struct {
	Code            string  `json:"vehicle_code"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Type            string  `json:"type"`
	FuelType        string  `json:"fuel_type"`
	Transmission    string  `json:"transmission"`
	Status          string  `json:"status"`
	DailyRate       float64 `json:"daily_rate"`
	SeatingCapacity *int32  `json:"seating_capacity"`
}

func (h *vehicleHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	vehicle := &domain.Vehicle{
		Code:            req.Code,
		Brand:           req.Brand,
		Model:           req.Model,
		Type:            req.Type,
		FuelType:        req.FuelType,
		Transmission:    req.Transmission,
		Status:          domain.VehicleStatus(req.Status),
		DailyRate:       req.DailyRate,
		SeatingCapacity: req.SeatingCapacity,
	}
	created, err := h.vehicles.Create(r.Context(), vehicle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *vehicleHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.vehicles.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *vehicleHandler) getByCode(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.GetByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *vehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vehicles, err := h.vehicles.List(r.Context(), q.Get("status"), q.Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

type updateVehicleRequest struct {
	Brand           *string  `json:"brand"`
	Model           *string  `json:"model"`
	Type            *string  `json:"type"`
	FuelType        *string  `json:"fuel_type"`
	Transmission    *string  `json:"transmission"`
	Status          *string  `json:"status"`
	DailyRate       *float64 `json:"daily_rate"`
	SeatingCapacity *int32   `json:"seating_capacity"`
}

func (h *vehicleHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	upd := &domain.VehicleUpdate{
		Brand:           req.Brand,
		Model:           req.Model,
		Type:            req.Type,
		FuelType:        req.FuelType,
		Transmission:    req.Transmission,
		DailyRate:       req.DailyRate,
		SeatingCapacity: req.SeatingCapacity,
	}
	if req.Status != nil {
		status := domain.VehicleStatus(*req.Status)
		upd.Status = &status
	}
	vehicle, err := h.vehicles.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *vehicleHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.vehicles.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *vehicleHandler) listMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, domain.Validationf("invalid from date: %q", raw))
			return
		}
		from = &t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, domain.Validationf("invalid to date: %q", raw))
			return
		}
		to = &t
	}
	records, err := h.maintenance.List(r.Context(), &id, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *vehicleHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	reviews, err := h.reviews.ListByVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
