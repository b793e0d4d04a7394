package http

import (
	"net/http"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type maintenanceHandler struct {
	maintenance service.MaintenanceService
}

func newMaintenanceHandler(maintenance service.MaintenanceService) *maintenanceHandler {
	return &maintenanceHandler{maintenance: maintenance}
}

type createMaintenanceRequest struct {
	VehicleID   int32    `json:"vehicle_id"`
	Description string   `json:"description"`
	Date        string   `json:"maintenance_date"`
	Cost        *float64 `json:"cost"`
	PerformedBy *string  `json:"performed_by"`
}

func (h *maintenanceHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.VehicleID <= 0 {
		writeError(w, domain.Validationf("vehicle_id is required"))
		return
	}
	record := &domain.Maintenance{
		VehicleID:   req.VehicleID,
		Description: req.Description,
		Cost:        req.Cost,
		PerformedBy: req.PerformedBy,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, domain.Validationf("invalid maintenance_date: %q", req.Date))
			return
		}
		record.Date = date
	}
	created, err := h.maintenance.Create(r.Context(), record)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *maintenanceHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	record, err := h.maintenance.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *maintenanceHandler) list(w http.ResponseWriter, r *http.Request) {
	var vehicleID *int32
	if v, err := queryInt32(r, "vehicle_id", 0); err != nil {
		writeError(w, err)
		return
	} else if v > 0 {
		vehicleID = &v
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
	records, err := h.maintenance.List(r.Context(), vehicleID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *maintenanceHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.maintenance.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type updateMaintenanceRequest struct {
	Description *string  `json:"description"`
	Date        *string  `json:"maintenance_date"`
	Cost        *float64 `json:"cost"`
	PerformedBy *string  `json:"performed_by"`
}

func (h *maintenanceHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	upd := &domain.MaintenanceUpdate{
		Description: req.Description,
		Cost:        req.Cost,
		PerformedBy: req.PerformedBy,
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			writeError(w, domain.Validationf("invalid maintenance_date: %q", *req.Date))
			return
		}
		upd.Date = &date
	}
	record, err := h.maintenance.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *maintenanceHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.maintenance.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
