package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth        service.AuthService
	Vehicles    service.VehicleService
	Customers   service.CustomerService
	Rentals     service.RentalService
	Promos      service.PromoService
	Loyalty     service.LoyaltyService
	Maintenance service.MaintenanceService
	Reviews     service.ReviewService
	Branches    service.BranchService
	Analytics   service.AnalyticsService
}

// NewRouter wires all routes. Everything under /api except the login endpoint
// requires a bearer token.
func NewRouter(svcs *Services, tokens security.TokenManager, requestTimeout time.Duration) *mux.Router {
	root := mux.NewRouter()
	root.Use(loggingMiddleware, timeoutMiddleware(requestTimeout))

	root.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	auth := newAuthHandler(svcs.Auth)
	root.HandleFunc("/api/auth/login", auth.login).Methods(http.MethodPost)

	api := root.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware(tokens))

	vh := newVehicleHandler(svcs.Vehicles, svcs.Maintenance, svcs.Reviews)
	api.HandleFunc("/vehicles", vh.list).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", vh.create).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/code/{code}", vh.getByCode).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", vh.get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", vh.update).Methods(http.MethodPatch)
	api.HandleFunc("/vehicles/{id:[0-9]+}", vh.delete).Methods(http.MethodDelete)
	api.HandleFunc("/vehicles/{id:[0-9]+}/maintenance", vh.listMaintenance).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}/reviews", vh.listReviews).Methods(http.MethodGet)

	ch := newCustomerHandler(svcs.Customers, svcs.Rentals, svcs.Reviews)
	api.HandleFunc("/customers", ch.list).Methods(http.MethodGet)
	api.HandleFunc("/customers", ch.create).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id:[0-9]+}", ch.get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", ch.update).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{id:[0-9]+}", ch.delete).Methods(http.MethodDelete)
	api.HandleFunc("/customers/{id:[0-9]+}/history", ch.history).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}/reviews", ch.listReviews).Methods(http.MethodGet)

	rh := newRentalHandler(svcs.Rentals, svcs.Promos, svcs.Reviews)
	api.HandleFunc("/rentals", rh.list).Methods(http.MethodGet)
	api.HandleFunc("/rentals", rh.create).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}", rh.get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}/return", rh.returnVehicle).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/cancel", rh.cancel).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/promos", rh.applyPromo).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/review", rh.review).Methods(http.MethodGet)

	ph := newPromoHandler(svcs.Promos)
	api.HandleFunc("/promos", ph.list).Methods(http.MethodGet)
	api.HandleFunc("/promos", ph.create).Methods(http.MethodPost)
	api.HandleFunc("/promos/code/{code}", ph.getByCode).Methods(http.MethodGet)
	api.HandleFunc("/promos/{id:[0-9]+}", ph.get).Methods(http.MethodGet)
	api.HandleFunc("/promos/{id:[0-9]+}", ph.update).Methods(http.MethodPatch)
	api.HandleFunc("/promos/{id:[0-9]+}", ph.delete).Methods(http.MethodDelete)
	api.HandleFunc("/promos/{id:[0-9]+}/validate", ph.validate).Methods(http.MethodPost)

	lh := newLoyaltyHandler(svcs.Loyalty)
	api.HandleFunc("/loyalty", lh.enroll).Methods(http.MethodPost)
	api.HandleFunc("/loyalty/{customer_id:[0-9]+}", lh.get).Methods(http.MethodGet)
	api.HandleFunc("/loyalty/{customer_id:[0-9]+}", lh.unenroll).Methods(http.MethodDelete)
	api.HandleFunc("/loyalty/{customer_id:[0-9]+}/points", lh.adjustPoints).Methods(http.MethodPut)

	mh := newMaintenanceHandler(svcs.Maintenance)
	api.HandleFunc("/maintenance", mh.list).Methods(http.MethodGet)
	api.HandleFunc("/maintenance", mh.create).Methods(http.MethodPost)
	api.HandleFunc("/maintenance/stats", mh.stats).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/{id:[0-9]+}", mh.get).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/{id:[0-9]+}", mh.update).Methods(http.MethodPatch)
	api.HandleFunc("/maintenance/{id:[0-9]+}", mh.delete).Methods(http.MethodDelete)

	rvh := newReviewHandler(svcs.Reviews)
	api.HandleFunc("/reviews", rvh.create).Methods(http.MethodPost)
	api.HandleFunc("/reviews/{id:[0-9]+}", rvh.get).Methods(http.MethodGet)
	api.HandleFunc("/reviews/{id:[0-9]+}", rvh.update).Methods(http.MethodPatch)
	api.HandleFunc("/reviews/{id:[0-9]+}", rvh.delete).Methods(http.MethodDelete)

	bh := newBranchHandler(svcs.Branches)
	api.HandleFunc("/branches", bh.list).Methods(http.MethodGet)
	api.HandleFunc("/branches/stats", bh.stats).Methods(http.MethodGet)
	api.HandleFunc("/branches/{id:[0-9]+}", bh.get).Methods(http.MethodGet)

	ah := newAnalyticsHandler(svcs.Analytics)
	api.HandleFunc("/analytics/dashboard", ah.dashboard).Methods(http.MethodGet)
	api.HandleFunc("/analytics/revenue", ah.revenue).Methods(http.MethodGet)
	api.HandleFunc("/analytics/fleet-status", ah.fleetStatus).Methods(http.MethodGet)

	return root
}
