//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/swiftparcel/tracker/internal/storage"
)

type Storage interface {
	GetShippingByTrackingNumber(ctx context.Context, trackingNumber string) (*storage.Shipping, error)
	GetAllShippings(ctx context.Context) ([]storage.Shipping, error)
	CreateShipping(ctx context.Context, data storage.ShippingFormData) error
	UpdateShipping(ctx context.Context, id int64, data storage.ShippingFormData) error
	DeleteShipping(ctx context.Context, id int64) error
	VerifyIrsPayment(ctx context.Context, trackingNumber, verificationCode string) (bool, error)
	AddHistoryEntry(ctx context.Context, shippingID int64, entry storage.HistoryEntryInput) error
}

type Server struct {
	storage      Storage
	server       *http.Server
	AuditManager *AuditManager
}

func New(storage Storage) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond)
	return &Server{
		storage:      storage,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	zap.L().Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	zap.L().Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)

	zap.L().Info("Server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/track/{trackingNumber}", s.handleGetShipping).Methods(http.MethodGet)
	r.HandleFunc("/track/{trackingNumber}/verify", s.handleVerifyPayment).Methods(http.MethodPost)

	r.HandleFunc("/shippings", s.handleListShippings).Methods(http.MethodGet)
	r.HandleFunc("/shippings", s.handleCreateShipping).Methods(http.MethodPost)
	r.HandleFunc("/shippings/{id}", s.handleUpdateShipping).Methods(http.MethodPut)
	r.HandleFunc("/shippings/{id}", s.handleDeleteShipping).Methods(http.MethodDelete)
	r.HandleFunc("/shippings/{id}/history", s.handleAddHistoryEntry).Methods(http.MethodPost)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return s.auditLogMiddleware(r)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleGetShipping(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["trackingNumber"]
	if trackingNumber == "" {
		respondError(w, http.StatusBadRequest, "Missing tracking number")
		return
	}

	shipping, err := s.storage.GetShippingByTrackingNumber(r.Context(), trackingNumber)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch shipping")
		return
	}
	if shipping == nil {
		respondError(w, http.StatusNotFound, "Shipping not found")
		return
	}

	respondJSON(w, http.StatusOK, shipping)
}

func (s *Server) handleListShippings(w http.ResponseWriter, r *http.Request) {
	shippings, err := s.storage.GetAllShippings(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch shippings")
		return
	}

	respondJSON(w, http.StatusOK, shippings)
}

func (s *Server) handleCreateShipping(w http.ResponseWriter, r *http.Request) {
	var data storage.ShippingFormData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if data.TrackingNumber == "" || data.Status == "" || data.Location == "" {
		respondError(w, http.StatusBadRequest, "Missing tracking_number, status or location")
		return
	}

	if err := s.storage.CreateShipping(r.Context(), data); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create shipping")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message":         "Shipping created successfully",
		"tracking_number": data.TrackingNumber,
	})
}

func (s *Server) handleUpdateShipping(w http.ResponseWriter, r *http.Request) {
	id, ok := shippingID(w, r)
	if !ok {
		return
	}

	var data storage.ShippingFormData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.UpdateShipping(r.Context(), id, data); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update shipping")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Shipping updated successfully",
	})
}

func (s *Server) handleDeleteShipping(w http.ResponseWriter, r *http.Request) {
	id, ok := shippingID(w, r)
	if !ok {
		return
	}

	if err := s.storage.DeleteShipping(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete shipping")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Shipping deleted successfully",
	})
}

func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["trackingNumber"]
	if trackingNumber == "" {
		respondError(w, http.StatusBadRequest, "Missing tracking number")
		return
	}

	var verifyRequest struct {
		VerificationCode string `json:"verification_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&verifyRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	verified, err := s.storage.VerifyIrsPayment(r.Context(), trackingNumber, verifyRequest.VerificationCode)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to verify IRS payment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"verified": verified})
}

func (s *Server) handleAddHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := shippingID(w, r)
	if !ok {
		return
	}

	var entryRequest struct {
		Status   string `json:"status"`
		Location string `json:"location"`
		Date     string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&entryRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if entryRequest.Status == "" || entryRequest.Location == "" {
		respondError(w, http.StatusBadRequest, "Missing status or location")
		return
	}

	date, err := parseEntryDate(entryRequest.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	entry := storage.HistoryEntryInput{
		Status:   entryRequest.Status,
		Location: entryRequest.Location,
		Date:     date,
	}

	if err := s.storage.AddHistoryEntry(r.Context(), id, entry); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to add history entry")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "History entry added successfully",
	})
}

func shippingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid shipping ID")
		return 0, false
	}
	return id, true
}

// parseEntryDate accepts the dashboard form's datetime-local format
// and RFC3339; an empty date means "now".
func parseEntryDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
