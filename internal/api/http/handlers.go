package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"phoneline/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
}

func NewHandler(orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{Orders: orderSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "phoneline",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	order, err := h.Orders.Create(&req)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("businessId")
	status := r.URL.Query().Get("status")

	orders, err := h.Orders.List(businessID, status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	result, err := h.Orders.UpdateStatus(id, body.Status)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == service.StatusInvalid {
		writeFailure(w, http.StatusBadRequest, "Unknown status: "+body.Status)
		return
	}

	// StatusNotFound still answers success: a dashboard polling stale data
	// should not see an error for an order it can no longer act on.
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	qrCode, err := h.Orders.QRCode(id)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qrCode)
}

func writeFailure(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
