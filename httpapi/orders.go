package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"menuboard/models"
	"menuboard/services"
)

type orderPayload struct {
	BusinessSlug  string                  `json:"businessSlug"`
	CustomerName  string                  `json:"customerName"`
	CustomerPhone string                  `json:"customerPhone"`
	Items         []models.OrderItemInput `json:"items"`
}

func (p *orderPayload) Validate() error {
	if strings.TrimSpace(p.BusinessSlug) == "" {
		return errors.New("businessSlug is required")
	}
	return services.ValidateOrderInput(p.Items)
}

func (s *Server) ordersEndpoint(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createOrder(w, r)
	case http.MethodGet:
		s.listOrders(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// createOrder is the public order-placement endpoint; no identity needed.
func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var p orderPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := p.Validate(); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := services.CreateOrder(r.Context(), p.BusinessSlug, p.CustomerName, p.CustomerPhone, p.Items)
	if err != nil {
		writeServiceError(w, "create order", err)
		return
	}
	log.Infof("order %d placed at %s, total %d cents", order.ID, p.BusinessSlug, order.TotalCents)

	// Notification is fire-and-forget; a Telegram hiccup never fails the order.
	go s.notifier.OrderCreated(p.BusinessSlug, order)

	respondJSON(w, map[string]any{"orderId": order.ID, "totalCents": order.TotalCents})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}
	businessID, err := queryID(r, "business_id")
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	orders, err := services.ListOrders(r.Context(), owner, businessID)
	if err != nil {
		writeServiceError(w, "list orders", err)
		return
	}
	respondJSON(w, orders)
}

func (s *Server) completeOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}
	var p struct {
		OrderID int64 `json:"orderId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := services.CompleteOrder(r.Context(), owner, p.OrderID); err != nil {
		writeServiceOrValidation(w, "complete order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
