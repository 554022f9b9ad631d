package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var order models.Order
	if err = utils.DecodeJSON(r, &order); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.OrderService.CreateOrder(r.Context(), principal, order)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, "order created", created)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	order, err := h.services.OrderService.GetOrder(r.Context(), principal, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "order retrieved", order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	h.writeOrders(w, r, "")
}

func (h *Handler) listOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	h.writeOrders(w, r, orderStatus(chi.URLParam(r, "status")))
}

func (h *Handler) writeOrders(w http.ResponseWriter, r *http.Request, status models.OrderStatus) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	orders, err := h.services.OrderService.ListOrders(r.Context(), principal, status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "orders retrieved", orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := orderStatus(r.URL.Query().Get("status"))

	order, err := h.services.OrderService.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "order status updated", order)
}

func (h *Handler) orderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.OrderService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "order statistics", stats)
}
