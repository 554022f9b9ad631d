package http

import (
	"net/http"

	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := models.ProductFilter{Name: r.URL.Query().Get("name")}

	var err error
	if filter.MinPrice, err = queryInt64(r, "min_price"); err != nil {
		writeError(w, r, err)
		return
	}
	if filter.MaxPrice, err = queryInt64(r, "max_price"); err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.services.CatalogService.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "products retrieved", products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.CatalogService.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "product retrieved", product)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := utils.DecodeJSON(r, &product); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CatalogService.CreateProduct(r.Context(), product)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, "product created", created)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProductUpdate
	if err = utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.CatalogService.UpdateProduct(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "product updated", updated)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CatalogService.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "product deleted", nil)
}
