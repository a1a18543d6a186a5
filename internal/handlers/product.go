package handlers

import (
	"net/http"

	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/store"
	"github.com/diewo77/go-billing/validation"
)

type ProductHandler struct {
	store *store.Store
}

func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.store.Products()
	httpx.JSON(w, http.StatusOK, map[string]any{"items": products, "total": len(products)})
}

func (h *ProductHandler) View(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Product(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	v := make(validation.Violations)
	validation.Required("name", in.Name, v)
	validation.NonNegativeFloat("price", in.Price, v)
	validation.RangeFloat("taxRate", in.TaxRate, 0, 100, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	id, err := h.store.AddProduct(r.Context(), in)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ProductPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	v := make(validation.Violations)
	if patch.Name != nil {
		validation.Required("name", *patch.Name, v)
	}
	if patch.Price != nil {
		validation.NonNegativeFloat("price", *patch.Price, v)
	}
	if patch.TaxRate != nil {
		validation.RangeFloat("taxRate", *patch.TaxRate, 0, 100, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	id := r.PathValue("id")
	if err := h.store.UpdateProduct(r.Context(), id, patch); err != nil {
		writeStoreError(w, r, err)
		return
	}
	p, err := h.store.Product(id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
