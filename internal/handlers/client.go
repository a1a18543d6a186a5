package handlers

import (
	"net/http"

	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/store"
	"github.com/diewo77/go-billing/validation"
)

type ClientHandler struct {
	store *store.Store
}

func NewClientHandler(s *store.Store) *ClientHandler {
	return &ClientHandler{store: s}
}

// clientView adds the formatted address to a client.
type clientView struct {
	models.Client
	FullAddress string `json:"fullAddress"`
}

func viewClient(c models.Client) clientView {
	return clientView{Client: c, FullAddress: c.FullAddress()}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients := h.store.Clients()
	items := make([]clientView, 0, len(clients))
	for _, c := range clients {
		items = append(items, viewClient(c))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *ClientHandler) View(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.Client(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, viewClient(c))
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ClientInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	v := make(validation.Violations)
	validation.Required("companyName", in.CompanyName, v)
	validation.Email("email", in.Email, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	id, err := h.store.AddClient(r.Context(), in)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ClientPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	v := make(validation.Violations)
	if patch.CompanyName != nil {
		validation.Required("companyName", *patch.CompanyName, v)
	}
	if patch.Email != nil {
		validation.Email("email", *patch.Email, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	id := r.PathValue("id")
	if err := h.store.UpdateClient(r.Context(), id, patch); err != nil {
		writeStoreError(w, r, err)
		return
	}
	c, err := h.store.Client(id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, viewClient(c))
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteClient(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
