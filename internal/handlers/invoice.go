package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/pdf"
	"github.com/diewo77/go-billing/internal/store"
	"github.com/diewo77/go-billing/validation"
)

type InvoiceHandler struct {
	store   *store.Store
	company models.CompanyInfo
}

func NewInvoiceHandler(s *store.Store, company models.CompanyInfo) *InvoiceHandler {
	return &InvoiceHandler{store: s, company: company}
}

// List returns the recent invoices in full and the archived ones as summaries.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	recent := h.store.RecentInvoices()
	archivedInvoices := h.store.ArchivedInvoices()
	archived := make([]models.InvoiceSummary, 0, len(archivedInvoices))
	for i := range archivedInvoices {
		archived = append(archived, archivedInvoices[i].Summary())
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"recent":   recent,
		"archived": archived,
		"window":   h.store.RecentWindow(),
	})
}

func (h *InvoiceHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"invoiceNumber": h.store.NextInvoiceNumber()})
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.InvoiceDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	v := make(validation.Violations)
	validation.Required("clientId", draft.ClientID, v)
	if len(draft.Items) == 0 {
		v["items"] = "required"
	}
	for i, it := range draft.Items {
		validation.Required(fmt.Sprintf("items[%d].productId", i), it.ProductID, v)
		validation.PositiveInt(fmt.Sprintf("items[%d].quantity", i), it.Quantity, v)
	}
	if draft.DueInDays < 0 {
		v["dueInDays"] = "must_not_be_negative"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	inv, err := h.store.AddInvoice(r.Context(), draft)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_reference", err.Error())
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

// View returns a recent invoice. Archived invoices redirect to the list.
func (h *InvoiceHandler) View(w http.ResponseWriter, r *http.Request) {
	inv, err := h.store.RecentInvoice(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	next, _ := inv.Status.Next()
	httpx.JSON(w, http.StatusOK, map[string]any{"invoice": inv, "nextStatus": next})
}

func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	status, err := models.ParseInvoiceStatus(req.Status)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	id := r.PathValue("id")
	if err := h.store.UpdateInvoiceStatus(r.Context(), id, status); err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id, "status": string(status)})
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteInvoice(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// PDF downloads a recent invoice as a document.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	inv, err := h.store.RecentInvoice(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	pdfBytes, err := pdf.InvoicePDF(pdf.FromInvoice(inv, h.company))
	if err != nil {
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.pdf\"", inv.Number))
	_, _ = w.Write(pdfBytes)
}
