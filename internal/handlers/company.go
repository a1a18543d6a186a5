package handlers

import (
	"net/http"

	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
)

// CompanyHandler serves the issuer details printed on invoices. They come
// from configuration and cannot be edited at runtime.
type CompanyHandler struct {
	company models.CompanyInfo
}

func NewCompanyHandler(company models.CompanyInfo) *CompanyHandler {
	return &CompanyHandler{company: company}
}

func (h *CompanyHandler) Show(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.company)
}
