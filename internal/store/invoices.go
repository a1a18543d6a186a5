package store

import (
	"context"
	"log"
	"math/rand/v2"

	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/seed"
	"github.com/diewo77/go-billing/internal/services"
)

// AddInvoice creates a draft invoice from d. The client and each line's product
// are copied into the invoice, totals are computed from the lines and the next
// number of the current year is assigned. The invoice becomes the newest one.
func (s *Store) AddInvoice(ctx context.Context, d models.InvoiceDraft) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.clientIndex(d.ClientID)
	if ci < 0 {
		err := notFound("client", d.ClientID)
		s.record("add_invoice", err)
		return models.Invoice{}, err
	}
	items := make([]models.InvoiceItem, 0, len(d.Items))
	for _, line := range d.Items {
		pi := s.productIndex(line.ProductID)
		if pi < 0 {
			err := notFound("product", line.ProductID)
			s.record("add_invoice", err)
			return models.Invoice{}, err
		}
		items = append(items, services.BuildItem(s.newID(), s.state.Products[pi].Snapshot(), line.Quantity))
	}

	now := s.now()
	totals := services.InvoiceTotals(items)
	inv := models.Invoice{
		ID:             s.newID(),
		Number:         services.NextInvoiceNumber(s.state.Invoices, now),
		ClientSnapshot: s.state.Clients[ci].Snapshot(),
		Items:          items,
		Subtotal:       totals.Subtotal,
		TaxTotal:       totals.TaxTotal,
		Total:          totals.Total,
		Status:         models.InvoiceStatusDraft,
		Notes:          d.Notes,
		CreatedAt:      now,
		DueDate:        d.ResolveDueDate(now),
	}
	s.state.Invoices = append([]models.Invoice{inv}, s.state.Invoices...)
	return inv.Clone(), s.persist(ctx, "add_invoice")
}

// UpdateInvoice merges patch into the invoice. Totals are not recomputed and
// number and status never change.
func (s *Store) UpdateInvoice(ctx context.Context, id string, patch models.InvoicePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.invoiceIndex(id)
	if i < 0 {
		err := notFound("invoice", id)
		s.record("update_invoice", err)
		return err
	}
	patch.Apply(&s.state.Invoices[i])
	return s.persist(ctx, "update_invoice")
}

// UpdateInvoiceStatus moves a recent invoice one step along draft, sent, paid.
// Archived invoices return ErrArchived; any other move returns
// models.ErrInvalidTransition or models.ErrUnknownStatus.
func (s *Store) UpdateInvoiceStatus(ctx context.Context, id string, status models.InvoiceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.invoiceIndex(id)
	if i < 0 {
		err := notFound("invoice", id)
		s.record("update_invoice_status", err)
		return err
	}
	if i >= s.window {
		s.record("update_invoice_status", ErrArchived)
		return ErrArchived
	}
	inv := &s.state.Invoices[i]
	if err := inv.Status.Transition(status); err != nil {
		s.record("update_invoice_status", err)
		return err
	}
	inv.Status = status
	return s.persist(ctx, "update_invoice_status")
}

// DeleteInvoice removes an invoice.
func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.invoiceIndex(id)
	if i < 0 {
		err := notFound("invoice", id)
		s.record("delete_invoice", err)
		return err
	}
	s.state.Invoices = append(s.state.Invoices[:i], s.state.Invoices[i+1:]...)
	return s.persist(ctx, "delete_invoice")
}

// Invoices returns every invoice, newest first.
func (s *Store) Invoices() []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneInvoices(s.state.Invoices)
}

// Invoice returns any invoice by id, recent or archived.
func (s *Store) Invoice(id string) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.invoiceIndex(id)
	if i < 0 {
		return models.Invoice{}, notFound("invoice", id)
	}
	return s.state.Invoices[i].Clone(), nil
}

// RecentInvoices returns the newest invoices within the recent window.
func (s *Store) RecentInvoices() []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneInvoices(Recent(s.state.Invoices, s.window))
}

// ArchivedInvoices returns the invoices past the recent window, newest first.
func (s *Store) ArchivedInvoices() []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneInvoices(Archived(s.state.Invoices, s.window))
}

// RecentInvoice returns an invoice from the recent window. Ids that only exist
// in the archived partition return ErrArchived.
func (s *Store) RecentInvoice(id string) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.invoiceIndex(id)
	if i < 0 {
		return models.Invoice{}, notFound("invoice", id)
	}
	if i >= s.window {
		return models.Invoice{}, ErrArchived
	}
	return s.state.Invoices[i].Clone(), nil
}

// NextInvoiceNumber previews the number the next AddInvoice would assign.
func (s *Store) NextInvoiceNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return services.NextInvoiceNumber(s.state.Invoices, s.now())
}

// Stats computes the dashboard figures.
func (s *Store) Stats() services.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return services.DashboardStats(s.state.Invoices, len(s.state.Clients), len(s.state.Products), s.now())
}

// LoadSeedData replaces the state with demo data once. It reports whether
// anything was loaded; later calls are no-ops.
func (s *Store) LoadSeedData(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Seeded {
		return false, nil
	}
	s.state = seed.Build(s.now(), s.rng, s.newID)
	log.Printf("[seed] loaded %d products, %d clients, %d invoices",
		len(s.state.Products), len(s.state.Clients), len(s.state.Invoices))
	return true, s.persist(ctx, "load_seed_data")
}

// SeedRand returns a deterministic source for LoadSeedData, or nil for n == 0.
func SeedRand(n uint64) *rand.Rand {
	if n == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(n, n))
}

func (s *Store) invoiceIndex(id string) int {
	for i := range s.state.Invoices {
		if s.state.Invoices[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneInvoices(in []models.Invoice) []models.Invoice {
	out := make([]models.Invoice, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
