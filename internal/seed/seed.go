// Package seed builds the demo catalog and invoice history loaded into an
// empty store.
package seed

import (
	"math/rand/v2"
	"time"

	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/services"
)

// InvoiceCount is the number of generated invoices.
const InvoiceCount = 15

var statusCycle = []models.InvoiceStatus{
	models.InvoiceStatusPaid,
	models.InvoiceStatusPaid,
	models.InvoiceStatusPaid,
	models.InvoiceStatusSent,
	models.InvoiceStatusSent,
	models.InvoiceStatusDraft,
}

var noteCycle = []string{
	"Thank you for your business!",
	"Payment due within 30 days. GST included.",
	"For queries, contact accounts@company.com",
	"",
}

var products = []models.ProductInput{
	{Name: "Web Development", Description: "Full-stack custom web application development", Price: 75000, TaxRate: 18, Unit: "project"},
	{Name: "UI/UX Design", Description: "User interface and experience design", Price: 2500, TaxRate: 18, Unit: "hour"},
	{Name: "Technical Consulting", Description: "Architecture review and technical guidance", Price: 3500, TaxRate: 18, Unit: "hour"},
	{Name: "Website Maintenance", Description: "Monthly maintenance and support package", Price: 15000, TaxRate: 18, Unit: "month"},
	{Name: "SEO Services", Description: "Search engine optimization and analytics", Price: 25000, TaxRate: 18, Unit: "month"},
	{Name: "Mobile App Development", Description: "Cross-platform mobile application", Price: 150000, TaxRate: 18, Unit: "project"},
}

var clients = []models.ClientInput{
	{
		CompanyName: "Tata Consultancy Services", ContactName: "Rajesh Kumar",
		Email: "rajesh.kumar@tcs.com", Phone: "+91 98765 43210",
		Address: models.Address{Street: "9th Floor, Nirmal Building, Nariman Point", City: "Mumbai", State: "Maharashtra", PostalCode: "400021", Country: "India"},
	},
	{
		CompanyName: "Infosys Technologies", ContactName: "Priya Sharma",
		Email: "priya.sharma@infosys.com", Phone: "+91 98765 43211",
		Address: models.Address{Street: "44 Electronics City, Hosur Road", City: "Bengaluru", State: "Karnataka", PostalCode: "560100", Country: "India"},
	},
	{
		CompanyName: "Reliance Industries", ContactName: "Amit Patel",
		Email: "amit.patel@ril.com", Phone: "+91 98765 43212",
		Address: models.Address{Street: "Maker Chambers IV, Nariman Point", City: "Mumbai", State: "Maharashtra", PostalCode: "400021", Country: "India"},
	},
	{
		CompanyName: "Wipro Limited", ContactName: "Sneha Reddy",
		Email: "sneha.reddy@wipro.com", Phone: "+91 98765 43213",
		Address: models.Address{Street: "Doddakannelli, Sarjapur Road", City: "Bengaluru", State: "Karnataka", PostalCode: "560035", Country: "India"},
	},
	{
		CompanyName: "HCL Technologies", ContactName: "Vikram Singh",
		Email: "vikram.singh@hcl.com", Phone: "+91 98765 43214",
		Address: models.Address{Street: "Plot 3A, Sector 126", City: "Noida", State: "Uttar Pradesh", PostalCode: "201303", Country: "India"},
	},
}

// Products returns the demo product catalog.
func Products() []models.ProductInput { return append([]models.ProductInput(nil), products...) }

// Clients returns the demo clients.
func Clients() []models.ClientInput { return append([]models.ClientInput(nil), clients...) }

// Build returns a seeded snapshot. Invoice i is created 2*i days before now
// for client i%5 with 1..3 lines; numbers are assigned oldest first so the
// newest invoice carries the highest sequence of its year.
func Build(now time.Time, rng *rand.Rand, newID func() string) models.Snapshot {
	snap := models.Snapshot{Seeded: true}
	for _, in := range products {
		snap.Products = append(snap.Products, models.Product{
			ID:          newID(),
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			TaxRate:     in.TaxRate,
			Unit:        in.Unit,
			CreatedAt:   now,
		})
	}
	for _, in := range clients {
		snap.Clients = append(snap.Clients, models.Client{
			ID:          newID(),
			CompanyName: in.CompanyName,
			ContactName: in.ContactName,
			Email:       in.Email,
			Phone:       in.Phone,
			Address:     in.Address,
			CreatedAt:   now,
		})
	}

	invoices := make([]models.Invoice, InvoiceCount)
	for i := range invoices {
		client := snap.Clients[i%len(snap.Clients)]
		createdAt := now.AddDate(0, 0, -2*i)
		n := rng.IntN(3) + 1
		items := make([]models.InvoiceItem, 0, n)
		for j := 0; j < n; j++ {
			p := snap.Products[(i+j)%len(snap.Products)]
			items = append(items, services.BuildItem(newID(), p.Snapshot(), rng.IntN(5)+1))
		}
		totals := services.InvoiceTotals(items)
		invoices[i] = models.Invoice{
			ID:             newID(),
			ClientSnapshot: client.Snapshot(),
			Items:          items,
			Subtotal:       totals.Subtotal,
			TaxTotal:       totals.TaxTotal,
			Total:          totals.Total,
			Status:         statusCycle[i%len(statusCycle)],
			Notes:          noteCycle[i%len(noteCycle)],
			CreatedAt:      createdAt,
			DueDate:        createdAt.AddDate(0, 0, models.DefaultDueInDays),
		}
	}

	// oldest first, so each number counts only the invoices created before it
	var numbered []models.Invoice
	for i := len(invoices) - 1; i >= 0; i-- {
		invoices[i].Number = services.NextInvoiceNumber(numbered, invoices[i].CreatedAt)
		numbered = append(numbered, invoices[i])
	}
	snap.Invoices = invoices
	return snap
}
