// Package pdf renders invoices as PDF documents with maroto.
package pdf

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/services"
)

// InvoiceData is everything printed on an invoice document.
type InvoiceData struct {
	InvoiceNumber string
	Date          string
	DueDate       string
	Status        string
	Total         float64 // before tax
	VAT           float64
	GrandTotal    float64
	Notes         string
	Client        ClientData
	Company       CompanyData
	Items         []InvoiceItem
}

// ClientData is the bill-to block.
type ClientData struct {
	Name    string
	Address string
}

// CompanyData is the issuer block.
type CompanyData struct {
	Name  string
	Lines []string
}

// InvoiceItem is one printed line.
type InvoiceItem struct {
	Description string
	Quantity    int
	UnitPrice   float64
	TaxRate     float64
	Total       float64
}

// FromInvoice maps a finalized invoice and the issuer details to InvoiceData.
func FromInvoice(inv models.Invoice, company models.CompanyInfo) InvoiceData {
	data := InvoiceData{
		InvoiceNumber: inv.Number,
		Date:          services.FormatDate(inv.CreatedAt),
		DueDate:       services.FormatDate(inv.DueDate),
		Status:        strings.ToUpper(string(inv.Status)),
		Total:         inv.Subtotal,
		VAT:           inv.TaxTotal,
		GrandTotal:    inv.Total,
		Notes:         inv.Notes,
		Client:        ClientData{Name: inv.ClientName, Address: inv.ClientAddress},
		Company:       CompanyData{Name: company.Name, Lines: company.ContactLines()},
	}
	for _, item := range inv.Items {
		desc := item.ProductName
		if item.Description != "" {
			desc += " - " + item.Description
		}
		data.Items = append(data.Items, InvoiceItem{
			Description: desc,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Total:       item.Total,
		})
	}
	return data
}

var (
	bold  = props.Text{Style: fontstyle.Bold, Size: 9}
	plain = props.Text{Size: 9}
	right = props.Text{Size: 9, Align: align.Right}
	gray  = &props.Color{Red: 230, Green: 230, Blue: 230}
)

// InvoicePDF renders data as an A4 PDF.
func InvoicePDF(data InvoiceData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, data.Company.Name, props.Text{Style: fontstyle.Bold, Size: 16}),
		text.NewCol(4, "INVOICE", props.Text{Style: fontstyle.Bold, Size: 16, Align: align.Right}),
	)
	for _, l := range data.Company.Lines {
		m.AddRow(5, text.NewCol(12, l, plain))
	}
	m.AddRows(line.NewRow(6))

	m.AddRow(6,
		text.NewCol(6, "Bill To", bold),
		text.NewCol(3, "Invoice #", bold),
		text.NewCol(3, data.InvoiceNumber, right),
	)
	m.AddRow(6,
		text.NewCol(6, data.Client.Name, plain),
		text.NewCol(3, "Issued", bold),
		text.NewCol(3, data.Date, right),
	)
	m.AddRow(6,
		text.NewCol(6, data.Client.Address, plain),
		text.NewCol(3, "Due", bold),
		text.NewCol(3, data.DueDate, right),
	)
	if data.Status != "" {
		m.AddRow(6,
			col.New(6),
			text.NewCol(3, "Status", bold),
			text.NewCol(3, data.Status, right),
		)
	}
	m.AddRows(line.NewRow(6))

	m.AddRows(itemsHeader())
	for _, item := range data.Items {
		m.AddRow(7,
			text.NewCol(5, item.Description, plain),
			text.NewCol(1, fmt.Sprintf("%d", item.Quantity), right),
			text.NewCol(2, services.FormatAmount(item.UnitPrice), right),
			text.NewCol(1, fmt.Sprintf("%g%%", item.TaxRate), right),
			text.NewCol(3, services.FormatAmount(item.Total), right),
		)
	}
	m.AddRows(line.NewRow(6))

	m.AddRows(
		totalRow("Subtotal", data.Total, plain),
		totalRow("Tax", data.VAT, plain),
		totalRow("Total", data.GrandTotal, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right}),
	)

	if data.Notes != "" {
		m.AddRow(10)
		m.AddRow(6, text.NewCol(12, "Notes", bold))
		m.AddRow(12, text.NewCol(12, data.Notes, plain))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func itemsHeader() core.Row {
	return row.New(8).Add(
		text.NewCol(5, "Description", bold),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Tax", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	).WithStyle(&props.Cell{BackgroundColor: gray})
}

func totalRow(label string, amount float64, valueStyle props.Text) core.Row {
	labelStyle := valueStyle
	labelStyle.Align = align.Right
	valueStyle.Align = align.Right
	return row.New(7).Add(
		col.New(6),
		text.NewCol(3, label, labelStyle),
		text.NewCol(3, services.FormatAmount(amount), valueStyle),
	)
}
