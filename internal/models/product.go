package models

import "time"

// Product represents a product or service that can be billed.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"` // hour, project, month, etc.
	CreatedAt   time.Time `json:"createdAt"`

	// TaxRate is a percentage (18 = 18%).
	TaxRate float64 `json:"taxRate"`
}

// ProductInput carries the fields supplied when a product is created.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	TaxRate     float64 `json:"taxRate"`
	Unit        string  `json:"unit"`
}

// ProductPatch holds a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	TaxRate     *float64 `json:"taxRate,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
}

// Apply merges the patch into p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.TaxRate != nil {
		p.TaxRate = *pp.TaxRate
	}
	if pp.Unit != nil {
		p.Unit = *pp.Unit
	}
}

// PriceWithTax returns the unit price including tax.
func (p *Product) PriceWithTax() float64 {
	return p.Price * (1 + p.TaxRate/100)
}

// TaxAmount returns the tax amount for one unit.
func (p *Product) TaxAmount() float64 {
	return p.Price * p.TaxRate / 100
}

// Snapshot copies the fields an invoice line keeps once it is created.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID:   p.ID,
		ProductName: p.Name,
		Description: p.Description,
		UnitPrice:   p.Price,
		TaxRate:     p.TaxRate,
	}
}
