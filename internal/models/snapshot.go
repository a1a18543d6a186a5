package models

// Snapshot is the full persisted state of the store.
type Snapshot struct {
	Products []Product `json:"products"`
	Clients  []Client  `json:"clients"`
	Invoices []Invoice `json:"invoices"`
	Seeded   bool      `json:"seeded"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Seeded: s.Seeded}
	out.Products = append([]Product(nil), s.Products...)
	out.Clients = append([]Client(nil), s.Clients...)
	if s.Invoices != nil {
		out.Invoices = make([]Invoice, len(s.Invoices))
		for i, inv := range s.Invoices {
			out.Invoices[i] = inv.Clone()
		}
	}
	return out
}
