package models

import (
	"strings"
	"time"
)

// Address is a free-text postal address.
type Address struct {
	Street     string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"zipCode"`
	Country    string `json:"country"`
}

// Format returns the non-empty address parts joined on a single line.
func (a Address) Format() string {
	parts := make([]string, 0, 5)
	for _, s := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Client represents a customer in the billing system.
type Client struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     Address   `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClientInput carries the fields supplied when a client is created.
type ClientInput struct {
	CompanyName string  `json:"companyName"`
	ContactName string  `json:"contactName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     Address `json:"address"`
}

// ClientPatch holds a partial client update. Nil fields are left untouched.
type ClientPatch struct {
	CompanyName *string  `json:"companyName,omitempty"`
	ContactName *string  `json:"contactName,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Address     *Address `json:"address,omitempty"`
}

// Apply merges the patch into c.
func (cp ClientPatch) Apply(c *Client) {
	if cp.CompanyName != nil {
		c.CompanyName = *cp.CompanyName
	}
	if cp.ContactName != nil {
		c.ContactName = *cp.ContactName
	}
	if cp.Email != nil {
		c.Email = *cp.Email
	}
	if cp.Phone != nil {
		c.Phone = *cp.Phone
	}
	if cp.Address != nil {
		c.Address = *cp.Address
	}
}

// FullAddress returns the formatted full address.
func (c *Client) FullAddress() string {
	return c.Address.Format()
}

// Snapshot copies the client fields an invoice keeps once it is created.
func (c *Client) Snapshot() ClientSnapshot {
	return ClientSnapshot{
		ClientID:      c.ID,
		ClientName:    c.CompanyName,
		ClientAddress: c.FullAddress(),
	}
}
