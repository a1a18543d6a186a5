package models

import "strings"

// CompanyInfo is the issuer block printed on invoice documents.
// It comes from configuration and is never persisted.
type CompanyInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

// ContactLines returns the non-empty lines shown under the company name.
func (c CompanyInfo) ContactLines() []string {
	var lines []string
	for _, s := range []string{c.Address, c.Email, c.Phone} {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}
	if c.TaxID != "" {
		lines = append(lines, "Tax ID: "+c.TaxID)
	}
	return lines
}
