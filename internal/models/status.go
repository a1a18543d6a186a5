package models

import (
	"errors"
	"fmt"
)

// InvoiceStatus represents the status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

var (
	ErrUnknownStatus     = errors.New("unknown invoice status")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
)

// ParseInvoiceStatus converts a raw value into a known status.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	st := InvoiceStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid:
		return true
	}
	return false
}

// Next returns the only status s may move to. Paid is terminal.
func (s InvoiceStatus) Next() (InvoiceStatus, bool) {
	switch s {
	case InvoiceStatusDraft:
		return InvoiceStatusSent, true
	case InvoiceStatusSent:
		return InvoiceStatusPaid, true
	}
	return "", false
}

// CanTransitionTo reports whether moving from s to to is allowed.
func (s InvoiceStatus) CanTransitionTo(to InvoiceStatus) bool {
	next, ok := s.Next()
	return ok && next == to
}

// Transition validates a move from s to to.
func (s InvoiceStatus) Transition(to InvoiceStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(to))
	}
	if !s.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return nil
}
