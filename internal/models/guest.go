package models

import (
	"strings"

	"fjacquet/event-budget/internal/recorderror"
)

// Guest is an invitee tracked for attendance and financial contribution.
type Guest struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Confirmed  bool   `json:"confirmed" yaml:"confirmed"`
	AmountDue  Money  `json:"amountDue" yaml:"amountDue"`
	AmountPaid Money  `json:"amountPaid" yaml:"amountPaid"`
	Table      string `json:"table" yaml:"table"`
	Relation   string `json:"relation" yaml:"relation"`
	Notes      string `json:"notes" yaml:"notes"`
}

// Balance returns amountDue - amountPaid, negative when overpaid.
func (g Guest) Balance() Money {
	return g.AmountDue.Sub(g.AmountPaid)
}

// Validate checks the user-editable fields of the guest.
func (g Guest) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return &recorderror.ValidationError{Kind: recorderror.KindGuest, Field: "name", Reason: "is required"}
	}
	if g.AmountDue.IsNegative() {
		return &recorderror.ValidationError{Kind: recorderror.KindGuest, Field: "amountDue", Reason: "must not be negative"}
	}
	if g.AmountPaid.IsNegative() {
		return &recorderror.ValidationError{Kind: recorderror.KindGuest, Field: "amountPaid", Reason: "must not be negative"}
	}
	return nil
}

// GuestChanges is a partial update of a Guest. Nil fields are left untouched.
type GuestChanges struct {
	Name       *string
	Confirmed  *bool
	AmountDue  *Money
	AmountPaid *Money
	Table      *string
	Relation   *string
	Notes      *string
}

// IsEmpty reports whether the changes would leave a guest untouched.
func (c GuestChanges) IsEmpty() bool {
	return c.Name == nil && c.Confirmed == nil && c.AmountDue == nil &&
		c.AmountPaid == nil && c.Table == nil && c.Relation == nil && c.Notes == nil
}

// Apply returns a copy of guest with the changes applied.
func (c GuestChanges) Apply(guest Guest) Guest {
	if c.Name != nil {
		guest.Name = *c.Name
	}
	if c.Confirmed != nil {
		guest.Confirmed = *c.Confirmed
	}
	if c.AmountDue != nil {
		guest.AmountDue = *c.AmountDue
	}
	if c.AmountPaid != nil {
		guest.AmountPaid = *c.AmountPaid
	}
	if c.Table != nil {
		guest.Table = *c.Table
	}
	if c.Relation != nil {
		guest.Relation = *c.Relation
	}
	if c.Notes != nil {
		guest.Notes = *c.Notes
	}
	return guest
}
