package models

import (
	"strings"

	"fjacquet/event-budget/internal/recorderror"
)

// LineItem is a single budgeted expense belonging to one category.
//
// The category is persisted under the "sectionId" key, the layout used by
// existing data files.
type LineItem struct {
	ID         string     `json:"id" yaml:"id"`
	CategoryID CategoryID `json:"sectionId" yaml:"sectionId"`
	Name       string     `json:"name" yaml:"name"`
	Cost       Money      `json:"cost" yaml:"cost"`
	Deposit    Money      `json:"deposit" yaml:"deposit"`
	Paid       Money      `json:"paid" yaml:"paid"`
	Completed  bool       `json:"completed" yaml:"completed"`
	Notes      string     `json:"notes" yaml:"notes"`
	Order      int        `json:"order" yaml:"order"`
}

// Balance returns cost - deposit - paid. The result is not clamped: a
// negative balance means the item was overpaid.
func (i LineItem) Balance() Money {
	return i.Cost.Sub(i.Deposit).Sub(i.Paid)
}

// PaidSoFar returns deposit + paid.
func (i LineItem) PaidSoFar() Money {
	return i.Deposit.Add(i.Paid)
}

// Validate checks the user-editable fields of the item.
func (i LineItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return &recorderror.ValidationError{Kind: recorderror.KindItem, Field: "name", Reason: "is required"}
	}
	amounts := []struct {
		field  string
		amount Money
	}{{"cost", i.Cost}, {"deposit", i.Deposit}, {"paid", i.Paid}}
	for _, a := range amounts {
		if a.amount.IsNegative() {
			return &recorderror.ValidationError{Kind: recorderror.KindItem, Field: a.field, Reason: "must not be negative"}
		}
	}
	return nil
}

// ItemChanges is a partial update of a LineItem. Nil fields are left
// untouched. The category cannot be changed.
type ItemChanges struct {
	Name      *string
	Cost      *Money
	Deposit   *Money
	Paid      *Money
	Completed *bool
	Notes     *string
}

// IsEmpty reports whether the changes would leave an item untouched.
func (c ItemChanges) IsEmpty() bool {
	return c.Name == nil && c.Cost == nil && c.Deposit == nil &&
		c.Paid == nil && c.Completed == nil && c.Notes == nil
}

// Apply returns a copy of item with the changes applied.
func (c ItemChanges) Apply(item LineItem) LineItem {
	if c.Name != nil {
		item.Name = *c.Name
	}
	if c.Cost != nil {
		item.Cost = *c.Cost
	}
	if c.Deposit != nil {
		item.Deposit = *c.Deposit
	}
	if c.Paid != nil {
		item.Paid = *c.Paid
	}
	if c.Completed != nil {
		item.Completed = *c.Completed
	}
	if c.Notes != nil {
		item.Notes = *c.Notes
	}
	return item
}
