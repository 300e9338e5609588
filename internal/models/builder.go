package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemBuilder provides a fluent API for constructing line items
type ItemBuilder struct {
	item LineItem
	err  error
}

// NewItemBuilder creates a new ItemBuilder with zero amounts
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		item: LineItem{
			Cost:    ZeroMoney(),
			Deposit: ZeroMoney(),
			Paid:    ZeroMoney(),
		},
	}
}

// WithID sets the item identifier
func (b *ItemBuilder) WithID(id string) *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.ID = id
	return b
}

// InCategory sets the category the item belongs to
func (b *ItemBuilder) InCategory(id CategoryID) *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.CategoryID = id
	return b
}

// WithName sets the display name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Name = name
	return b
}

// WithCost sets the total expected cost
func (b *ItemBuilder) WithCost(cost decimal.Decimal) *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Cost = NewMoney(cost)
	return b
}

// WithDeposit sets the amount pre-paid at commitment time
func (b *ItemBuilder) WithDeposit(deposit decimal.Decimal) *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Deposit = NewMoney(deposit)
	return b
}

// WithPaid sets the amount paid after the deposit
func (b *ItemBuilder) WithPaid(paid decimal.Decimal) *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Paid = NewMoney(paid)
	return b
}

// WithAmounts parses cost, deposit and paid from user input. Empty strings
// leave the corresponding amount at zero.
func (b *ItemBuilder) WithAmounts(cost, deposit, paid string) *ItemBuilder {
	if b.err != nil {
		return b
	}
	targets := []struct {
		field string
		input string
		dst   *Money
	}{
		{"cost", cost, &b.item.Cost},
		{"deposit", deposit, &b.item.Deposit},
		{"paid", paid, &b.item.Paid},
	}
	for _, t := range targets {
		if t.input == "" {
			continue
		}
		amount, err := ParseAmount(t.input)
		if err != nil {
			b.err = fmt.Errorf("%s: %w", t.field, err)
			return b
		}
		*t.dst = amount
	}
	return b
}

// WithNotes sets the free-text notes
func (b *ItemBuilder) WithNotes(notes string) *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Notes = notes
	return b
}

// WithOrder sets the display position within the category
func (b *ItemBuilder) WithOrder(order int) *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Order = order
	return b
}

// AsCompleted marks the item as completed
func (b *ItemBuilder) AsCompleted() *ItemBuilder {
	if b.err != nil {
		return b
	}
	b.item.Completed = true
	return b
}

// Build returns the item, or the first error recorded while building or
// raised by validation.
func (b *ItemBuilder) Build() (LineItem, error) {
	if b.err != nil {
		return LineItem{}, b.err
	}
	if err := b.item.Validate(); err != nil {
		return LineItem{}, err
	}
	return b.item, nil
}

// GuestBuilder provides a fluent API for constructing guests
type GuestBuilder struct {
	guest Guest
	err   error
}

// NewGuestBuilder creates a new GuestBuilder with zero amounts
func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		guest: Guest{
			AmountDue:  ZeroMoney(),
			AmountPaid: ZeroMoney(),
		},
	}
}

// WithID sets the guest identifier
func (b *GuestBuilder) WithID(id string) *GuestBuilder {
	if b.err != nil {
		return b
	}
	b.guest.ID = id
	return b
}

// WithName sets the guest name
func (b *GuestBuilder) WithName(name string) *GuestBuilder {
	if b.err != nil {
		return b
	}
	b.guest.Name = name
	return b
}

// WithAmountDue sets the expected contribution
func (b *GuestBuilder) WithAmountDue(due decimal.Decimal) *GuestBuilder {
	if b.err != nil {
		return b
	}
	b.guest.AmountDue = NewMoney(due)
	return b
}

// WithAmountPaid sets the amount received so far
func (b *GuestBuilder) WithAmountPaid(paid decimal.Decimal) *GuestBuilder {
	if b.err != nil {
		return b
	}
	b.guest.AmountPaid = NewMoney(paid)
	return b
}

// WithAmounts parses due and paid from user input. Empty strings leave the
// corresponding amount at zero.
func (b *GuestBuilder) WithAmounts(due, paid string) *GuestBuilder {
	if b.err != nil {
		return b
	}
	if due != "" {
		amount, err := ParseAmount(due)
		if err != nil {
			b.err = fmt.Errorf("amountDue: %w", err)
			return b
		}
		b.guest.AmountDue = amount
	}
	if paid != "" {
		amount, err := ParseAmount(paid)
		if err != nil {
			b.err = fmt.Errorf("amountPaid: %w", err)
			return b
		}
		b.guest.AmountPaid = amount
	}
	return b
}

// WithSeating sets the table assignment and relation tag
func (b *GuestBuilder) WithSeating(table, relation string) *GuestBuilder {
	if b.err != nil {
		return b
	}
	b.guest.Table = table
	b.guest.Relation = relation
	return b
}

// WithNotes sets the free-text notes
func (b *GuestBuilder) WithNotes(notes string) *GuestBuilder {
	if b.err != nil {
		return b
	}
	b.guest.Notes = notes
	return b
}

// AsConfirmed marks the guest's attendance as confirmed
func (b *GuestBuilder) AsConfirmed() *GuestBuilder {
	if b.err != nil {
		return b
	}
	b.guest.Confirmed = true
	return b
}

// Build returns the guest, or the first error recorded while building or
// raised by validation.
func (b *GuestBuilder) Build() (Guest, error) {
	if b.err != nil {
		return Guest{}, b.err
	}
	if err := b.guest.Validate(); err != nil {
		return Guest{}, err
	}
	return b.guest, nil
}
