// Package totals derives balances, roll-ups and progress figures from the
// item and guest collections.
//
// Every function is pure: inputs are only read, results are new values and
// nothing is cached between calls. Empty inputs are valid and produce zero
// totals and zero progress.
package totals

import (
	"fjacquet/event-budget/internal/models"
)

// Snapshot is a point-in-time copy of both collections.
type Snapshot struct {
	Items  []models.LineItem
	Guests []models.Guest
}

// ItemSums are the raw sums over a set of line items.
type ItemSums struct {
	Cost      models.Money
	Deposit   models.Money
	Paid      models.Money
	Count     int
	Completed int
}

// Due returns cost - deposit - paid over the summed items.
func (s ItemSums) Due() models.Money {
	return s.Cost.Sub(s.Deposit).Sub(s.Paid)
}

// PaidSoFar returns deposit + paid over the summed items.
func (s ItemSums) PaidSoFar() models.Money {
	return s.Deposit.Add(s.Paid)
}

// Progress returns the completed percentage, 0 when there are no items.
func (s ItemSums) Progress() float64 {
	return progress(s.Completed, s.Count)
}

// GuestSummary holds the sums over the guest list.
type GuestSummary struct {
	Count        int          `json:"count" yaml:"count"`
	Confirmed    int          `json:"confirmed" yaml:"confirmed"`
	TotalDue     models.Money `json:"totalDue" yaml:"totalDue"`
	TotalPaid    models.Money `json:"totalPaid" yaml:"totalPaid"`
	TotalPending models.Money `json:"totalPending" yaml:"totalPending"`
}

// CategoryTotals are the roll-ups of one category. All fields are computed
// together from the same items.
type CategoryTotals struct {
	CategoryID     models.CategoryID `json:"categoryId" yaml:"categoryId"`
	TotalCost      models.Money      `json:"totalCost" yaml:"totalCost"`
	TotalDeposit   models.Money      `json:"totalDeposit" yaml:"totalDeposit"`
	TotalPaid      models.Money      `json:"totalPaid" yaml:"totalPaid"`
	TotalDue       models.Money      `json:"totalDue" yaml:"totalDue"`
	Progress       float64           `json:"progress" yaml:"progress"`
	ItemCount      int               `json:"itemCount" yaml:"itemCount"`
	CompletedCount int               `json:"completedCount" yaml:"completedCount"`
}

// OverallTotals combine every item and every guest. Progress counts items
// only.
type OverallTotals struct {
	TotalEstimated models.Money `json:"totalEstimated" yaml:"totalEstimated"`
	TotalPaid      models.Money `json:"totalPaid" yaml:"totalPaid"`
	TotalPending   models.Money `json:"totalPending" yaml:"totalPending"`
	Progress       float64      `json:"progress" yaml:"progress"`
	ItemCount      int          `json:"itemCount" yaml:"itemCount"`
	CompletedCount int          `json:"completedCount" yaml:"completedCount"`
}

// BreakdownRow is one line of the report table.
type BreakdownRow struct {
	Label      string            `json:"label" yaml:"label" csv:"category"`
	CategoryID models.CategoryID `json:"categoryId,omitempty" yaml:"categoryId,omitempty" csv:"-"`
	Estimated  models.Money      `json:"estimated" yaml:"estimated" csv:"estimated"`
	PaidSoFar  models.Money      `json:"paidSoFar" yaml:"paidSoFar" csv:"paid_so_far"`
	Pending    models.Money      `json:"pending" yaml:"pending" csv:"pending"`
	Guests     bool              `json:"guests,omitempty" yaml:"guests,omitempty" csv:"-"`
}

// Summary is everything a dashboard shows, derived from one snapshot.
type Summary struct {
	Overall    OverallTotals    `json:"overall" yaml:"overall"`
	Categories []CategoryTotals `json:"categories" yaml:"categories"`
	Guests     GuestSummary     `json:"guests" yaml:"guests"`
}

// ItemBalance returns cost - deposit - paid for a single item.
func ItemBalance(item models.LineItem) models.Money {
	return item.Balance()
}

// SumItems adds up every item regardless of category.
func SumItems(items []models.LineItem) ItemSums {
	sums := ItemSums{
		Cost:    models.ZeroMoney(),
		Deposit: models.ZeroMoney(),
		Paid:    models.ZeroMoney(),
	}
	for _, item := range items {
		sums.Cost = sums.Cost.Add(item.Cost)
		sums.Deposit = sums.Deposit.Add(item.Deposit)
		sums.Paid = sums.Paid.Add(item.Paid)
		sums.Count++
		if item.Completed {
			sums.Completed++
		}
	}
	return sums
}

// SummarizeGuests adds up the guest list.
func SummarizeGuests(guests []models.Guest) GuestSummary {
	summary := GuestSummary{
		TotalDue:  models.ZeroMoney(),
		TotalPaid: models.ZeroMoney(),
	}
	for _, guest := range guests {
		summary.TotalDue = summary.TotalDue.Add(guest.AmountDue)
		summary.TotalPaid = summary.TotalPaid.Add(guest.AmountPaid)
		summary.Count++
		if guest.Confirmed {
			summary.Confirmed++
		}
	}
	summary.TotalPending = summary.TotalDue.Sub(summary.TotalPaid)
	return summary
}

// ForCategory computes the totals of the items whose category is id. Items
// in other categories, including unknown ones, are ignored.
func ForCategory(id models.CategoryID, items []models.LineItem) CategoryTotals {
	sums := SumItems(inCategory(id, items))
	return CategoryTotals{
		CategoryID:     id,
		TotalCost:      sums.Cost,
		TotalDeposit:   sums.Deposit,
		TotalPaid:      sums.Paid,
		TotalDue:       sums.Due(),
		Progress:       sums.Progress(),
		ItemCount:      sums.Count,
		CompletedCount: sums.Completed,
	}
}

// Overall combines all items, whatever their category, with all guests.
func Overall(items []models.LineItem, guests []models.Guest) OverallTotals {
	itemSums := SumItems(items)
	guestSums := SummarizeGuests(guests)

	estimated := itemSums.Cost.Add(guestSums.TotalDue)
	paid := itemSums.PaidSoFar().Add(guestSums.TotalPaid)
	return OverallTotals{
		TotalEstimated: estimated,
		TotalPaid:      paid,
		TotalPending:   estimated.Sub(paid),
		Progress:       itemSums.Progress(),
		ItemCount:      itemSums.Count,
		CompletedCount: itemSums.Completed,
	}
}

// Breakdown returns one row per configured category, in configured order,
// followed by a single guest row.
func Breakdown(items []models.LineItem, guests []models.Guest) []BreakdownRow {
	categories := models.Categories()
	rows := make([]BreakdownRow, 0, len(categories)+1)
	for _, c := range categories {
		t := ForCategory(c.ID, items)
		rows = append(rows, BreakdownRow{
			Label:      c.Name,
			CategoryID: c.ID,
			Estimated:  t.TotalCost,
			PaidSoFar:  t.TotalDeposit.Add(t.TotalPaid),
			Pending:    t.TotalDue,
		})
	}

	g := SummarizeGuests(guests)
	rows = append(rows, BreakdownRow{
		Label:     models.GuestsLabel,
		Estimated: g.TotalDue,
		PaidSoFar: g.TotalPaid,
		Pending:   g.TotalPending,
		Guests:    true,
	})
	return rows
}

// Summarize derives the dashboard figures from one snapshot.
func Summarize(s Snapshot) Summary {
	categories := models.Categories()
	perCategory := make([]CategoryTotals, 0, len(categories))
	for _, c := range categories {
		perCategory = append(perCategory, ForCategory(c.ID, s.Items))
	}
	return Summary{
		Overall:    Overall(s.Items, s.Guests),
		Categories: perCategory,
		Guests:     SummarizeGuests(s.Guests),
	}
}

func inCategory(id models.CategoryID, items []models.LineItem) []models.LineItem {
	var matched []models.LineItem
	for _, item := range items {
		if item.CategoryID == id {
			matched = append(matched, item)
		}
	}
	return matched
}

// progress returns 0 for an empty set rather than dividing by zero.
func progress(completed, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(completed) / float64(total) * 100.0
}
