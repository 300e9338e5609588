// Package render formats engine results for the terminal.
package render

import (
	"fmt"
	"math"
	"strings"

	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/totals"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	owedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	settledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

const barWidth = 20

// Title renders a section heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Table renders rows under headers with a rounded border.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// Amount formats money with two decimals.
func Amount(m models.Money) string {
	return m.String()
}

// Balance formats an outstanding amount, coloured by sign: positive is
// still owed, zero is settled, negative is overpaid.
func Balance(m models.Money) string {
	switch {
	case m.IsPositive():
		return owedStyle.Render(m.String())
	case m.IsNegative():
		return overStyle.Render(m.String())
	default:
		return settledStyle.Render(m.String())
	}
}

// Percent formats a progress percentage without decimals.
func Percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// ProgressBar renders a fixed-width bar followed by the percentage.
func ProgressBar(p float64) string {
	filled := int(math.Round(p / 100 * barWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("%s %s", bar, Percent(p))
}

// Completed renders "X of Y completed".
func Completed(done, total int) string {
	return fmt.Sprintf("%d of %d completed", done, total)
}

// Dashboard renders the overall totals, one line per category and the
// guest summary.
func Dashboard(summary totals.Summary) string {
	var b strings.Builder
	o := summary.Overall

	b.WriteString(Title("Overall"))
	b.WriteString("\n")
	b.WriteString(Table(
		[]string{"Estimated", "Paid", "Pending"},
		[][]string{{Amount(o.TotalEstimated), Amount(o.TotalPaid), Balance(o.TotalPending)}},
	))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Progress  %s  %s\n\n", ProgressBar(o.Progress), Muted(Completed(o.CompletedCount, o.ItemCount)))

	b.WriteString(Title("Categories"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(summary.Categories)+1)
	for _, ct := range summary.Categories {
		label := string(ct.CategoryID)
		if c, ok := models.LookupCategory(ct.CategoryID); ok {
			label = c.Label()
		}
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%d/%d", ct.CompletedCount, ct.ItemCount),
			Amount(ct.TotalCost),
			Amount(ct.TotalDeposit.Add(ct.TotalPaid)),
			Balance(ct.TotalDue),
			ProgressBar(ct.Progress),
		})
	}
	g := summary.Guests
	rows = append(rows, []string{
		"👥 " + models.GuestsLabel,
		fmt.Sprintf("%d/%d", g.Confirmed, g.Count),
		Amount(g.TotalDue),
		Amount(g.TotalPaid),
		Balance(g.TotalPending),
		"",
	})
	b.WriteString(Table([]string{"Category", "Done", "Cost", "Paid", "Due", "Progress"}, rows))
	b.WriteString("\n")
	return b.String()
}

// Breakdown renders the report rows followed by a totals line.
func Breakdown(rows []totals.BreakdownRow, overall totals.OverallTotals) string {
	body := make([][]string, 0, len(rows)+1)
	for _, row := range rows {
		body = append(body, []string{row.Label, Amount(row.Estimated), Amount(row.PaidSoFar), Balance(row.Pending)})
	}
	body = append(body, []string{
		titleStyle.Render("Total"),
		Amount(overall.TotalEstimated),
		Amount(overall.TotalPaid),
		Balance(overall.TotalPending),
	})
	return Table([]string{"Category", "Estimated", "Paid so far", "Pending"}, body) + "\n"
}

// Items renders line items with their balances.
func Items(items []models.LineItem) string {
	if len(items) == 0 {
		return Muted("No items yet.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		done := " "
		if item.Completed {
			done = "✓"
		}
		rows = append(rows, []string{
			done,
			item.ID,
			string(item.CategoryID),
			item.Name,
			Amount(item.Cost),
			Amount(item.Deposit),
			Amount(item.Paid),
			Balance(item.Balance()),
			item.Notes,
		})
	}
	return Table([]string{"", "ID", "Category", "Name", "Cost", "Deposit", "Paid", "Balance", "Notes"}, rows) + "\n"
}

// CategoryHeader renders the totals shown above a single category listing.
func CategoryHeader(c models.Category, ct totals.CategoryTotals) string {
	var b strings.Builder
	b.WriteString(Title(c.Label()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Cost %s  Deposit %s  Paid %s  Due %s\n",
		Amount(ct.TotalCost), Amount(ct.TotalDeposit), Amount(ct.TotalPaid), Balance(ct.TotalDue))
	fmt.Fprintf(&b, "Progress  %s  %s\n", ProgressBar(ct.Progress), Muted(Completed(ct.CompletedCount, ct.ItemCount)))
	return b.String()
}

// Guests renders the guest list followed by its summary.
func Guests(guests []models.Guest, summary totals.GuestSummary) string {
	var b strings.Builder
	if len(guests) == 0 {
		b.WriteString(Muted("No guests yet."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(guests))
		for _, g := range guests {
			confirmed := " "
			if g.Confirmed {
				confirmed = "✓"
			}
			rows = append(rows, []string{
				confirmed, g.ID, g.Name, g.Table, g.Relation,
				Amount(g.AmountDue), Amount(g.AmountPaid), Balance(g.Balance()), g.Notes,
			})
		}
		b.WriteString(Table([]string{"", "ID", "Name", "Table", "Relation", "Due", "Paid", "Balance", "Notes"}, rows))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d guests, %d confirmed  Due %s  Paid %s  Pending %s\n",
		summary.Count, summary.Confirmed, Amount(summary.TotalDue), Amount(summary.TotalPaid), Balance(summary.TotalPending))
	return b.String()
}

// Categories renders the configured categories in canonical order.
func Categories(categories []models.Category) string {
	rows := make([][]string, 0, len(categories))
	for i, c := range categories {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), string(c.ID), c.Label()})
	}
	return Table([]string{"#", "ID", "Name"}, rows) + "\n"
}
