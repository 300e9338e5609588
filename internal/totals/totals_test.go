package totals

import (
	"fmt"
	"math/rand"
	"testing"

	"fjacquet/event-budget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(v int64) models.Money {
	return models.NewMoneyFromInt(v)
}

func item(category models.CategoryID, cost, deposit, paid int64, completed bool) models.LineItem {
	return models.LineItem{
		CategoryID: category,
		Name:       string(category) + " item",
		Cost:       money(cost),
		Deposit:    money(deposit),
		Paid:       money(paid),
		Completed:  completed,
	}
}

func guest(due, paid int64, confirmed bool) models.Guest {
	return models.Guest{
		Name:       "guest",
		AmountDue:  money(due),
		AmountPaid: money(paid),
		Confirmed:  confirmed,
	}
}

func assertMoney(t *testing.T, expected int64, got models.Money) {
	t.Helper()
	assert.True(t, got.Equal(money(expected)), "expected %d, got %s", expected, got.String())
}

func TestItemBalance(t *testing.T) {
	tests := []struct {
		name                string
		cost, deposit, paid int64
		expected            int64
	}{
		{"owed", 1000, 200, 300, 500},
		{"exactly settled", 300, 100, 200, 0},
		{"overpaid stays negative", 100, 100, 50, -50},
		{"nothing paid", 750, 0, 0, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, tt.expected, ItemBalance(item(models.CategoryVenue, tt.cost, tt.deposit, tt.paid, false)))
		})
	}
}

func TestForCategory_VenueScenario(t *testing.T) {
	items := []models.LineItem{
		item(models.CategoryVenue, 1000, 200, 300, true),
		item(models.CategoryVenue, 500, 0, 0, false),
	}

	got := ForCategory(models.CategoryVenue, items)

	assert.Equal(t, models.CategoryVenue, got.CategoryID)
	assertMoney(t, 1500, got.TotalCost)
	assertMoney(t, 200, got.TotalDeposit)
	assertMoney(t, 300, got.TotalPaid)
	assertMoney(t, 1000, got.TotalDue)
	assert.Equal(t, 50.0, got.Progress)
	assert.Equal(t, 2, got.ItemCount)
	assert.Equal(t, 1, got.CompletedCount)
}

func TestForCategory_EmptyAndUnmatched(t *testing.T) {
	tests := []struct {
		name  string
		items []models.LineItem
	}{
		{name: "nil collection", items: nil},
		{name: "empty collection", items: []models.LineItem{}},
		{name: "only other categories", items: []models.LineItem{item(models.CategoryAttire, 10, 0, 0, true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForCategory(models.CategoryVenue, tt.items)
			assert.True(t, got.TotalCost.IsZero())
			assert.True(t, got.TotalDeposit.IsZero())
			assert.True(t, got.TotalPaid.IsZero())
			assert.True(t, got.TotalDue.IsZero())
			assert.Equal(t, 0.0, got.Progress)
			assert.Equal(t, 0, got.ItemCount)
		})
	}
}

func TestForCategory_OverpaidDueIsNegative(t *testing.T) {
	got := ForCategory(models.CategoryTasks, []models.LineItem{item(models.CategoryTasks, 100, 80, 50, true)})
	assertMoney(t, -30, got.TotalDue)
	assert.Equal(t, 100.0, got.Progress)
}

func TestOverall_GuestsOnlyScenario(t *testing.T) {
	guests := []models.Guest{guest(100, 100, true), guest(50, 0, false)}

	got := Overall(nil, guests)

	assertMoney(t, 150, got.TotalEstimated)
	assertMoney(t, 100, got.TotalPaid)
	assertMoney(t, 50, got.TotalPending)
	assert.Equal(t, 0.0, got.Progress, "guests never contribute to progress")
	assert.Equal(t, 0, got.ItemCount)
}

func TestOverall_Empty(t *testing.T) {
	got := Overall(nil, nil)

	assertMoney(t, 0, got.TotalEstimated)
	assertMoney(t, 0, got.TotalPaid)
	assertMoney(t, 0, got.TotalPending)
	assert.Equal(t, 0.0, got.Progress)
}

func TestOverall_ItemsAndGuests(t *testing.T) {
	items := []models.LineItem{
		item(models.CategoryVenue, 1000, 200, 300, true),
		item(models.CategoryAttire, 400, 100, 0, false),
		item(models.CategoryTasks, 0, 0, 0, true),
	}
	guests := []models.Guest{guest(100, 60, true)}

	got := Overall(items, guests)

	assertMoney(t, 1500, got.TotalEstimated)
	assertMoney(t, 660, got.TotalPaid)
	assertMoney(t, 840, got.TotalPending)
	assert.InDelta(t, 66.666, got.Progress, 0.01)
	assert.Equal(t, 3, got.ItemCount)
	assert.Equal(t, 2, got.CompletedCount)
}

func TestUnknownCategory_ExcludedFromCategoriesButCountedOverall(t *testing.T) {
	items := []models.LineItem{
		item(models.CategoryVenue, 100, 0, 0, false),
		item("honeymoon", 900, 100, 0, true),
	}

	for _, c := range models.Categories() {
		got := ForCategory(c.ID, items)
		if c.ID == models.CategoryVenue {
			assertMoney(t, 100, got.TotalCost)
			continue
		}
		assert.True(t, got.TotalCost.IsZero(), "category %s should not pick up the unknown item", c.ID)
	}

	rows := Breakdown(items, nil)
	estimated := models.ZeroMoney()
	for _, row := range rows {
		estimated = estimated.Add(row.Estimated)
	}
	assertMoney(t, 100, estimated)

	overall := Overall(items, nil)
	assertMoney(t, 1000, overall.TotalEstimated)
	assertMoney(t, 100, overall.TotalPaid)
	assert.Equal(t, 50.0, overall.Progress)
}

func TestBreakdown_ShapeAndOrder(t *testing.T) {
	items := []models.LineItem{
		item(models.CategoryTasks, 10, 0, 0, false),
		item(models.CategoryCivil, 20, 5, 5, true),
	}
	guests := []models.Guest{guest(100, 40, true), guest(60, 0, false)}

	rows := Breakdown(items, guests)
	categories := models.Categories()

	require.Len(t, rows, len(categories)+1)
	for i, c := range categories {
		assert.Equal(t, c.ID, rows[i].CategoryID)
		assert.Equal(t, c.Name, rows[i].Label)
		assert.False(t, rows[i].Guests)
	}

	civil := rows[0]
	assertMoney(t, 20, civil.Estimated)
	assertMoney(t, 10, civil.PaidSoFar)
	assertMoney(t, 10, civil.Pending)

	last := rows[len(rows)-1]
	assert.True(t, last.Guests)
	assert.Equal(t, models.GuestsLabel, last.Label)
	assertMoney(t, 160, last.Estimated)
	assertMoney(t, 40, last.PaidSoFar)
	assertMoney(t, 120, last.Pending)
}

func TestBreakdown_EmptyInputs(t *testing.T) {
	rows := Breakdown(nil, nil)
	require.Len(t, rows, len(models.Categories())+1)
	for _, row := range rows {
		assert.True(t, row.Estimated.IsZero())
		assert.True(t, row.PaidSoFar.IsZero())
		assert.True(t, row.Pending.IsZero())
	}
}

func TestSummarizeGuests(t *testing.T) {
	summary := SummarizeGuests([]models.Guest{guest(100, 100, true), guest(50, 0, false), guest(0, 20, true)})

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 2, summary.Confirmed)
	assertMoney(t, 150, summary.TotalDue)
	assertMoney(t, 120, summary.TotalPaid)
	assertMoney(t, 30, summary.TotalPending)

	empty := SummarizeGuests(nil)
	assert.Equal(t, 0, empty.Count)
	assert.True(t, empty.TotalPending.IsZero())
}

func TestSummarize_AgreesWithParts(t *testing.T) {
	s := Snapshot{
		Items: []models.LineItem{
			item(models.CategoryVenue, 1000, 200, 300, true),
			item(models.CategoryVendors, 300, 0, 0, false),
		},
		Guests: []models.Guest{guest(80, 20, true)},
	}

	summary := Summarize(s)

	assert.Equal(t, Overall(s.Items, s.Guests), summary.Overall)
	assert.Equal(t, SummarizeGuests(s.Guests), summary.Guests)
	require.Len(t, summary.Categories, len(models.Categories()))
	for i, c := range models.Categories() {
		assert.Equal(t, ForCategory(c.ID, s.Items), summary.Categories[i])
	}
}

func TestInputsAreNotMutated(t *testing.T) {
	items := []models.LineItem{item(models.CategoryVenue, 10, 1, 1, false)}
	guests := []models.Guest{guest(5, 1, false)}
	itemsBefore := append([]models.LineItem(nil), items...)
	guestsBefore := append([]models.Guest(nil), guests...)

	_ = Summarize(Snapshot{Items: items, Guests: guests})
	_ = Breakdown(items, guests)

	assert.Equal(t, itemsBefore, items)
	assert.Equal(t, guestsBefore, guests)
}

// randomSnapshot builds a collection spread across every category plus an
// occasional unknown one.
func randomSnapshot(r *rand.Rand) Snapshot {
	categories := models.Categories()
	var s Snapshot
	itemCount, guestCount := r.Intn(40), r.Intn(30)
	for i := 0; i < itemCount; i++ {
		category := categories[r.Intn(len(categories))].ID
		if r.Intn(10) == 0 {
			category = "retired-category"
		}
		s.Items = append(s.Items, item(category, r.Int63n(5000), r.Int63n(2000), r.Int63n(2000), r.Intn(2) == 0))
	}
	for i := 0; i < guestCount; i++ {
		s.Guests = append(s.Guests, guest(r.Int63n(500), r.Int63n(500), r.Intn(2) == 0))
	}
	return s
}

func TestProperties_RandomCollections(t *testing.T) {
	r := rand.New(rand.NewSource(20240611))

	for run := 0; run < 200; run++ {
		s := randomSnapshot(r)
		name := fmt.Sprintf("run %d (%d items, %d guests)", run, len(s.Items), len(s.Guests))

		overall := Overall(s.Items, s.Guests)
		assert.True(t, overall.TotalPending.Equal(overall.TotalEstimated.Sub(overall.TotalPaid)), name)
		assert.GreaterOrEqual(t, overall.Progress, 0.0, name)
		assert.LessOrEqual(t, overall.Progress, 100.0, name)

		known := models.ZeroMoney()
		for _, it := range s.Items {
			if models.IsKnownCategory(it.CategoryID) {
				known = known.Add(it.Cost)
			}
		}
		perCategory := models.ZeroMoney()
		for _, c := range models.Categories() {
			ct := ForCategory(c.ID, s.Items)
			perCategory = perCategory.Add(ct.TotalCost)
			assert.True(t, ct.TotalDue.Equal(ct.TotalCost.Sub(ct.TotalDeposit).Sub(ct.TotalPaid)), name)
		}
		assert.True(t, known.Equal(perCategory), "%s: per-category cost %s != known cost %s", name, perCategory, known)

		rows := Breakdown(s.Items, s.Guests)
		require.Len(t, rows, len(models.Categories())+1, name)
		guestRow := rows[len(rows)-1]
		g := SummarizeGuests(s.Guests)
		assert.True(t, guestRow.Estimated.Equal(g.TotalDue), name)
		assert.True(t, guestRow.Pending.Equal(guestRow.Estimated.Sub(guestRow.PaidSoFar)), name)

		rowsEstimated := models.ZeroMoney()
		for _, row := range rows {
			rowsEstimated = rowsEstimated.Add(row.Estimated)
		}
		assert.True(t, rowsEstimated.Equal(known.Add(g.TotalDue)), name)
	}
}
