package dashboard

import (
	"bytes"
	"context"
	"testing"

	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/storage"
	"fjacquet/event-budget/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCommand_Metadata(t *testing.T) {
	assert.Equal(t, "dashboard", Cmd.Use)
	assert.Contains(t, Cmd.Short, "overall totals")
	assert.NotNil(t, Cmd.RunE)
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	s := store.NewRecordStore(storage.NewMemoryBackend(), logging.NewMockLogger())
	_, err := s.AddItem(ctx, models.LineItem{CategoryID: models.CategoryVenue, Name: "Hall", Cost: models.NewMoneyFromInt(1000), Deposit: models.NewMoneyFromInt(200)})
	require.NoError(t, err)
	_, err = s.AddGuest(ctx, models.Guest{Name: "Ana", AmountDue: models.NewMoneyFromInt(100)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "1100.00")
	assert.Contains(t, out, "0 of 1 completed")
	assert.Contains(t, out, "Venue / Reception")
	assert.Contains(t, out, models.GuestsLabel)
}
