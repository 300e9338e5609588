package guest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/recorderror"
	"fjacquet/event-budget/internal/storage"
	"fjacquet/event-budget/internal/store"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.RecordStore {
	t.Helper()
	return store.NewRecordStore(storage.NewMemoryBackend(), logging.NewMockLogger())
}

func TestGuestCommand_Metadata(t *testing.T) {
	assert.Equal(t, "guest", Cmd.Use)
	names := make([]string, 0)
	for _, sub := range Cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"add", "list", "update", "delete"}, names)
	assert.Equal(t, "false", addCmd.Flags().Lookup("confirmed").DefValue)
}

func TestAddAndListGuests(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, addGuest(ctx, s, &bytes.Buffer{}, addOptions{name: "Ana", confirmed: true, due: "100", paid: "100", table: "3"}))
	require.NoError(t, addGuest(ctx, s, &bytes.Buffer{}, addOptions{name: "Luis", due: "50"}))

	err := addGuest(ctx, s, &bytes.Buffer{}, addOptions{name: ""})
	assert.True(t, errors.Is(err, recorderror.ErrInvalid))

	var buf bytes.Buffer
	require.NoError(t, listGuests(&buf, s))
	out := buf.String()
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Luis")
	assert.Contains(t, out, "2 guests, 1 confirmed")
	assert.Contains(t, out, "Pending 50.00")
}

func TestChangesFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "update", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().AddFlagSet(updateCmd.Flags())
	require.NoError(t, cmd.ParseFlags([]string{"--table", "7", "--paid", "25", "--confirmed"}))

	changes, err := changesFromFlags(cmd)
	require.NoError(t, err)

	require.NotNil(t, changes.Table)
	assert.Equal(t, "7", *changes.Table)
	require.NotNil(t, changes.AmountPaid)
	assert.True(t, changes.AmountPaid.Equal(models.NewMoneyFromInt(25)))
	require.NotNil(t, changes.Confirmed)
	assert.True(t, *changes.Confirmed)
	assert.Nil(t, changes.Name)
	assert.Nil(t, changes.AmountDue)
}

func TestUpdateGuest(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, addGuest(ctx, s, &bytes.Buffer{}, addOptions{name: "Ana", due: "100"}))
	id := s.Guests()[0].ID

	err := updateGuest(ctx, s, &bytes.Buffer{}, id, models.GuestChanges{})
	assert.Error(t, err)

	paid := models.NewMoneyFromInt(40)
	var buf bytes.Buffer
	require.NoError(t, updateGuest(ctx, s, &buf, id, models.GuestChanges{AmountPaid: &paid}))
	assert.Contains(t, buf.String(), "60.00")

	err = updateGuest(ctx, s, &bytes.Buffer{}, "missing", models.GuestChanges{AmountPaid: &paid})
	assert.True(t, errors.Is(err, recorderror.ErrNotFound))
}
