package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swifthub/internal/core/application/usecases/commands"
	"swifthub/internal/pkg/errs"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("ORD1", "C1", "10 Depot Rd", "221B Baker St",
			"John Watson", "0771234567", nil, "fragile", 2.5, 1)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ORD1", cmd.OrderID())
		assert.Equal(t, "C1", cmd.ClientID())
		assert.Equal(t, "221B Baker St", cmd.DeliveryAddress())
		assert.Equal(t, "fragile", cmd.Notes())
	})

	t.Run("allows_empty_order_id", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("", "C1", "", "221B Baker St",
			"", "", nil, "", 0, 0)

		require.NoError(t, err)
		assert.Empty(t, cmd.OrderID())
	})

	t.Run("requires_client_id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "", "", "221B Baker St",
			"", "", nil, "", 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_delivery_address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "C1", "", "",
			"", "", nil, "", 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_weight_and_items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "C1", "", "221B Baker St",
			"", "", nil, "", -1, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
