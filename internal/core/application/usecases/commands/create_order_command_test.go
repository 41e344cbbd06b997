package commands_test

import (
	"testing"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("generates an order identifier", func(t *testing.T) {
		cmd := commands.NewCreateOrderCommand()

		require.NoError(t, cmd.Validate())
		require.NoError(t, cmd.OrderID().Validate())
	})

	t.Run("generates unique identifiers per command", func(t *testing.T) {
		a := commands.NewCreateOrderCommand()
		b := commands.NewCreateOrderCommand()

		assert.False(t, a.OrderID().IsEqual(b.OrderID()))
	})
}

func TestNewCreateOrderCommandWithID(t *testing.T) {
	t.Run("accepts a valid supplied identifier", func(t *testing.T) {
		id, _ := kernel.OrderIDFromString("order-1")

		cmd, err := commands.NewCreateOrderCommandWithID(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("rejects a zero-value identifier", func(t *testing.T) {
		var invalidID kernel.OrderID

		_, err := commands.NewCreateOrderCommandWithID(invalidID)

		require.Error(t, err)
	})
}

func TestCreateOrderCommand_Validate(t *testing.T) {
	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
	})
}
