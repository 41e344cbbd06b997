package kernel_test

import (
	"testing"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("generates valid identifier", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.NotEmpty(t, id.String())
	})

	t.Run("generates unique identifiers", func(t *testing.T) {
		id1 := kernel.NewOrderID()
		id2 := kernel.NewOrderID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("accepts plain identifier", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("order-1")

		require.NoError(t, err)
		assert.Equal(t, "order-1", id.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		id, err := kernel.OrderIDFromString(" order-1 ")

		require.NoError(t, err)
		assert.Equal(t, "order-1", id.String())
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects whitespace-only strings", func(t *testing.T) {
		for _, raw := range []string{"   ", "\t\n", " \r "} {
			_, err := kernel.OrderIDFromString(raw)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("constructed identifier is valid", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("order-1")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	t.Run("equal after trimming", func(t *testing.T) {
		a, _ := kernel.OrderIDFromString(" order-1 ")
		b, _ := kernel.OrderIDFromString("order-1")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		a, _ := kernel.OrderIDFromString("Order-1")
		b, _ := kernel.OrderIDFromString("order-1")

		assert.False(t, a.IsEqual(b))
	})

	t.Run("different values are not equal", func(t *testing.T) {
		a, _ := kernel.OrderIDFromString("order-1")
		b, _ := kernel.OrderIDFromString("order-2")

		assert.False(t, a.IsEqual(b))
	})
}
