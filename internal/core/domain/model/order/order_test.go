package order_test

import (
	"testing"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create fresh order in created status", func(t *testing.T) {
		id := kernel.NewOrderID()

		o, err := order.NewOrder(id)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.CanAdvance())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should fail with zero-value identifier", func(t *testing.T) {
		var invalidID kernel.OrderID

		o, err := order.NewOrder(invalidID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "OrderID must be created")
	})
}

func TestNewOrderWithStatus(t *testing.T) {
	t.Run("should create order in the given status", func(t *testing.T) {
		id := kernel.NewOrderID()

		o, err := order.NewOrderWithStatus(id, order.Shipped)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.NewOrderWithStatus(kernel.NewOrderID(), order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted fields exactly", func(t *testing.T) {
		id, _ := kernel.OrderIDFromString("order-1")
		createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2025, 3, 2, 12, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(id, order.Shipped, createdAt, updatedAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should restore terminal status without enforcement", func(t *testing.T) {
		// Load path restores accepted history, transition rules do not apply.
		createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(kernel.NewOrderID(), order.Delivered, createdAt, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, o.CanAdvance())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		now := time.Now().UTC()

		_, err := order.RestoreOrder(kernel.NewOrderID(), order.Status(42), now, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should move through the full sequence in three steps", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewOrderID())
		require.NoError(t, err)

		require.NoError(t, o.Advance())
		assert.Equal(t, order.Processing, o.Status())

		require.NoError(t, o.Advance())
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.Advance())
		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, o.CanAdvance())
	})

	t.Run("fourth advance fails and mutates nothing", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewOrderID())
		for range 3 {
			require.NoError(t, o.Advance())
		}
		statusBefore := o.Status()
		updatedBefore := o.UpdatedAt()

		err := o.Advance()

		require.ErrorIs(t, err, order.ErrCannotAdvance)
		assert.Equal(t, statusBefore, o.Status())
		assert.Equal(t, updatedBefore, o.UpdatedAt())
	})

	t.Run("should refresh updatedAt on accepted transition", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewOrderID())
		updatedBefore := o.UpdatedAt()

		time.Sleep(time.Millisecond)
		require.NoError(t, o.Advance())

		assert.True(t, o.UpdatedAt().After(updatedBefore))
		assert.False(t, o.UpdatedAt().Before(o.CreatedAt()))
	})

	t.Run("should fail with error naming the terminal status", func(t *testing.T) {
		o, _ := order.NewOrderWithStatus(kernel.NewOrderID(), order.Delivered)

		err := o.Advance()

		var cannotAdvance *order.CannotAdvanceError
		require.ErrorAs(t, err, &cannotAdvance)
		assert.Equal(t, order.Delivered, cannotAdvance.Current)
	})
}

func TestOrder_CanAdvance(t *testing.T) {
	t.Run("true for every non-terminal status", func(t *testing.T) {
		for _, s := range []order.Status{order.Created, order.Processing, order.Shipped} {
			o, _ := order.NewOrderWithStatus(kernel.NewOrderID(), s)
			assert.True(t, o.CanAdvance(), "status %s", s)
		}
	})

	t.Run("false for delivered without failing", func(t *testing.T) {
		o, _ := order.NewOrderWithStatus(kernel.NewOrderID(), order.Delivered)

		assert.False(t, o.CanAdvance())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewOrderID())

		require.NoError(t, o.Validate())
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for zero-value order", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("orders with same id are equal", func(t *testing.T) {
		id := kernel.NewOrderID()
		a, _ := order.NewOrder(id)
		b, _ := order.NewOrderWithStatus(id, order.Shipped)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("orders with different ids are not equal", func(t *testing.T) {
		a, _ := order.NewOrder(kernel.NewOrderID())
		b, _ := order.NewOrder(kernel.NewOrderID())

		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
