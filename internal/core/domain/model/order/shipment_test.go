package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should create shipment in packing status", func(t *testing.T) {
		s, err := order.NewShipment(kernel.NewUUID(), orderID, "JNE", trackingNumber("JNE123"))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "JNE", s.CourierName())
		require.NotNil(t, s.TrackingNumber())
		assert.Equal(t, "JNE123", *s.TrackingNumber())
		assert.Equal(t, order.Packing, s.Status())
		assert.True(t, s.OrderID().IsEqual(orderID))
		assert.False(t, s.CreatedAt().IsZero())
	})

	t.Run("tracking number is optional", func(t *testing.T) {
		s, err := order.NewShipment(kernel.NewUUID(), orderID, "JNE", nil)

		require.NoError(t, err)
		assert.Nil(t, s.TrackingNumber())
	})

	t.Run("should require courier name", func(t *testing.T) {
		_, err := order.NewShipment(kernel.NewUUID(), orderID, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "courier_name")
	})

	t.Run("should reject empty tracking number pointer", func(t *testing.T) {
		_, err := order.NewShipment(kernel.NewUUID(), orderID, "JNE", trackingNumber(""))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewShipment(invalidID, orderID, "JNE", nil)
		require.Error(t, err)

		_, err = order.NewShipment(kernel.NewUUID(), invalidID, "JNE", nil)
		require.Error(t, err)
	})
}

func TestRestoreShipment(t *testing.T) {
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("restores all fields", func(t *testing.T) {
		s, err := order.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), "SiCepat", trackingNumber("SC42"), order.Delivered, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "SiCepat", s.CourierName())
		assert.Equal(t, order.Delivered, s.Status())
		assert.Equal(t, createdAt, s.CreatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), "SiCepat", nil, order.ShipmentStatusUnknown, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("zero value shipment is invalid", func(t *testing.T) {
		var s order.Shipment
		require.ErrorIs(t, s.Validate(), order.ErrShipmentIsNotConstructed)
	})

	t.Run("nil shipment is invalid", func(t *testing.T) {
		var s *order.Shipment
		require.ErrorIs(t, s.Validate(), order.ErrShipmentIsNotConstructed)
	})
}

func TestShipmentStatus(t *testing.T) {
	t.Run("string round-trip", func(t *testing.T) {
		for _, status := range []order.ShipmentStatus{order.Packing, order.Shipping, order.Delivered} {
			parsed, err := order.ShipmentStatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, input := range []string{"unknown", "", "in_transit"} {
			_, err := order.ShipmentStatusFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}

		require.Error(t, order.ShipmentStatusUnknown.Validate())
		require.Error(t, order.ShipmentStatus(9).Validate())
	})
}

func TestShipment_SetStatus(t *testing.T) {
	s, err := order.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "JNE", nil)
	require.NoError(t, err)

	// The carrier reports sub-states; no ordering is enforced between them.
	require.NoError(t, s.SetStatus(order.Delivered))
	assert.Equal(t, order.Delivered, s.Status())

	require.NoError(t, s.SetStatus(order.Shipping))
	assert.Equal(t, order.Shipping, s.Status())

	require.ErrorIs(t, s.SetStatus(order.ShipmentStatusUnknown), errs.ErrValueIsInvalid)
	assert.Equal(t, order.Shipping, s.Status())
}
