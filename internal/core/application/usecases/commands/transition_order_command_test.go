package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	info := &order.ShipmentInfo{CourierName: "JNE"}

	cmd, err := commands.NewTransitionOrderCommand(orderID, order.Shipped, info)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Shipped, cmd.TargetStatus())
	assert.Equal(t, info, cmd.ShipmentInfo())
}

func TestNewTransitionOrderCommand_NoShipmentInfo(t *testing.T) {
	cmd, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Cancelled, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.ShipmentInfo())
}

func TestNewTransitionOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewTransitionOrderCommand(invalidID, order.Processed, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewTransitionOrderCommand_UnknownTargetStatus(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Unknown, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransitionOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.TransitionOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionOrderCommandIsNotConstructed)
}
