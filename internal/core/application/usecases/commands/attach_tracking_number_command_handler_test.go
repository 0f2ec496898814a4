package commands_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAttachTrackingOrderRepository struct{ mock.Mock }

func (m *MockAttachTrackingOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockAttachTrackingOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockAttachTrackingOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockAttachTrackingOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAttachTrackingUoW struct{ mock.Mock }

func (m *MockAttachTrackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAttachTrackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAttachTrackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttachTrackingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockAttachTrackingUoWFactory struct{ mock.Mock }

func (m *MockAttachTrackingUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestAttachTrackingNumberCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Shipped)
	cmd, err := commands.NewAttachTrackingNumberCommand(stored.ID(), "JNE-1234567890")
	require.NoError(t, err)

	repo := new(MockAttachTrackingOrderRepository)
	uow := new(MockAttachTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAttachTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachTrackingNumberCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Shipped, updated.Status())
	require.NotNil(t, updated.Shipment().TrackingNumber())
	require.Equal(t, "JNE-1234567890", *updated.Shipment().TrackingNumber())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachTrackingNumberCommandHandler_Handle_NoShipmentYet(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Processed)
	cmd, err := commands.NewAttachTrackingNumberCommand(stored.ID(), "JNE-1234567890")
	require.NoError(t, err)

	repo := new(MockAttachTrackingOrderRepository)
	uow := new(MockAttachTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAttachTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachTrackingNumberCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAttachTrackingNumberCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AttachTrackingNumberCommand{} // not constructed properly
	factory := new(MockAttachTrackingUoWFactory)
	h := commands.NewAttachTrackingNumberCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAttachTrackingNumberCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAttachTrackingNumberCommand(kernel.NewUUID(), "JNE-1")
	require.NoError(t, err)

	uow := new(MockAttachTrackingUoW)
	factory := new(MockAttachTrackingUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAttachTrackingNumberCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
