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

type MockTransitionOrderRepository struct{ mock.Mock }

func (m *MockTransitionOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockTransitionOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockTransitionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockTransitionOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTransitionUoW struct{ mock.Mock }

func (m *MockTransitionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransitionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransitionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishStatusChanged(
	ctx context.Context, aggregate *order.Order, previous order.Status,
) {
	m.Called(ctx, aggregate, previous)
}

func newStoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, 40_000)
	require.NoError(t, err)

	switch status {
	case order.Pending:
	case order.Processed:
		require.NoError(t, aggregate.TransitionTo(order.Processed, nil))
	case order.Shipped:
		require.NoError(t, aggregate.TransitionTo(order.Processed, nil))
		require.NoError(t, aggregate.TransitionTo(order.Shipped,
			&order.ShipmentInfo{CourierName: "JNE"}))
	default:
		t.Fatalf("unsupported stored status: %s", status)
	}
	return aggregate
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Pending)
	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Processed, nil)
	require.NoError(t, err)

	repo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	publisher := new(MockOrderEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishStatusChanged", ctx, stored, order.Pending).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Processed, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_ShippedCreatesShipment(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Processed)
	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Shipped,
		&order.ShipmentInfo{CourierName: "SiCepat"})
	require.NoError(t, err)

	repo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Shipped, updated.Status())
	require.NotNil(t, updated.Shipment())
	require.Equal(t, "SiCepat", updated.Shipment().CourierName())
}

func TestTransitionOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Pending)
	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Shipped,
		&order.ShipmentInfo{CourierName: "JNE"})
	require.NoError(t, err)

	repo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	publisher := new(MockOrderEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)

	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	require.Equal(t, order.Pending, transitionErr.From)
	require.Equal(t, order.Shipped, transitionErr.To)

	require.Equal(t, order.Pending, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "PublishStatusChanged",
		mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_ShippedWithoutCourier(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Processed)
	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Shipped, nil)
	require.NoError(t, err)

	repo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.Equal(t, order.Processed, stored.Status())
	require.Nil(t, stored.Shipment())
}

func TestTransitionOrderCommandHandler_Handle_ConcurrencyConflict(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Pending)
	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Cancelled, nil)
	require.NoError(t, err)

	repo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	publisher := new(MockOrderEventPublisher)
	conflict := errs.NewConcurrencyConflictError("order", stored.ID().String())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "PublishStatusChanged",
		mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(id, order.Processed, nil)
	require.NoError(t, err)

	repo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	notFound := errs.NewObjectNotFoundError("orderID", id.String())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestTransitionOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransitionOrderCommand{} // not constructed properly
	factory := new(MockTransitionUoWFactory)
	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestTransitionOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Processed, nil)
	require.NoError(t, err)

	uow := new(MockTransitionUoW)
	factory := new(MockTransitionUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewTransitionOrderCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestTransitionOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Pending)
	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Processed, nil)
	require.NoError(t, err)

	repo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	publisher := new(MockOrderEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	publisher.AssertNotCalled(t, "PublishStatusChanged",
		mock.Anything, mock.Anything, mock.Anything)
}
