// Package queries contains read operations for the CQRS architecture.
// Query handlers bypass the domain model and read database rows directly,
// returning flat response structures shaped for the callers.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its shipment, if any.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ShipmentResponse represents shipment information in read results.
type ShipmentResponse struct {
	ID             kernel.UUID
	CourierName    string
	TrackingNumber *string
	Status         string
	CreatedAt      time.Time
}

// GetOrderQueryResponse represents a full order view. Shipment is nil for
// orders that have not been shipped.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	BuyerID    kernel.UUID
	ProductID  kernel.UUID
	Quantity   int
	PriceEach  int64
	TotalPrice int64
	Status     string
	Version    int
	CreatedAt  time.Time
	Shipment   *ShipmentResponse
}
