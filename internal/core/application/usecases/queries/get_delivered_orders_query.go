package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveredOrdersQuery must be created via NewGetDeliveredOrdersQuery constructor",
)

// GetDeliveredOrdersQuery retrieves shipped orders whose parcel the courier
// has reported as delivered. The completion job uses it to find orders ready
// to move to completed.
type GetDeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveredOrdersQuery creates a query to retrieve delivered orders.
// This is a parameterless query.
func NewGetDeliveredOrdersQuery() GetDeliveredOrdersQuery {
	return GetDeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveredOrdersQueryIsNotConstructed)
}

// GetDeliveredOrdersQueryResponse identifies an order ready for completion.
type GetDeliveredOrdersQueryResponse struct {
	ID kernel.UUID
}
