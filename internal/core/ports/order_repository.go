// Package ports defines repository and outbound interfaces for the order
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities with
// their shipment record.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	//
	// The write is conditioned on the aggregate's optimistic-concurrency
	// version: if a concurrent writer changed the order after it was loaded,
	// Update fails with an error unwrapping errs.ErrConcurrencyConflict and no
	// mutation occurs. Callers may retry by re-reading the aggregate.
	//
	// If the aggregate carries a shipment, the shipment row is written in the
	// same transaction as the order row.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its shipment and checkout reference when present.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
