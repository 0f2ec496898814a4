package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed status changes to interested
// consumers (notification service, analytics, buyer-facing realtime views).
//
// Publishing happens after the transaction commits and is best effort: the
// status change is already durable, so implementations log delivery failures
// instead of returning them, and callers never treat publication as part of
// the transition.
type OrderEventPublisher interface {
	// PublishStatusChanged announces that the order moved from previous to its
	// current status.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status)
}
