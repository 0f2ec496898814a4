package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveredOrdersQueryHandler finds shipped orders whose shipment is
// marked delivered.
type GetDeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveredOrdersQueryHandler creates a handler for delivered order
// queries. Requires a GORM database connection for query execution.
func NewGetDeliveredOrdersQueryHandler(db *gorm.DB) GetDeliveredOrdersQueryHandler {
	return GetDeliveredOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID for consistent
// output.
func (h GetDeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveredOrdersQuery,
) ([]GetDeliveredOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDeliveredOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id
		FROM orders o
		JOIN shipments s ON s.order_id = o.id
		WHERE o.status = ? AND s.status = ?
		ORDER BY o.id
	`, order.Shipped.String(), order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetDeliveredOrdersQueryResponse{ID: orderID})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
