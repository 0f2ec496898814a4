package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order row joined with its shipment.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// exists with the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_id,
			o.product_id,
			o.quantity,
			o.price_each,
			o.total_price,
			o.status,
			o.version,
			o.created_at,
			s.id,
			s.courier_name,
			s.tracking_number,
			s.status,
			s.created_at
		FROM orders o
		LEFT JOIN shipments s ON s.order_id = o.id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		resp GetOrderQueryResponse

		id, buyerID, productID uuid.UUID

		shipmentID      uuid.NullUUID
		courierName     sql.NullString
		trackingNumber  sql.NullString
		shipmentStatus  sql.NullString
		shipmentCreated sql.NullTime
		status          string
		createdAt       time.Time
	)

	err := row.Scan(
		&id,
		&buyerID,
		&productID,
		&resp.Quantity,
		&resp.PriceEach,
		&resp.TotalPrice,
		&status,
		&resp.Version,
		&createdAt,
		&shipmentID,
		&courierName,
		&trackingNumber,
		&shipmentStatus,
		&shipmentCreated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"orderID", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = status
	resp.CreatedAt = createdAt

	if shipmentID.Valid {
		sid, idErr := kernel.UUIDFromBytes(shipmentID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}

		shipment := &ShipmentResponse{
			ID:          sid,
			CourierName: courierName.String,
			Status:      shipmentStatus.String,
			CreatedAt:   shipmentCreated.Time,
		}
		if trackingNumber.Valid {
			tn := trackingNumber.String
			shipment.TrackingNumber = &tn
		}
		resp.Shipment = shipment
	}

	return resp, nil
}
