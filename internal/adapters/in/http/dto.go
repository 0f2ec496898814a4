package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	BuyerID   string `json:"buyer_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	PriceEach int64  `json:"price_each"`
}

// TransitionOrderRequest is the body of PATCH /api/v1/orders/:id/status.
// Shipment details are required when the target status is shipped.
type TransitionOrderRequest struct {
	Status         string  `json:"status"`
	CourierName    string  `json:"courier_name,omitempty"`
	TrackingNumber *string `json:"tracking_number,omitempty"`
}

// AttachTrackingNumberRequest is the body of
// PATCH /api/v1/orders/:id/shipment/tracking.
type AttachTrackingNumberRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// UpdateShipmentStatusRequest is the body of
// PATCH /api/v1/orders/:id/shipment/status.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

// ShipmentResponse is the shipment part of an order response.
type ShipmentResponse struct {
	ID             string    `json:"id"`
	CourierName    string    `json:"courier_name"`
	TrackingNumber *string   `json:"tracking_number,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID         string            `json:"id"`
	BuyerID    string            `json:"buyer_id"`
	ProductID  string            `json:"product_id"`
	Quantity   int               `json:"quantity"`
	PriceEach  int64             `json:"price_each"`
	TotalPrice int64             `json:"total_price"`
	Status     string            `json:"status"`
	Version    int               `json:"version"`
	CreatedAt  time.Time         `json:"created_at"`
	Shipment   *ShipmentResponse `json:"shipment,omitempty"`
}

func orderResponseFromDomain(aggregate *order.Order) OrderResponse {
	out := OrderResponse{
		ID:         aggregate.ID().String(),
		BuyerID:    aggregate.BuyerID().String(),
		ProductID:  aggregate.ProductID().String(),
		Quantity:   aggregate.Quantity(),
		PriceEach:  aggregate.PriceEach(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     aggregate.Status().String(),
		Version:    aggregate.Version(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	if shipment := aggregate.Shipment(); shipment != nil {
		out.Shipment = &ShipmentResponse{
			ID:             shipment.ID().String(),
			CourierName:    shipment.CourierName(),
			TrackingNumber: shipment.TrackingNumber(),
			Status:         shipment.Status().String(),
			CreatedAt:      shipment.CreatedAt(),
		}
	}

	return out
}

func orderResponseFromQuery(resp queries.GetOrderQueryResponse) OrderResponse {
	out := OrderResponse{
		ID:         resp.ID.String(),
		BuyerID:    resp.BuyerID.String(),
		ProductID:  resp.ProductID.String(),
		Quantity:   resp.Quantity,
		PriceEach:  resp.PriceEach,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		Version:    resp.Version,
		CreatedAt:  resp.CreatedAt,
	}

	if resp.Shipment != nil {
		out.Shipment = &ShipmentResponse{
			ID:             resp.Shipment.ID.String(),
			CourierName:    resp.Shipment.CourierName,
			TrackingNumber: resp.Shipment.TrackingNumber,
			Status:         resp.Shipment.Status,
			CreatedAt:      resp.Shipment.CreatedAt,
		}
	}

	return out
}
