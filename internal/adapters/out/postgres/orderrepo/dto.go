// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The checkout reference is embedded into the orders table; the shipment
// lives in its own table keyed by order ID.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int
	PriceEach  int64
	TotalPrice int64
	Status     string      `gorm:"type:varchar(16);index"`
	Version    int
	CreatedAt  time.Time
	Checkout   CheckoutDTO  `gorm:"embedded;embeddedPrefix:checkout_"`
	Shipment   *ShipmentDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CheckoutDTO represents the embedded checkout reference within the order
// table. All columns are nullable; a null ID means the order carries no
// checkout.
type CheckoutDTO struct {
	ID            *uuid.UUID `gorm:"type:uuid"`
	ShippingPrice *int64
	GrandTotal    *int64
	Notes         *string
}

// ShipmentDTO represents the database structure for persisting shipment
// entities. An order has at most one shipment, enforced by the unique index
// on order ID.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CourierName    string
	TrackingNumber *string
	Status         string `gorm:"type:varchar(16)"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		BuyerID:    aggregate.BuyerID().Bytes(),
		ProductID:  aggregate.ProductID().Bytes(),
		Quantity:   aggregate.Quantity(),
		PriceEach:  aggregate.PriceEach(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     aggregate.Status().String(),
		Version:    aggregate.Version(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	if checkout := aggregate.Checkout(); checkout != nil {
		id := checkout.ID().Bytes()
		shippingPrice := checkout.ShippingPrice()
		grandTotal := checkout.GrandTotal()
		notes := checkout.Notes()
		dto.Checkout = CheckoutDTO{
			ID:            &id,
			ShippingPrice: &shippingPrice,
			GrandTotal:    &grandTotal,
			Notes:         &notes,
		}
	}

	if shipment := aggregate.Shipment(); shipment != nil {
		dto.Shipment = &ShipmentDTO{
			ID:             shipment.ID().Bytes(),
			OrderID:        shipment.OrderID().Bytes(),
			CourierName:    shipment.CourierName(),
			TrackingNumber: shipment.TrackingNumber(),
			Status:         shipment.Status().String(),
			CreatedAt:      shipment.CreatedAt(),
		}
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including shipment and checkout using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var shipment *order.Shipment
	if dto.Shipment != nil {
		shipment, err = shipmentToDomain(*dto.Shipment)
		if err != nil {
			return nil, err
		}
	}

	var checkout *order.Checkout
	if dto.Checkout.ID != nil {
		checkout, err = checkoutToDomain(dto.Checkout)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id, buyerID, productID,
		dto.Quantity,
		dto.PriceEach,
		dto.TotalPrice,
		status,
		shipment,
		checkout,
		dto.CreatedAt,
		dto.Version,
	)
}

func shipmentToDomain(dto ShipmentDTO) (*order.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ShipmentStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreShipment(id, orderID, dto.CourierName, dto.TrackingNumber, status, dto.CreatedAt)
}

func checkoutToDomain(dto CheckoutDTO) (*order.Checkout, error) {
	id, err := kernel.UUIDFromBytes((*dto.ID)[:])
	if err != nil {
		return nil, err
	}

	var (
		shippingPrice, grandTotal int64
		notes                     string
	)
	if dto.ShippingPrice != nil {
		shippingPrice = *dto.ShippingPrice
	}
	if dto.GrandTotal != nil {
		grandTotal = *dto.GrandTotal
	}
	if dto.Notes != nil {
		notes = *dto.Notes
	}

	return order.RestoreCheckout(id, shippingPrice, grandTotal, notes)
}
