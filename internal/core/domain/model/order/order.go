package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a single buyer's purchase of one product line, tracked
// through its fulfillment status. It is the aggregate root owning the
// Shipment entity and the read-only Checkout reference.
//
// Order follows these invariants:
//   - Must have valid unique, buyer, and product identifiers
//   - Quantity and unit price must be positive; total price equals quantity times unit price
//   - Status transitions follow the fulfillment workflow in Status
//   - A shipment exists iff the order has reached Shipped at least once,
//     is created exactly once, and is never removed
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID references the purchasing user (owned externally)
	buyerID kernel.UUID

	// productID references the purchased product (owned externally)
	productID kernel.UUID

	// quantity is the number of units purchased (must be positive)
	quantity int

	// priceEach is the unit price in minor currency units (must be positive)
	priceEach int64

	// totalPrice is always quantity * priceEach
	totalPrice int64

	// status is the current state in the fulfillment workflow
	status Status

	// shipment is the courier record, nil until the order ships
	shipment *Shipment

	// checkout is the optional read-only checkout reference
	checkout *Checkout

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// version is the optimistic-concurrency token matched on every write
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the checkout
// boundary's entry point; all business invariants are validated here.
//
// Parameters:
//   - id: unique identifier for the order
//   - buyerID, productID: references to the external buyer and product entities
//   - quantity: units purchased, must be positive
//   - priceEach: unit price in minor currency units, must be positive
//
// The total price is derived, never accepted from the caller.
func NewOrder(id, buyerID, productID kernel.UUID, quantity int, priceEach int64) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setProductID(productID),
		o.setQuantityAndPrice(quantity, priceEach),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, re-validating every
// invariant so corrupt rows are rejected at the boundary. The persisted total
// price must match quantity * priceEach, the status must be consistent with
// the presence of a shipment, and the version must be positive.
func RestoreOrder(
	id, buyerID, productID kernel.UUID,
	quantity int,
	priceEach int64,
	totalPrice int64,
	status Status,
	shipment *Shipment,
	checkout *Checkout,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setProductID(productID),
		o.setQuantityAndPrice(quantity, priceEach),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if totalPrice != o.totalPrice {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total_price",
			fmt.Errorf("%d does not equal %d * %d", totalPrice, quantity, priceEach),
		)
	}

	if err := status.ValidateCanHaveShipment(shipment != nil); err != nil {
		return nil, err
	}
	if shipment != nil {
		if err := shipment.Validate(); err != nil {
			return nil, err
		}
	}
	if checkout != nil {
		if err := checkout.Validate(); err != nil {
			return nil, err
		}
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("%d is not a positive version", version),
		)
	}

	o.status = status
	o.shipment = shipment
	o.checkout = checkout
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// ProductID returns the purchased product's identifier.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Quantity returns the number of units purchased.
func (o *Order) Quantity() int {
	return o.quantity
}

// PriceEach returns the unit price in minor currency units.
func (o *Order) PriceEach() int64 {
	return o.priceEach
}

// TotalPrice returns quantity * priceEach in minor currency units.
func (o *Order) TotalPrice() int64 {
	return o.totalPrice
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Shipment returns the courier record, or nil if the order has not shipped.
func (o *Order) Shipment() *Shipment {
	return o.shipment
}

// Checkout returns the read-only checkout reference, or nil if absent.
func (o *Order) Checkout() *Checkout {
	return o.checkout
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency token loaded from persistence.
// The repository conditions every update on it.
func (o *Order) Version() int {
	return o.version
}

// AdvanceVersion increments the optimistic-concurrency token. The repository
// calls it after a successful conditioned write so the in-memory aggregate
// matches the stored row.
func (o *Order) AdvanceVersion() {
	o.version++
}

// TransitionTo moves the order to the target fulfillment status.
//
// Business rules enforced:
//   - The move must be legal per the workflow: linear progression
//     Pending -> Processed -> Shipped -> Completed, with Cancelled reachable
//     from any non-terminal status
//   - Entering Shipped requires shipment info with a non-empty courier name
//     and creates the order's single Shipment record in Packing status
//   - info is ignored for every other target
//
// On any error the order is left unmodified.
//
// Returns:
//   - *InvalidTransitionError when the workflow forbids the move
//   - *errs.ValueIsRequiredError when shipping without a courier name
func (o *Order) TransitionTo(target Status, info *ShipmentInfo) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if target == Shipped {
		if info == nil || info.CourierName == "" {
			return errs.NewValueIsRequiredError("courier_name")
		}

		shipment, shipErr := NewShipment(kernel.NewUUID(), o.id, info.CourierName, info.TrackingNumber)
		if shipErr != nil {
			return shipErr
		}
		o.shipment = shipment
	}

	o.status = newStatus
	return nil
}

// AttachTrackingNumber records the carrier tracking number on the order's
// shipment. This is a mutation within the Shipped (or Completed) state, not a
// transition; it requires that a shipment exists and that the order was not
// cancelled.
func (o *Order) AttachTrackingNumber(trackingNumber string) error {
	if o.shipment == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"tracking_number",
			fmt.Errorf("order %s has no shipment", o.id),
		)
	}
	if o.status == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"tracking_number",
			fmt.Errorf("order %s is cancelled", o.id),
		)
	}

	return o.shipment.AttachTrackingNumber(trackingNumber)
}

// SetShipmentStatus records the courier-reported sub-state on the order's
// shipment. The order must have shipped; no ordering between the sub-states
// is enforced, the carrier is the source of truth.
func (o *Order) SetShipmentStatus(status ShipmentStatus) error {
	if o.shipment == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment_status",
			fmt.Errorf("order %s has no shipment", o.id),
		)
	}

	return o.shipment.SetStatus(status)
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBuyerID validates and sets the buyer reference.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

// setProductID validates and sets the product reference.
func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

// setQuantityAndPrice validates quantity and unit price and derives the total.
func (o *Order) setQuantityAndPrice(quantity int, priceEach int64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if priceEach <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price_each", fmt.Errorf("%d is not greater than 0", priceEach))
	}

	o.quantity = quantity
	o.priceEach = priceEach
	o.totalPrice = int64(quantity) * priceEach
	return nil
}
