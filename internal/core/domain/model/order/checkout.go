package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrCheckoutIsNotConstructed is returned when a Checkout instance was not
// created through RestoreCheckout.
var ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via RestoreCheckout")

// Checkout is a read-only reference to the checkout aggregate that produced
// the order. It carries the shipping price and grand total agreed at purchase
// time plus the buyer's notes. This core never mutates it; checkout records
// are owned by the external checkout flow.
type Checkout struct {
	id            kernel.UUID
	shippingPrice int64
	grandTotal    int64
	notes         string

	isConstructed bool
}

// RestoreCheckout reconstructs the checkout reference from persistence.
// Prices are in minor currency units and must be non-negative.
func RestoreCheckout(id kernel.UUID, shippingPrice, grandTotal int64, notes string) (*Checkout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if shippingPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("shipping_price", fmt.Errorf("%d is negative", shippingPrice))
	}
	if grandTotal < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("grand_total", fmt.Errorf("%d is negative", grandTotal))
	}

	return &Checkout{
		id:            id,
		shippingPrice: shippingPrice,
		grandTotal:    grandTotal,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Checkout was created through RestoreCheckout.
func (c *Checkout) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckoutIsNotConstructed
	}
	return nil
}

// ID returns the checkout's unique identifier.
func (c *Checkout) ID() kernel.UUID {
	return c.id
}

// ShippingPrice returns the shipping cost in minor currency units.
func (c *Checkout) ShippingPrice() int64 {
	return c.shippingPrice
}

// GrandTotal returns the order total including shipping, in minor currency units.
func (c *Checkout) GrandTotal() int64 {
	return c.grandTotal
}

// Notes returns the buyer's free-text notes from checkout.
func (c *Checkout) Notes() string {
	return c.notes
}
