// Package order provides domain entities and business logic for order
// fulfillment in the marketplace. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid fulfillment status transitions
//   - Shipment: The courier/tracking record attached to an order once it ships
//   - Checkout: A read-only reference to the checkout totals for the order
//
// Key business rules:
//   - Orders must reference a buyer and a product and carry a positive quantity and price
//   - total price always equals quantity times unit price
//   - Fulfillment status follows a strict workflow: pending -> processed -> shipped -> completed
//   - Cancellation is allowed from any non-terminal status
//   - A shipment is created exactly once, when the order enters shipped, and
//     requires a courier name; a tracking number may be attached later
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
