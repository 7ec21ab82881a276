package order

import (
	"errors"
	"time"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order must have at least one item")

	// ErrOrderStatusIsRequired is returned when an order is restored without
	// a status payload.
	ErrOrderStatusIsRequired = errs.NewValueIsRequiredError("order status is required")
)

// Order represents a customer's purchase against one restaurant. It is the
// aggregate root that manages the order lifecycle from placement through
// preparation to settlement or cancellation.
//
// Order follows these invariants:
//   - Must have valid order, customer, and restaurant identifiers
//   - Must own at least one line item
//   - pricePaid is computed at creation time and immutable thereafter
//   - Status transitions follow the role-gated table in NextStatus
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer that placed the order
	customerID kernel.UUID

	// restaurantID references the restaurant the order targets
	restaurantID kernel.UUID

	// orderedAt is the placement timestamp
	orderedAt time.Time

	// pricePaid is the exact total fixed at creation time
	pricePaid kernel.Money

	// status is the current status payload (tagged union)
	status Status

	// items are the order's line items
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the initial ORDERED status.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The customer placing the order
//   - restaurantID: The restaurant the order targets
//   - orderedAt: Placement timestamp
//   - pricePaid: Total price computed by the order assembler
//   - items: The validated line items (at least one)
//
// Returns a validation error if any identifier or the price is invalid, or
// if no items are provided.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	orderedAt time.Time,
	pricePaid kernel.Money,
	items []Item,
) (*Order, error) {
	order := &Order{
		orderedAt:     orderedAt,
		status:        Ordered{},
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setPricePaid(pricePaid),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// current status payload. Used only by repository implementations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	orderedAt time.Time,
	pricePaid kernel.Money,
	status Status,
	items []Item,
) (*Order, error) {
	order, err := NewOrder(id, customerID, restaurantID, orderedAt, pricePaid, items)
	if err != nil {
		return nil, err
	}

	if status == nil {
		return nil, ErrOrderStatusIsRequired
	}
	order.status = status

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
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

// CustomerID returns the identifier of the customer that placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant the order targets.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// OrderedAt returns the placement timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// PricePaid returns the exact total fixed at creation time.
func (o *Order) PricePaid() kernel.Money {
	return o.pricePaid
}

// Status returns the current status payload.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AuthorizeActor checks that the acting party may operate on this order.
//
// A customer must be the customer that placed the order. A merchant must
// own the order's restaurant; callers resolve the restaurant and pass its
// merchant id. Existence is not hidden: callers report missing orders as
// not-found before authorization.
//
// Returns an UnauthorizedError naming the failed ownership check, or a
// validation error for an invalid role.
func (o *Order) AuthorizeActor(actorID kernel.UUID, role Role, restaurantMerchantID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	switch role {
	case RoleCustomer:
		if !o.customerID.IsEqual(actorID) {
			return errs.NewUnauthorizedError("customer does not own the order")
		}
	case RoleMerchant:
		if !restaurantMerchantID.IsEqual(actorID) {
			return errs.NewUnauthorizedError("merchant does not own the order")
		}
	}

	return nil
}

// ApplyUpdate evaluates the requested status update against the transition
// table and, if legal, moves the order into the next status stamped with now.
// The previous status payload is not mutated; persistence appends the new
// satellite record and never rewrites history.
func (o *Order) ApplyUpdate(role Role, update StatusUpdate, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := NextStatus(role, o.status.Flag(), update, now)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setPricePaid(pricePaid kernel.Money) error {
	if err := pricePaid.Validate(); err != nil {
		return err
	}
	o.pricePaid = pricePaid
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
