package order

import (
	"errors"
	"fmt"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// SelectedOption is a snapshot of one option the customer selected for a
// line item. It records the choice, not the price: extra prices are baked
// into the order total at creation time.
type SelectedOption struct {
	optionID kernel.UUID
}

// NewSelectedOption creates a SelectedOption referencing the given option.
func NewSelectedOption(optionID kernel.UUID) (SelectedOption, error) {
	if err := optionID.Validate(); err != nil {
		return SelectedOption{}, err
	}
	return SelectedOption{optionID: optionID}, nil
}

// OptionID returns the identifier of the selected option.
func (s SelectedOption) OptionID() kernel.UUID {
	return s.optionID
}

// Item is one line of an order: a menu reference with a quantity, optional
// free-text extra requests, and the options selected for it.
//
// Item follows these invariants:
//   - Must have valid item and menu identifiers
//   - Quantity must be at least 1
//   - Can only be created through the NewItem constructor
type Item struct {
	id            kernel.UUID
	menuID        kernel.UUID
	quantity      int
	extraRequests string
	options       []SelectedOption

	isConstructed bool
}

// NewItem creates a validated order line item.
//
// Parameters:
//   - id: Unique identifier for the item
//   - menuID: The menu being ordered
//   - quantity: Number of units (must be at least 1)
//   - extraRequests: Free-text requests passed through to the merchant
//   - options: Options selected for this item (may be empty)
//
// Returns an error when ids are invalid or the quantity is below 1; the
// quantity error names the offending menu.
func NewItem(
	id kernel.UUID,
	menuID kernel.UUID,
	quantity int,
	extraRequests string,
	options []SelectedOption,
) (Item, error) {
	item := Item{
		extraRequests: extraRequests,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuID(menuID),
		item.setQuantity(quantity, menuID),
	); err != nil {
		return Item{}, err
	}

	item.options = make([]SelectedOption, len(options))
	copy(item.options, options)

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// MenuID returns the identifier of the ordered menu.
func (i Item) MenuID() kernel.UUID {
	return i.menuID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// ExtraRequests returns the customer's free-text requests for this item.
func (i Item) ExtraRequests() string {
	return i.extraRequests
}

// Options returns the options selected for this item.
func (i Item) Options() []SelectedOption {
	options := make([]SelectedOption, len(i.options))
	copy(options, i.options)
	return options
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	i.menuID = menuID
	return nil
}

func (i *Item) setQuantity(quantity int, menuID kernel.UUID) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("menu with id %s must have a quantity of at least 1, got %d", menuID, quantity))
	}
	i.quantity = quantity
	return nil
}
