package services

import (
	"fmt"
	"time"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/core/domain/model/restaurant"
	"quickdish/internal/pkg/errs"
)

// ResolvedOption pairs a selected option with the customization group it
// belongs to. The pair is resolved jointly so a selection can be checked
// against its menu through the customization.
type ResolvedOption struct {
	Option        *restaurant.Option
	Customization *restaurant.Customization
}

// ItemSelection is one proposed order line with its catalog references
// already resolved. Existence is checked upstream by the caller; the
// assembler checks structure and computes the price.
type ItemSelection struct {
	Menu           *restaurant.Menu
	Quantity       int
	ExtraRequests  string
	Options        []ResolvedOption
	Customizations []*restaurant.Customization
}

// OrderAssembler is a domain service that turns a proposed set of item
// selections into a validated Order with its exact total price.
//
// Validation runs per item, in selection order, and fails fast on the
// first violation:
//  1. The menu must belong to the target restaurant.
//  2. The quantity must be at least 1.
//  3. Every selected option's customization must belong to the menu.
//  4. Every required customization of the menu must be covered by at
//     least one selection.
//  5. No unique customization may be selected more than once.
//
// The total accumulates each item's menu base price plus the extra price
// of every selected option, in exact decimal arithmetic. Quantity does
// not multiply the price.
type OrderAssembler struct{}

// NewOrderAssembler creates a new OrderAssembler instance.
func NewOrderAssembler() OrderAssembler {
	return OrderAssembler{}
}

// Assemble validates the selections against the restaurant's catalog and
// returns a new Order in the ORDERED status, priced and timestamped.
//
// Parameters:
//   - orderID: Identifier for the new order
//   - customerID: The customer placing the order
//   - rest: The target restaurant
//   - selections: The proposed order lines with resolved catalog data
//   - orderedAt: Placement timestamp
//
// Returns an InvalidArgumentError naming the offending entity on the
// first violated rule.
func (a OrderAssembler) Assemble(
	orderID kernel.UUID,
	customerID kernel.UUID,
	rest *restaurant.Restaurant,
	selections []ItemSelection,
	orderedAt time.Time,
) (*order.Order, error) {
	if err := rest.Validate(); err != nil {
		return nil, err
	}
	if len(selections) == 0 {
		return nil, order.ErrOrderHasNoItems
	}

	total := kernel.ZeroMoney()
	items := make([]order.Item, 0, len(selections))

	for _, selection := range selections {
		item, price, err := a.AssembleItem(rest, selection)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		total = total.Add(price)
	}

	return order.NewOrder(orderID, customerID, rest.ID(), orderedAt, total, items)
}

// AssembleItem validates one selection and returns the order line together
// with its price contribution. Callers that resolve catalog data item by
// item use this directly so a violation on an earlier item is reported
// before any later item is even resolved.
func (a OrderAssembler) AssembleItem(
	rest *restaurant.Restaurant,
	selection ItemSelection,
) (order.Item, kernel.Money, error) {
	menu := selection.Menu
	if err := menu.Validate(); err != nil {
		return order.Item{}, kernel.Money{}, err
	}

	if !menu.BelongsTo(rest.ID()) {
		return order.Item{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("menu",
			fmt.Errorf("menu with id %s is not in restaurant with id %s", menu.ID(), rest.ID()))
	}

	if selection.Quantity < 1 {
		return order.Item{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("menu with id %s must have a quantity of at least 1", menu.ID()))
	}

	price := menu.Price()

	seen := make(map[kernel.UUID]int)
	selected := make([]order.SelectedOption, 0, len(selection.Options))

	for _, resolved := range selection.Options {
		if err := resolved.Option.Validate(); err != nil {
			return order.Item{}, kernel.Money{}, err
		}
		if err := resolved.Customization.Validate(); err != nil {
			return order.Item{}, kernel.Money{}, err
		}

		if !resolved.Customization.MenuID().IsEqual(menu.ID()) {
			return order.Item{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("option",
				fmt.Errorf("the option with id %s is not in menu with id %s",
					resolved.Option.ID(), menu.ID()))
		}

		seen[resolved.Customization.ID()]++
		price = price.Add(resolved.Option.Surcharge())

		selectedOption, err := order.NewSelectedOption(resolved.Option.ID())
		if err != nil {
			return order.Item{}, kernel.Money{}, err
		}
		selected = append(selected, selectedOption)
	}

	if err := a.checkCustomizations(menu, selection.Customizations, seen); err != nil {
		return order.Item{}, kernel.Money{}, err
	}

	item, err := order.NewItem(kernel.NewUUID(), menu.ID(), selection.Quantity,
		selection.ExtraRequests, selected)
	if err != nil {
		return order.Item{}, kernel.Money{}, err
	}

	return item, price, nil
}

// checkCustomizations enforces the required and unique constraints of the
// menu's customization groups against the selected option counts.
func (a OrderAssembler) checkCustomizations(
	menu *restaurant.Menu,
	customizations []*restaurant.Customization,
	seen map[kernel.UUID]int,
) error {
	for _, customization := range customizations {
		if err := customization.Validate(); err != nil {
			return err
		}

		if customization.IsRequired() && seen[customization.ID()] == 0 {
			return errs.NewValueIsInvalidErrorWithCause("customization",
				fmt.Errorf("menu with id %s requires customization with id %s",
					menu.ID(), customization.ID()))
		}
	}

	for _, customization := range customizations {
		if customization.IsUnique() && seen[customization.ID()] > 1 {
			return errs.NewValueIsInvalidErrorWithCause("customization",
				fmt.Errorf("menu with id %s requires customization with id %s to be unique",
					menu.ID(), customization.ID()))
		}
	}

	return nil
}
