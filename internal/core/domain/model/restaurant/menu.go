package restaurant

import (
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/pkg/errs"
	"quickdish/internal/pkg/guard"
)

// Domain errors for menu construction.
var (
	// ErrMenuNameIsRequired is returned when a menu is created without a name.
	ErrMenuNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMenuIsNotConstructed is returned when using an improperly
	// initialized Menu.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")
)

// Menu is a priced dish offered by one restaurant. An order line always
// references a menu, and the menu's base price is charged once per unit.
type Menu struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewMenu creates a validated Menu.
//
// Parameters:
//   - id: Unique identifier for the menu
//   - restaurantID: The restaurant offering the menu
//   - name: Human-readable name (must be non-empty)
//   - price: Base price charged per ordered unit
func NewMenu(id kernel.UUID, restaurantID kernel.UUID, name string, price kernel.Money) (*Menu, error) {
	menu := &Menu{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menu.setID(id),
		menu.setRestaurantID(restaurantID),
		menu.setName(name),
		menu.setPrice(price),
	); err != nil {
		return nil, err
	}

	return menu, nil
}

// Validate ensures the Menu was created via NewMenu.
func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the identifier of the offering restaurant.
func (m *Menu) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the menu's name.
func (m *Menu) Name() string {
	return m.name
}

// Price returns the base price charged per ordered unit.
func (m *Menu) Price() kernel.Money {
	return m.price
}

// BelongsTo reports whether the menu is offered by the given restaurant.
func (m *Menu) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	m.restaurantID = restaurantID
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return ErrMenuNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}
