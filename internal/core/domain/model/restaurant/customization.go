package restaurant

import (
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/pkg/errs"
	"quickdish/internal/pkg/guard"
)

// Domain errors for customization construction.
var (
	// ErrCustomizationNameIsRequired is returned when a customization is
	// created without a name.
	ErrCustomizationNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomizationIsNotConstructed is returned when using an improperly
	// initialized Customization.
	ErrCustomizationIsNotConstructed = errors.New("Customization must be created via NewCustomization constructor")
)

// Customization is a named group of options on one menu, for example
// "Size" or "Toppings". Two independent flags constrain selections:
//
//   - required: at least one option from the group must be selected
//   - unique: at most one option from the group may be selected
//
// A group may be both, either, or neither.
type Customization struct {
	id       kernel.UUID
	menuID   kernel.UUID
	name     string
	required bool
	unique   bool

	guard guard.ConstructorGuard
}

// NewCustomization creates a validated Customization.
func NewCustomization(
	id kernel.UUID,
	menuID kernel.UUID,
	name string,
	required bool,
	unique bool,
) (*Customization, error) {
	customization := &Customization{
		required: required,
		unique:   unique,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customization.setID(id),
		customization.setMenuID(menuID),
		customization.setName(name),
	); err != nil {
		return nil, err
	}

	return customization, nil
}

// Validate ensures the Customization was created via NewCustomization.
func (c *Customization) Validate() error {
	if c == nil {
		return ErrCustomizationIsNotConstructed
	}
	return c.guard.Validate(ErrCustomizationIsNotConstructed)
}

// ID returns the customization's unique identifier.
func (c *Customization) ID() kernel.UUID {
	return c.id
}

// MenuID returns the identifier of the menu this group belongs to.
func (c *Customization) MenuID() kernel.UUID {
	return c.menuID
}

// Name returns the customization's name.
func (c *Customization) Name() string {
	return c.name
}

// IsRequired reports whether at least one option from this group must be
// selected.
func (c *Customization) IsRequired() bool {
	return c.required
}

// IsUnique reports whether at most one option from this group may be
// selected.
func (c *Customization) IsUnique() bool {
	return c.unique
}

func (c *Customization) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customization) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	c.menuID = menuID
	return nil
}

func (c *Customization) setName(name string) error {
	if name == "" {
		return ErrCustomizationNameIsRequired
	}
	c.name = name
	return nil
}
