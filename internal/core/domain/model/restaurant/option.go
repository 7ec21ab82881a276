package restaurant

import (
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/pkg/errs"
	"quickdish/internal/pkg/guard"
)

// Domain errors for option construction.
var (
	// ErrOptionNameIsRequired is returned when an option is created without
	// a name.
	ErrOptionNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrOptionIsNotConstructed is returned when using an improperly
	// initialized Option.
	ErrOptionIsNotConstructed = errors.New("Option must be created via NewOption constructor")
)

// Option is one selectable choice within a customization. Selecting it may
// add an extra price to the order total; a nil extra price means the option
// is free.
type Option struct {
	id              kernel.UUID
	customizationID kernel.UUID
	name            string
	extraPrice      *kernel.Money

	guard guard.ConstructorGuard
}

// NewOption creates a validated Option. extraPrice may be nil for options
// with no surcharge.
func NewOption(
	id kernel.UUID,
	customizationID kernel.UUID,
	name string,
	extraPrice *kernel.Money,
) (*Option, error) {
	option := &Option{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		option.setID(id),
		option.setCustomizationID(customizationID),
		option.setName(name),
		option.setExtraPrice(extraPrice),
	); err != nil {
		return nil, err
	}

	return option, nil
}

// Validate ensures the Option was created via NewOption.
func (o *Option) Validate() error {
	if o == nil {
		return ErrOptionIsNotConstructed
	}
	return o.guard.Validate(ErrOptionIsNotConstructed)
}

// ID returns the option's unique identifier.
func (o *Option) ID() kernel.UUID {
	return o.id
}

// CustomizationID returns the identifier of the group this option belongs to.
func (o *Option) CustomizationID() kernel.UUID {
	return o.customizationID
}

// Name returns the option's name.
func (o *Option) Name() string {
	return o.name
}

// ExtraPrice returns the surcharge added to the order total when this
// option is selected, or nil when the option is free.
func (o *Option) ExtraPrice() *kernel.Money {
	return o.extraPrice
}

// Surcharge returns the extra price as a Money value, treating a nil
// extra price as zero.
func (o *Option) Surcharge() kernel.Money {
	if o.extraPrice == nil {
		return kernel.ZeroMoney()
	}
	return *o.extraPrice
}

func (o *Option) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Option) setCustomizationID(customizationID kernel.UUID) error {
	if err := customizationID.Validate(); err != nil {
		return err
	}
	o.customizationID = customizationID
	return nil
}

func (o *Option) setName(name string) error {
	if name == "" {
		return ErrOptionNameIsRequired
	}
	o.name = name
	return nil
}

func (o *Option) setExtraPrice(extraPrice *kernel.Money) error {
	if extraPrice != nil {
		if err := extraPrice.Validate(); err != nil {
			return err
		}
	}
	o.extraPrice = extraPrice
	return nil
}
