package restaurant

import (
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/pkg/errs"
	"quickdish/internal/pkg/guard"
)

// Domain errors for restaurant construction.
var (
	// ErrRestaurantNameIsRequired is returned when a restaurant is created
	// without a name.
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly
	// initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is a merchant-owned storefront. The merchant reference is what
// order operations check when a merchant acts on one of the restaurant's
// orders.
type Restaurant struct {
	id         kernel.UUID
	merchantID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewRestaurant creates a validated Restaurant.
//
// Parameters:
//   - id: Unique identifier for the restaurant
//   - merchantID: The merchant that owns the restaurant
//   - name: Human-readable name (must be non-empty)
func NewRestaurant(id kernel.UUID, merchantID kernel.UUID, name string) (*Restaurant, error) {
	restaurant := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setMerchantID(merchantID),
		restaurant.setName(name),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// Validate ensures the Restaurant was created via NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// MerchantID returns the identifier of the owning merchant.
func (r *Restaurant) MerchantID() kernel.UUID {
	return r.merchantID
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	r.merchantID = merchantID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	r.name = name
	return nil
}
