package ports

import (
	"context"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the read contract for catalog data. The
// ordering flow only reads the catalog; it never writes it.
type RestaurantRepository interface {
	// GetRestaurant retrieves a restaurant by its unique identifier.
	// Returns ObjectNotFoundError when no restaurant matches.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetMenu retrieves a menu by its unique identifier.
	// Returns ObjectNotFoundError when no menu matches.
	GetMenu(ctx context.Context, id kernel.UUID) (*restaurant.Menu, error)

	// GetMenuCustomizations retrieves all customization groups declared on
	// the given menu.
	GetMenuCustomizations(ctx context.Context, menuID kernel.UUID) ([]*restaurant.Customization, error)

	// GetOptionWithCustomization resolves an option together with the
	// customization group it belongs to, in one read.
	// Returns ObjectNotFoundError when no option matches.
	GetOptionWithCustomization(ctx context.Context, optionID kernel.UUID) (*restaurant.Option, *restaurant.Customization, error)
}
