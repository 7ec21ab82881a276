package postgres

import (
	"quickdish/internal/adapters/out/postgres/orderrepo"
	"quickdish/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// MigrateSchema creates or updates the tables for every persistence DTO.
// Called once at startup; GORM's AutoMigrate only adds missing columns
// and indexes, it never drops anything.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderOptionDTO{},
		&orderrepo.PreparingOrderDTO{},
		&orderrepo.ReadyOrderDTO{},
		&orderrepo.SettledOrderDTO{},
		&orderrepo.CancelledOrderDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuDTO{},
		&restaurantrepo.CustomizationDTO{},
		&restaurantrepo.OptionDTO{},
	)
}
