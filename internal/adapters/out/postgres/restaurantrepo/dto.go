// Package restaurantrepo provides data transfer objects and mapping functions
// for the restaurant catalog. The catalog is reference data for the ordering
// flow: restaurants, their menus, the customization groups declared per menu,
// and the options inside each group.
package restaurantrepo

import (
	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID `gorm:"type:uuid;index"`
	Name       string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuDTO represents the database structure for menus.
type MenuDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// CustomizationDTO represents the database structure for customization groups.
type CustomizationDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuID   uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Required bool
	Unique   bool
}

// TableName specifies the database table name for customization entities.
func (CustomizationDTO) TableName() string {
	return "customizations"
}

// OptionDTO represents the database structure for options. ExtraPrice is nil
// for options with no surcharge.
type OptionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomizationID uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	ExtraPrice      *decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for option entities.
func (OptionDTO) TableName() string {
	return "options"
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(id, merchantID, dto.Name)
}

func menuToDomain(dto MenuDTO) (*restaurant.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return restaurant.NewMenu(id, restaurantID, dto.Name, price)
}

func customizationToDomain(dto CustomizationDTO) (*restaurant.Customization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewCustomization(id, menuID, dto.Name, dto.Required, dto.Unique)
}

func optionToDomain(dto OptionDTO) (*restaurant.Option, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customizationID, err := kernel.UUIDFromBytes(dto.CustomizationID[:])
	if err != nil {
		return nil, err
	}

	var extraPrice *kernel.Money
	if dto.ExtraPrice != nil {
		price, priceErr := kernel.NewMoney(*dto.ExtraPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		extraPrice = &price
	}

	return restaurant.NewOption(id, customizationID, dto.Name, extraPrice)
}
