package restaurantrepo

import (
	"context"
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/restaurant"
	"quickdish/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
// The catalog is read-only from the ordering flow's point of view, so the
// repository exposes only lookups.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// GetRestaurant retrieves a restaurant by ID.
func (r *GormRestaurantRepository) GetRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// GetMenu retrieves a menu by ID.
func (r *GormRestaurantRepository) GetMenu(ctx context.Context, id kernel.UUID) (*restaurant.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return menuToDomain(dto)
}

// GetMenuCustomizations retrieves all customization groups declared on a menu.
func (r *GormRestaurantRepository) GetMenuCustomizations(
	ctx context.Context,
	menuID kernel.UUID,
) ([]*restaurant.Customization, error) {
	if err := menuID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CustomizationDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "menu_id = ?", menuID.Bytes()).Error; err != nil {
		return nil, err
	}

	customizations := make([]*restaurant.Customization, 0, len(dtos))
	for _, dto := range dtos {
		customization, err := customizationToDomain(dto)
		if err != nil {
			return nil, err
		}
		customizations = append(customizations, customization)
	}

	return customizations, nil
}

// GetOptionWithCustomization resolves an option together with the
// customization group it belongs to.
func (r *GormRestaurantRepository) GetOptionWithCustomization(
	ctx context.Context,
	optionID kernel.UUID,
) (*restaurant.Option, *restaurant.Customization, error) {
	if err := optionID.Validate(); err != nil {
		return nil, nil, err
	}

	var optionDTO OptionDTO
	if err := r.db.WithContext(ctx).First(&optionDTO, "id = ?", optionID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errs.NewObjectNotFoundError("option", optionID.String())
		}
		return nil, nil, err
	}

	var customizationDTO CustomizationDTO
	if err := r.db.WithContext(ctx).
		First(&customizationDTO, "id = ?", optionDTO.CustomizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errs.NewInconsistentStateError("can't find the option's customization")
		}
		return nil, nil, err
	}

	option, err := optionToDomain(optionDTO)
	if err != nil {
		return nil, nil, err
	}

	customization, err := customizationToDomain(customizationDTO)
	if err != nil {
		return nil, nil, err
	}

	return option, customization, nil
}
