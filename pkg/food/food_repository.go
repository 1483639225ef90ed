package food

import (
	"context"

	"ayushi-kitchen-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		ListPublic(ctx context.Context, typeID *uuid.UUID, featuredOnly bool) ([]entities.FoodItem, error)
		ListAll(ctx context.Context) ([]entities.FoodItem, error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.FoodItem, error)
		Create(ctx context.Context, item *entities.FoodItem) error
		// UpdateWithAssociations applies scalar field changes and, when
		// replaceMadeWith/replaceImages is set, swaps the item's
		// associations wholesale inside one transaction. A failure leaves
		// the prior associations intact.
		UpdateWithAssociations(
			ctx context.Context,
			id uuid.UUID,
			fields map[string]interface{},
			madeWith []entities.MadeWith, replaceMadeWith bool,
			images []entities.Image, replaceImages bool,
		) error
		UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
		TypeExists(ctx context.Context, id uuid.UUID) (bool, error)
		AddImage(ctx context.Context, image *entities.Image) error
		FindImageByID(ctx context.Context, id uuid.UUID) (*entities.Image, error)
		DeleteImage(ctx context.Context, id uuid.UUID) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Type").
		Preload("Images").
		Preload("MadeWith.Ingredient")
}

func (r *foodRepository) ListPublic(ctx context.Context, typeID *uuid.UUID, featuredOnly bool) ([]entities.FoodItem, error) {
	query := withAssociations(r.db.WithContext(ctx)).Where("is_active = ?", true)

	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}
	if typeID != nil {
		query = query.Where("type_id = ?", *typeID)
	}

	var items []entities.FoodItem
	if err := query.Order("is_featured desc").Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepository) ListAll(ctx context.Context) ([]entities.FoodItem, error) {
	var items []entities.FoodItem
	if err := withAssociations(r.db.WithContext(ctx)).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := withAssociations(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) Create(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodRepository) UpdateWithAssociations(
	ctx context.Context,
	id uuid.UUID,
	fields map[string]interface{},
	madeWith []entities.MadeWith, replaceMadeWith bool,
	images []entities.Image, replaceImages bool,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replaceMadeWith {
			if err := tx.Where("food_item_id = ?", id).Delete(&entities.MadeWith{}).Error; err != nil {
				return err
			}
			if len(madeWith) > 0 {
				if err := tx.Create(&madeWith).Error; err != nil {
					return err
				}
			}
		}

		if replaceImages {
			if err := tx.Where("food_item_id = ?", id).Delete(&entities.Image{}).Error; err != nil {
				return err
			}
			if len(images) > 0 {
				if err := tx.Create(&images).Error; err != nil {
					return err
				}
			}
		}

		if len(fields) > 0 {
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ?", id).
				Updates(fields).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *foodRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *foodRepository) TypeExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodType{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *foodRepository) AddImage(ctx context.Context, image *entities.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *foodRepository) FindImageByID(ctx context.Context, id uuid.UUID) (*entities.Image, error) {
	var image entities.Image
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *foodRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Image{}).Error
}
