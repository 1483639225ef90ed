package foodtype

import (
	"context"

	"ayushi-kitchen-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodTypeRepository interface {
		List(ctx context.Context) ([]entities.FoodType, error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.FoodType, error)
		Create(ctx context.Context, foodType *entities.FoodType) error
		Update(ctx context.Context, foodType *entities.FoodType) error
		Delete(ctx context.Context, id uuid.UUID) error
		CountFoodItems(ctx context.Context, id uuid.UUID) (int64, error)
	}

	foodTypeRepository struct {
		db *gorm.DB
	}
)

func NewFoodTypeRepository(db *gorm.DB) FoodTypeRepository {
	return &foodTypeRepository{db: db}
}

func (r *foodTypeRepository) List(ctx context.Context) ([]entities.FoodType, error) {
	var types []entities.FoodType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *foodTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.FoodType, error) {
	var foodType entities.FoodType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodType).Error; err != nil {
		return nil, err
	}
	return &foodType, nil
}

func (r *foodTypeRepository) Create(ctx context.Context, foodType *entities.FoodType) error {
	return r.db.WithContext(ctx).Create(foodType).Error
}

func (r *foodTypeRepository) Update(ctx context.Context, foodType *entities.FoodType) error {
	return r.db.WithContext(ctx).Save(foodType).Error
}

func (r *foodTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodType{}).Error
}

func (r *foodTypeRepository) CountFoodItems(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("type_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
