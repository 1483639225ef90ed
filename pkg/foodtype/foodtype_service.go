package foodtype

import (
	"context"
	"errors"

	"ayushi-kitchen-backend/domain"
	"ayushi-kitchen-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodTypeService interface {
		List(ctx context.Context) ([]domain.FoodTypeResponse, error)
		Create(ctx context.Context, req domain.FoodTypeRequest) (domain.FoodTypeResponse, error)
		Update(ctx context.Context, id string, req domain.FoodTypeRequest) (domain.FoodTypeResponse, error)
		Delete(ctx context.Context, id string) error
	}

	foodTypeService struct {
		foodTypeRepository FoodTypeRepository
	}
)

func NewFoodTypeService(foodTypeRepository FoodTypeRepository) FoodTypeService {
	return &foodTypeService{foodTypeRepository: foodTypeRepository}
}

func (s *foodTypeService) List(ctx context.Context) ([]domain.FoodTypeResponse, error) {
	types, err := s.foodTypeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodTypeResponse, 0, len(types))
	for _, t := range types {
		response = append(response, domain.FoodTypeResponse{
			ID:   t.ID.String(),
			Name: t.Name,
		})
	}
	return response, nil
}

func (s *foodTypeService) Create(ctx context.Context, req domain.FoodTypeRequest) (domain.FoodTypeResponse, error) {
	foodType := &entities.FoodType{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.foodTypeRepository.Create(ctx, foodType); err != nil {
		return domain.FoodTypeResponse{}, err
	}

	return domain.FoodTypeResponse{ID: foodType.ID.String(), Name: foodType.Name}, nil
}

func (s *foodTypeService) Update(ctx context.Context, id string, req domain.FoodTypeRequest) (domain.FoodTypeResponse, error) {
	typeID, err := uuid.Parse(id)
	if err != nil {
		return domain.FoodTypeResponse{}, domain.ErrParseUUID
	}

	foodType, err := s.foodTypeRepository.FindByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodTypeResponse{}, domain.ErrTypeNotFound
		}
		return domain.FoodTypeResponse{}, err
	}

	foodType.Name = req.Name
	if err := s.foodTypeRepository.Update(ctx, foodType); err != nil {
		return domain.FoodTypeResponse{}, err
	}

	return domain.FoodTypeResponse{ID: foodType.ID.String(), Name: foodType.Name}, nil
}

func (s *foodTypeService) Delete(ctx context.Context, id string) error {
	typeID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.foodTypeRepository.FindByID(ctx, typeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTypeNotFound
		}
		return err
	}

	// Referenced types must not be deleted; items keep their category.
	count, err := s.foodTypeRepository.CountFoodItems(ctx, typeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrTypeInUse
	}

	return s.foodTypeRepository.Delete(ctx, typeID)
}
