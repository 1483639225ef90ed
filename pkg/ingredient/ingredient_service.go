package ingredient

import (
	"context"
	"errors"

	"ayushi-kitchen-backend/domain"
	"ayushi-kitchen-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		List(ctx context.Context) ([]domain.IngredientResponse, error)
		Create(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error)
		Update(ctx context.Context, id string, req domain.IngredientRequest) (domain.IngredientResponse, error)
		Delete(ctx context.Context, id string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) List(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		response = append(response, domain.IngredientResponse{
			ID:   ing.ID.String(),
			Name: ing.Name,
		})
	}
	return response, nil
}

func (s *ingredientService) Create(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.ingredientRepository.Create(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{ID: ingredient.ID.String(), Name: ingredient.Name}, nil
}

func (s *ingredientService) Update(ctx context.Context, id string, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredientID, err := uuid.Parse(id)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.FindByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	ingredient.Name = req.Name
	if err := s.ingredientRepository.Update(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return domain.IngredientResponse{ID: ingredient.ID.String(), Name: ingredient.Name}, nil
}

func (s *ingredientService) Delete(ctx context.Context, id string) error {
	ingredientID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.ingredientRepository.FindByID(ctx, ingredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	count, err := s.ingredientRepository.CountMadeWith(ctx, ingredientID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.Delete(ctx, ingredientID)
}
