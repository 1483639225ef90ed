package food

import (
	"context"
	"errors"

	"ayushi-kitchen-backend/domain"
	"ayushi-kitchen-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		ListPublic(ctx context.Context, typeID string, featuredOnly bool) ([]domain.FoodResponse, error)
		GetPublicByID(ctx context.Context, id string) (domain.FoodResponse, error)
		ListAll(ctx context.Context) ([]domain.FoodResponse, error)
		GetByID(ctx context.Context, id string) (domain.FoodResponse, error)
		Create(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateFoodRequest) (domain.FoodResponse, error)
		UpdateStatus(ctx context.Context, id string, req domain.UpdateFoodStatusRequest) (domain.FoodResponse, error)
		Deactivate(ctx context.Context, id string) error
		AddImage(ctx context.Context, foodID string, req domain.AddImageRequest) (domain.ImageResponse, error)
		DeleteImage(ctx context.Context, imageID string) error
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) ListPublic(ctx context.Context, typeID string, featuredOnly bool) ([]domain.FoodResponse, error) {
	var typeFilter *uuid.UUID
	if typeID != "" && typeID != "all" {
		parsed, err := uuid.Parse(typeID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		typeFilter = &parsed
	}

	items, err := s.foodRepository.ListPublic(ctx, typeFilter, featuredOnly)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(items), nil
}

func (s *foodService) GetPublicByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	if !item.IsActive {
		return domain.FoodResponse{}, domain.ErrFoodNotFound
	}
	return toFoodResponse(item), nil
}

func (s *foodService) ListAll(ctx context.Context) ([]domain.FoodResponse, error) {
	items, err := s.foodRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(items), nil
}

func (s *foodService) GetByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(item), nil
}

func (s *foodService) Create(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error) {
	if req.DiscountedPrice != nil && *req.DiscountedPrice > req.OriginalPrice {
		return domain.FoodResponse{}, domain.ErrDiscountExceeds
	}

	item := &entities.FoodItem{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		IsFeatured:      req.IsFeatured,
		IsWeekendOnly:   req.IsWeekendOnly,
		IsActive:        true,
	}

	if req.TypeID != nil {
		typeID, err := uuid.Parse(*req.TypeID)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrParseUUID
		}
		exists, err := s.foodRepository.TypeExists(ctx, typeID)
		if err != nil {
			return domain.FoodResponse{}, err
		}
		if !exists {
			return domain.FoodResponse{}, domain.ErrTypeNotFound
		}
		item.TypeID = &typeID
	}

	madeWith, err := buildMadeWith(item.ID, req.MadeWith)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	item.MadeWith = madeWith
	item.Images = buildImages(item.ID, req.Images)

	if err := s.foodRepository.Create(ctx, item); err != nil {
		return domain.FoodResponse{}, err
	}

	created, err := s.foodRepository.FindByID(ctx, item.ID)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(created), nil
}

func (s *foodService) Update(ctx context.Context, id string, req domain.UpdateFoodRequest) (domain.FoodResponse, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	// Validate the price invariant against the effective values after the
	// update, not just the supplied ones.
	originalPrice := item.OriginalPrice
	if req.OriginalPrice != nil {
		originalPrice = *req.OriginalPrice
		fields["original_price"] = originalPrice
	}
	discountedPrice := item.DiscountedPrice
	if req.ClearDiscount {
		discountedPrice = nil
		fields["discounted_price"] = nil
	} else if req.DiscountedPrice != nil {
		discountedPrice = req.DiscountedPrice
		fields["discounted_price"] = *req.DiscountedPrice
	}
	if discountedPrice != nil && *discountedPrice > originalPrice {
		return domain.FoodResponse{}, domain.ErrDiscountExceeds
	}

	if req.ClearType {
		fields["type_id"] = nil
	} else if req.TypeID != nil {
		typeID, err := uuid.Parse(*req.TypeID)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrParseUUID
		}
		exists, err := s.foodRepository.TypeExists(ctx, typeID)
		if err != nil {
			return domain.FoodResponse{}, err
		}
		if !exists {
			return domain.FoodResponse{}, domain.ErrTypeNotFound
		}
		fields["type_id"] = typeID
	}

	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.IsWeekendOnly != nil {
		fields["is_weekend_only"] = *req.IsWeekendOnly
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	var madeWith []entities.MadeWith
	replaceMadeWith := req.MadeWith != nil
	if replaceMadeWith {
		madeWith, err = buildMadeWith(item.ID, *req.MadeWith)
		if err != nil {
			return domain.FoodResponse{}, err
		}
	}

	var images []entities.Image
	replaceImages := req.Images != nil
	if replaceImages {
		images = buildImages(item.ID, *req.Images)
	}

	if len(fields) == 0 && !replaceMadeWith && !replaceImages {
		return domain.FoodResponse{}, domain.ErrEmptyUpdate
	}

	if err := s.foodRepository.UpdateWithAssociations(
		ctx, item.ID, fields,
		madeWith, replaceMadeWith,
		images, replaceImages,
	); err != nil {
		return domain.FoodResponse{}, err
	}

	updated, err := s.foodRepository.FindByID(ctx, item.ID)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(updated), nil
}

func (s *foodService) UpdateStatus(ctx context.Context, id string, req domain.UpdateFoodStatusRequest) (domain.FoodResponse, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	fields := map[string]interface{}{}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.IsSoldOut != nil {
		fields["is_sold_out"] = *req.IsSoldOut
	}
	if req.IsWeekendOnly != nil {
		fields["is_weekend_only"] = *req.IsWeekendOnly
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return domain.FoodResponse{}, domain.ErrEmptyUpdate
	}

	if err := s.foodRepository.UpdateFields(ctx, item.ID, fields); err != nil {
		return domain.FoodResponse{}, err
	}

	updated, err := s.foodRepository.FindByID(ctx, item.ID)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(updated), nil
}

// Deactivate is the admin delete: food items are never hard-deleted so
// historical order lines keep a valid reference.
func (s *foodService) Deactivate(ctx context.Context, id string) error {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return err
	}
	return s.foodRepository.UpdateFields(ctx, item.ID, map[string]interface{}{"is_active": false})
}

func (s *foodService) AddImage(ctx context.Context, foodID string, req domain.AddImageRequest) (domain.ImageResponse, error) {
	item, err := s.findItem(ctx, foodID)
	if err != nil {
		return domain.ImageResponse{}, err
	}

	image := &entities.Image{
		ID:         uuid.New(),
		FoodItemID: item.ID,
		Path:       req.Path,
	}
	if err := s.foodRepository.AddImage(ctx, image); err != nil {
		return domain.ImageResponse{}, err
	}

	return domain.ImageResponse{ID: image.ID.String(), Path: image.Path}, nil
}

func (s *foodService) DeleteImage(ctx context.Context, imageID string) error {
	id, err := uuid.Parse(imageID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.foodRepository.FindImageByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrImageNotFound
		}
		return err
	}

	return s.foodRepository.DeleteImage(ctx, id)
}

func (s *foodService) findItem(ctx context.Context, id string) (*entities.FoodItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.foodRepository.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return item, nil
}

func buildMadeWith(foodID uuid.UUID, reqs []domain.MadeWithRequest) ([]entities.MadeWith, error) {
	madeWith := make([]entities.MadeWith, 0, len(reqs))
	for _, mw := range reqs {
		ingredientID, err := uuid.Parse(mw.IngredientID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		madeWith = append(madeWith, entities.MadeWith{
			ID:           uuid.New(),
			FoodItemID:   foodID,
			IngredientID: ingredientID,
			Quantity:     mw.Quantity,
		})
	}
	return madeWith, nil
}

func buildImages(foodID uuid.UUID, paths []string) []entities.Image {
	images := make([]entities.Image, 0, len(paths))
	for _, path := range paths {
		images = append(images, entities.Image{
			ID:         uuid.New(),
			FoodItemID: foodID,
			Path:       path,
		})
	}
	return images
}

func toFoodResponses(items []entities.FoodItem) []domain.FoodResponse {
	response := make([]domain.FoodResponse, 0, len(items))
	for i := range items {
		response = append(response, toFoodResponse(&items[i]))
	}
	return response
}

func toFoodResponse(item *entities.FoodItem) domain.FoodResponse {
	res := domain.FoodResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Description:     item.Description,
		OriginalPrice:   item.OriginalPrice,
		DiscountedPrice: item.DiscountedPrice,
		IsFeatured:      item.IsFeatured,
		IsSoldOut:       item.IsSoldOut,
		IsWeekendOnly:   item.IsWeekendOnly,
		IsActive:        item.IsActive,
		MadeWith:        make([]domain.MadeWithResponse, 0, len(item.MadeWith)),
		Images:          make([]domain.ImageResponse, 0, len(item.Images)),
		CreatedAt:       item.CreatedAt,
	}

	if item.Type != nil {
		res.Type = &domain.FoodTypeResponse{
			ID:   item.Type.ID.String(),
			Name: item.Type.Name,
		}
	}

	for _, mw := range item.MadeWith {
		entry := domain.MadeWithResponse{
			ID:           mw.ID.String(),
			IngredientID: mw.IngredientID.String(),
			Quantity:     mw.Quantity,
		}
		if mw.Ingredient != nil {
			entry.Name = mw.Ingredient.Name
		}
		res.MadeWith = append(res.MadeWith, entry)
	}

	for _, img := range item.Images {
		res.Images = append(res.Images, domain.ImageResponse{
			ID:   img.ID.String(),
			Path: img.Path,
		})
	}

	return res
}
