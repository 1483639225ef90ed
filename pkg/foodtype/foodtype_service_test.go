package foodtype

import (
	"context"
	"fmt"
	"testing"

	"ayushi-kitchen-backend/domain"
	"ayushi-kitchen-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.FoodType{},
		&entities.FoodItem{},
	))
	return db
}

func TestFoodTypeCRUD(t *testing.T) {
	db := setupTestDB(t)
	service := NewFoodTypeService(NewFoodTypeRepository(db))
	ctx := context.Background()

	created, err := service.Create(ctx, domain.FoodTypeRequest{Name: "Mains"})
	require.NoError(t, err)
	assert.Equal(t, "Mains", created.Name)

	updated, err := service.Update(ctx, created.ID, domain.FoodTypeRequest{Name: "Main Courses"})
	require.NoError(t, err)
	assert.Equal(t, "Main Courses", updated.Name)

	_, err = service.Create(ctx, domain.FoodTypeRequest{Name: "Sides"})
	require.NoError(t, err)

	listed, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Main Courses", listed[0].Name)
	assert.Equal(t, "Sides", listed[1].Name)

	require.NoError(t, service.Delete(ctx, created.ID))

	listed, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestDeleteReferencedType(t *testing.T) {
	db := setupTestDB(t)
	service := NewFoodTypeService(NewFoodTypeRepository(db))
	ctx := context.Background()

	created, err := service.Create(ctx, domain.FoodTypeRequest{Name: "Mains"})
	require.NoError(t, err)
	typeID := uuid.MustParse(created.ID)

	item := &entities.FoodItem{
		ID:            uuid.New(),
		Name:          "Chicken Curry",
		OriginalPrice: 10.00,
		TypeID:        &typeID,
		IsActive:      true,
	}
	require.NoError(t, db.Create(item).Error)

	err = service.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrTypeInUse)

	// An in-use type survives the attempt.
	var count int64
	require.NoError(t, db.Model(&entities.FoodType{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFoodTypeNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewFoodTypeService(NewFoodTypeRepository(db))
	ctx := context.Background()

	_, err := service.Update(ctx, uuid.NewString(), domain.FoodTypeRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrTypeNotFound)

	err = service.Delete(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrTypeNotFound)

	err = service.Delete(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
