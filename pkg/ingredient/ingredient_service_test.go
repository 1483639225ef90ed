package ingredient

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
		&entities.Ingredient{},
		&entities.MadeWith{},
	))
	return db
}

func TestIngredientCRUD(t *testing.T) {
	db := setupTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))
	ctx := context.Background()

	created, err := service.Create(ctx, domain.IngredientRequest{Name: "Chicken"})
	require.NoError(t, err)
	assert.Equal(t, "Chicken", created.Name)

	updated, err := service.Update(ctx, created.ID, domain.IngredientRequest{Name: "Chicken Breast"})
	require.NoError(t, err)
	assert.Equal(t, "Chicken Breast", updated.Name)

	_, err = service.Create(ctx, domain.IngredientRequest{Name: "Basmati Rice"})
	require.NoError(t, err)

	listed, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Basmati Rice", listed[0].Name)

	require.NoError(t, service.Delete(ctx, created.ID))

	listed, err = service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestDeleteReferencedIngredient(t *testing.T) {
	db := setupTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))
	ctx := context.Background()

	created, err := service.Create(ctx, domain.IngredientRequest{Name: "Chicken"})
	require.NoError(t, err)

	link := &entities.MadeWith{
		ID:           uuid.New(),
		FoodItemID:   uuid.New(),
		IngredientID: uuid.MustParse(created.ID),
		Quantity:     "300g",
	}
	require.NoError(t, db.Create(link).Error)

	err = service.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrIngredientInUse)

	var count int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIngredientNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))
	ctx := context.Background()

	_, err := service.Update(ctx, uuid.NewString(), domain.IngredientRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	err = service.Delete(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
