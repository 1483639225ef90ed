package order

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
		&entities.User{},
		&entities.FoodType{},
		&entities.FoodItem{},
		&entities.Ingredient{},
		&entities.MadeWith{},
		&entities.Image{},
		&entities.CustomerOrder{},
		&entities.OrderItem{},
	))
	return db
}

func seedFood(t *testing.T, db *gorm.DB, name string, original float64, discounted *float64) *entities.FoodItem {
	t.Helper()

	item := &entities.FoodItem{
		ID:              uuid.New(),
		Name:            name,
		OriginalPrice:   original,
		DiscountedPrice: discounted,
		IsActive:        true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func floatPtr(v float64) *float64 { return &v }

func TestPlaceOrderPricesAndCustomer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "447000000000")
	ctx := context.Background()

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)
	naan := seedFood(t, db, "Garlic Naan", 9.50, floatPtr(8.00))

	res, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: curry.ID.String(), Quantity: 2},
			{FoodItemID: naan.ID.String(), Quantity: 1},
		},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 28.00, res.TotalPrice)
	assert.Len(t, res.Items, 2)
	assert.False(t, res.IsComplete)
	assert.Contains(t, res.ShareURL, "wa.me/447000000000")

	// Discounted unit price is snapshotted on the line item.
	for _, item := range res.Items {
		if item.FoodItemID == naan.ID.String() {
			assert.Equal(t, 8.00, item.Price)
		}
	}

	// A guest checkout creates a user account keyed by contact details.
	var users []entities.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "111222", users[0].Mobile)
	assert.Equal(t, users[0].ID.String(), res.UserID)
}

func TestPlaceOrderReusesCustomerByContact(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	existing := &entities.User{
		ID:     uuid.New(),
		Name:   "Old Name",
		Mobile: "111222",
		Email:  "asha@example.com",
	}
	require.NoError(t, db.Create(existing).Error)

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)

	res, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: curry.ID.String(), Quantity: 1},
		},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, existing.ID.String(), res.UserID)

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var updated entities.User
	require.NoError(t, db.First(&updated, "id = ?", existing.ID).Error)
	assert.Equal(t, "Asha", updated.Name)
}

func TestPlaceOrderAttachesSessionUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	account := &entities.User{
		ID:     uuid.New(),
		Name:   "Asha",
		Email:  "asha@example.com",
		Mobile: "999999",
	}
	require.NoError(t, db.Create(account).Error)

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)

	res, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha K",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: curry.ID.String(), Quantity: 1},
		},
	}, account.ID.String())
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), res.UserID)

	var updated entities.User
	require.NoError(t, db.First(&updated, "id = ?", account.ID).Error)
	assert.Equal(t, "111222", updated.Mobile)
	assert.Equal(t, "Asha K", updated.Name)
}

func TestPlaceOrderUnknownFood(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	_, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: uuid.NewString(), Quantity: 1},
		},
	}, "")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	var count int64
	require.NoError(t, db.Model(&entities.CustomerOrder{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPlaceOrderInactiveFood(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	retired := seedFood(t, db, "Retired Dish", 10.00, nil)
	require.NoError(t, db.Model(retired).Update("is_active", false).Error)

	_, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: retired.ID.String(), Quantity: 1},
		},
	}, "")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestPlaceOrderSoldOutFood(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)
	soldOut := seedFood(t, db, "Lamb Biryani", 12.00, nil)
	require.NoError(t, db.Model(soldOut).Update("is_sold_out", true).Error)

	_, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: curry.ID.String(), Quantity: 1},
			{FoodItemID: soldOut.ID.String(), Quantity: 1},
		},
	}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFoodSoldOut)
	assert.Contains(t, err.Error(), "Lamb Biryani")

	var orders int64
	require.NoError(t, db.Model(&entities.CustomerOrder{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders)

	var users int64
	require.NoError(t, db.Model(&entities.User{}).Count(&users).Error)
	assert.EqualValues(t, 0, users)
}

func TestPlaceOrderDuplicateLineItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)

	res, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: curry.ID.String(), Quantity: 1},
			{FoodItemID: curry.ID.String(), Quantity: 2},
		},
	}, "")
	require.NoError(t, err)

	// Repeated ids stay separate line items; only the lookup is deduped.
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 30.00, res.TotalPrice)
}

func TestListOrdersFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)

	place := func() domain.OrderResponse {
		res, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
			Customer: domain.OrderCustomerRequest{
				Name:   "Asha",
				Mobile: "111222",
				Email:  "asha@example.com",
			},
			Items: []domain.OrderItemRequest{
				{FoodItemID: curry.ID.String(), Quantity: 1},
			},
		}, "")
		require.NoError(t, err)
		return res
	}

	first := place()
	second := place()

	_, err := service.UpdateCompletion(ctx, first.ID, domain.UpdateOrderRequest{IsComplete: true})
	require.NoError(t, err)

	pending, err := service.ListOrders(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	completed, err := service.ListOrders(ctx, "completed")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, first.ID, completed[0].ID)

	all, err := service.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateCompletionUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(NewOrderRepository(db), "")

	_, err := service.UpdateCompletion(context.Background(), uuid.NewString(), domain.UpdateOrderRequest{IsComplete: true})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListMyOrders(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)

	mine, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: curry.ID.String(), Quantity: 1},
		},
	}, "")
	require.NoError(t, err)

	_, err = service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Ben",
			Mobile: "333444",
			Email:  "ben@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: curry.ID.String(), Quantity: 1},
		},
	}, "")
	require.NoError(t, err)

	orders, err := service.ListMyOrders(ctx, mine.UserID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Chicken Curry", orders[0].Items[0].Name)
}

func TestPendingSummary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	service := NewOrderService(repo, "")
	ctx := context.Background()

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)
	naan := seedFood(t, db, "Garlic Naan", 3.00, nil)

	place := func(items []domain.OrderItemRequest, mobile string) domain.OrderResponse {
		res, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
			Customer: domain.OrderCustomerRequest{
				Name:   "Customer",
				Mobile: mobile,
				Email:  mobile + "@example.com",
			},
			Items: items,
		}, "")
		require.NoError(t, err)
		return res
	}

	place([]domain.OrderItemRequest{
		{FoodItemID: curry.ID.String(), Quantity: 2},
		{FoodItemID: naan.ID.String(), Quantity: 5},
	}, "111111")
	place([]domain.OrderItemRequest{
		{FoodItemID: curry.ID.String(), Quantity: 1},
	}, "222222")
	done := place([]domain.OrderItemRequest{
		{FoodItemID: curry.ID.String(), Quantity: 9},
	}, "333333")

	// Completed orders drop out of the kitchen summary.
	_, err := service.UpdateCompletion(ctx, done.ID, domain.UpdateOrderRequest{IsComplete: true})
	require.NoError(t, err)

	summary, err := service.PendingSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	// Largest outstanding quantity first.
	assert.Equal(t, "Garlic Naan", summary[0].FoodName)
	assert.Equal(t, 5, summary[0].Quantity)
	assert.Equal(t, "Chicken Curry", summary[1].FoodName)
	assert.Equal(t, 3, summary[1].Quantity)
}

func TestShareURLOmittedWithoutNumber(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(NewOrderRepository(db), "")
	ctx := context.Background()

	curry := seedFood(t, db, "Chicken Curry", 10.00, nil)

	res, err := service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		Customer: domain.OrderCustomerRequest{
			Name:   "Asha",
			Mobile: "111222",
			Email:  "asha@example.com",
		},
		Items: []domain.OrderItemRequest{
			{FoodItemID: curry.ID.String(), Quantity: 1},
		},
	}, "")
	require.NoError(t, err)
	assert.Empty(t, res.ShareURL)
}
