package order

import (
	"context"

	"ayushi-kitchen-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		// Transaction runs fn against a repository bound to one database
		// transaction; any error rolls every write back.
		Transaction(ctx context.Context, fn func(txRepo OrderRepository) error) error

		FindActiveFoodsByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.FoodItem, error)

		FindUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		FindUserByContact(ctx context.Context, mobile, email string) (*entities.User, error)
		CreateUser(ctx context.Context, user *entities.User) error
		SaveUser(ctx context.Context, user *entities.User) error

		CreateOrder(ctx context.Context, order *entities.CustomerOrder) error
		FindByID(ctx context.Context, id uuid.UUID) (*entities.CustomerOrder, error)
		ListByUserID(ctx context.Context, userID uuid.UUID) ([]entities.CustomerOrder, error)
		ListAll(ctx context.Context, isComplete *bool) ([]entities.CustomerOrder, error)
		UpdateCompletion(ctx context.Context, id uuid.UUID, isComplete bool) error
		ListPendingItems(ctx context.Context) ([]entities.OrderItem, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Transaction(ctx context.Context, fn func(txRepo OrderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepository{db: tx})
	})
}

func (r *orderRepository) FindActiveFoodsByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.FoodItem, error) {
	var foods []entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("Images").
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *orderRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *orderRepository) FindUserByContact(ctx context.Context, mobile, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("mobile = ? OR email = ?", mobile, email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *orderRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *orderRepository) SaveUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.CustomerOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.CustomerOrder, error) {
	var order entities.CustomerOrder
	if err := r.db.WithContext(ctx).
		Preload("Items.FoodItem.Images").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entities.CustomerOrder, error) {
	var orders []entities.CustomerOrder
	if err := r.db.WithContext(ctx).
		Preload("Items.FoodItem.Images").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context, isComplete *bool) ([]entities.CustomerOrder, error) {
	query := r.db.WithContext(ctx).
		Preload("Items.FoodItem").
		Preload("User")

	if isComplete != nil {
		query = query.Where("is_complete = ?", *isComplete)
	}

	var orders []entities.CustomerOrder
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateCompletion(ctx context.Context, id uuid.UUID, isComplete bool) error {
	return r.db.WithContext(ctx).Model(&entities.CustomerOrder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_complete": isComplete}).Error
}

func (r *orderRepository) ListPendingItems(ctx context.Context) ([]entities.OrderItem, error) {
	var items []entities.OrderItem
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Joins("JOIN customer_orders ON customer_orders.id = order_items.order_id").
		Where("customer_orders.is_complete = ?", false).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
