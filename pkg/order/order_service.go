package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strings"

	"ayushi-kitchen-backend/domain"
	"ayushi-kitchen-backend/entities"
	"ayushi-kitchen-backend/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, sessionUserID string) (domain.OrderResponse, error)
		ListMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		ListOrders(ctx context.Context, status string) ([]domain.OrderResponse, error)
		UpdateCompletion(ctx context.Context, orderID string, req domain.UpdateOrderRequest) (domain.OrderResponse, error)
		PendingSummary(ctx context.Context) ([]domain.PendingSummaryEntry, error)
	}

	orderService struct {
		orderRepository OrderRepository
		whatsappNumber  string
	}
)

func NewOrderService(orderRepository OrderRepository, whatsappNumber string) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		whatsappNumber:  whatsappNumber,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, sessionUserID string) (domain.OrderResponse, error) {
	foodIDs := make([]uuid.UUID, 0, len(req.Items))
	seen := map[uuid.UUID]bool{}
	for _, item := range req.Items {
		id, err := uuid.Parse(item.FoodItemID)
		if err != nil {
			return domain.OrderResponse{}, domain.ErrParseUUID
		}
		if !seen[id] {
			seen[id] = true
			foodIDs = append(foodIDs, id)
		}
	}

	foods, err := s.orderRepository.FindActiveFoodsByIDs(ctx, foodIDs)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if len(foods) != len(foodIDs) {
		return domain.OrderResponse{}, domain.ErrFoodNotFound
	}

	foodMap := make(map[uuid.UUID]*entities.FoodItem, len(foods))
	var soldOut []string
	for i := range foods {
		foodMap[foods[i].ID] = &foods[i]
		if foods[i].IsSoldOut {
			soldOut = append(soldOut, foods[i].Name)
		}
	}
	if len(soldOut) > 0 {
		return domain.OrderResponse{}, fmt.Errorf("%w: %s", domain.ErrFoodSoldOut, strings.Join(soldOut, ", "))
	}

	var created *entities.CustomerOrder
	err = s.orderRepository.Transaction(ctx, func(txRepo OrderRepository) error {
		account, err := resolveCustomer(ctx, txRepo, req.Customer, sessionUserID)
		if err != nil {
			return err
		}

		order := &entities.CustomerOrder{
			ID:             uuid.New(),
			CustomerName:   req.Customer.Name,
			CustomerMobile: req.Customer.Mobile,
			CustomerEmail:  req.Customer.Email,
			UserID:         account.ID,
		}

		var total float64
		for _, item := range req.Items {
			food := foodMap[uuid.MustParse(item.FoodItemID)]
			price := food.Price()
			total += price * float64(item.Quantity)
			order.Items = append(order.Items, entities.OrderItem{
				ID:         uuid.New(),
				OrderID:    order.ID,
				FoodItemID: food.ID,
				Quantity:   item.Quantity,
				Price:      price,
			})
		}
		order.TotalPrice = total

		if err := txRepo.CreateOrder(ctx, order); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return domain.OrderResponse{}, err
	}

	response := s.toOrderResponse(created, foodMap)
	response.ShareURL = s.shareURL(created, foodMap)

	if mailing.Configured() {
		go s.sendConfirmationEmail(created, foodMap)
	}

	return response, nil
}

// resolveCustomer updates the authenticated user's contact details, falls
// back to a lookup by mobile or email, and creates a fresh user when the
// customer is new.
func resolveCustomer(ctx context.Context, repo OrderRepository, customer domain.OrderCustomerRequest, sessionUserID string) (*entities.User, error) {
	if sessionUserID != "" {
		id, err := uuid.Parse(sessionUserID)
		if err == nil {
			account, err := repo.FindUserByID(ctx, id)
			if err == nil {
				account.Name = customer.Name
				account.Mobile = customer.Mobile
				account.Email = customer.Email
				if err := repo.SaveUser(ctx, account); err != nil {
					return nil, err
				}
				return account, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
	}

	account, err := repo.FindUserByContact(ctx, customer.Mobile, customer.Email)
	if err == nil {
		account.Name = customer.Name
		account.Mobile = customer.Mobile
		account.Email = customer.Email
		if err := repo.SaveUser(ctx, account); err != nil {
			return nil, err
		}
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = &entities.User{
		ID:     uuid.New(),
		Name:   customer.Name,
		Mobile: customer.Mobile,
		Email:  customer.Email,
	}
	if err := repo.CreateUser(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *orderService) ListMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orders, err := s.orderRepository.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toOrderResponses(orders), nil
}

func (s *orderService) ListOrders(ctx context.Context, status string) ([]domain.OrderResponse, error) {
	var isComplete *bool
	switch status {
	case "pending":
		f := false
		isComplete = &f
	case "completed":
		t := true
		isComplete = &t
	}

	orders, err := s.orderRepository.ListAll(ctx, isComplete)
	if err != nil {
		return nil, err
	}
	return s.toOrderResponses(orders), nil
}

func (s *orderService) UpdateCompletion(ctx context.Context, orderID string, req domain.UpdateOrderRequest) (domain.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	if _, err := s.orderRepository.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if err := s.orderRepository.UpdateCompletion(ctx, id, req.IsComplete); err != nil {
		return domain.OrderResponse{}, err
	}

	updated, err := s.orderRepository.FindByID(ctx, id)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	return s.toOrderResponse(updated, nil), nil
}

func (s *orderService) PendingSummary(ctx context.Context) ([]domain.PendingSummaryEntry, error) {
	items, err := s.orderRepository.ListPendingItems(ctx)
	if err != nil {
		return nil, err
	}

	byFood := map[uuid.UUID]*domain.PendingSummaryEntry{}
	for _, item := range items {
		entry, ok := byFood[item.FoodItemID]
		if !ok {
			entry = &domain.PendingSummaryEntry{FoodItemID: item.FoodItemID.String()}
			if item.FoodItem != nil {
				entry.FoodName = item.FoodItem.Name
			}
			byFood[item.FoodItemID] = entry
		}
		entry.Quantity += item.Quantity
	}

	summary := make([]domain.PendingSummaryEntry, 0, len(byFood))
	for _, entry := range byFood {
		summary = append(summary, *entry)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Quantity > summary[j].Quantity
	})
	return summary, nil
}

// shareURL builds the pre-formatted WhatsApp link shown on the order
// confirmation screen.
func (s *orderService) shareURL(order *entities.CustomerOrder, foodMap map[uuid.UUID]*entities.FoodItem) string {
	if s.whatsappNumber == "" {
		return ""
	}

	var lines []string
	for _, item := range order.Items {
		name := ""
		if food, ok := foodMap[item.FoodItemID]; ok {
			name = food.Name
		}
		lines = append(lines, fmt.Sprintf("- %s x %d (£%.2f)", name, item.Quantity, item.Price))
	}

	message := fmt.Sprintf(
		"Here are my order details: Order #%s\n\nItems:\n%s\n\nTotal: £%.2f\nName: %s\nMobile: %s",
		order.ID, strings.Join(lines, "\n"), order.TotalPrice, order.CustomerName, order.CustomerMobile,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber, url.QueryEscape(message))
}

func (s *orderService) sendConfirmationEmail(order *entities.CustomerOrder, foodMap map[uuid.UUID]*entities.FoodItem) {
	var rows strings.Builder
	for _, item := range order.Items {
		name := ""
		if food, ok := foodMap[item.FoodItemID]; ok {
			name = food.Name
		}
		rows.WriteString(fmt.Sprintf("<li>%s x %d (£%.2f)</li>", name, item.Quantity, item.Price))
	}

	subject := fmt.Sprintf("Order confirmation #%s", order.ID)
	body := fmt.Sprintf(
		"<p>Thank you, %s. Your order has been received.</p><ul>%s</ul><p>Total: £%.2f</p>",
		order.CustomerName, rows.String(), order.TotalPrice,
	)

	if err := mailing.SendMail(order.CustomerEmail, subject, body); err != nil {
		log.Printf("Error sending order confirmation email: %v", err)
	}
}

func (s *orderService) toOrderResponses(orders []entities.CustomerOrder) []domain.OrderResponse {
	response := make([]domain.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, s.toOrderResponse(&orders[i], nil))
	}
	return response
}

func (s *orderService) toOrderResponse(order *entities.CustomerOrder, foodMap map[uuid.UUID]*entities.FoodItem) domain.OrderResponse {
	res := domain.OrderResponse{
		ID:             order.ID.String(),
		CustomerName:   order.CustomerName,
		CustomerMobile: order.CustomerMobile,
		CustomerEmail:  order.CustomerEmail,
		TotalPrice:     order.TotalPrice,
		IsComplete:     order.IsComplete,
		UserID:         order.UserID.String(),
		Items:          make([]domain.OrderItemResponse, 0, len(order.Items)),
		CreatedAt:      order.CreatedAt,
	}

	for _, item := range order.Items {
		entry := domain.OrderItemResponse{
			ID:         item.ID.String(),
			FoodItemID: item.FoodItemID.String(),
			Quantity:   item.Quantity,
			Price:      item.Price,
		}
		food := item.FoodItem
		if food == nil && foodMap != nil {
			food = foodMap[item.FoodItemID]
		}
		if food != nil {
			entry.Name = food.Name
			if len(food.Images) > 0 {
				entry.ImageURL = food.Images[0].Path
			}
		}
		res.Items = append(res.Items, entry)
	}

	return res
}
