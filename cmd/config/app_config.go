package config

import (
	"ayushi-kitchen-backend/internal/api/handlers"
	"ayushi-kitchen-backend/internal/api/routes"
	"ayushi-kitchen-backend/internal/middleware"
	"ayushi-kitchen-backend/internal/utils"
	"ayushi-kitchen-backend/pkg/food"
	"ayushi-kitchen-backend/pkg/foodtype"
	"ayushi-kitchen-backend/pkg/ingredient"
	"ayushi-kitchen-backend/pkg/jwt"
	"ayushi-kitchen-backend/pkg/order"
	"ayushi-kitchen-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/London",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	foodTypeRepository := foodtype.NewFoodTypeRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	googleVerifier := user.NewGoogleVerifier(utils.GetConfig("GOOGLE_CLIENT_ID"))
	userService := user.NewUserService(
		userRepository,
		jwtService,
		googleVerifier,
		utils.AdminEmailList(),
	)
	foodService := food.NewFoodService(foodRepository)
	foodTypeService := foodtype.NewFoodTypeService(foodTypeRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	orderService := order.NewOrderService(orderRepository, utils.GetConfig("WHATSAPP_NUMBER"))

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	foodTypeHandler := handlers.NewFoodTypeHandler(foodTypeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		FoodHandler:       foodHandler,
		FoodTypeHandler:   foodTypeHandler,
		IngredientHandler: ingredientHandler,
		OrderHandler:      orderHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
