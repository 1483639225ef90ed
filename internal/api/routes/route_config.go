package routes

import (
	"ayushi-kitchen-backend/internal/api/handlers"
	"ayushi-kitchen-backend/internal/middleware"
	"ayushi-kitchen-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	FoodHandler       handlers.FoodHandler
	FoodTypeHandler   handlers.FoodTypeHandler
	IngredientHandler handlers.IngredientHandler
	OrderHandler      handlers.OrderHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Guest()
	c.Auth()
	c.Storefront()
	c.Orders()
	c.Admin()
}

func (c *Config) Guest() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/google", c.UserHandler.SignInWithGoogle)
	}

	c.App.Get("/api/v1/users/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
}

func (c *Config) Storefront() {
	foods := c.App.Group("/api/v1/foods")
	{
		foods.Get("", c.FoodHandler.ListPublicFoods)
		foods.Get("/:id", c.FoodHandler.GetPublicFood)
	}

	c.App.Get("/api/v1/types", c.FoodTypeHandler.ListTypes)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders")
	{
		orders.Post("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.OrderHandler.PlaceOrder)
		orders.Get("/mine", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.ListMyOrders)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())

	foods := admin.Group("/foods")
	{
		foods.Get("", c.FoodHandler.ListFoods)
		foods.Post("", c.FoodHandler.AddFood)
		foods.Get("/:id", c.FoodHandler.GetFood)
		foods.Patch("/:id", c.FoodHandler.UpdateFood)
		foods.Patch("/:id/status", c.FoodHandler.UpdateFoodStatus)
		foods.Delete("/:id", c.FoodHandler.DeleteFood)
		foods.Post("/:id/images", c.FoodHandler.AddImage)
	}

	admin.Delete("/images/:id", c.FoodHandler.DeleteImage)

	types := admin.Group("/types")
	{
		types.Get("", c.FoodTypeHandler.ListTypes)
		types.Post("", c.FoodTypeHandler.AddType)
		types.Patch("/:id", c.FoodTypeHandler.UpdateType)
		types.Delete("/:id", c.FoodTypeHandler.DeleteType)
	}

	ingredients := admin.Group("/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.ListIngredients)
		ingredients.Post("", c.IngredientHandler.AddIngredient)
		ingredients.Patch("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}

	orders := admin.Group("/orders")
	{
		orders.Get("", c.OrderHandler.ListOrders)
		orders.Get("/pending-summary", c.OrderHandler.PendingSummary)
		orders.Patch("/:id", c.OrderHandler.UpdateOrder)
	}
}
