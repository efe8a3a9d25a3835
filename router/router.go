package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homechef/marketplace-api/controllers"
	"github.com/homechef/marketplace-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(300, 60).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	cardCtrl := controllers.NewCardController(db)
	profileCtrl := controllers.NewProfileController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	dishCtrl := controllers.NewDishController(db)
	reviewCtrl := controllers.NewReviewController(db)
	varietyCtrl := controllers.NewVarietyController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Authentication
	auth := r.Group("/auth")
	{
		strict := middlewares.NewStrictRateLimiter()
		auth.POST("/signup", strict, authCtrl.Signup)
		auth.POST("/login", strict, authCtrl.Login)
		auth.POST("/password-reset", authCtrl.PasswordResetRequest)
		auth.POST("/password-reset-confirm", authCtrl.PasswordResetConfirm)

		protected := auth.Group("")
		protected.Use(middlewares.AuthMiddleware(db))
		{
			protected.POST("/logout", authCtrl.Logout)
			protected.POST("/cards", cardCtrl.CreateCard)
			protected.GET("/cards", cardCtrl.ListCards)
			protected.DELETE("/cards/:card_id", cardCtrl.DeleteCard)
			protected.GET("/profile/:user_id", profileCtrl.GetProfile)
			protected.PUT("/profile/:user_id", profileCtrl.UpdateProfile)
			protected.PATCH("/profile/:user_id", profileCtrl.UpdateProfile)
		}
	}

	// Dish catalog, public reads
	dishes := r.Group("/dishes")
	{
		dishes.GET("", dishCtrl.ListDishes)
		dishes.GET("/categories", categoryCtrl.GetAllCategories)
		dishes.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
		dishes.GET("/:dish_id", dishCtrl.GetDishByID)
		dishes.GET("/:dish_id/reviews", reviewCtrl.ListReviews)
		dishes.GET("/:dish_id/varieties", varietyCtrl.ListSections)
		dishes.GET("/:dish_id/varieties/:section_id", varietyCtrl.GetSection)
		dishes.GET("/:dish_id/varieties/:section_id/options", varietyCtrl.ListOptions)
		dishes.GET("/:dish_id/varieties/:section_id/options/:option_id", varietyCtrl.GetOption)
	}

	// Dish catalog, authenticated writes
	dishesAuth := r.Group("/dishes")
	dishesAuth.Use(middlewares.AuthMiddleware(db))
	{
		dishesAuth.POST("/:dish_id/reviews", reviewCtrl.CreateReview)

		dishesAuth.POST("/:dish_id/varieties", varietyCtrl.CreateSection)
		dishesAuth.PUT("/:dish_id/varieties/:section_id", varietyCtrl.UpdateSection)
		dishesAuth.PATCH("/:dish_id/varieties/:section_id", varietyCtrl.UpdateSection)
		dishesAuth.DELETE("/:dish_id/varieties/:section_id", varietyCtrl.DeleteSection)
		dishesAuth.POST("/:dish_id/varieties/:section_id/options", varietyCtrl.CreateOption)
		dishesAuth.PUT("/:dish_id/varieties/:section_id/options/:option_id", varietyCtrl.UpdateOption)
		dishesAuth.PATCH("/:dish_id/varieties/:section_id/options/:option_id", varietyCtrl.UpdateOption)
		dishesAuth.DELETE("/:dish_id/varieties/:section_id/options/:option_id", varietyCtrl.DeleteOption)
	}

	// Chef-scoped catalog management
	chef := r.Group("/dishes/chef")
	chef.Use(middlewares.AuthMiddleware(db))
	{
		chef.GET("", dishCtrl.ListChefDishes)
		chef.POST("", dishCtrl.CreateDish)
		chef.GET("/categories", categoryCtrl.ListChefCategories)
		chef.POST("/categories", categoryCtrl.CreateCategory)
		chef.GET("/categories/:cat_id", categoryCtrl.GetChefCategory)
		chef.PUT("/categories/:cat_id", categoryCtrl.UpdateCategory)
		chef.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)
		chef.GET("/:dish_id", dishCtrl.GetChefDish)
		chef.PUT("/:dish_id", dishCtrl.UpdateDish)
		chef.PATCH("/:dish_id", dishCtrl.UpdateDish)
		chef.DELETE("/:dish_id", dishCtrl.DeleteDish)
	}

	// Orders
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware(db))
	{
		orders.GET("", orderCtrl.ListOrders)
		orders.POST("/create", orderCtrl.CreateOrder)
		orders.GET("/:order_id", orderCtrl.GetOrder)
		orders.PUT("/:order_id", orderCtrl.UpdateOrder)
		orders.PATCH("/:order_id", orderCtrl.UpdateOrder)
	}

	return r
}
