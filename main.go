package main

import (
	"log"
	"net/http"

	"ecommerce-server/config"
	"ecommerce-server/database"
	"ecommerce-server/handlers"
	"ecommerce-server/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Connect to database
	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Initialize tables
	if err := db.InitializeTables(); err != nil {
		log.Fatal("Failed to initialize tables:", err)
	}

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middlewares.PrometheusMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "E-commerce server is running",
		})
	})

	handlers.InitializeHandlers(db)

	// Catalog is public; the storefront fetches it before sign-in completes.
	router.GET("/products", handlers.GetProducts)

	// Account bootstrap and full cart replacement. POST /user may create the
	// record, so it only needs a valid token, not an existing account.
	user := router.Group("/user", handlers.AuthMiddleware())
	{
		user.POST("", handlers.GetOrCreateUser)
		user.PUT("", handlers.UpdateUserCart)
	}

	// Server-side priced cart view and mutations.
	cartRoutes := router.Group("/cart", handlers.AuthMiddleware(), handlers.RequireUser())
	{
		cartRoutes.GET("", handlers.GetCart)
		cartRoutes.POST("/items", handlers.AddCartItem)
		cartRoutes.PUT("/items/:productId", handlers.UpdateCartItem)
		cartRoutes.DELETE("/items/:productId", handlers.RemoveCartItem)
	}

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure this properly for production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	addr := ":" + config.AppConfig.ServerPort
	log.Printf("Server is running on PORT %s", config.AppConfig.ServerPort)
	if err := http.ListenAndServe(addr, corsWrapper.Handler(router)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
