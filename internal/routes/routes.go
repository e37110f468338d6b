package routes

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"beautylab_back_end/internal/cache"
	"beautylab_back_end/internal/database"
	"beautylab_back_end/internal/handlers"
	"beautylab_back_end/internal/handlers/order"
	"beautylab_back_end/internal/handlers/product"
	"beautylab_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *database.Databases) {
	r.Use(cors.Default())

	catalogCache := cache.New(db.Redis)
	productHandler := product.NewHandler(db, catalogCache)
	orderHandler := order.NewHandler(db)
	uploadHandler := handlers.NewUploadHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.String(http.StatusServiceUnavailable, "db not ready")
			return
		}
		c.String(http.StatusOK, "ready")
	})

	api := r.Group("/api")

	// Clés publiques consommées par le front
	api.GET("/config/paypal", func(c *gin.Context) {
		clientID := os.Getenv("PAYPAL_CLIENT_ID")
		if clientID == "" {
			clientID = "sandbox"
		}
		c.String(http.StatusOK, clientID)
	})
	api.GET("/config/google", func(c *gin.Context) {
		c.String(http.StatusOK, os.Getenv("GOOGLE_API_KEY"))
	})

	// Catalogue
	products := api.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/categories", productHandler.GetCategories)
	products.GET("/seed", productHandler.SeedProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.POST("", middleware.AuthRequired(), middleware.RequireSellerOrAdmin, productHandler.CreateProduct)
	products.PUT("/:id", middleware.AuthRequired(), middleware.RequireSellerOrAdmin, productHandler.UpdateProduct)
	products.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin, productHandler.DeleteProduct)
	products.POST("/:id/reviews", middleware.AuthRequired(), productHandler.CreateReview)

	// Commandes
	orders := api.Group("/orders", middleware.AuthRequired())
	orders.GET("/mine", orderHandler.GetMyOrders)
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("", middleware.RequireSellerOrAdmin, orderHandler.GetOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PUT("/:id/pay", orderHandler.PayOrder)
	orders.PUT("/:id/deliver", middleware.RequireAdmin, orderHandler.DeliverOrder)
	orders.DELETE("/:id", middleware.RequireAdmin, orderHandler.DeleteOrder)

	// Uploads
	api.POST("/uploads", middleware.AuthRequired(), uploadHandler.UploadImage)
}
