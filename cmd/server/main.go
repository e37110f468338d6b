package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"beautylab_back_end/internal/config"
	"beautylab_back_end/internal/database"
	"beautylab_back_end/internal/routes"
)

func main() {
	config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx)
	if err != nil {
		log.Fatal("❌ Échec connexion bases de données:", err)
	}
	defer db.Close(context.Background())

	r := gin.Default()
	routes.RegisterRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur BeautyLab lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur serveur:", err)
	}
}
