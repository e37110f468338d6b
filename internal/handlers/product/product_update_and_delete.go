package product

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"beautylab_back_end/internal/models"
)

// UpdateProduct recharge le document, applique les champs du body puis
// remplace le document entier (dernier écrivain gagnant, pas de verrou).
func (h *Handler) UpdateProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		SKU          string  `json:"sku"`
		Name         string  `json:"name"`
		Image        string  `json:"image"`
		Price        float64 `json:"price"`
		Category     string  `json:"category"`
		Brand        string  `json:"brand"`
		CountInStock int     `json:"countInStock"`
		Description  string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	col := h.db.Products()

	var product models.Product
	err = col.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return
	}

	product.SKU = input.SKU
	product.Name = input.Name
	product.Image = input.Image
	product.Price = input.Price
	product.Category = input.Category
	product.Brand = input.Brand
	product.CountInStock = input.CountInStock
	product.Description = input.Description
	product.UpdatedAt = time.Now()

	if _, err := col.ReplaceOne(ctx, bson.M{"_id": objID}, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit: " + err.Error()})
		return
	}

	h.cache.InvalidateCategories(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour", "product": product})
}

// DeleteProduct supprime un produit et renvoie le document supprimé.
func (h *Handler) DeleteProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	col := h.db.Products()

	var product models.Product
	err = col.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return
	}

	if _, err := col.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit: " + err.Error()})
		return
	}

	h.cache.InvalidateCategories(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé", "product": product})
}
