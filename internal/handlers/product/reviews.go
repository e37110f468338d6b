package product

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"beautylab_back_end/internal/models"
)

// CreateReview ajoute un avis au produit et recalcule sa note moyenne.
// L'avis est embarqué dans le document produit : la lecture, l'ajout et le
// remplacement du document forment une séquence sans verrou (dernier écrivain
// gagnant, comportement assumé).
func (h *Handler) CreateReview(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
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

	review := models.Review{
		Name:      c.GetString("name"),
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := product.AddReview(review); err != nil {
		if errors.Is(err, models.ErrDuplicateReview) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Vous avez déjà soumis un avis pour ce produit"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := col.ReplaceOne(ctx, bson.M{"_id": objID}, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement avis: " + err.Error()})
		return
	}

	log.Printf("⭐ Avis créé pour produit %s (note: %d/5)", objID.Hex(), req.Rating)

	c.JSON(http.StatusCreated, gin.H{"message": "Avis créé", "review": review})
}
