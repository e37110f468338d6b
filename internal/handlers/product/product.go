package product

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"beautylab_back_end/internal/cache"
	"beautylab_back_end/internal/database"
	"beautylab_back_end/internal/models"
)

type Handler struct {
	db    *database.Databases
	cache *cache.Cache
}

func NewHandler(db *database.Databases, cache *cache.Cache) *Handler {
	return &Handler{db: db, cache: cache}
}

// ListProducts renvoie une page du catalogue filtré et trié.
// Paramètres : name, seller, category, order, min, max, rating, pageNumber.
func (h *Handler) ListProducts(c *gin.Context) {
	name := c.Query("name")
	seller := c.Query("seller")
	category := c.Query("category")
	order := c.Query("order")
	min := parseNumber(c.Query("min"))
	max := parseNumber(c.Query("max"))
	rating := parseNumber(c.Query("rating"))
	page := parsePage(c.Query("pageNumber"))

	filter := catalogFilter(name, seller, category, min, max, rating)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	col := h.db.Products()

	count, err := col.CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	opts := options.Find().
		SetSort(sortFor(order)).
		SetSkip(pageSize * (page - 1)).
		SetLimit(pageSize)

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage produits: " + err.Error()})
		return
	}

	// Une page hors limites renvoie une liste vide mais un compte de pages valide.
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"page":     page,
		"pages":    pageCount(count),
	})
}

// GetCategories renvoie les valeurs distinctes de catégorie, via le cache Redis.
func (h *Handler) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cached, ok := h.cache.GetCategories(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	values, err := h.db.Products().Distinct(ctx, "category", bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégories: " + err.Error()})
		return
	}

	categories := []string{}
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}

	h.cache.SetCategories(ctx, categories)

	c.JSON(http.StatusOK, categories)
}

// SeedProducts insère le catalogue de démonstration. Chaque appel ajoute de
// nouveaux documents : pas d'idempotence.
func (h *Handler) SeedProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fixtures := models.FixtureProducts()

	docs := make([]interface{}, len(fixtures))
	for i, p := range fixtures {
		docs[i] = p
	}

	if _, err := h.db.Products().InsertMany(ctx, docs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur insertion fixtures: " + err.Error()})
		return
	}

	h.cache.InvalidateCategories(ctx)

	c.JSON(http.StatusOK, gin.H{"products": fixtures})
}

// GetProduct renvoie un produit par son identifiant.
func (h *Handler) GetProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	err = h.db.Products().FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct crée un produit brouillon appartenant au vendeur connecté.
// Les vrais champs sont renseignés ensuite via PUT /api/products/:id.
func (h *Handler) CreateProduct(c *gin.Context) {
	now := time.Now()

	p := models.Product{
		ID:           primitive.NewObjectID(),
		SKU:          "",
		Name:         fmt.Sprintf("sample name %d", now.UnixMilli()),
		Seller:       c.GetString("user_id"),
		Image:        "/images/p1.jpg",
		Price:        0,
		Category:     "sample category",
		Brand:        "sample brand",
		CountInStock: 0,
		Rating:       0,
		NumReviews:   0,
		Description:  "sample description",
		Reviews:      []models.Review{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := h.db.Products().InsertOne(ctx, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	h.cache.InvalidateCategories(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Produit créé", "product": p})
}
