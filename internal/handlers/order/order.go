package order

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"beautylab_back_end/internal/database"
	"beautylab_back_end/internal/models"
	"beautylab_back_end/internal/utils"
)

type Handler struct {
	db *database.Databases
}

func NewHandler(db *database.Databases) *Handler {
	return &Handler{db: db}
}

// CreateOrder enregistre une commande au moment du checkout. Les articles et
// les prix sont figés à la création ; les états paiement et livraison partent
// à false.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req struct {
		OrderItems      []models.OrderItem     `json:"orderItems"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
		ItemsPrice      float64                `json:"itemsPrice"`
		ShippingPrice   float64                `json:"shippingPrice"`
		TaxPrice        float64                `json:"taxPrice"`
		TotalPrice      float64                `json:"totalPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	order, err := models.NewOrder(req.OrderItems, req.ShippingAddress, req.PaymentMethod,
		req.ItemsPrice, req.ShippingPrice, req.TaxPrice, req.TotalPrice, c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le panier est vide"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := h.db.Orders().InsertOne(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande: " + err.Error()})
		return
	}

	log.Printf("🛒 Commande %s créée pour user %s", order.ID.Hex(), order.User)

	// Confirmation par e-mail, sans bloquer la réponse.
	email := c.GetString("email")
	go func(o models.Order, to string) {
		if err := utils.SendOrderPlacedEmail(o, to); err != nil {
			log.Println("⚠️ Envoi e-mail de confirmation échoué:", err)
		}
	}(*order, email)

	c.JSON(http.StatusCreated, gin.H{"message": "Commande enregistrée", "order": order})
}

// GetMyOrders renvoie les commandes de l'utilisateur connecté.
func (h *Handler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := h.db.Orders().Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes: " + err.Error()})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage commandes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrders renvoie toutes les commandes, filtrées par vendeur si ?seller= est présent.
// Réservé aux vendeurs et administrateurs.
func (h *Handler) GetOrders(c *gin.Context) {
	filter := bson.M{}
	if seller := c.Query("seller"); seller != "" {
		filter["seller"] = seller
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := h.db.Orders().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes: " + err.Error()})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage commandes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder renvoie une commande par son identifiant. Pas de contrôle de
// propriété à ce niveau : tout utilisateur authentifié peut consulter une
// commande dont il connaît l'id (comportement hérité, assumé).
func (h *Handler) GetOrder(c *gin.Context) {
	order, ok := h.findOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

// PayOrder marque la commande payée et stocke telle quelle la confirmation du
// prestataire, champs vides compris. Un nouvel appel écrase simplement la
// confirmation précédente.
func (h *Handler) PayOrder(c *gin.Context) {
	var req struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		UpdateTime   string `json:"update_time"`
		EmailAddress string `json:"email_address"`
	}
	// Un corps absent est toléré : certains prestataires notifient sans
	// payload et la commande passe quand même à payé.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	order, ok := h.findOrder(c)
	if !ok {
		return
	}

	order.MarkPaid(models.PaymentResult{
		ID:           req.ID,
		Status:       req.Status,
		UpdateTime:   req.UpdateTime,
		EmailAddress: req.EmailAddress,
	}, time.Now())

	if !h.replaceOrder(c, order) {
		return
	}

	log.Printf("💳 Commande %s payée (transaction %s)", order.ID.Hex(), req.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Commande payée", "order": order})
}

// DeliverOrder marque la commande livrée. Réservé aux administrateurs.
// Aucune contrainte d'ordre avec le paiement (comportement hérité, assumé).
func (h *Handler) DeliverOrder(c *gin.Context) {
	order, ok := h.findOrder(c)
	if !ok {
		return
	}

	order.MarkDelivered(time.Now())

	if !h.replaceOrder(c, order) {
		return
	}

	log.Printf("📦 Commande %s livrée", order.ID.Hex())

	c.JSON(http.StatusOK, gin.H{"message": "Commande livrée", "order": order})
}

// DeleteOrder supprime une commande et renvoie le document supprimé.
func (h *Handler) DeleteOrder(c *gin.Context) {
	order, ok := h.findOrder(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := h.db.Orders().DeleteOne(ctx, bson.M{"_id": order.ID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression commande: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commande supprimée", "order": order})
}

// findOrder charge la commande du paramètre :id, ou répond 400/404/500 et
// renvoie ok=false.
func (h *Handler) findOrder(c *gin.Context) (*models.Order, bool) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	err = h.db.Orders().FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande: " + err.Error()})
		return nil, false
	}

	return &order, true
}

// replaceOrder remplace le document entier : dernier écrivain gagnant, sans
// erreur pour l'écrivain perdant.
func (h *Handler) replaceOrder(c *gin.Context, order *models.Order) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := h.db.Orders().ReplaceOne(ctx, bson.M{"_id": order.ID}, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour commande: " + err.Error()})
		return false
	}
	return true
}
