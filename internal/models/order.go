package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEmptyCart est renvoyée quand une commande est créée sans articles.
var ErrEmptyCart = errors.New("le panier est vide")

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderItems      []OrderItem        `bson:"order_items" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string             `bson:"payment_method" json:"paymentMethod"`
	ItemsPrice      float64            `bson:"items_price" json:"itemsPrice"`
	ShippingPrice   float64            `bson:"shipping_price" json:"shippingPrice"`
	TaxPrice        float64            `bson:"tax_price" json:"taxPrice"`
	TotalPrice      float64            `bson:"total_price" json:"totalPrice"`
	User            string             `bson:"user" json:"user"`
	Seller          string             `bson:"seller" json:"seller"`
	IsPaid          bool               `bson:"is_paid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	PaymentResult   *PaymentResult     `bson:"payment_result,omitempty" json:"paymentResult,omitempty"`
	IsDelivered     bool               `bson:"is_delivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// OrderItem est un instantané de l'article au moment de la commande :
// le prix facturé ne bouge plus même si le produit change ensuite.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image" json:"image"`
	Quantity int                `bson:"qty" json:"qty"`
	Price    float64            `bson:"price" json:"price"`
	Seller   string             `bson:"seller" json:"seller"`
}

type ShippingAddress struct {
	FullName   string `bson:"full_name" json:"fullName"`
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// PaymentResult est la confirmation renvoyée par le prestataire de paiement,
// stockée telle quelle.
type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	UpdateTime   string `bson:"update_time" json:"update_time"`
	EmailAddress string `bson:"email_address" json:"email_address"`
}

// MarkPaid passe la commande à l'état payé et stocke telle quelle la
// confirmation du prestataire, champs vides compris. Un nouvel appel écrase
// simplement la confirmation précédente.
func (o *Order) MarkPaid(result PaymentResult, at time.Time) {
	o.IsPaid = true
	o.PaidAt = &at
	o.PaymentResult = &result
}

// MarkDelivered passe la commande à l'état livré. Aucune contrainte d'ordre
// avec le paiement.
func (o *Order) MarkDelivered(at time.Time) {
	o.IsDelivered = true
	o.DeliveredAt = &at
}

// NewOrder construit une commande prête à être insérée.
// Règle métier : le vendeur de la commande est celui du premier article.
func NewOrder(items []OrderItem, address ShippingAddress, paymentMethod string,
	itemsPrice, shippingPrice, taxPrice, totalPrice float64, userID string) (*Order, error) {

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	return &Order{
		ID:              primitive.NewObjectID(),
		OrderItems:      items,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      itemsPrice,
		ShippingPrice:   shippingPrice,
		TaxPrice:        taxPrice,
		TotalPrice:      totalPrice,
		User:            userID,
		Seller:          items[0].Seller,
		CreatedAt:       time.Now(),
	}, nil
}
