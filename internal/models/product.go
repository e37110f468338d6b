package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDuplicateReview est renvoyée quand un client tente de noter deux fois le même produit.
var ErrDuplicateReview = errors.New("avis déjà soumis pour ce produit")

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SKU          string             `bson:"sku" json:"sku"`
	Name         string             `bson:"name" json:"name"`
	Seller       string             `bson:"seller" json:"seller"`
	Image        string             `bson:"image" json:"image"`
	Price        float64            `bson:"price" json:"price"`
	Category     string             `bson:"category" json:"category"`
	Brand        string             `bson:"brand" json:"brand"`
	CountInStock int                `bson:"count_in_stock" json:"countInStock"`
	Rating       float64            `bson:"rating" json:"rating"`
	NumReviews   int                `bson:"num_reviews" json:"numReviews"`
	Description  string             `bson:"description" json:"description"`
	Reviews      []Review           `bson:"reviews" json:"reviews"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// Review est embarqué dans le document produit (pas de collection séparée).
type Review struct {
	Name      string    `bson:"name" json:"name"`
	Rating    int       `bson:"rating" json:"rating"` // 1-5
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// AddReview ajoute un avis et recalcule la note moyenne du produit.
// Un seul avis par nom d'utilisateur.
func (p *Product) AddReview(r Review) error {
	for _, existing := range p.Reviews {
		if existing.Name == r.Name {
			return ErrDuplicateReview
		}
	}

	p.Reviews = append(p.Reviews, r)
	p.NumReviews = len(p.Reviews)

	total := 0
	for _, rev := range p.Reviews {
		total += rev.Rating
	}
	p.Rating = float64(total) / float64(len(p.Reviews))

	return nil
}
