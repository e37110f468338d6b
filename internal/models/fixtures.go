package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixtureProducts renvoie le catalogue de démonstration inséré par /api/products/seed.
// Chaque appel génère de nouveaux identifiants : le seed n'est pas idempotent.
func FixtureProducts() []Product {
	now := time.Now()

	fixtures := []Product{
		{
			SKU:          "EBL-001",
			Name:         "Crème hydratante visage",
			Image:        "/images/p1.jpg",
			Price:        24.90,
			Category:     "Soins",
			Brand:        "EverydayLab",
			CountInStock: 20,
			Description:  "Crème hydratante légère pour tous types de peau.",
		},
		{
			SKU:          "EBL-002",
			Name:         "Sérum vitamine C",
			Image:        "/images/p2.jpg",
			Price:        32.50,
			Category:     "Soins",
			Brand:        "EverydayLab",
			CountInStock: 15,
			Description:  "Sérum éclat concentré à 15% de vitamine C.",
		},
		{
			SKU:          "EBL-003",
			Name:         "Rouge à lèvres mat",
			Image:        "/images/p3.jpg",
			Price:        18.00,
			Category:     "Maquillage",
			Brand:        "Velvette",
			CountInStock: 30,
			Description:  "Fini mat longue tenue, teinte rouge carmin.",
		},
		{
			SKU:          "EBL-004",
			Name:         "Palette fards à paupières",
			Image:        "/images/p4.jpg",
			Price:        42.00,
			Category:     "Maquillage",
			Brand:        "Velvette",
			CountInStock: 8,
			Description:  "12 teintes nude, pigmentation intense.",
		},
		{
			SKU:          "EBL-005",
			Name:         "Shampooing réparateur",
			Image:        "/images/p5.jpg",
			Price:        14.90,
			Category:     "Cheveux",
			Brand:        "Capilia",
			CountInStock: 45,
			Description:  "Shampooing sans sulfate pour cheveux abîmés.",
		},
		{
			SKU:          "EBL-006",
			Name:         "Huile capillaire argan",
			Image:        "/images/p6.jpg",
			Price:        21.50,
			Category:     "Cheveux",
			Brand:        "Capilia",
			CountInStock: 0,
			Description:  "Huile nourrissante à l'argan bio du Maroc.",
		},
	}

	for i := range fixtures {
		fixtures[i].ID = primitive.NewObjectID()
		fixtures[i].Reviews = []Review{}
		fixtures[i].CreatedAt = now
		fixtures[i].UpdatedAt = now
	}

	return fixtures
}
