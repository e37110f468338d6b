package product

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// pageSize est fixe, comme côté front.
const pageSize = 3

// catalogFilter assemble le filtre Mongo du listing. Tous les critères actifs
// sont combinés en AND. Le filtre de prix ne s'applique que si les DEUX bornes
// sont non nulles — bizarrerie héritée du front, conservée telle quelle.
func catalogFilter(name, seller, category string, min, max, rating float64) bson.M {
	filter := bson.M{}

	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if seller != "" {
		filter["seller"] = seller
	}
	if category != "" {
		filter["category"] = category
	}
	if min != 0 && max != 0 {
		filter["price"] = bson.M{"$gte": min, "$lte": max}
	}
	if rating != 0 {
		filter["rating"] = bson.M{"$gte": rating}
	}

	return filter
}

// sortFor traduit le paramètre "order" en tri Mongo. Par défaut on renvoie
// les produits les plus récents (tri _id décroissant).
func sortFor(order string) bson.D {
	switch order {
	case "lowest":
		return bson.D{{Key: "price", Value: 1}}
	case "highest":
		return bson.D{{Key: "price", Value: -1}}
	case "topRated":
		return bson.D{{Key: "rating", Value: -1}}
	default:
		return bson.D{{Key: "_id", Value: -1}}
	}
}

// parsePage renvoie 1 pour tout pageNumber absent ou invalide.
func parsePage(raw string) int64 {
	page, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseNumber renvoie 0 pour tout paramètre numérique absent ou invalide.
func parseNumber(raw string) float64 {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return n
}

// pageCount renvoie ceil(total / pageSize).
func pageCount(total int64) int64 {
	return (total + pageSize - 1) / pageSize
}
