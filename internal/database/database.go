package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Databases regroupe les connexions partagées du serveur. La structure est
// créée une fois au démarrage puis injectée dans les handlers.
type Databases struct {
	client *mongo.Client
	Mongo  *mongo.Database
	Redis  *redis.Client
	Minio  *minio.Client
}

// Connect initialise MongoDB, Redis et MinIO. MongoDB et Redis sont
// obligatoires ; MinIO est facultatif (les uploads renverront une erreur 500
// tant qu'il n'est pas configuré).
func Connect(ctx context.Context) (*Databases, error) {
	mongoURL := os.Getenv("MONGODB_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "everydaybeautylab"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Println("✅ Connecté à MongoDB :", dbName)

	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Println("✅ Connecté à Redis")

	db := &Databases{
		client: client,
		Mongo:  client.Database(dbName),
		Redis:  rdb,
	}
	db.connectMinio(ctx)

	return db, nil
}

func (d *Databases) connectMinio(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MinIO non configuré — les uploads sont désactivés")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO non configuré :", err)
		return
	}

	bucket := os.Getenv("MINIO_BUCKET")
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Println("⚠️ Erreur vérification bucket MinIO :", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ Erreur création bucket MinIO :", err)
			return
		}
		log.Println("🪣 Bucket créé :", bucket)
	}

	d.Minio = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}

// Products renvoie la collection des produits.
func (d *Databases) Products() *mongo.Collection {
	return d.Mongo.Collection("products")
}

// Orders renvoie la collection des commandes.
func (d *Databases) Orders() *mongo.Collection {
	return d.Mongo.Collection("orders")
}

// Ping vérifie que le store principal répond (endpoint /ready).
func (d *Databases) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Close ferme proprement toutes les connexions au shutdown.
func (d *Databases) Close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := d.client.Disconnect(ctx); err != nil {
		log.Println("⚠️ Erreur fermeture MongoDB :", err)
	}
	if err := d.Redis.Close(); err != nil {
		log.Println("⚠️ Erreur fermeture Redis :", err)
	}
	log.Println("🔌 Connexions fermées")
}
