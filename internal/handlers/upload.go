package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"beautylab_back_end/internal/database"
)

type UploadHandler struct {
	db *database.Databases
}

func NewUploadHandler(db *database.Databases) *UploadHandler {
	return &UploadHandler{db: db}
}

// UploadImage reçoit un fichier multipart "image", le stocke dans MinIO et
// répond avec l'URL de l'objet en texte brut (le front la range telle quelle
// dans le champ image du produit).
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.db.Minio == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "MinIO non initialisé"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ 'image' manquant"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier illisible"})
		return
	}
	defer file.Close()

	// Nom d'objet unique : deux uploads simultanés du même fichier ne doivent
	// pas s'écraser.
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	objectName := fmt.Sprintf("uploads/%s%s", uuid.New().String(), ext)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bucket := os.Getenv("MINIO_BUCKET")
	_, err = h.db.Minio.PutObject(ctx, bucket, objectName, file, fileHeader.Size,
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload MinIO: " + err.Error()})
		return
	}

	url := fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucket, objectName)
	c.String(http.StatusOK, url)
}
