package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kacchi-backend/internal/catalog"
	"kacchi-backend/internal/models"
)

/* =======================
   REQUEST MODEL
======================= */

type PackageUpdateRequest struct {
	Price        *float64 `json:"price"`
	DeliveryFee  *float64 `json:"deliveryFee"`
	BonusFirni   *bool    `json:"bonusFirni"`
	BonusSalad   *bool    `json:"bonusSalad"`
	BonusBorhani *bool    `json:"bonusBorhani"`
}

/*
GET /admin/api/packages
- Same canonical order as the storefront, raw prices plus the derived
  per-person figure so the console can display both.
*/
func GetAllPackages(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/packages"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("packages").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var raw []models.Package
		if err := cursor.All(ctx, &raw); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		packages := make([]models.Package, 0, len(raw))
		for _, pkg := range raw {
			packages = append(packages, catalog.Normalize(pkg))
		}
		catalog.SortCanonical(packages)

		c.JSON(http.StatusOK, packages)
	}
}

/*
PUT /admin/api/packages/:id
- Numeric fields are staged client-side and sent only when edited; the
  bonus checkboxes are always sent. After a successful write the row is
  re-fetched and returned so the console replaces its local entry with
  what storage actually holds.
*/
func UpdatePackage(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/packages/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req PackageUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		updateSet, err := resolvePackageUpdate(packageUpdateInput{
			Price:        req.Price,
			DeliveryFee:  req.DeliveryFee,
			BonusFirni:   req.BonusFirni,
			BonusSalad:   req.BonusSalad,
			BonusBorhani: req.BonusBorhani,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("packages").UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$set": updateSet},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}

		var updated models.Package
		if err := db.Collection("packages").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] package %s updated", route, id.Hex())
		c.JSON(http.StatusOK, catalog.Normalize(updated))
	}
}

/*
PUT /admin/api/packages/:id/image
- multipart upload; the previous image file is removed after the new path
  is persisted.
*/
func UploadPackageImage(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/packages/:id/image"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "multipart/form-data required"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Package
		err = db.Collection("packages").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		relPath, err := saveUploadedImage(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := db.Collection("packages").UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"image_path": relPath}},
		); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if old := strings.TrimSpace(existing.ImagePath); old != "" && old != relPath {
			if err := safeDeleteUpload(old); err != nil {
				log.Printf("[%s] could not remove old image %q: %v", route, old, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"imagePath": relPath})
	}
}
