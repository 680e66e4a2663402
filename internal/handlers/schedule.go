package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"kacchi-backend/internal/models"
)

// enabledDeliveryDays loads the weekdays delivery is currently offered on.
func enabledDeliveryDays(ctx context.Context, db *mongo.Database) ([]time.Weekday, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := db.Collection("delivery_schedule").Find(ctx, bson.M{"is_enabled": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.DeliveryDay
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	days := make([]time.Weekday, 0, len(entries))
	for _, entry := range entries {
		if entry.DayOfWeek >= 0 && entry.DayOfWeek <= 6 {
			days = append(days, time.Weekday(entry.DayOfWeek))
		}
	}
	return days, nil
}

// GET /delivery-days — the storefront date picker filters on these.
func GetDeliveryDays(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /delivery-days"
		defer handlePanic(c, route)

		days, err := enabledDeliveryDays(c.Request.Context(), db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		out := make([]int, 0, len(days))
		for _, day := range days {
			out = append(out, int(day))
		}
		c.JSON(http.StatusOK, gin.H{"enabledDays": out})
	}
}

// GET /admin/api/delivery-schedule — full week, enabled or not.
func GetDeliverySchedule(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/delivery-schedule"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("delivery_schedule").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var entries []models.DeliveryDay
		if err := cursor.All(ctx, &entries); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

type scheduleUpdateRequest struct {
	DayOfWeek *int  `json:"dayOfWeek" binding:"required"`
	IsEnabled *bool `json:"isEnabled" binding:"required"`
}

// PUT /admin/api/delivery-schedule — toggle one weekday.
func UpdateDeliverySchedule(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/delivery-schedule"
		defer handlePanic(c, route)

		var req scheduleUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dayOfWeek must be between 0 and 6"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("delivery_schedule").UpdateOne(ctx,
			bson.M{"day_of_week": *req.DayOfWeek},
			bson.M{"$set": bson.M{"is_enabled": *req.IsEnabled}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "day not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "delivery schedule updated"})
	}
}
