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
	"go.mongodb.org/mongo-driver/mongo/options"

	"kacchi-backend/internal/models"
)

/*
GET /admin/api/orders
- Storage returns newest-first; the three status filters, the substring
  search and the sort selector run in-process on that list.
- page + limit are optional; when present, pagination runs AFTER the
  filter pipeline.
*/
func GetAllOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}})

		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		orders = filterOrders(orders,
			c.Query("orderStatus"),
			c.Query("deliveryStatus"),
			c.Query("paymentStatus"),
		)
		orders = searchOrders(orders, c.Query("search"))
		orders = sortOrders(orders, c.Query("sortBy"))

		total := len(orders)

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			orders = paginate(orders, page, limit)
			c.JSON(http.StatusOK, gin.H{
				"data": orders,
				"pagination": gin.H{
					"page":  page,
					"limit": limit,
					"total": total,
				},
			})
			return
		}

		log.Printf("[%s] returning %d orders", route, total)
		c.JSON(http.StatusOK, gin.H{"data": orders, "total": total})
	}
}

/* =======================
   PATCH (single-field updates)
======================= */

type OrderUpdateRequest struct {
	OrderStatus    *string `json:"orderStatus"`
	DeliveryStatus *string `json:"deliveryStatus"`
	PaymentStatus  *string `json:"paymentStatus"`
	DeliveryDate   *string `json:"deliveryDate"`
}

// resolveOrderUpdate validates the provided fields and translates them into
// a $set document. Each status value must belong to its axis; the axes are
// never cross-validated against each other. The admin may move the delivery
// date to any calendar day, delivery schedule notwithstanding.
func resolveOrderUpdate(req OrderUpdateRequest) (bson.M, error) {
	updateSet := bson.M{}

	if req.OrderStatus != nil {
		if !models.ValidOrderStatus(*req.OrderStatus) {
			return nil, &invalidFieldError{"orderStatus", *req.OrderStatus}
		}
		updateSet["order_status"] = *req.OrderStatus
	}
	if req.DeliveryStatus != nil {
		if !models.ValidDeliveryStatus(*req.DeliveryStatus) {
			return nil, &invalidFieldError{"deliveryStatus", *req.DeliveryStatus}
		}
		updateSet["delivery_status"] = *req.DeliveryStatus
	}
	if req.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*req.PaymentStatus) {
			return nil, &invalidFieldError{"paymentStatus", *req.PaymentStatus}
		}
		updateSet["payment_status"] = *req.PaymentStatus
	}
	if req.DeliveryDate != nil {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*req.DeliveryDate))
		if err != nil {
			return nil, &invalidFieldError{"deliveryDate", *req.DeliveryDate}
		}
		updateSet["delivery_date"] = parsed
	}

	return updateSet, nil
}

type invalidFieldError struct {
	Field string
	Value string
}

func (e *invalidFieldError) Error() string {
	return "invalid " + e.Field + ": " + e.Value
}

/*
PATCH /admin/api/orders/:id
- Confirm-then-apply: the response carries the applied patch only after the
  write succeeded, so the console never shows a value the backend rejected.
- Re-sending the current value is a harmless no-op round-trip.
*/
func UpdateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/api/orders/:id"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req OrderUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		updateSet, err := resolveOrderUpdate(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(updateSet) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("orders").UpdateOne(ctx,
			bson.M{"_id": orderID},
			bson.M{"$set": updateSet},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		log.Printf("[%s] order %s updated: %v", route, orderID.Hex(), mapKeys(updateSet))
		c.JSON(http.StatusOK, gin.H{
			"message": "order updated",
			"updated": updateSet,
		})
	}
}

func mapKeys(input bson.M) []string {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	return keys
}
