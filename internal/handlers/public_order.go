package handlers

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kacchi-backend/internal/models"
	"kacchi-backend/internal/selection"
)

/* =========================
   REQUEST DTO
========================= */

type createOrderRequest struct {
	CustomerName   string `json:"customerName" binding:"required"`
	Phone          string `json:"phone" binding:"required,bdphone"`
	Email          string `json:"email" binding:"omitempty,email"`
	Address        string `json:"address" binding:"required"`
	AdditionalInfo string `json:"additionalInfo"`
	PackageID      string `json:"packageId"`
	Quantity       int    `json:"quantity"`
	DeliveryDate   string `json:"deliveryDate" binding:"required"`
	PaymentMethod  string `json:"paymentMethod"`
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// fieldErrors maps form field names to inline messages. Validation never
// reaches the database; a non-empty map blocks submission.
type fieldErrors map[string]string

// buildOrderFromRequest validates the submission against the selected
// package and the delivery schedule and assembles the order document with
// its status defaults. Pure: all inputs are explicit, nothing is persisted.
func buildOrderFromRequest(req createOrderRequest, pkg models.Package, enabledDays []time.Weekday, now time.Time) (models.Order, fieldErrors) {
	errs := fieldErrors{}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		errs["customerName"] = "নাম আবশ্যক"
	}

	phone := strings.TrimSpace(req.Phone)
	if !isValidBDPhone(phone) {
		errs["phone"] = "সঠিক বাংলাদেশী ফোন নম্বর দিন"
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !emailPattern.MatchString(email) {
		errs["email"] = "সঠিক ইমেইল এড্রেস দিন"
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		errs["address"] = "ডেলিভারি ঠিকানা আবশ্যক"
	}

	if pkg.Name == "" {
		errs["packageId"] = "প্যাকেজ নির্বাচন করুন"
	}

	var deliveryDate time.Time
	raw := strings.TrimSpace(req.DeliveryDate)
	if raw == "" {
		errs["deliveryDate"] = "ডেলিভারির তারিখ আবশ্যক"
	} else {
		parsed, err := time.Parse("2006-01-02", raw)
		switch {
		case err != nil:
			errs["deliveryDate"] = "তারিখের ফরম্যাট সঠিক নয়"
		case !isAllowedDeliveryDate(parsed, enabledDays):
			errs["deliveryDate"] = "নির্ধারিত ডেলিভারি দিনের তারিখ বাছাই করুন"
		default:
			deliveryDate = parsed
		}
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = pkg.BasePersons
	}
	if quantity < 1 {
		errs["quantity"] = "পরিমাণ অন্তত ১ হতে হবে"
	}

	method := strings.TrimSpace(req.PaymentMethod)
	if method != "" && method != "bkash" && method != "nagad" && method != "card" {
		errs["paymentMethod"] = "invalid payment method"
	}

	if len(errs) > 0 {
		return models.Order{}, errs
	}

	return models.Order{
		CustomerName:   name,
		Phone:          phone,
		Email:          email,
		Address:        address,
		AdditionalInfo: strings.TrimSpace(req.AdditionalInfo),
		Item:           pkg.Name,
		Quantity:       quantity,
		PaymentMethod:  method,
		BookingAmount:  pkg.Price * 0.5,
		DeliveryDate:   &deliveryDate,
		OrderStatus:    models.OrderStatusOrdered,
		CreatedAt:      now,
	}, nil
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(db *mongo.Database, selections *selection.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		// A submission without an explicit package falls back to the
		// session selection. Neither present blocks the order.
		packageID := strings.TrimSpace(req.PackageID)
		if packageID == "" {
			if sel := selections.Get(sessionID(c)); sel != nil {
				packageID = sel.PackageID
				if req.Quantity == 0 {
					req.Quantity = sel.Quantity
				}
			}
		}
		if packageID == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": fieldErrors{"packageId": "প্যাকেজ নির্বাচন করুন"},
			})
			return
		}

		pkg, err := findPackageByID(c.Request.Context(), db, packageID)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": fieldErrors{"packageId": "প্যাকেজ পাওয়া যায়নি"},
			})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		enabledDays, err := enabledDeliveryDays(c.Request.Context(), db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		order, fieldErrs := buildOrderFromRequest(req, pkg, enabledDays, time.Now())
		if fieldErrs != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": fieldErrs,
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			// The backend error is surfaced verbatim; the form stays
			// populated client-side for a retry.
			log.Printf("[%s] insert failed: %v", route, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		selections.Clear(sessionID(c))

		log.Printf("[%s] order created: %s item=%q", route, order.ID.Hex(), order.Item)
		c.JSON(http.StatusCreated, gin.H{
			"orderId":       order.ID.Hex(),
			"message":       "order created",
			"bookingAmount": order.BookingAmount,
			"deliveryDate":  formatBanglaLongDate(*order.DeliveryDate),
		})
	}
}

func findPackageByID(ctx context.Context, db *mongo.Database, id string) (models.Package, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return models.Package{}, mongo.ErrNoDocuments
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pkg models.Package
	err = db.Collection("packages").FindOne(ctx, bson.M{"_id": objectID}).Decode(&pkg)
	return pkg, err
}
