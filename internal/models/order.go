package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status axis. The admin console moves an order through these by hand;
// the axes are independent and deliberately not cross-validated.
const (
	OrderStatusOrdered      = "Ordered"
	OrderStatusConfirmed    = "Confirmed"
	OrderStatusDateAssigned = "Date Assigned"
	OrderStatusDelivered    = "Delivered"
)

// Delivery status axis.
const (
	DeliveryStatusOnTheWay  = "OnTheWay"
	DeliveryStatusDelivered = "Delivered"
	DeliveryStatusReturned  = "Returned"
)

// Payment status axis.
const (
	PaymentStatusUnpaid        = "Unpaid"
	PaymentStatusPartiallyPaid = "PartiallyPaid"
	PaymentStatusFullyPaid     = "FullyPaid"
)

// Order is the persisted customer request. Item holds a snapshot of the
// package name at submission time, not a reference.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName   string             `bson:"customer_name" json:"customerName"`
	Phone          string             `bson:"phone" json:"phone"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Address        string             `bson:"address" json:"address"`
	AdditionalInfo string             `bson:"additional_info,omitempty" json:"additionalInfo,omitempty"`
	Item           string             `bson:"item" json:"item"`
	Quantity       int                `bson:"quantity" json:"quantity"`
	PaymentMethod  string             `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	BookingAmount  float64            `bson:"booking_amount" json:"bookingAmount"`
	DeliveryDate   *time.Time         `bson:"delivery_date" json:"deliveryDate"`
	OrderStatus    string             `bson:"order_status" json:"orderStatus"`
	DeliveryStatus string             `bson:"delivery_status,omitempty" json:"deliveryStatus,omitempty"`
	PaymentStatus  string             `bson:"payment_status,omitempty" json:"paymentStatus,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}

// ValidOrderStatus reports whether value belongs to the order status axis.
func ValidOrderStatus(value string) bool {
	switch value {
	case OrderStatusOrdered, OrderStatusConfirmed, OrderStatusDateAssigned, OrderStatusDelivered:
		return true
	}
	return false
}

// ValidDeliveryStatus reports whether value belongs to the delivery status axis.
func ValidDeliveryStatus(value string) bool {
	switch value {
	case DeliveryStatusOnTheWay, DeliveryStatusDelivered, DeliveryStatusReturned:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether value belongs to the payment status axis.
func ValidPaymentStatus(value string) bool {
	switch value {
	case PaymentStatusUnpaid, PaymentStatusPartiallyPaid, PaymentStatusFullyPaid:
		return true
	}
	return false
}
