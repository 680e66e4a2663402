package handlers

import (
	"testing"
	"time"

	"kacchi-backend/internal/models"
)

var testPackage = models.Package{
	Name:        "২০ জনের প্যাকেজ",
	BasePersons: 20,
	Price:       15500,
}

var fridayOnly = []time.Weekday{time.Friday}

// 2025-06-06 is a Friday.
const validFriday = "2025-06-06"

func validOrderRequest() createOrderRequest {
	return createOrderRequest{
		CustomerName: "রহিম উদ্দিন",
		Phone:        "01712345678",
		Address:      "বাড়ি ১২, রোড ৫, ধানমন্ডি, ঢাকা",
		DeliveryDate: validFriday,
	}
}

func TestBuildOrderFromRequestHappyPath(t *testing.T) {
	order, errs := buildOrderFromRequest(validOrderRequest(), testPackage, fridayOnly, time.Now())
	if errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}

	if order.OrderStatus != models.OrderStatusOrdered {
		t.Errorf("expected default order status %q, got %q", models.OrderStatusOrdered, order.OrderStatus)
	}
	if order.DeliveryStatus != "" || order.PaymentStatus != "" {
		t.Errorf("expected delivery/payment statuses unset, got %q/%q", order.DeliveryStatus, order.PaymentStatus)
	}
	if order.Item != "২০ জনের প্যাকেজ" {
		t.Errorf("expected item to snapshot the package name, got %q", order.Item)
	}
	if order.Quantity != 20 {
		t.Errorf("expected quantity defaulted to base persons, got %d", order.Quantity)
	}
	if order.BookingAmount != 7750 {
		t.Errorf("expected 50%% booking amount 7750, got %v", order.BookingAmount)
	}
	if order.DeliveryDate == nil || order.DeliveryDate.Weekday() != time.Friday {
		t.Error("expected delivery date preserved as a Friday")
	}
}

func TestBuildOrderRejectsNonDeliveryDay(t *testing.T) {
	req := validOrderRequest()
	req.DeliveryDate = "2025-06-07" // Saturday

	_, errs := buildOrderFromRequest(req, testPackage, fridayOnly, time.Now())
	if errs == nil || errs["deliveryDate"] == "" {
		t.Fatalf("expected deliveryDate error, got %v", errs)
	}
}

func TestBuildOrderRejectsMissingDeliveryDate(t *testing.T) {
	req := validOrderRequest()
	req.DeliveryDate = ""

	_, errs := buildOrderFromRequest(req, testPackage, fridayOnly, time.Now())
	if errs == nil || errs["deliveryDate"] == "" {
		t.Fatalf("expected deliveryDate error, got %v", errs)
	}
}

func TestBuildOrderRejectsBadPhone(t *testing.T) {
	req := validOrderRequest()
	req.Phone = "01212345678"

	_, errs := buildOrderFromRequest(req, testPackage, fridayOnly, time.Now())
	if errs == nil || errs["phone"] == "" {
		t.Fatalf("expected phone error, got %v", errs)
	}
}

func TestBuildOrderAllowsOptionalEmail(t *testing.T) {
	req := validOrderRequest()
	req.Email = ""

	if _, errs := buildOrderFromRequest(req, testPackage, fridayOnly, time.Now()); errs != nil {
		t.Fatalf("expected empty email to pass, got %v", errs)
	}

	req.Email = "not-an-email"
	if _, errs := buildOrderFromRequest(req, testPackage, fridayOnly, time.Now()); errs == nil || errs["email"] == "" {
		t.Fatal("expected email error for malformed address")
	}
}

func TestBuildOrderRequiresSelectedPackage(t *testing.T) {
	_, errs := buildOrderFromRequest(validOrderRequest(), models.Package{}, fridayOnly, time.Now())
	if errs == nil || errs["packageId"] == "" {
		t.Fatalf("expected packageId error without a selection, got %v", errs)
	}
}

func TestBuildOrderRejectsUnknownPaymentMethod(t *testing.T) {
	req := validOrderRequest()
	req.PaymentMethod = "paypal"

	_, errs := buildOrderFromRequest(req, testPackage, fridayOnly, time.Now())
	if errs == nil || errs["paymentMethod"] == "" {
		t.Fatalf("expected paymentMethod error, got %v", errs)
	}

	for _, method := range []string{"bkash", "nagad", "card", ""} {
		req.PaymentMethod = method
		if _, errs := buildOrderFromRequest(req, testPackage, fridayOnly, time.Now()); errs != nil {
			t.Errorf("expected method %q to pass, got %v", method, errs)
		}
	}
}

func TestFormatBanglaLongDate(t *testing.T) {
	friday := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	got := formatBanglaLongDate(friday)
	want := "শুক্রবার, ৬ জুন ২০২৫"
	if got != want {
		t.Fatalf("formatBanglaLongDate = %q, want %q", got, want)
	}
}
