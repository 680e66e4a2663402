package handlers

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"kacchi-backend/internal/models"
)

func datePtr(t time.Time) *time.Time { return &t }

func testOrders() []models.Order {
	base := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	return []models.Order{
		{
			ID:           primitive.NewObjectID(),
			CustomerName: "রহিম উদ্দিন",
			Phone:        "01712345678",
			OrderStatus:  models.OrderStatusOrdered,
			CreatedAt:    base,
			DeliveryDate: datePtr(base.AddDate(0, 0, 10)),
		},
		{
			ID:             primitive.NewObjectID(),
			CustomerName:   "Karim Ahmed",
			Phone:          "01898765432",
			OrderStatus:    models.OrderStatusConfirmed,
			DeliveryStatus: models.DeliveryStatusOnTheWay,
			CreatedAt:      base.AddDate(0, 0, 1),
			DeliveryDate:   datePtr(base.AddDate(0, 0, 3)),
		},
		{
			ID:            primitive.NewObjectID(),
			CustomerName:  "সালমা খাতুন",
			Phone:         "01555555555",
			OrderStatus:   models.OrderStatusOrdered,
			PaymentStatus: models.PaymentStatusFullyPaid,
			CreatedAt:     base.AddDate(0, 0, 2),
			DeliveryDate:  nil,
		},
	}
}

func TestFilterOrdersByOrderStatus(t *testing.T) {
	orders := testOrders()

	filtered := filterOrders(orders, models.OrderStatusConfirmed, FilterAll, FilterAll)
	if len(filtered) != 1 || filtered[0].CustomerName != "Karim Ahmed" {
		t.Fatalf("expected only the confirmed order, got %d results", len(filtered))
	}

	filtered = filterOrders(orders, models.OrderStatusOrdered, FilterAll, FilterAll)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 ordered results, got %d", len(filtered))
	}
}

func TestStatusUpdateMovesOrderAcrossFilters(t *testing.T) {
	orders := testOrders()
	target := orders[0].ID

	// Admin flips the first order to Confirmed.
	for i := range orders {
		if orders[i].ID == target {
			orders[i].OrderStatus = models.OrderStatusConfirmed
		}
	}

	confirmed := filterOrders(orders, models.OrderStatusConfirmed, FilterAll, FilterAll)
	if !containsOrder(confirmed, target) {
		t.Error("expected updated order in Confirmed filter")
	}
	ordered := filterOrders(orders, models.OrderStatusOrdered, FilterAll, FilterAll)
	if containsOrder(ordered, target) {
		t.Error("did not expect updated order in Ordered filter")
	}
}

func TestFiltersAreIndependentAxes(t *testing.T) {
	orders := testOrders()

	// Permissive by design: FullyPaid + Ordered is a legal combination.
	filtered := filterOrders(orders, models.OrderStatusOrdered, FilterAll, models.PaymentStatusFullyPaid)
	if len(filtered) != 1 || filtered[0].CustomerName != "সালমা খাতুন" {
		t.Fatalf("expected the fully-paid ordered order, got %d results", len(filtered))
	}
}

func TestSearchOrdersMatchesNamePhoneAndID(t *testing.T) {
	orders := testOrders()

	if got := searchOrders(orders, "karim"); len(got) != 1 {
		t.Errorf("name search: expected 1 result, got %d", len(got))
	}
	if got := searchOrders(orders, "01712"); len(got) != 1 {
		t.Errorf("phone search: expected 1 result, got %d", len(got))
	}
	idQuery := orders[2].ID.Hex()[:10]
	if got := searchOrders(orders, idQuery); len(got) != 1 {
		t.Errorf("id search: expected 1 result, got %d", len(got))
	}
	if got := searchOrders(orders, ""); len(got) != 3 {
		t.Errorf("empty search: expected all 3, got %d", len(got))
	}
	if got := searchOrders(orders, "nobody"); len(got) != 0 {
		t.Errorf("miss search: expected 0, got %d", len(got))
	}
}

func TestSortOrdersByCreation(t *testing.T) {
	orders := testOrders()

	desc := sortOrders(orders, SortCreatedAtDesc)
	if !desc[0].CreatedAt.After(desc[2].CreatedAt) {
		t.Error("expected newest first for created_at_desc")
	}

	asc := sortOrders(orders, SortCreatedAtAsc)
	if !asc[0].CreatedAt.Before(asc[2].CreatedAt) {
		t.Error("expected oldest first for created_at_asc")
	}
}

func TestSortByDeliveryDatePlacesNullLast(t *testing.T) {
	orders := testOrders()

	for _, sortBy := range []string{SortDeliveryDateAsc, SortDeliveryDateDesc} {
		sorted := sortOrders(orders, sortBy)
		if sorted[len(sorted)-1].DeliveryDate != nil {
			t.Errorf("%s: expected order without delivery date last", sortBy)
		}
	}

	asc := sortOrders(orders, SortDeliveryDateAsc)
	if asc[0].CustomerName != "Karim Ahmed" {
		t.Errorf("expected earliest delivery first, got %q", asc[0].CustomerName)
	}

	desc := sortOrders(orders, SortDeliveryDateDesc)
	if desc[0].CustomerName != "রহিম উদ্দিন" {
		t.Errorf("expected latest delivery first, got %q", desc[0].CustomerName)
	}
}

func TestSortOrdersUnknownSelectorFallsBackToNewestFirst(t *testing.T) {
	sorted := sortOrders(testOrders(), "bogus")
	if sorted[0].CustomerName != "সালমা খাতুন" {
		t.Errorf("expected newest first fallback, got %q", sorted[0].CustomerName)
	}
}

func TestSortOrdersDoesNotMutateInput(t *testing.T) {
	orders := testOrders()
	first := orders[0].ID
	_ = sortOrders(orders, SortCreatedAtAsc)
	if orders[0].ID != first {
		t.Error("sortOrders mutated its input")
	}
}

func containsOrder(orders []models.Order, id primitive.ObjectID) bool {
	for _, order := range orders {
		if order.ID == id {
			return true
		}
	}
	return false
}
