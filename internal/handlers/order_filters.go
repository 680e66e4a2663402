package handlers

import (
	"sort"
	"strings"

	"kacchi-backend/internal/models"
)

// FilterAll disables a status filter axis.
const FilterAll = "All"

// Sort selectors understood by the admin order console.
const (
	SortCreatedAtDesc    = "created_at_desc"
	SortCreatedAtAsc     = "created_at_asc"
	SortDeliveryDateAsc  = "delivery_date_asc"
	SortDeliveryDateDesc = "delivery_date_desc"
)

// filterOrders applies the three independent status equality filters. "All"
// (or empty) on an axis means no filtering on that axis.
func filterOrders(orders []models.Order, orderStatus, deliveryStatus, paymentStatus string) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if !statusMatches(order.OrderStatus, orderStatus) {
			continue
		}
		if !statusMatches(order.DeliveryStatus, deliveryStatus) {
			continue
		}
		if !statusMatches(order.PaymentStatus, paymentStatus) {
			continue
		}
		out = append(out, order)
	}
	return out
}

func statusMatches(value, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return value == filter
}

// searchOrders keeps orders whose id, customer name or phone contains the
// query, case-insensitively. An empty query keeps everything.
func searchOrders(orders []models.Order, query string) []models.Order {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return orders
	}

	out := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if strings.Contains(strings.ToLower(order.ID.Hex()), query) ||
			strings.Contains(strings.ToLower(order.CustomerName), query) ||
			strings.Contains(strings.ToLower(order.Phone), query) {
			out = append(out, order)
		}
	}
	return out
}

// sortOrders returns a sorted copy. Orders without a delivery date always
// sort after dated ones when sorting by delivery date, in either direction.
// An unknown selector falls back to newest-first.
func sortOrders(orders []models.Order, sortBy string) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)

	switch sortBy {
	case SortCreatedAtAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortDeliveryDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return deliveryDateLess(out[i], out[j], false)
		})
	case SortDeliveryDateDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return deliveryDateLess(out[i], out[j], true)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].CreatedAt.Before(out[i].CreatedAt)
		})
	}
	return out
}

func deliveryDateLess(a, b models.Order, descending bool) bool {
	if a.DeliveryDate == nil {
		return false
	}
	if b.DeliveryDate == nil {
		return true
	}
	if descending {
		return b.DeliveryDate.Before(*a.DeliveryDate)
	}
	return a.DeliveryDate.Before(*b.DeliveryDate)
}
