package catalog

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"kacchi-backend/internal/models"
)

func TestPersonsFromName(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"৪ জনের প্যাকেজ", 4},
		{"২০ জনের প্যাকেজ", 20},
		{"৫০ জনের প্যাকেজ", 50},
		{"4 Person Package", 4},
		{"প্যাকেজ", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := PersonsFromName(tt.name); got != tt.want {
			t.Errorf("PersonsFromName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFeaturesIncludeFreeDeliveryWhenFeeIsZero(t *testing.T) {
	packages := []models.Package{
		{Name: "৪ জনের প্যাকেজ", Price: 3200, DeliveryFee: 0},
		{Name: "২০ জনের প্যাকেজ", Price: 15500, DeliveryFee: 0},
	}
	for _, pkg := range packages {
		features := Features(pkg)
		if !containsFeature(features, FeatureFreeDelivery) {
			t.Errorf("expected %q in features for %q, got %v", FeatureFreeDelivery, pkg.Name, features)
		}
	}
}

func TestFeaturesOmitFreeDeliveryWhenFeeIsSet(t *testing.T) {
	features := Features(models.Package{Name: "৪ জনের প্যাকেজ", Price: 3200, DeliveryFee: 150})
	if containsFeature(features, FeatureFreeDelivery) {
		t.Errorf("did not expect %q in %v", FeatureFreeDelivery, features)
	}
}

func TestFeaturesGatedOnBonusFlags(t *testing.T) {
	pkg := models.Package{Name: "৫০ জনের প্যাকেজ", BonusSalad: true, BonusFirni: true, DeliveryFee: 50}
	features := Features(pkg)

	if !containsFeature(features, FeatureBonusSalad) {
		t.Errorf("expected %q in %v", FeatureBonusSalad, features)
	}
	if !containsFeature(features, FeatureBonusFirni) {
		t.Errorf("expected %q in %v", FeatureBonusFirni, features)
	}
	if containsFeature(features, FeatureBonusBorhani) {
		t.Errorf("did not expect %q in %v", FeatureBonusBorhani, features)
	}
}

func TestNormalizeDerivesPricePerPerson(t *testing.T) {
	pkg := Normalize(models.Package{Name: "২০ জনের প্যাকেজ", Price: 15500})
	if pkg.BasePersons != 20 {
		t.Fatalf("expected base persons 20, got %d", pkg.BasePersons)
	}
	if pkg.PricePerPerson != 775 {
		t.Fatalf("expected price per person 775, got %v", pkg.PricePerPerson)
	}
}

func TestNormalizePrefersStoredBasePersons(t *testing.T) {
	pkg := Normalize(models.Package{Name: "বিশেষ প্যাকেজ", BasePersons: 10, Price: 8000})
	if pkg.BasePersons != 10 {
		t.Fatalf("expected stored base persons 10, got %d", pkg.BasePersons)
	}
	if pkg.PricePerPerson != 800 {
		t.Fatalf("expected price per person 800, got %v", pkg.PricePerPerson)
	}
}

func TestSortCanonicalRegardlessOfStorageOrder(t *testing.T) {
	packages := []models.Package{
		{Name: "৫০ জনের প্যাকেজ", BasePersons: 50},
		{Name: "৪ জনের প্যাকেজ", BasePersons: 4},
		{Name: "২০ জনের প্যাকেজ", BasePersons: 20},
	}
	SortCanonical(packages)

	want := []int{4, 20, 50}
	for i, pkg := range packages {
		if pkg.BasePersons != want[i] {
			t.Fatalf("position %d: expected %d persons, got %d", i, want[i], pkg.BasePersons)
		}
	}
}

func TestSortCanonicalPlacesUnresolvedLast(t *testing.T) {
	packages := []models.Package{
		{Name: "প্যাকেজ"},
		{Name: "২০ জনের প্যাকেজ", BasePersons: 20},
	}
	SortCanonical(packages)

	if packages[0].BasePersons != 20 {
		t.Fatalf("expected resolvable package first, got %q", packages[0].Name)
	}
}

func TestApplyReplacesRowAndKeepsOrder(t *testing.T) {
	small := primitive.NewObjectID()
	large := primitive.NewObjectID()
	list := []models.Package{
		{ID: small, Name: "৪ জনের প্যাকেজ", BasePersons: 4, Price: 3200},
		{ID: large, Name: "৫০ জনের প্যাকেজ", BasePersons: 50, Price: 37500},
	}

	updated := Apply(list, models.Package{ID: large, Name: "৫০ জনের প্যাকেজ", BasePersons: 50, Price: 39000})

	if len(updated) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(updated))
	}
	if updated[0].ID != small || updated[1].ID != large {
		t.Fatal("expected canonical order preserved after apply")
	}
	if updated[1].Price != 39000 {
		t.Fatalf("expected updated price 39000, got %v", updated[1].Price)
	}
	if list[1].Price != 37500 {
		t.Fatal("Apply mutated its input slice")
	}
}

func TestApplyInsertsUnknownRowInOrder(t *testing.T) {
	list := []models.Package{
		{ID: primitive.NewObjectID(), Name: "৪ জনের প্যাকেজ", BasePersons: 4},
		{ID: primitive.NewObjectID(), Name: "৫০ জনের প্যাকেজ", BasePersons: 50},
	}

	updated := Apply(list, models.Package{ID: primitive.NewObjectID(), Name: "২০ জনের প্যাকেজ", Price: 15500})

	if len(updated) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(updated))
	}
	if updated[1].BasePersons != 20 {
		t.Fatalf("expected new row normalized into slot 1, got %d persons", updated[1].BasePersons)
	}
}

func containsFeature(features []string, want string) bool {
	for _, f := range features {
		if f == want {
			return true
		}
	}
	return false
}
