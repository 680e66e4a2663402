package catalog

import (
	"sort"
	"strings"

	"kacchi-backend/internal/models"
)

// Base features ship with every package; the rest are gated on package flags.
// Strings stay in Bengali because the storefront renders them verbatim.
const (
	FeatureMeat         = "প্রিমিয়াম খাসির মাংস"
	FeatureRice         = "উন্নতমানের চিনিগুড়া চাল"
	FeaturePackaging    = "কাস্টম প্যাকেজিং"
	FeatureFreeDelivery = "ফ্রি হোম ডেলিভারি"
	FeatureBonusSalad   = "বোনাস সালাদ"
	FeatureBonusFirni   = "বোনাস ফিরনি ডেজার্ট"
	FeatureBonusBorhani = "বোনাস বোরহানি"
)

var bengaliDigits = map[rune]rune{
	'০': '0', '১': '1', '২': '2', '৩': '3', '৪': '4',
	'৫': '5', '৬': '6', '৭': '7', '৮': '8', '৯': '9',
}

// PersonsFromName extracts the leading numeric token from a package name,
// accepting Bengali as well as ASCII digits ("৪ জনের প্যাকেজ" -> 4).
// Returns 0 when the name carries no number. Kept only to normalize legacy
// documents that predate the stored base_persons field.
func PersonsFromName(name string) int {
	value := 0
	seen := false
	for _, r := range strings.TrimSpace(name) {
		if mapped, ok := bengaliDigits[r]; ok {
			r = mapped
		}
		if r >= '0' && r <= '9' {
			value = value*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	return value
}

// Features derives the storefront feature list for a package.
func Features(pkg models.Package) []string {
	features := []string{FeatureMeat, FeatureRice, FeaturePackaging}
	if pkg.DeliveryFee == 0 {
		features = append(features, FeatureFreeDelivery)
	}
	if pkg.BonusSalad {
		features = append(features, FeatureBonusSalad)
	}
	if pkg.BonusFirni {
		features = append(features, FeatureBonusFirni)
	}
	if pkg.BonusBorhani {
		features = append(features, FeatureBonusBorhani)
	}
	return features
}

// Normalize fills the derived fields of a package and backfills base_persons
// from the name for legacy rows.
func Normalize(pkg models.Package) models.Package {
	if pkg.BasePersons <= 0 {
		pkg.BasePersons = PersonsFromName(pkg.Name)
	}
	if pkg.BasePersons > 0 {
		pkg.PricePerPerson = pkg.Price / float64(pkg.BasePersons)
	}
	pkg.Features = Features(pkg)
	return pkg
}

// SortCanonical orders packages smallest serving first (4, 20, 50),
// regardless of the order storage returned them in. Packages without a
// resolvable serving size go last, by name for stability.
func SortCanonical(packages []models.Package) {
	sort.SliceStable(packages, func(i, j int) bool {
		pi, pj := packages[i].BasePersons, packages[j].BasePersons
		if pi <= 0 && pj <= 0 {
			return packages[i].Name < packages[j].Name
		}
		if pi <= 0 {
			return false
		}
		if pj <= 0 {
			return true
		}
		return pi < pj
	})
}

// Apply merges a changed row into the list and re-establishes canonical
// order. It is a pure reducer: the input slice is not mutated.
func Apply(list []models.Package, pkg models.Package) []models.Package {
	pkg = Normalize(pkg)
	out := make([]models.Package, 0, len(list)+1)
	replaced := false
	for _, existing := range list {
		if existing.ID == pkg.ID {
			out = append(out, pkg)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, pkg)
	}
	SortCanonical(out)
	return out
}
