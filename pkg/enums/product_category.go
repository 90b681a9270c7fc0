package enums

import "fmt"

// ProductCategory buckets catalog listings for storefront browsing.
type ProductCategory string

const (
	CategoryIndoor      ProductCategory = "indoor"
	CategoryOutdoor     ProductCategory = "outdoor"
	CategoryPots        ProductCategory = "pots"
	CategoryAccessories ProductCategory = "accessories"
)

var validProductCategories = []ProductCategory{
	CategoryIndoor,
	CategoryOutdoor,
	CategoryPots,
	CategoryAccessories,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
