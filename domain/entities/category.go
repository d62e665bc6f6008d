package entities

import "strings"

// FoodCategory is one of the fixed categories a food name classifies into
type FoodCategory string

const (
	CategoryVegetables FoodCategory = "Vegetables"
	CategoryFruits     FoodCategory = "Fruits"
	CategoryMeat       FoodCategory = "Meat"
	CategoryFish       FoodCategory = "Fish"
	CategoryDairy      FoodCategory = "Dairy"
	CategoryGrains     FoodCategory = "Grains"
	CategoryBeverages  FoodCategory = "Beverages"
	CategorySnacks     FoodCategory = "Snacks"
	CategoryCondiments FoodCategory = "Condiments"
	CategoryOther      FoodCategory = "Other"
)

// FoodCategories lists every valid category, in display order
var FoodCategories = []FoodCategory{
	CategoryVegetables,
	CategoryFruits,
	CategoryMeat,
	CategoryFish,
	CategoryDairy,
	CategoryGrains,
	CategoryBeverages,
	CategorySnacks,
	CategoryCondiments,
	CategoryOther,
}

// NormalizeCategory coerces free-form classifier output onto the fixed
// enum. Anything unrecognized becomes Other.
func NormalizeCategory(s string) FoodCategory {
	cleaned := strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `."'`))
	for _, c := range FoodCategories {
		if strings.EqualFold(cleaned, string(c)) {
			return c
		}
	}
	return CategoryOther
}
