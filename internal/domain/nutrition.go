package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealUnspecified is the meal label applied when a food log names none.
const MealUnspecified = "unspecified"

// FoodItem describes one food product. It is embedded in a FoodLog or
// synthesized transiently from an external nutrition API response; it is
// never persisted standalone.
type FoodItem struct {
	Barcode     string  `bson:"barcode,omitempty" json:"barcode,omitempty"`
	Name        string  `bson:"name" json:"name"`
	Brand       string  `bson:"brand,omitempty" json:"brand,omitempty"`
	Calories    float64 `bson:"calories" json:"calories"`
	Protein     float64 `bson:"protein" json:"protein"`
	Carbs       float64 `bson:"carbs" json:"carbs"`
	Fat         float64 `bson:"fat" json:"fat"`
	ServingSize string  `bson:"serving_size,omitempty" json:"serving_size,omitempty"`
}

func (f *FoodItem) Validate(path string) *ValidationError {
	if strings.TrimSpace(f.Name) == "" {
		return invalid(path+".name", "required")
	}
	if f.Calories < 0 {
		return invalid(path+".calories", "must not be negative")
	}
	if f.Protein < 0 {
		return invalid(path+".protein", "must not be negative")
	}
	if f.Carbs < 0 {
		return invalid(path+".carbs", "must not be negative")
	}
	if f.Fat < 0 {
		return invalid(path+".fat", "must not be negative")
	}
	return nil
}

// FoodLog records one consumed food item for a user on a date. Quantity is
// a multiplier against the item's serving size. Stored in the "foodlog"
// collection.
type FoodLog struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID   string             `bson:"user_id" json:"user_id"`
	LogDate  string             `bson:"log_date" json:"log_date"`
	Meal     string             `bson:"meal" json:"meal"`
	Item     FoodItem           `bson:"item" json:"item"`
	Quantity float64            `bson:"quantity" json:"quantity"`
}

// Validate checks field constraints and normalizes the meal label. Defaults
// for meal and quantity are resolved at the request boundary; by the time a
// log reaches here both carry concrete values.
func (l *FoodLog) Validate() *ValidationError {
	if strings.TrimSpace(l.UserID) == "" {
		return invalid("user_id", "required")
	}
	if err := validateDate("log_date", l.LogDate); err != nil {
		return err
	}
	if l.Meal == "" {
		l.Meal = MealUnspecified
	}
	if err := l.Item.Validate("item"); err != nil {
		return err
	}
	if l.Quantity < 0.1 {
		return invalid("quantity", "must be at least 0.1")
	}
	return nil
}
