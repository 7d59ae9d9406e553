package nutrition

import (
	"encoding/json"
	"strconv"
	"strings"

	"fittrack/tracker-api/internal/domain"
)

// placeholderName is used when a product carries no usable name, including
// the empty product returned for an unknown barcode.
const placeholderName = "Unknown"

// flexFloat decodes a nutriment value that the upstream API serializes
// inconsistently as a JSON number, a numeric string, or null.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if strings.TrimSpace(str) == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return err
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// nutriments carries the per-100g and per-serving nutrient values we read
// from an upstream product record. Pointers distinguish absent from zero.
type nutriments struct {
	EnergyKcal100g    *flexFloat `json:"energy-kcal_100g"`
	EnergyKcalServing *flexFloat `json:"energy-kcal_serving"`
	Proteins100g      *flexFloat `json:"proteins_100g"`
	Carbohydrates100g *flexFloat `json:"carbohydrates_100g"`
	Fat100g           *flexFloat `json:"fat_100g"`
}

// product is the subset of an upstream product record the normalizer reads.
type product struct {
	Code        string     `json:"code"`
	ProductName string     `json:"product_name"`
	GenericName string     `json:"generic_name"`
	Brands      string     `json:"brands"`
	ServingSize string     `json:"serving_size"`
	Nutriments  nutriments `json:"nutriments"`
}

type searchResponse struct {
	Products []product `json:"products"`
}

type barcodeResponse struct {
	Product *product `json:"product"`
}

func floatOrZero(v *flexFloat) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}

// normalizeProduct maps an upstream product record into the internal
// FoodItem shape. Name falls back product_name, generic_name, "Unknown";
// calories fall back per-100g, per-serving, 0; macros default to 0 when
// the per-100g value is absent. The calorie fallback triggers on a zero
// per-100g value too, not just a missing one: the upstream emits empty
// strings for nutrients it lacks, and those decode to zero.
func normalizeProduct(p product) domain.FoodItem {
	name := p.ProductName
	if name == "" {
		name = p.GenericName
	}
	if name == "" {
		name = placeholderName
	}

	calories := floatOrZero(p.Nutriments.EnergyKcal100g)
	if calories == 0 {
		calories = floatOrZero(p.Nutriments.EnergyKcalServing)
	}

	return domain.FoodItem{
		Barcode:     p.Code,
		Name:        name,
		Brand:       p.Brands,
		Calories:    calories,
		Protein:     floatOrZero(p.Nutriments.Proteins100g),
		Carbs:       floatOrZero(p.Nutriments.Carbohydrates100g),
		Fat:         floatOrZero(p.Nutriments.Fat100g),
		ServingSize: p.ServingSize,
	}
}
