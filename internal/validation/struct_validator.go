package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CateringPlanner_Go/internal/domain"
)

// Custom struct tags
const (
	TagMenuCategory = "menucategory"
)

// NewStructValidator returns a validator with the catering struct tags registered.
// Field errors report the JSON name of the field.
func NewStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation(TagMenuCategory, validateMenuCategory)
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func validateMenuCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	if category == "" {
		return true
	}
	return domain.ValidMenuCategories[domain.MenuCategory(category)]
}
