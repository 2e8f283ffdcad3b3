package validator

import (
	"math"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var scenarioNameRegex = regexp.MustCompile(`^[a-zA-Z0-9 _.-]+$`)

func scenarioNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return scenarioNameRegex.MatchString(val)
}

func finiteValidator(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return false
	}
}

// farmSizesValidator accepts an absent list. A present list must be non-empty,
// strictly increasing and made of finite positive values.
func farmSizesValidator(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	if field.IsNil() {
		return true
	}
	if field.Len() == 0 {
		return false
	}

	sizes, ok := field.Interface().([]float64)
	if !ok {
		return false
	}
	for i, f := range sizes {
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			return false
		}
		if i > 0 && f <= sizes[i-1] {
			return false
		}
	}
	return true
}
