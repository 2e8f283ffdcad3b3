package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		// nil slices must still reach farm_sizes
		_ = v.RegisterValidation(tag, fn, true)
	}
}

func NewSimulationValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("scenario_name", scenarioNameValidator),
		},
		{
			Rule: registerFn("finite", finiteValidator),
		},
		{
			Rule: registerFn("farm_sizes", farmSizesValidator),
		},
	}
}
