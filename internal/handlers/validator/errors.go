package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/go-playground/validator/v10"
)

type ErrInvalidName struct {
	error
}

func NewErrInvalidName(format string, args ...any) *ErrInvalidName {
	return &ErrInvalidName{fmt.Errorf(format, args...)}
}

type ErrInvalidRequest struct {
	error
}

func NewErrInvalidRequest(format string, args ...any) *ErrInvalidRequest {
	return &ErrInvalidRequest{fmt.Errorf(format, args...)}
}

// ToDomainError translates validation errors into the error kinds callers branch on:
// *income.ErrInvalidParameter, *income.ErrInvalidRange, *ErrInvalidName or *ErrInvalidRequest.
// Parameter violations win over range violations, which win over the rest.
// Errors that are not validation errors are returned unchanged.
func ToDomainError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var (
		params []income.Violation
		ranges []string
		names  []string
		others []string
	)
	for _, fe := range validationErrors {
		path := fieldPath(fe)
		switch {
		case strings.Contains(path, ".parameters."):
			params = append(params, income.Violation{Field: fe.Field(), Value: fe.Value(), Constraint: describe(fe)})
		case fe.Field() == "farmSizes" || strings.HasPrefix(path, "sweep."):
			ranges = append(ranges, fmt.Sprintf("%s %s (got %v)", path, describe(fe), fe.Value()))
		case fe.Field() == "name":
			names = append(names, fmt.Sprintf("%s %s", path, describe(fe)))
		default:
			others = append(others, fmt.Sprintf("%s %s", path, describe(fe)))
		}
	}

	switch {
	case len(params) > 0:
		return income.NewErrInvalidParameter(params...)
	case len(ranges) > 0:
		return income.NewErrInvalidRange("%s", strings.Join(ranges, "; "))
	case len(names) > 0:
		return NewErrInvalidName("invalid scenario name: %s", strings.Join(names, "; "))
	default:
		return NewErrInvalidRequest("invalid request: %s", strings.Join(others, "; "))
	}
}

// fieldPath drops the top level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}
	return path
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	case "gtefield":
		return "must not be lower than " + strings.ToLower(fe.Param())
	case "min":
		return "must contain at least " + fe.Param() + " item(s)"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "finite":
		return "must be a finite number"
	case "scenario_name":
		return "may only contain letters, digits, spaces, '_', '.' and '-'"
	case "farm_sizes":
		return "must be a non-empty, strictly increasing list of positive farm sizes"
	default:
		return "failed the " + fe.Tag() + " check"
	}
}
