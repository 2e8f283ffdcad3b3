package service

import (
	"fmt"
)

type ErrTooManyScenarios struct {
	error
}

func NewErrTooManyScenarios(count, limit int) *ErrTooManyScenarios {
	return &ErrTooManyScenarios{fmt.Errorf("too many scenarios: %d requested, at most %d allowed", count, limit)}
}

type ErrNoScenarios struct {
	error
}

func NewErrNoScenarios() *ErrNoScenarios {
	return &ErrNoScenarios{fmt.Errorf("at least one scenario is required")}
}

type ErrUnsupportedReportFormat struct {
	error
}

func NewErrUnsupportedReportFormat(format string) *ErrUnsupportedReportFormat {
	return &ErrUnsupportedReportFormat{fmt.Errorf("unsupported report format: %q", format)}
}
