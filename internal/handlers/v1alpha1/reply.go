package v1alpha1

import (
	"errors"
	"net/http"

	"github.com/agri-econ/farm-income-planner/api/v1alpha1"
	"github.com/agri-econ/farm-income-planner/internal/handlers/validator"
	"github.com/agri-econ/farm-income-planner/internal/income"
	"github.com/agri-econ/farm-income-planner/internal/service"
	"github.com/agri-econ/farm-income-planner/pkg/requestid"
	"github.com/go-chi/render"
)

type SimulationReply struct {
	v1alpha1.SimulationResponse
}

type SimulationRequestReply struct {
	v1alpha1.SimulationRequest
}

type InfoReply struct {
	v1alpha1.Info
}

type ErrorReply struct {
	v1alpha1.Error
	status int
}

func (s SimulationReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s SimulationRequestReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (i InfoReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (e ErrorReply) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.status)
	return nil
}

func newErrorReply(r *http.Request, status int, code, message string) ErrorReply {
	reply := ErrorReply{
		Error:  v1alpha1.Error{Code: code, Message: message},
		status: status,
	}
	if id := requestid.FromRequest(r); id != "" {
		reply.RequestId = &id
	}
	return reply
}

// errorReply maps the error kinds returned by the validator and the service to an API error.
func errorReply(r *http.Request, err error) ErrorReply {
	var (
		paramErr       *income.ErrInvalidParameter
		rangeErr       *income.ErrInvalidRange
		nameErr        *validator.ErrInvalidName
		requestErr     *validator.ErrInvalidRequest
		tooManyErr     *service.ErrTooManyScenarios
		noScenarioErr  *service.ErrNoScenarios
		unsupportedErr *service.ErrUnsupportedReportFormat
	)

	switch {
	case errors.As(err, &paramErr):
		return newErrorReply(r, http.StatusBadRequest, v1alpha1.ErrorCodeInvalidParameter, err.Error())
	case errors.As(err, &rangeErr):
		return newErrorReply(r, http.StatusBadRequest, v1alpha1.ErrorCodeInvalidRange, err.Error())
	case errors.As(err, &nameErr):
		return newErrorReply(r, http.StatusBadRequest, v1alpha1.ErrorCodeInvalidName, err.Error())
	case errors.As(err, &tooManyErr):
		return newErrorReply(r, http.StatusBadRequest, v1alpha1.ErrorCodeTooManyScenarios, err.Error())
	case errors.As(err, &requestErr), errors.As(err, &noScenarioErr), errors.As(err, &unsupportedErr):
		return newErrorReply(r, http.StatusBadRequest, v1alpha1.ErrorCodeBadRequest, err.Error())
	default:
		return newErrorReply(r, http.StatusInternalServerError, v1alpha1.ErrorCodeInternalError, "internal error")
	}
}
