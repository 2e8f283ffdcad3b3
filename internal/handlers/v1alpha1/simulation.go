package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/agri-econ/farm-income-planner/api/v1alpha1"
	"github.com/agri-econ/farm-income-planner/internal/handlers/v1alpha1/mappers"
	"github.com/agri-econ/farm-income-planner/internal/handlers/validator"
	"github.com/agri-econ/farm-income-planner/internal/service"
	"github.com/agri-econ/farm-income-planner/pkg/requestid"
	"github.com/go-chi/render"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

var reportExtensions = map[service.ReportFormat]string{
	service.ReportFormatHTML: "html",
	service.ReportFormatCSV:  "csv",
	service.ReportFormatXLSX: "xlsx",
}

// (POST /api/v1/simulations)
func (h *ServiceHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	result, ok := h.simulate(w, r)
	if !ok {
		return
	}
	_ = render.Render(w, r, SimulationReply{SimulationResponse: mappers.SimulationResultToApi(result)})
}

// (GET /api/v1/simulations/defaults)
func (h *ServiceHandler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, SimulationRequestReply{SimulationRequest: mappers.SimulationRequestToApi(h.simulationSrv.Defaults())})
}

// (POST /api/v1/simulations/report)
func (h *ServiceHandler) Report(w http.ResponseWriter, r *http.Request) {
	logger := zap.S().Named("simulation_handler").With("request_id", requestid.FromRequest(r))

	var params v1alpha1.CreateSimulationReportParams
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format); err != nil {
		_ = render.Render(w, r, newErrorReply(r, http.StatusBadRequest, v1alpha1.ErrorCodeBadRequest, fmt.Sprintf("invalid format parameter: %s", err)))
		return
	}
	format := service.ReportFormatHTML
	if params.Format != nil {
		format = service.ReportFormat(*params.Format)
	}
	extension, supported := reportExtensions[format]
	if !supported {
		_ = render.Render(w, r, errorReply(r, service.NewErrUnsupportedReportFormat(string(format))))
		return
	}

	result, ok := h.simulate(w, r)
	if !ok {
		return
	}

	out, contentType, err := h.simulationSrv.Render(r.Context(), result, service.ReportOptions{Format: format})
	if err != nil {
		logger.Errorw("failed to render report", "format", format, "error", err)
		_ = render.Render(w, r, errorReply(r, err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="farm-income-%s.%s"`, result.ID, extension))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// simulate decodes, validates and evaluates the request body. The error reply is
// already written when it returns false.
func (h *ServiceHandler) simulate(w http.ResponseWriter, r *http.Request) (*service.SimulationResult, bool) {
	logger := zap.S().Named("simulation_handler").With("request_id", requestid.FromRequest(r))

	var request v1alpha1.SimulationRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		logger.Debugw("failed to decode simulation request", "error", err)
		_ = render.Render(w, r, newErrorReply(r, http.StatusBadRequest, v1alpha1.ErrorCodeBadRequest, fmt.Sprintf("invalid request body: %s", err)))
		return nil, false
	}

	if err := h.validator.Struct(request); err != nil {
		err = validator.ToDomainError(err)
		logger.Debugw("invalid simulation request", "error", err)
		_ = render.Render(w, r, errorReply(r, err))
		return nil, false
	}

	result, err := h.simulationSrv.Simulate(r.Context(), mappers.SimulationFormFromApi(request))
	if err != nil {
		reply := errorReply(r, err)
		if reply.status >= http.StatusInternalServerError {
			logger.Errorw("failed to simulate", "error", err)
		}
		_ = render.Render(w, r, reply)
		return nil, false
	}

	return result, true
}
