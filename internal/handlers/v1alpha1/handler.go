package v1alpha1

import (
	"github.com/agri-econ/farm-income-planner/internal/handlers/validator"
	"github.com/agri-econ/farm-income-planner/internal/service"
	"github.com/go-chi/chi/v5"
)

type ServiceHandler struct {
	simulationSrv *service.SimulationService
	validator     *validator.Validator
}

func NewServiceHandler(simulationService *service.SimulationService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewSimulationValidationRules()...)

	return &ServiceHandler{
		simulationSrv: simulationService,
		validator:     v,
	}
}

// RegisterApi mounts the JSON endpoints on router. Paths are relative to /api/v1.
func RegisterApi(router chi.Router, h *ServiceHandler) {
	router.Post("/simulations", h.Simulate)
	router.Get("/simulations/defaults", h.GetDefaults)
	router.Post("/simulations/report", h.Report)
	router.Get("/info", h.GetInfo)
}

// RegisterUI mounts the browser form and the health probe.
func RegisterUI(router chi.Router, h *ServiceHandler) {
	router.Get("/", h.UI)
	router.Get("/health", h.Health)
}
