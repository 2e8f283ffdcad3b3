package v1alpha1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/agri-econ/farm-income-planner/api/v1alpha1"
	"github.com/agri-econ/farm-income-planner/internal/config"
	handlers "github.com/agri-econ/farm-income-planner/internal/handlers/v1alpha1"
	"github.com/agri-econ/farm-income-planner/internal/service"
	"github.com/agri-econ/farm-income-planner/pkg/middleware"
	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const validBody = `{
	"scenarios": [
		{
			"name": "Farm 1",
			"parameters": {
				"yieldPerHectare": 500,
				"materialCostPerHectare": 200,
				"laborTimePerHectare": 20,
				"cocoaMarketPrice": 2,
				"maxLaborTime": 180,
				"laborCost": 10
			}
		}
	],
	"farmSizes": [5, 10]
}`

func newRouter() http.Handler {
	h := handlers.NewServiceHandler(service.NewSimulationService(config.NewDefault()))
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterApi(r, h)
	})
	handlers.RegisterUI(router, h)
	return router
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(rec *httptest.ResponseRecorder) v1alpha1.Error {
	var apiErr v1alpha1.Error
	Expect(json.Unmarshal(rec.Body.Bytes(), &apiErr)).To(Succeed())
	return apiErr
}

var _ = Describe("simulation handler", func() {
	var router http.Handler

	BeforeEach(func() {
		router = newRouter()
	})

	Context("simulate", func() {
		It("successfully evaluates a valid request", func() {
			rec := do(router, http.MethodPost, "/api/v1/simulations", validBody)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var response v1alpha1.SimulationResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response.FarmSizes).To(Equal([]float64{5, 10}))
			Expect(response.Scenarios).To(HaveLen(1))

			points := response.Scenarios[0].Points
			Expect(points).To(HaveLen(2))
			Expect(points[0].Income).To(Equal(4000.0))
			Expect(points[0].LaborExceeded).To(BeFalse())
			Expect(points[1].Income).To(Equal(7800.0))
			Expect(points[1].LaborExceeded).To(BeTrue())
			Expect(points[1].HiredLaborCost).To(Equal(200.0))
			Expect(response.Scenarios[0].Summary.CapacityHectares).To(Equal(9.0))
		})

		It("uses the sweep without farm sizes", func() {
			body := strings.Replace(validBody, `"farmSizes": [5, 10]`, `"sweep": {"min": 2, "max": 4, "steps": 3}`, 1)
			rec := do(router, http.MethodPost, "/api/v1/simulations", body)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var response v1alpha1.SimulationResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response.FarmSizes).To(Equal([]float64{2, 3, 4}))
		})

		It("fails with InvalidParameter when the yield is zero", func() {
			body := strings.Replace(validBody, `"yieldPerHectare": 500`, `"yieldPerHectare": 0`, 1)
			rec := do(router, http.MethodPost, "/api/v1/simulations", body)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			apiErr := decodeError(rec)
			Expect(apiErr.Code).To(Equal(v1alpha1.ErrorCodeInvalidParameter))
			Expect(apiErr.Message).To(ContainSubstring("yieldPerHectare"))
			Expect(apiErr.RequestId).NotTo(BeNil())
		})

		It("fails with InvalidRange with an empty farm size list", func() {
			body := strings.Replace(validBody, `"farmSizes": [5, 10]`, `"farmSizes": []`, 1)
			rec := do(router, http.MethodPost, "/api/v1/simulations", body)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Code).To(Equal(v1alpha1.ErrorCodeInvalidRange))
		})

		It("fails with InvalidRange with unordered farm sizes", func() {
			body := strings.Replace(validBody, `"farmSizes": [5, 10]`, `"farmSizes": [10, 5]`, 1)
			rec := do(router, http.MethodPost, "/api/v1/simulations", body)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Code).To(Equal(v1alpha1.ErrorCodeInvalidRange))
		})

		It("fails with InvalidName with an illegal scenario name", func() {
			body := strings.Replace(validBody, `"name": "Farm 1"`, `"name": "<script>"`, 1)
			rec := do(router, http.MethodPost, "/api/v1/simulations", body)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Code).To(Equal(v1alpha1.ErrorCodeInvalidName))
		})

		It("fails with TooManyScenarios", func() {
			var request v1alpha1.SimulationRequest
			Expect(json.Unmarshal([]byte(validBody), &request)).To(Succeed())
			for len(request.Scenarios) < 5 {
				request.Scenarios = append(request.Scenarios, request.Scenarios[0])
			}
			body, err := json.Marshal(request)
			Expect(err).To(BeNil())

			rec := do(router, http.MethodPost, "/api/v1/simulations", string(body))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Code).To(Equal(v1alpha1.ErrorCodeTooManyScenarios))
		})

		It("fails with BadRequest on a malformed body", func() {
			rec := do(router, http.MethodPost, "/api/v1/simulations", `{"scenarios": [`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Code).To(Equal(v1alpha1.ErrorCodeBadRequest))
		})

		It("fails with BadRequest without scenarios", func() {
			rec := do(router, http.MethodPost, "/api/v1/simulations", `{"scenarios": []}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Code).To(Equal(v1alpha1.ErrorCodeBadRequest))
		})
	})

	Context("defaults", func() {
		It("returns both farm profiles", func() {
			rec := do(router, http.MethodGet, "/api/v1/simulations/defaults", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var request v1alpha1.SimulationRequest
			Expect(json.Unmarshal(rec.Body.Bytes(), &request)).To(Succeed())
			Expect(request.Scenarios).To(HaveLen(2))
			Expect(request.Scenarios[0].Name).To(Equal(service.DefaultScenarioName))
			Expect(request.Scenarios[0].Parameters.YieldPerHectare).To(Equal(500.0))
			Expect(request.Scenarios[1].Parameters.YieldPerHectare).To(Equal(1500.0))
			Expect(request.Sweep).NotTo(BeNil())
			Expect(request.Sweep.Steps).To(Equal(10))
		})

		It("round trips through simulate", func() {
			defaults := do(router, http.MethodGet, "/api/v1/simulations/defaults", "")
			rec := do(router, http.MethodPost, "/api/v1/simulations", defaults.Body.String())
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Context("report", func() {
		DescribeTable("returns the right content type",
			func(format, contentType, extension string) {
				rec := do(router, http.MethodPost, "/api/v1/simulations/report?format="+format, validBody)
				Expect(rec.Code).To(Equal(http.StatusOK))
				Expect(rec.Header().Get("Content-Type")).To(HavePrefix(contentType))
				Expect(rec.Header().Get("Content-Disposition")).To(HaveSuffix("." + extension + `"`))
				Expect(rec.Body.Len()).To(BeNumerically(">", 0))
			},
			Entry("html", "html", "text/html", "html"),
			Entry("csv", "csv", "text/csv", "csv"),
			Entry("xlsx", "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"),
		)

		It("defaults to html", func() {
			rec := do(router, http.MethodPost, "/api/v1/simulations/report", validBody)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("text/html"))
		})

		It("fails with an unknown format", func() {
			rec := do(router, http.MethodPost, "/api/v1/simulations/report?format=pdf", validBody)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Code).To(Equal(v1alpha1.ErrorCodeBadRequest))
		})

		It("fails with an invalid body", func() {
			body := strings.Replace(validBody, `"laborCost": 10`, `"laborCost": -1`, 1)
			rec := do(router, http.MethodPost, "/api/v1/simulations/report?format=csv", body)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Code).To(Equal(v1alpha1.ErrorCodeInvalidParameter))
		})
	})

	Context("ui", func() {
		It("renders the default chart", func() {
			rec := do(router, http.MethodGet, "/", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			page := rec.Body.String()
			Expect(page).To(ContainSubstring("<form"))
			Expect(page).To(ContainSubstring("<svg"))
			Expect(strings.Count(page, "<polyline")).To(Equal(2))
			Expect(page).To(ContainSubstring(`name="farm1.yieldPerHectare" value="500"`))
		})

		It("recomputes from the query", func() {
			rec := do(router, http.MethodGet, "/?farm1.yieldPerHectare=800&min=1&max=4&steps=4", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			page := rec.Body.String()
			Expect(page).To(ContainSubstring(`name="farm1.yieldPerHectare" value="800"`))
			// compare is off once the form has been submitted without it
			Expect(strings.Count(page, "<polyline")).To(Equal(1))
		})

		It("shows validation errors inline", func() {
			rec := do(router, http.MethodGet, "/?farm1.yieldPerHectare=0&compare=on", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			page := rec.Body.String()
			Expect(page).To(ContainSubstring("yieldPerHectare must be greater than 0"))
			Expect(page).NotTo(ContainSubstring("<svg"))
		})

		It("shows parse errors inline", func() {
			rec := do(router, http.MethodGet, "/?min=abc", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("min must be a number"))
		})
	})
})
