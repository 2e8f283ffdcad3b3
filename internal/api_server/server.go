package apiserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	api "github.com/agri-econ/farm-income-planner/api/v1alpha1"
	"github.com/agri-econ/farm-income-planner/internal/config"
	handlers "github.com/agri-econ/farm-income-planner/internal/handlers/v1alpha1"
	"github.com/agri-econ/farm-income-planner/internal/service"
	"github.com/agri-econ/farm-income-planner/pkg/metrics"
	"github.com/agri-econ/farm-income-planner/pkg/middleware"
	"github.com/agri-econ/farm-income-planner/pkg/requestid"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
	readHeaderTimeout       = 10 * time.Second
)

type Server struct {
	cfg      *config.Config
	listener net.Listener
}

// New returns a new instance of a farm income planner server.
func New(
	cfg *config.Config,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		listener: listener,
	}
}

// oapiErrorHandler answers requests rejected by the OpenAPI validator with the API error document.
func oapiErrorHandler(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts oapimiddleware.ErrorHandlerOpts) {
	code := api.ErrorCodeBadRequest
	if opts.StatusCode >= http.StatusInternalServerError {
		code = api.ErrorCodeInternalError
	}
	apiErr := api.Error{Code: code, Message: fmt.Sprintf("API Error: %s", err)}
	if id := requestid.FromContext(ctx); id != "" {
		apiErr.RequestId = &id
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(opts.StatusCode)
	_ = json.NewEncoder(w).Encode(apiErr)
}

// Router builds the http handler serving the JSON API, the form page and the health probe.
// Only /api/v1 is validated against the OpenAPI document.
func (s *Server) Router() (http.Handler, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load swagger spec: %w", err)
	}
	// Skip server name validation
	swagger.Servers = nil

	oapiOpts := oapimiddleware.Options{
		ErrorHandlerWithOpts: oapiErrorHandler,
	}

	metricMiddleware := metrics.NewMiddleware("api_server")
	if err := metricMiddleware.Register(prometheus.DefaultRegisterer); err != nil {
		return nil, fmt.Errorf("failed to register http metrics: %w", err)
	}

	router := chi.NewRouter()
	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Service.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	h := handlers.NewServiceHandler(service.NewSimulationService(s.cfg))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapiOpts))
		handlers.RegisterApi(r, h)
	})
	handlers.RegisterUI(router, h)

	return router, nil
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router, err := s.Router()
	if err != nil {
		return err
	}

	srv := http.Server{
		Addr:              s.cfg.Service.Address,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
