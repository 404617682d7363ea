package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/sowmya-komirishetti-7/entity-mapping/docs"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api/handler"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api/middleware"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/infrastructure/http/handlers"
)

// Dependencies are constructed by main and handed to the router.
type Dependencies struct {
	Logger    zerolog.Logger
	Auth      ports.AuthService
	Gate      ports.AccessGate
	Customers ports.CustomerService
	// Readiness lists the dependencies pinged by /health/ready, keyed by name.
	Readiness map[string]handlers.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.Instrument())
	e.Use(middleware.Authenticate(deps.Auth))
	e.Use(middleware.Authorize(deps.Gate))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	areaHandler := handler.NewAreaHandler()
	customerHandler := handler.NewCustomerHandler(deps.Customers)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/login", authHandler.LandingRedirect)

	// --- Role areas ---
	e.GET("/admin", areaHandler.Admin)
	e.GET("/user", areaHandler.User)

	// --- Customer aggregate ---
	e.POST("/addCustomer", customerHandler.Add)
	e.GET("/getAllCustomers", customerHandler.List)
	e.GET("/getCustomer/:id", customerHandler.Get)
	e.PUT("/updateCustomer/:id", customerHandler.Update)
	e.DELETE("/deleteCustomer/:id", customerHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
