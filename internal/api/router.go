package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplekit/employee-system/internal/api/handler"
	"github.com/peoplekit/employee-system/internal/api/middleware"
	"github.com/peoplekit/employee-system/internal/core/ports"
	"github.com/peoplekit/employee-system/internal/infrastructure/http/handlers"
)

// Deps carries the already-constructed collaborators the router wires into
// routes. Construction order lives in the composition root, not here.
type Deps struct {
	AuthService     ports.AuthService
	EmployeeService ports.EmployeeService
	TokenService    ports.TokenService
	Mongo           *mongo.Database
	Redis           *redis.Client
	Logger          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee_system"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	employeeHandler := handler.NewEmployeeHandler(deps.EmployeeService)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Employee routes (bearer token required) ---
	employees := e.Group("/api/employees", middleware.Auth(deps.TokenService))
	employees.GET("", employeeHandler.List)
	employees.POST("", employeeHandler.Create)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
