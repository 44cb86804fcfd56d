package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usermanager/user-management-api/internal/api/handler"
	"github.com/usermanager/user-management-api/internal/api/middleware"
	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
	"github.com/usermanager/user-management-api/internal/core/service"
	"github.com/usermanager/user-management-api/internal/core/token"
	mongostore "github.com/usermanager/user-management-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/usermanager/user-management-api/internal/infrastructure/db/redis"
	"github.com/usermanager/user-management-api/internal/infrastructure/http/handlers"
	"github.com/usermanager/user-management-api/internal/pkg/password"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the service then runs without the sign-in attempt limiter.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokenCfg token.Config, bcryptCost int, log zerolog.Logger) (*echo.Echo, error) {
	issuer, err := token.NewIssuer(tokenCfg)
	if err != nil {
		return nil, err
	}
	validator, err := token.NewValidator(tokenCfg)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usermanager"))
	e.Use(middleware.Authenticate(validator))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	var limiter ports.SignInLimiter
	if rdb != nil {
		limiter = redisinfra.NewSignInLimiter(rdb)
	}
	hasher := password.New(bcryptCost)
	authService := service.NewAuthService(userRepo, hasher, issuer, limiter)
	userService := service.NewUserService(userRepo)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// --- Auth routes (public) ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)

	// --- User routes (protected) ---
	users := e.Group("/users")
	users.GET("", userHandler.List, middleware.RequireAuth())
	users.GET("/me", userHandler.Me, middleware.RequireAuth())
	users.GET("/:id", userHandler.Get, middleware.RequireAuth())
	users.PUT("/:id", userHandler.Update, middleware.RequireRole(domain.RoleAdmin))
	users.DELETE("/:id", userHandler.Delete, middleware.RequireRole(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
