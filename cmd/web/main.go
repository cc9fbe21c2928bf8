package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dishflow/dishflow-web/config"
	"github.com/dishflow/dishflow-web/internal/cache"
	"github.com/dishflow/dishflow-web/internal/handlers"
	"github.com/dishflow/dishflow-web/internal/middleware"
	"github.com/dishflow/dishflow-web/internal/repository"
	"github.com/dishflow/dishflow-web/internal/services"
	"github.com/dishflow/dishflow-web/internal/session"
	"github.com/dishflow/dishflow-web/pkg/dummyjson"
	"github.com/dishflow/dishflow-web/pkg/httpclient"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"github.com/dishflow/dishflow-web/pkg/profiling"
	"github.com/dishflow/dishflow-web/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerRoutes wires the page routes onto the router. The dashboard group
// is session-guarded; everything under it redirects to /login without one.
func registerRoutes(
	router *gin.Engine,
	auth services.AuthServiceInterface,
	loginRateLimiter *middleware.RateLimiter,
	landingHandler *handlers.LandingHandler,
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	recipeHandler *handlers.RecipeHandler,
) {
	router.GET("/", landingHandler.Landing)

	router.GET("/login", middleware.RedirectIfAuthenticated(auth), authHandler.LoginPage)
	router.POST("/login", loginRateLimiter.Middleware(), authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.RequireSession(auth))
	dashboard.GET("", dashboardHandler.Dashboard)
	dashboard.GET("/recipes/new", recipeHandler.NewRecipe)
	dashboard.GET("/recipes/:id/edit", recipeHandler.EditRecipe)
	dashboard.POST("/recipes", recipeHandler.CreateRecipe)
	dashboard.POST("/recipes/:id", recipeHandler.UpdateRecipe)
	dashboard.POST("/recipes/:id/delete", recipeHandler.DeleteRecipe)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting dishFlow web",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing (no-op without an OTLP endpoint)
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.Server.AppEnv,
		cfg.Observability.OTLPEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize continuous profiling (no-op unless enabled)
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Restore the persisted session token, if any
	sessions := session.NewStore(session.NewFileStore(cfg.Session.TokenFile))

	// Initialize the upstream recipe service client
	httpClient := httpclient.NewStandardClientWithTimeout(time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second)
	upstream, err := dummyjson.NewClient(cfg.Upstream.BaseURL, httpClient)
	if err != nil {
		logger.Fatal("Failed to initialize upstream client", zap.Error(err))
	}

	// Initialize cache and repository
	recipeCache := cache.NewRecipeCache(cfg.Cache.ListTTLSeconds)
	recipeRepo := repository.NewRecipeRepository(upstream, recipeCache, cfg.Cache.Disable)

	// Initialize services
	authService := services.NewAuthService(upstream, sessions)
	recipeService := services.NewRecipeService(recipeRepo)

	// Initialize handlers
	landingHandler := handlers.NewLandingHandler(recipeService, authService, cfg.UI.BrowsePageSize)
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(recipeService, authService, cfg.UI.DashboardPageSize)
	recipeHandler := handlers.NewRecipeHandler(recipeService, authService)
	healthHandler := handlers.NewHealthHandler(cfg.Observability.ServiceVersion)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:8080", "http://127.0.0.1:8080")
	}

	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Throttle the login form against credential stuffing
	loginRateLimiter := middleware.NewRateLimiter(1, 5) // 1 req/sec, burst of 5

	// Operational endpoints
	router.GET("/healthcheck", healthHandler.Healthcheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Page routes
	registerRoutes(router, authService, loginRateLimiter, landingHandler, authHandler, dashboardHandler, recipeHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
