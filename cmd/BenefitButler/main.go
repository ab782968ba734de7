package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/benefitbutler/backend/internal/auth"
	"github.com/benefitbutler/backend/internal/config"
	database "github.com/benefitbutler/backend/internal/db"
	"github.com/benefitbutler/backend/internal/finance/application"
	"github.com/benefitbutler/backend/internal/finance/infrastructure"
	"github.com/benefitbutler/backend/internal/finance/interfaces"
	"github.com/benefitbutler/backend/internal/user"
)

const apiPrefix = "/api/v1"

type Response struct {
	Message string `json:"message"`
}

type healthChecker interface {
	Health(ctx context.Context) map[string]string
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func corsMiddleware(allowed []string, next http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		allowedOrigins[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "300")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errors) > 0 && len(errors[0]) > 0 {
		payload["errors"] = errors[0]
	}
	respondJSON(w, status, payload)
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	userHandler        *user.Handler
	authService        auth.Service
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	cardHandler        *interfaces.CardHandler
	health             healthChecker
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
	cardHandler *interfaces.CardHandler,
	health healthChecker,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		authService:        authService,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		cardHandler:        cardHandler,
		health:             health,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.health.Health(r.Context())
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, stats)
}

// protected wraps h with bearer authentication and, when params are given,
// path UUID validation.
func (s *Server) protected(h http.HandlerFunc, params ...string) http.Handler {
	var next http.Handler = h
	if len(params) > 0 {
		next = interfaces.ValidatePathParamsMiddleware(respondError, next, params...)
	}
	return s.authService.JWTAccessTokenMiddleware()(next)
}

// handleCollection registers a collection route with and without the trailing slash.
func (s *Server) handleCollection(method, path string, handler http.Handler) {
	s.router.Handle(method+" "+apiPrefix+path, handler)
	s.router.Handle(method+" "+apiPrefix+path+"/{$}", handler)
}

func (s *Server) RegisterRoutes() {
	s.router.Handle("GET /health", http.HandlerFunc(s.handleHealth))

	// Public routes
	s.router.Handle("POST "+apiPrefix+"/auth/register", http.HandlerFunc(s.userHandler.HandleRegister))
	s.router.Handle("POST "+apiPrefix+"/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))

	s.router.Handle("GET "+apiPrefix+"/auth/me", s.protected(s.authHandler.HandleMe))

	// CATEGORIES
	s.handleCollection(http.MethodGet, "/categories", s.protected(s.categoryHandler.ListCategories))
	s.handleCollection(http.MethodPost, "/categories", s.protected(s.categoryHandler.CreateCategory))
	s.router.Handle("GET "+apiPrefix+"/categories/{categoryID}",
		s.protected(s.categoryHandler.GetCategory, "categoryID"))
	s.router.Handle("PUT "+apiPrefix+"/categories/{categoryID}",
		s.protected(s.categoryHandler.UpdateCategory, "categoryID"))
	s.router.Handle("DELETE "+apiPrefix+"/categories/{categoryID}",
		s.protected(s.categoryHandler.DeleteCategory, "categoryID"))

	// TRANSACTIONS
	s.handleCollection(http.MethodGet, "/transactions", s.protected(s.transactionHandler.ListTransactions))
	s.handleCollection(http.MethodPost, "/transactions", s.protected(s.transactionHandler.CreateTransaction))
	s.router.Handle("GET "+apiPrefix+"/transactions/{transactionID}",
		s.protected(s.transactionHandler.GetTransaction, "transactionID"))
	s.router.Handle("PUT "+apiPrefix+"/transactions/{transactionID}",
		s.protected(s.transactionHandler.UpdateTransaction, "transactionID"))
	s.router.Handle("PATCH "+apiPrefix+"/transactions/{transactionID}/favorite",
		s.protected(s.transactionHandler.SetFavorite, "transactionID"))
	s.router.Handle("DELETE "+apiPrefix+"/transactions/{transactionID}",
		s.protected(s.transactionHandler.DeleteTransaction, "transactionID"))

	// CARDS
	s.handleCollection(http.MethodGet, "/cards", s.protected(s.cardHandler.ListCards))
	s.handleCollection(http.MethodPost, "/cards", s.protected(s.cardHandler.CreateCard))
	s.router.Handle("PATCH "+apiPrefix+"/cards/{cardID}",
		s.protected(s.cardHandler.UpdateCard, "cardID"))
	s.router.Handle("DELETE "+apiPrefix+"/cards/{cardID}",
		s.protected(s.cardHandler.DeleteCard, "cardID"))

	s.router.Handle("/", http.HandlerFunc(notFoundHandler))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.Migrate(context.Background()); err != nil {
		log.Fatalf("Could not migrate database: %v", err)
	}

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	cardRepo := infrastructure.NewCardRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo, dbService)
	transactionService := application.NewTransactionService(transactionRepo, categoryRepo, cardRepo, dbService)
	cardService := application.NewCardService(cardRepo, dbService)
	seeder := application.NewDefaultCategorySeeder(categoryRepo)

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo, seeder, dbService)
	userHandler := user.NewHandler(userService)

	userCache, err := auth.NewUserCache(time.Minute)
	if err != nil {
		log.Fatalf("Could not initialize user cache: %v", err)
	}
	defer userCache.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := auth.NewAuthService(userService, jwtManager, userCache)
	authHandler := auth.NewHandler(authService, userService)

	server := NewServer(
		authHandler,
		authService,
		userHandler,
		interfaces.NewCategoryHandler(categoryService, respondJSON, respondError),
		interfaces.NewTransactionHandler(transactionService, respondJSON, respondError),
		interfaces.NewCardHandler(cardService, respondJSON, respondError),
		dbService,
	)
	server.RegisterRoutes()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsMiddleware(cfg.AllowedOrigins, loggingMiddleware(server.router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s (allowed origins: %s)...", cfg.Port, strings.Join(cfg.AllowedOrigins, ", "))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}
