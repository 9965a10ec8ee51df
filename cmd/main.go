package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	googleclient "dustbinbackend/clients/google"
	"dustbinbackend/config"
	"dustbinbackend/db"
	"dustbinbackend/handlers"
	"dustbinbackend/middleware"
	dustbinssvc "dustbinbackend/services/dustbins"
	userssvc "dustbinbackend/services/users"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize database connection pool
	dbConn, err := db.NewConnection(cfg.Database.URL())
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Probe the database on startup; the server starts regardless and the
	// health endpoint keeps reporting the degradation
	if !db.TestConnection(context.Background(), dbConn) {
		log.Printf("⚠️ Server starting without database connection")
	}

	// Initialize repositories with shared connection
	usersRepo := db.NewPostgresUsersRepository(dbConn, cfg.Database.Schema)
	dustbinsRepo := db.NewPostgresDustbinsRepository(dbConn, cfg.Database.Schema)

	// Initialize services
	googleVerifier := googleclient.NewGoogleClient(cfg.GoogleConfig.ClientID)
	usersService := userssvc.NewUsersService(usersRepo, googleVerifier, cfg.JWTSecret)
	dustbinsService := dustbinssvc.NewDustbinsService(dustbinsRepo)

	// Initialize handlers and middleware
	authMiddleware := middleware.NewAuthMiddleware(usersService)
	authHandler := handlers.NewAuthHTTPHandler(usersService)
	dustbinsHandler := handlers.NewDustbinsHTTPHandler(dustbinsService)
	healthHandler := handlers.NewHealthHTTPHandler(dbConn, cfg.Environment)

	// Create a new router and register endpoints
	router := mux.NewRouter()
	healthHandler.SetupEndpoints(router)
	authHandler.SetupEndpoints(router, authMiddleware)
	dustbinsHandler.SetupEndpoints(router)

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.RequestLogger(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully before the deferred pool close runs
	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
