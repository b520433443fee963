package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"mpincheck/internal/config"
	"mpincheck/internal/database"
	"mpincheck/internal/handlers"
	"mpincheck/internal/repository"
	"mpincheck/internal/security"
	"mpincheck/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Seed default settings
	if err := db.SeedDefaultSettings(); err != nil {
		log.Printf("Warning: Failed to seed default settings: %v", err)
	}

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Initialize repositories
	evalRepo := repository.NewEvaluationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	evaluator := service.NewEvaluatorService()
	auditService := service.NewAuditService(evalRepo, settingsRepo)
	exportService := service.NewExportService(db)

	// Initialize security primitives
	rateLimiter := security.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	tokenIssuer := security.NewTokenIssuer(cfg.APISigningKey, cfg.APITokenTTL)

	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set, admin routes will reject all logins")
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(rateLimiter, csrf, tokenIssuer, cfg.AdminUsername, cfg.AdminPasswordHash)
	evaluateHandler := handlers.NewEvaluateHandler(evaluator, auditService, csrf, templates)
	apiHandler := handlers.NewAPIHandler(evaluator, auditService, tokenIssuer, cfg.APITokenTTL)
	adminHandler := handlers.NewAdminHandler(templates, auditService, exportService, csrf)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup routes
	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Public routes
	mux.HandleFunc("GET /", middleware.EnsureSession(evaluateHandler.ShowHome))
	mux.HandleFunc("POST /evaluate", middleware.RateLimit(middleware.EnsureSession(middleware.CSRFProtect(evaluateHandler.Evaluate))))
	mux.HandleFunc("GET /healthz", healthHandler.Healthz)

	// API routes
	mux.HandleFunc("POST /api/v1/evaluate", middleware.RateLimit(middleware.RequireAPIToken(apiHandler.Evaluate)))
	mux.HandleFunc("POST /api/v1/token", middleware.RateLimit(middleware.RequireAdmin(apiHandler.IssueToken)))

	// Admin routes
	mux.HandleFunc("GET /admin/evaluations", middleware.RequireAdmin(middleware.EnsureSession(adminHandler.ShowEvaluations)))
	mux.HandleFunc("POST /admin/settings/audit", middleware.RequireAdmin(middleware.EnsureSession(middleware.CSRFProtect(adminHandler.ToggleAudit))))
	mux.HandleFunc("GET /admin/export", middleware.RequireAdmin(adminHandler.ExportAuditLog))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	pattern := filepath.Join(templatesPath, "*.tmpl")

	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", templatesPath)
	}

	// Define template functions
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
	}

	// Parse all templates with functions
	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return tmpl, nil
}
