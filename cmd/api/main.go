package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rizaldyc/simm-backend/docs"
	"github.com/rizaldyc/simm-backend/internal/activity"
	"github.com/rizaldyc/simm-backend/internal/attendance"
	"github.com/rizaldyc/simm-backend/internal/auth"
	"github.com/rizaldyc/simm-backend/internal/config"
	"github.com/rizaldyc/simm-backend/internal/database"
	"github.com/rizaldyc/simm-backend/internal/member"
	"github.com/rizaldyc/simm-backend/internal/schedule"
	"github.com/rizaldyc/simm-backend/internal/state"
	"github.com/rizaldyc/simm-backend/internal/store"
	"github.com/rizaldyc/simm-backend/internal/sync"
	mw "github.com/rizaldyc/simm-backend/pkg/middleware"
)

// @title        SIMM API
// @description  Attendance and membership management backend with cloud spreadsheet synchronization
// @version      1.0
// @BasePath     /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Local persistent store: Postgres when configured, in-memory otherwise
	var localStore store.Store
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		localStore, err = store.NewPostgres(db)
		if err != nil {
			log.Fatalf("Failed to initialize snapshot store: %v", err)
		}
		log.Println("Connected to database successfully")
	} else {
		log.Println("DATABASE_URL not set, local snapshots are in-memory only")
		localStore = store.NewMemory()
	}

	// Shared in-memory collections, observed by the sync controller
	appState := state.New()
	gateway := sync.NewGateway(cfg.CloudURL)
	controller := sync.NewController(appState, localStore, gateway, cfg.SyncDebounce)

	// Local load, then remote fetch; pushes stay blocked until this settles
	controller.Start(context.Background())
	syncHandler := sync.NewHandler(controller)

	// Auth: static credential list, token-based sessions
	authService := auth.NewService(cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)
	requireAuth := mw.RequireAuth(authService)

	// Member feature
	memberService := member.NewService(appState)
	memberHandler := member.NewHandler(memberService)

	// Attendance feature
	attendanceService := attendance.NewService(appState)
	attendanceHandler := attendance.NewHandler(attendanceService)

	// Activity feature
	activityService := activity.NewService(appState)
	activityHandler := activity.NewHandler(activityService)

	// Schedule feature
	scheduleService := schedule.NewService(appState)
	scheduleHandler := schedule.NewHandler(scheduleService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/members", memberHandler.Routes(requireAuth))
		r.Mount("/attendance", attendanceHandler.Routes(requireAuth))
		r.Mount("/activities", activityHandler.Routes(requireAuth))
		r.Mount("/schedules", scheduleHandler.Routes(requireAuth))
		r.Mount("/sync", syncHandler.Routes(requireAuth, mw.RequireAdmin))
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
