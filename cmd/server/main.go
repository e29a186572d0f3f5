package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/Kennethenow1/Connect-Four-Game/internal/config"
	"github.com/Kennethenow1/Connect-Four-Game/internal/repository/postgres"
	"github.com/Kennethenow1/Connect-Four-Game/internal/repository/redis"
	"github.com/Kennethenow1/Connect-Four-Game/internal/service/cleanup"
	"github.com/Kennethenow1/Connect-Four-Game/internal/service/game"
	transportHttp "github.com/Kennethenow1/Connect-Four-Game/internal/transport/http"
	"github.com/Kennethenow1/Connect-Four-Game/internal/transport/http/middleware"
	"github.com/Kennethenow1/Connect-Four-Game/internal/transport/websocket"
	"github.com/Kennethenow1/Connect-Four-Game/pkg/logger"
)

func main() {
	// fall back to env vars when no .env is present
	if err := godotenv.Load(); err != nil {
		godotenv.Load("../.env")
	}

	log := logger.New()
	defer log.Sync()

	cfg := config.LoadConfig()

	db, err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
	if err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer db.Close()

	gameRepo := postgres.NewGameRepo(db)
	userRepo := postgres.NewUserRepo(db)

	recentGames := redis.InitRecentGames(cfg.RedisURL, cfg.RedisPassword, cfg.HistoryCap, log)

	recorder := game.MultiRecorder{gameRepo}
	if recentGames != nil {
		recorder = append(recorder, recentGames)
	}

	notifier := game.NewLogNotifier(log)
	sessionManager := game.NewSessionManager(cfg.SearchDepth, recorder, notifier, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupWorker := cleanup.NewWorker(sessionManager, log)
	go cleanupWorker.Start(ctx)

	authHandler := transportHttp.NewAuthHandler(userRepo, log)
	historyHandler := transportHttp.NewHistoryHandler(gameRepo, recentGames, log)
	wsHandler := websocket.NewHandler(sessionManager, log)

	router := mux.NewRouter()
	router.Use(middleware.CORSMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/leaderboard", authHandler.Leaderboard).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/recent", historyHandler.GetRecent).Methods(http.MethodGet, http.MethodOptions)

	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/history", historyHandler.GetHistory).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/history/{id}", historyHandler.GetGameDetails).Methods(http.MethodGet, http.MethodOptions)

	router.Handle("/ws", wsHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Infow("server shutting down")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("forced shutdown", "error", err)
	}

	log.Infow("server exited gracefully")
}
