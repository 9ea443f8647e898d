package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/xxy2000213-boop/huanre/internal/auth"
	"github.com/xxy2000213-boop/huanre/internal/calc/importer"
	"github.com/xxy2000213-boop/huanre/internal/calc/report"
	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
	"github.com/xxy2000213-boop/huanre/internal/calc/sweep"
	"github.com/xxy2000213-boop/huanre/internal/cases"
	"github.com/xxy2000213-boop/huanre/internal/live"
	"github.com/xxy2000213-boop/huanre/internal/repo"
	"github.com/xxy2000213-boop/huanre/internal/summary"
)

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func newSummarizer() summary.Summarizer {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		log.Warn("ANTHROPIC_API_KEY not set, summaries disabled")
		return nil
	}
	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-sonnet-4-5"
	}
	s, err := summary.NewAnthropicFromAPIKey(apiKey, model)
	if err != nil {
		log.WithError(err).Warn("summarizer disabled")
		return nil
	}
	return s
}

func registerRoutes(r *mux.Router, userRepo repo.Repository) {
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureAPI := api.PathPrefix("/user").Subrouter()
	secureAPI.Use(authEnv.AuthMiddleware)

	sealH := &seal.Handler{}
	sweepH := &sweep.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}
	summaryH := &summary.Handler{Summarizer: newSummarizer()}
	casesH := &cases.Handler{Repo: userRepo}

	secureAPI.HandleFunc("/tools/seal/calc", sealH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/seal/sweep", sweepH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/seal/import", importH.Import).Methods("POST")
	secureAPI.HandleFunc("/tools/seal/report", reportH.Generate).Methods("POST")
	secureAPI.HandleFunc("/tools/seal/summary", summaryH.Summarize).Methods("POST")
	secureAPI.HandleFunc("/tools/seal/cases", casesH.Save).Methods("POST")
	secureAPI.HandleFunc("/tools/seal/cases", casesH.List).Methods("GET")

	liveH := &live.Handler{Upgrader: websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}}
	r.HandleFunc("/ws/seal", liveH.ServeWS)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using environment")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db := auth.InitDB()
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	router := mux.NewRouter()
	registerRoutes(router, repo.NewPostgresRepository(db))

	server := &http.Server{
		Addr:         addr,
		Handler:      CORS(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("server")
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server shutdown")
	}
	log.Info("server stopped")
}
