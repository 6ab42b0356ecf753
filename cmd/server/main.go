package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"studyai-server/internal/ai"
	"studyai-server/internal/auth"
	"studyai-server/internal/models"
	"studyai-server/internal/score"
	"studyai-server/internal/study"
	"studyai-server/pkg/cache"
	"studyai-server/pkg/database"
)

type config struct {
	Port           string
	DatabaseURL    string
	RedisAddr      string
	AuthURL        string
	ServiceKey     string
	JWTSecret      string
	GeminiAPIKey   string
	GeminiModel    string
	AllowedOrigins []string
}

func loadConfig() config {
	cfg := config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		AuthURL:      os.Getenv("AUTH_URL"),
		ServiceKey:   os.Getenv("SUPABASE_SERVICE_KEY"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	return cfg
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg := loadConfig()

	// Fail fast on configuration the pipeline cannot run without.
	if cfg.GeminiAPIKey == "" {
		log.Fatalf("GEMINI_API_KEY is required")
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is required")
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.StudySet{},
		&models.StudyItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.EnsureScoreSchema(db); err != nil {
		log.Fatalf("Failed to ensure score schema: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.RedisAddr)

	generator, err := ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	var provider auth.Provider
	if cfg.AuthURL != "" {
		provider = auth.NewRemoteProvider(cfg.AuthURL, cfg.ServiceKey)
	} else {
		log.Printf("AUTH_URL not set, using local auth provider")
		provider = auth.NewLocalProvider(auth.NewRepository(db), cfg.JWTSecret)
	}

	authHandler := auth.NewHandler(provider)
	studyHandler := study.NewHandler(study.NewService(study.NewRepository(db), generator))
	scoreHandler := score.NewHandler(score.NewService(db, redisCache))

	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Welcome to the StudyAI API!"})
	}).Methods("GET")

	router.HandleFunc("/signup", authHandler.SignUp).Methods("POST", "OPTIONS")
	router.HandleFunc("/login", authHandler.Login).Methods("POST", "OPTIONS")

	router.HandleFunc("/process-notes", studyHandler.ProcessNotes).Methods("POST", "OPTIONS")
	router.HandleFunc("/study-set/{id}", studyHandler.GetStudySet).Methods("GET")
	router.HandleFunc("/my-study-sets/{userID}", studyHandler.ListStudySets).Methods("GET")
	router.HandleFunc("/generate-quiz/{id}", studyHandler.GenerateQuiz).Methods("GET")

	// Score routes require a valid token.
	jwtRequired := auth.JWTMiddleware(cfg.JWTSecret)
	router.Handle("/award-cr", jwtRequired(http.HandlerFunc(scoreHandler.AwardCR))).Methods("POST", "OPTIONS")
	router.Handle("/leaderboard", jwtRequired(http.HandlerFunc(scoreHandler.GetLeaderboard))).Methods("GET")

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsMiddleware.Handler(router),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}
