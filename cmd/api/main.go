package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-api/internal/config"
	"github.com/yourusername/trivia-api/internal/handler"
	"github.com/yourusername/trivia-api/internal/middleware"
	pgRepo "github.com/yourusername/trivia-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-api/internal/repository/redis"
	"github.com/yourusername/trivia-api/internal/service"
	"github.com/yourusername/trivia-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	categoryTTL := time.Duration(cfg.Cache.CategoryTTLSec) * time.Second
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, categoryTTL)
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	questionHandler := handler.NewQuestionHandler(questionService, categoryService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Настраиваем роутер
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS: все источники разрешены; значения заголовков соответствуют
	// историческому контракту API
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "true"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(middleware.CORSHeaders())

	// Единые тела ошибок для неизвестных маршрутов и методов
	router.HandleMethodNotAllowed = true
	router.NoRoute(handler.NoRoute())
	router.NoMethod(handler.NoMethod())

	// Маршруты API
	router.GET("/categories", categoryHandler.GetCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID", http.StatusBadRequest),
		categoryHandler.GetQuestionsByCategory)

	router.GET("/questions", questionHandler.GetQuestions)
	router.POST("/questions", questionHandler.CreateQuestion)
	router.POST("/questions/search", questionHandler.SearchQuestions)
	router.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", "questionID", http.StatusNotFound),
		questionHandler.DeleteQuestion)

	router.POST("/quizzes", quizHandler.PlayQuiz)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown с таймаутом
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
