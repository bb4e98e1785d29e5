package handler

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-catalog-api/internal/middleware"
)

// Handlers - набор обработчиков API
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// RouterOptions - настройки роутера
type RouterOptions struct {
	// AllowOrigins - разрешённые CORS origins; "*" или пустой список - любые
	AllowOrigins []string
	// WriteLimiter - middleware для изменяющих маршрутов (nil - без ограничений)
	WriteLimiter gin.HandlerFunc
}

// NewRouter собирает Gin-роутер со всеми маршрутами.
// Маршруты доступны и от корня, и под префиксом /api.
func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	registerValidators()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger(), gin.CustomRecovery(Recovery))
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(opts.AllowOrigins)))

	router.NoRoute(NoRoute)
	router.NoMethod(NoMethod)

	if h.Health != nil {
		router.GET("/health", h.Health.Health)
	}

	registerRoutes(&router.RouterGroup, h, opts.WriteLimiter)
	registerRoutes(router.Group("/api"), h, opts.WriteLimiter)

	return router
}

func registerRoutes(g *gin.RouterGroup, h Handlers, writeLimiter gin.HandlerFunc) {
	// Категории
	g.GET("/categories", h.Category.ListCategories)
	g.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		h.Category.GetCategoryQuestions,
	)

	// Вопросы
	g.GET("/questions", h.Question.ListQuestions)
	g.POST("/questions", h.Question.SearchQuestions)
	g.GET("/questions/export", h.Question.ExportQuestions)
	g.DELETE("/questions/:id", withLimiter(writeLimiter,
		middleware.ExtractUintParam("id", "questionID"),
		h.Question.DeleteQuestion,
	)...)
	g.POST("/question", withLimiter(writeLimiter, h.Question.CreateQuestion)...)

	// Игра
	g.POST("/quizzes", h.Quiz.NextQuestion)
}

// withLimiter ставит limiter первым в цепочку, если он задан
func withLimiter(limiter gin.HandlerFunc, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	if limiter == nil {
		return handlers
	}
	return append([]gin.HandlerFunc{limiter}, handlers...)
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cfg
}
