package routes

import (
	"net/http"

	"github.com/ArpanMallick2005/Ai-resume-Analy/config"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/api/handlers"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// Deps holds the route handlers. User and Usage are nil when Postgres is not
// configured; RateLimiter is nil when rate limiting is off.
type Deps struct {
	Auth        config.AuthConfig
	AI          *handlers.AIHandler
	Resume      *handlers.ResumeHandler
	User        *handlers.UserHandler
	Usage       *handlers.UsageHandler
	RateLimiter *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	protect := middleware.JWTAuth(d.Auth)

	if d.User != nil {
		users := api.Group("/users")
		users.POST("/register", d.User.Register)
		users.POST("/login", d.User.Login)
		users.GET("/data", protect, d.User.Me)
	}

	resumes := api.Group("/resumes", protect)
	resumes.GET("", d.Resume.List)
	resumes.GET("/:resumeId", d.Resume.Get)
	resumes.DELETE("/:resumeId", d.Resume.Delete)

	ai := api.Group("/ai", protect)
	if d.RateLimiter != nil {
		ai.Use(middleware.RateLimit(d.RateLimiter))
	}
	ai.POST("/enhance-pro-sum", d.AI.EnhanceProSum)
	ai.POST("/enhance-job-desc", d.AI.EnhanceJobDesc)
	ai.POST("/upload-resume", d.AI.UploadResume)
	ai.POST("/analyze-resume", d.AI.AnalyzeResume)
	ai.POST("/upload-resume-file", d.AI.UploadResumeFile)
	ai.POST("/analyze-resume-file", d.AI.AnalyzeResumeFile)

	if d.Usage != nil {
		admin := api.Group("/admin", protect, middleware.RequireAdmin())
		admin.GET("/usage", d.Usage.Recent)
		admin.GET("/usage/summary", d.Usage.Summary)
	}
}
