package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ArpanMallick2005/Ai-resume-Analy/config"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/api/handlers"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/api/middleware"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/api/routes"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/cache"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/extract"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/logger"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/providers/llm"
	mongorepo "github.com/ArpanMallick2005/Ai-resume-Analy/internal/repositories/mongo"
	pgrepo "github.com/ArpanMallick2005/Ai-resume-Analy/internal/repositories/postgres"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/services"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	srvCfg := config.LoadServer()
	authCfg := config.LoadAuth()
	aiCfg := config.LoadAI()

	if authCfg.Secret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	// MongoDB
	if err := config.InitMongo(); err != nil {
		log.WithError(err).Fatal("mongodb init")
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.WithError(err).Fatal("mongodb indexes")
	}
	log.Info("mongodb connected")

	// PostgreSQL (accounts and usage ledger)
	var (
		userSvc  services.UserService
		usageSvc services.UsageService
		recorder services.UsageRecorder = services.NopUsage{}
	)
	if config.PostgresConfigured() {
		if err := config.InitPostgres(); err != nil {
			log.WithError(err).Fatal("postgres init")
		}
		tokens, err := services.NewTokenIssuer(authCfg)
		if err != nil {
			log.WithError(err).Fatal("token issuer")
		}
		userSvc = services.NewUserService(pgrepo.NewUserRepo(config.PostgresDB), tokens)
		usageSvc = services.NewUsageService(pgrepo.NewUsageRepo(config.PostgresDB), log)
		recorder = usageSvc
		log.Info("postgres connected")
	} else {
		log.Warn("POSTGRES_URI not set; user accounts and usage ledger disabled")
	}

	// AI provider, optionally behind the Redis completion cache
	ctx := context.Background()
	provider, err := llm.New(ctx, aiCfg)
	if err != nil {
		log.WithError(err).Fatal("ai provider init")
	}
	defer provider.Close()

	if aiCfg.CacheTTL > 0 {
		switch err := config.InitRedis(); {
		case errors.Is(err, config.ErrRedisNotConfigured):
			log.Warn("AI_CACHE_TTL set but redis is not configured; completion cache disabled")
		case err != nil:
			log.WithError(err).Fatal("redis init")
		default:
			provider = llm.NewCachedProvider(provider, cache.NewRedisCache(config.RedisClient, "resume-builder:"), aiCfg.CacheTTL, log)
			log.WithField("ttl", aiCfg.CacheTTL.String()).Info("completion cache enabled")
		}
	}

	// Optional archive of uploaded resume files
	var uploader storage.Uploader
	if srvCfg.GCSBucket != "" {
		gcsUp, err := storage.NewGCSUploader(ctx, srvCfg.GCSBucket)
		if err != nil {
			log.WithError(err).Fatal("gcs init")
		}
		defer gcsUp.Close()
		uploader = gcsUp
	}

	resumes := mongorepo.NewResumeRepo(config.MongoDatabase())
	aiSvc := services.NewAIService(provider, aiCfg.Model, resumes, recorder, log)

	deps := routes.Deps{
		Auth:   authCfg,
		AI:     handlers.NewAIHandler(aiSvc, services.NewResumeFileService(uploader)),
		Resume: handlers.NewResumeHandler(services.NewResumeService(resumes)),
	}
	if userSvc != nil {
		deps.User = handlers.NewUserHandler(userSvc)
		deps.Usage = handlers.NewUsageHandler(usageSvc)
	}
	if srvCfg.RateLimitPerMinute > 0 {
		deps.RateLimiter = middleware.NewRateLimiter(srvCfg.RateLimitPerMinute, srvCfg.RateLimitBurst)
	}

	if srvCfg.GinMode != "" {
		gin.SetMode(srvCfg.GinMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = extract.MaxFileSize
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + srvCfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":     srvCfg.Port,
			"provider": provider.Name(),
			"model":    aiCfg.Model,
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
	if err := config.CloseMongo(shutdownCtx); err != nil {
		log.WithError(err).Warn("mongodb disconnect")
	}
	if config.RedisClient != nil {
		_ = config.RedisClient.Close()
	}
}
