package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/oficinahub/workshop-scheduler/internal/config"
	dbpkg "github.com/oficinahub/workshop-scheduler/internal/db"
	"github.com/oficinahub/workshop-scheduler/internal/logger"
	"github.com/oficinahub/workshop-scheduler/internal/middleware"
	"github.com/oficinahub/workshop-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
