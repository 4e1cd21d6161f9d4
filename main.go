package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"eventapi/config"
	"eventapi/db"
	"eventapi/middlewares"
	"eventapi/models"
	"eventapi/routes"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	// Postgres（pooled，handler 彼此獨立共用同個 pool）
	sqldb, err := db.Open(cfg.PGDSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		log.Fatal("db open error:", err)
	}
	defer sqldb.Close()

	// Gin + middlewares
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middlewares.RequestLog())

	// CORS 全開（原系統的行為）
	corsConf := cors.DefaultConfig()
	corsConf.AllowAllOrigins = true
	corsConf.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConf.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	server.Use(cors.New(corsConf))

	// Routes
	routes.RegisterRoutes(server,
		models.NewSQLUserRepository(sqldb),
		models.NewSQLEventRepository(sqldb),
		routes.Options{AuthRPS: cfg.AuthRPS, AuthBurst: cfg.AuthBurst})

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal("gin.Run error:", err)
	}
}
