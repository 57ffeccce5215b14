package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/config"
	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/handler"
	"github.com/portfolioapi/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := db.SeedWorks(db.DB); err != nil {
		log.Fatalf("failed to seed works: %v", err)
	}
	if err := db.EnsureUser(cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	api, err := handler.NewAPI(db.DB, cfg.UploadDir, cfg.UploadURLPath)
	if err != nil {
		log.Fatalf("failed to build handlers: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.Setup(api, cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
