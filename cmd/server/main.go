package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/webprime/internal/config"
	"github.com/webprime/internal/handler"
	"github.com/webprime/internal/router"
	"github.com/webprime/internal/store"
)

func main() {
	// 本地开发时从 .env 读取配置，缺失时静默跳过
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 内容全部驻留内存，重启即回到初始数据
	st := store.New()
	st.Seed()

	api := handler.NewAPI(st, handler.Options{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		UploadDir:     cfg.UploadDir,
		UploadURL:     cfg.UploadURLPath,
	})
	if cfg.GeminiBaseURL != "" {
		api.Consultant().SetBaseURL(cfg.GeminiBaseURL)
	}

	r := router.SetupRouter(api, router.Options{
		SessionSecret: cfg.SessionSecret,
	})
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
