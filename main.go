// 서버 엔트리포인트
//
// 기동 순서:
//  1. .env 로드 (없으면 프로세스 환경변수 사용)
//  2. PostgreSQL 풀 생성 + 스키마 보장
//  3. LLM 클라이언트 생성
//  4. service/handler 조립 후 라우팅 등록

// @title NetOps Copilot API
// @version 1.0
// @description 네트워크 알람 인제스트와 자연어 질의 응답 API
// @BasePath /api/v1
package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/netops-copilot/backend/internal/client"
	"github.com/netops-copilot/backend/internal/config"
	"github.com/netops-copilot/backend/internal/db"
	"github.com/netops-copilot/backend/internal/handler"
	"github.com/netops-copilot/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Main] No .env file found, using process environment")
	}
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("[Main] Failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	database := &db.Postgres{Pool: pool}
	if err := database.EnsureAlertSchema(); err != nil {
		log.Fatalf("[Main] Failed to ensure schema: %v", err)
	}

	ai, err := client.NewAIClient(cfg.AI)
	if err != nil {
		log.Fatalf("[Main] Failed to create AI client: %v", err)
	}

	chatService := service.NewChatService(
		service.NewSQLAnswerService(database, ai),
		service.NewRAGAnswerService(database, ai, ai),
	)
	ingestService := service.NewIngestService(database, ai)
	statsService := service.NewStatsService(database)

	chatHandler := handler.NewChatHandler(chatService)
	uploadHandler := handler.NewUploadHandler(ingestService)
	alertHandler := handler.NewAlertHandler(statsService)

	r := gin.Default()
	r.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowCredentials))

	r.GET("/", handler.Root)
	r.GET("/ping", handler.Ping)
	r.GET("/openapi.json", handler.OpenAPIDoc)

	api := r.Group("/api/v1")
	{
		api.POST("/chat", chatHandler.Chat)
		api.POST("/uploads", uploadHandler.Upload)
		api.POST("/uploads/preview", uploadHandler.Preview)
		api.GET("/uploads", uploadHandler.History)
		api.GET("/alerts", alertHandler.List)
		api.GET("/alerts/stats", alertHandler.Stats)
	}

	log.Printf("[Main] Starting server on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("[Main] Server stopped: %v", err)
	}
}
