// 저장된 알람 전체의 임베딩을 다시 계산하는 일회성 스크립트
//
// 임베딩 모델이나 합성 텍스트 구성이 바뀌면 저장된 벡터와 질의 벡터의
// 공간이 달라지므로 전체를 다시 계산해야 한다. 인제스트와 같은
// model.EmbeddingText 합성을 사용한다.
//
// 실행: go run ./scripts/reembed
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/netops-copilot/backend/internal/client"
	"github.com/netops-copilot/backend/internal/config"
	"github.com/netops-copilot/backend/internal/db"
	"github.com/netops-copilot/backend/internal/model"
)

const (
	batchSize  = 10
	batchPause = 500 * time.Millisecond
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Reembed] No .env file found, using process environment")
	}
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("[Reembed] Failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	database := &db.Postgres{Pool: pool}

	ai, err := client.NewAIClient(cfg.AI)
	if err != nil {
		log.Fatalf("[Reembed] Failed to create AI client: %v", err)
	}

	alerts, err := database.AllAlerts(ctx)
	if err != nil {
		log.Fatalf("[Reembed] Failed to load alerts: %v", err)
	}
	log.Printf("[Reembed] Re-embedding %d alerts", len(alerts))

	updated, failed := 0, 0
	for i, alert := range alerts {
		if i > 0 && i%batchSize == 0 {
			time.Sleep(batchPause)
		}

		vector, err := ai.EmbedText(ctx, model.EmbeddingText(alert))
		if err != nil {
			log.Printf("[Reembed] Failed to embed alert %s: %v", alert.ProblemID, err)
			failed++
			continue
		}
		if err := database.UpdateAlertEmbedding(ctx, alert.ProblemID, vector); err != nil {
			log.Printf("[Reembed] Failed to update alert %s: %v", alert.ProblemID, err)
			failed++
			continue
		}
		updated++
	}

	log.Printf("[Reembed] Done: %d updated, %d failed", updated, failed)
}
