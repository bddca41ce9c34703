package client

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/netops-copilot/backend/internal/config"
	"github.com/netops-copilot/backend/internal/model"
)

// EmbeddingDimensions - 저장소의 vector(1536) 컬럼과 일치해야 하는 임베딩 차원
const EmbeddingDimensions = 1536

// AIClient - 임베딩 생성과 텍스트 완성을 담당하는 LLM 제공자 클라이언트
// 프로세스 시작 시 한 번 생성해 의존성으로 주입한다
type AIClient struct {
	client     *genai.Client
	chatModel  string
	embedModel string
}

func NewAIClient(cfg config.AIConfig) (*AIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &AIClient{
		client:     client,
		chatModel:  cfg.ChatModel,
		embedModel: cfg.EmbedModel,
	}, nil
}

// EmbedText - 텍스트 하나의 임베딩 벡터 생성
func (c *AIClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	cfg := &genai.EmbedContentConfig{
		OutputDimensionality: genai.Ptr[int32](EmbeddingDimensions),
	}

	res, err := c.client.Models.EmbedContent(ctx, c.embedModel, contents, cfg)
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.Embeddings) == 0 || res.Embeddings[0] == nil {
		return nil, fmt.Errorf("empty embedding result")
	}
	values := res.Embeddings[0].Values
	if len(values) != EmbeddingDimensions {
		return nil, fmt.Errorf("unexpected embedding dimensions: %d", len(values))
	}
	return values, nil
}

// Complete - 시스템 지침과 대화 턴 목록으로 완성 텍스트 생성
func (c *AIClient) Complete(ctx context.Context, system string, turns []model.ChatTurn, temperature float32, maxTokens int32) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		var role genai.Role = genai.RoleUser
		if turn.Role == model.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxTokens,
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.chatModel, contents, cfg)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty completion result")
	}
	return text, nil
}
