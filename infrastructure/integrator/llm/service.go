package llm

import (
	"context"

	llmdomain "github.com/vfg2006/creator-pitch-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/creator-pitch-api/internal/config"
)

type LLMService struct {
	cfg    config.LLM
	Client llmclient.Client
}

// New aplica o teto de tokens configurado quando a requisição não define um
func New(cfg config.LLM, client llmclient.Client) llmdomain.Generator {
	return &LLMService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *LLMService) StreamChat(ctx context.Context, req llmdomain.ChatRequest) (llmdomain.Stream, error) {
	if req.MaxOutputTokens <= 0 {
		req.MaxOutputTokens = s.cfg.MaxOutputTokens
	}

	return s.Client.StreamChat(ctx, req)
}
