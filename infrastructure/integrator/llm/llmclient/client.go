package llmclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	llmdomain "github.com/vfg2006/creator-pitch-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/creator-pitch-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	completionsPath = "chat/completions"
	maxErrorBody    = 4096
)

type Client interface {
	StreamChat(ctx context.Context, req llmdomain.ChatRequest) (llmdomain.Stream, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     config.LLM
}

// NewClient cria o cliente do backend compatível com a API de chat completions.
// Não há timeout total: o stream dura o quanto o backend levar, limitado pelo
// contexto da requisição. cfg.Timeout limita apenas a espera pelos cabeçalhos.
func NewClient(cfg config.LLM) Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.Timeout

	return &OpenAIClient{
		httpClient: &http.Client{Transport: transport},
		config:     cfg,
	}
}

type chatCompletionRequest struct {
	Model     string              `json:"model"`
	Messages  []llmdomain.Message `json:"messages"`
	MaxTokens int                 `json:"max_tokens,omitempty"`
	Stream    bool                `json:"stream"`
}

// StreamChat envia a conversa e devolve o stream da resposta. O corpo da
// requisição fica atrelado a ctx: cancelar ctx aborta a chamada ao backend.
func (c *OpenAIClient) StreamChat(ctx context.Context, req llmdomain.ChatRequest) (llmdomain.Stream, error) {
	endpoint, err := url.JoinPath(c.config.BaseURL, completionsPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar a URL do backend: %w", err)
	}

	messages := make([]llmdomain.Message, 0, len(req.Messages)+1)
	if strings.TrimSpace(req.System) != "" {
		messages = append(messages, llmdomain.Message{Role: llmdomain.RoleSystem, Content: req.System})
	}
	messages = append(messages, req.Messages...)

	body, err := json.Marshal(chatCompletionRequest{
		Model:     c.config.Model,
		Messages:  messages,
		MaxTokens: req.MaxOutputTokens,
		Stream:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()

		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &llmdomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	return newEventStream(ctx, resp.Body), nil
}
