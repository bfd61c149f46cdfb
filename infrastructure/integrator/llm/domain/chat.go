package domain

import (
	"context"
	"fmt"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest é a entrada do backend: instrução de sistema, turnos e teto de tokens
type ChatRequest struct {
	System          string
	Messages        []Message
	MaxOutputTokens int
}

// Stream entrega o texto gerado em pedaços. Recv devolve io.EOF ao final;
// Close encerra a conexão com o backend e pode ser chamado mais de uma vez.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Generator abre um stream de geração de texto
type Generator interface {
	StreamChat(ctx context.Context, req ChatRequest) (Stream, error)
}

// UpstreamError representa uma resposta sem sucesso do backend
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("llm backend returned status %d: %s", e.StatusCode, e.Body)
}
