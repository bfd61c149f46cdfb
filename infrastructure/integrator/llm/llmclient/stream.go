package llmclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	dataPrefix    = "data:"
	doneMarker    = "[DONE]"
	maxEventBytes = 1 << 20
)

type completionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// eventStream lê as linhas "data:" do corpo SSE e devolve apenas o texto de cada delta
type eventStream struct {
	ctx     context.Context
	body    io.ReadCloser
	scanner *bufio.Scanner
	done    bool

	closeOnce sync.Once
	closeErr  error
}

func newEventStream(ctx context.Context, body io.ReadCloser) *eventStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventBytes)

	return &eventStream{
		ctx:     ctx,
		body:    body,
		scanner: scanner,
	}
}

func (s *eventStream) Recv() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || strings.HasPrefix(line, ":") || !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		data := strings.TrimSpace(strings.TrimPrefix(line, dataPrefix))
		if data == doneMarker {
			s.done = true
			return "", io.EOF
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return "", fmt.Errorf("erro ao decodificar evento do stream: %w", err)
		}

		if chunk.Error != nil {
			return "", fmt.Errorf("erro reportado pelo backend: %s", chunk.Error.Message)
		}

		var text strings.Builder
		for _, choice := range chunk.Choices {
			text.WriteString(choice.Delta.Content)
		}

		if text.Len() > 0 {
			return text.String(), nil
		}
	}

	if err := s.ctx.Err(); err != nil {
		return "", err
	}

	if err := s.scanner.Err(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("erro ao ler o stream: %w", err)
	}

	s.done = true
	return "", io.EOF
}

func (s *eventStream) Close() error {
	s.closeOnce.Do(func() {
		s.done = true
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}
