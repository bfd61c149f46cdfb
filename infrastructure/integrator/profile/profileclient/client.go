package profileclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/creator-pitch-api/internal/config"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBody = 4096

type Client interface {
	GetProfile(ctx context.Context, username string) (*domain.CreatorProfile, error)
}

type ProfileClient struct {
	httpClient *http.Client
	config     config.Profile
}

func NewClient(cfg config.Profile) Client {
	return &ProfileClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
	}
}

// StatusError é devolvido quando o provedor responde sem sucesso (exceto 404)
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("profile provider returned status %d: %s", e.StatusCode, e.Body)
}

// GetProfile busca o perfil normalizado. Perfil inexistente retorna nil, nil.
func (c *ProfileClient) GetProfile(ctx context.Context, username string) (*domain.CreatorProfile, error) {
	endpoint, err := url.JoinPath(c.config.URL, "profiles", url.PathEscape(username))
	if err != nil {
		return nil, fmt.Errorf("erro ao montar a URL do provedor: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("X-API-Key", c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var profile domain.CreatorProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if profile.Username == "" {
		profile.Username = username
	}

	return &profile, nil
}
