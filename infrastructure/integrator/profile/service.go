package profile

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/profile/profileclient"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
)

type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*domain.CreatorProfile, error)
}

type ProfileService struct {
	Client profileclient.Client
	cache  Cache
}

// New cria o serviço de perfis. cache pode ser nil (sem Redis configurado).
func New(client profileclient.Client, cache Cache) ProfileFetcher {
	return &ProfileService{
		Client: client,
		cache:  cache,
	}
}

// FetchProfile consulta o cache antes do provedor. Ausência não é cacheada.
func (s *ProfileService) FetchProfile(ctx context.Context, username string) (*domain.CreatorProfile, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")

	logger := logrus.WithField("username", username)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, username)
		if err != nil {
			logger.WithError(err).Warn("Erro ao ler perfil do cache")
		}
		if cached != nil {
			return cached, nil
		}
	}

	profile, err := s.Client.GetProfile(ctx, username)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar perfil no provedor")
		return nil, err
	}

	if profile == nil {
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, profile); err != nil {
			logger.WithError(err).Warn("Erro ao gravar perfil no cache")
		}
	}

	return profile, nil
}
