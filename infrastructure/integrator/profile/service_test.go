package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/profile/mocks"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, time.Hour), mr
}

func TestRedisCache(t *testing.T) {
	cache, mr := newRedisCache(t)
	ctx := context.Background()

	cached, err := cache.Get(ctx, "janedoe")
	require.NoError(t, err)
	assert.Nil(t, cached)

	require.NoError(t, cache.Set(ctx, &domain.CreatorProfile{Username: "JaneDoe", Followers: 12500, Niche: "beauty"}))
	assert.True(t, mr.Exists("profile:janedoe"))
	assert.Equal(t, time.Hour, mr.TTL("profile:janedoe"))

	cached, err = cache.Get(ctx, "janedoe")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 12500, cached.Followers)

	mr.FastForward(2 * time.Hour)

	cached, err = cache.Get(ctx, "janedoe")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestProfileService_FetchProfile(t *testing.T) {
	t.Run("Busca no provedor e grava no cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		cache, mr := newRedisCache(t)
		service := New(client, cache)

		client.EXPECT().
			GetProfile(gomock.Any(), "janedoe").
			Return(&domain.CreatorProfile{Username: "janedoe", FullName: "Jane Doe"}, nil).
			Times(1)

		profile, err := service.FetchProfile(context.Background(), "@janedoe")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", profile.FullName)
		assert.True(t, mr.Exists("profile:janedoe"))

		// segunda chamada vem do cache
		profile, err = service.FetchProfile(context.Background(), "janedoe")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", profile.FullName)
	})

	t.Run("Perfil inexistente não é cacheado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		cache, mr := newRedisCache(t)
		service := New(client, cache)

		client.EXPECT().GetProfile(gomock.Any(), "ghost").Return(nil, nil)

		profile, err := service.FetchProfile(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, profile)
		assert.Empty(t, mr.Keys())
	})

	t.Run("Sem cache configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		service := New(client, nil)

		client.EXPECT().GetProfile(gomock.Any(), "janedoe").Return(nil, errors.New("dial tcp: timeout"))

		_, err := service.FetchProfile(context.Background(), "janedoe")
		assert.Error(t, err)
	})

	t.Run("Redis indisponível não impede a busca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		cache, mr := newRedisCache(t)
		mr.Close()
		service := New(client, cache)

		client.EXPECT().GetProfile(gomock.Any(), "janedoe").Return(&domain.CreatorProfile{Username: "janedoe"}, nil)

		profile, err := service.FetchProfile(context.Background(), "janedoe")
		require.NoError(t, err)
		assert.Equal(t, "janedoe", profile.Username)
	})
}
