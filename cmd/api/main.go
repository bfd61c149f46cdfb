package main

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-pitch-api/infrastructure/database/redis"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/llm"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/profile"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/profile/profileclient"
	"github.com/vfg2006/creator-pitch-api/infrastructure/repository"
	"github.com/vfg2006/creator-pitch-api/internal/api"
	"github.com/vfg2006/creator-pitch-api/internal/config"
	"github.com/vfg2006/creator-pitch-api/internal/events"
	"github.com/vfg2006/creator-pitch-api/internal/scheduler"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/activity"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/outreach"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/pitching"
	"github.com/vfg2006/creator-pitch-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("Configuração incompleta")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)

	userRepo := repository.NewUserRepository(pgConn)
	brandRepo := repository.NewBrandRepository(pgConn)
	outreachRepo := repository.NewOutreachRepository(pgConn)

	publisher := newPublisher(cfg.Kafka)

	redisClient := redisconn(ctx, cfg.Redis)

	var profileCache profile.Cache
	if redisClient != nil {
		profileCache = profile.NewRedisCache(redisClient, cfg.Profile.CacheTTL)
	}

	profileFetcher := profile.New(profileclient.NewClient(cfg.Profile), profileCache)
	generator := llm.New(cfg.LLM, llmclient.NewClient(cfg.LLM))

	authenticator := authenticating.NewService(userRepo, cfg)
	activityService := activity.NewService(brandRepo)
	outreachService := outreach.NewService(outreachRepo, brandRepo, publisher)
	pitchingService := pitching.NewService(generator, profileFetcher, cfg.LLM.MaxOutputTokens)

	ghostedSweepService := scheduler.NewGhostedSweepService(outreachService, cfg)
	if err := ghostedSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de outreach sem resposta")
	}

	onShutdown := []func() error{publisher.Close}
	if redisClient != nil {
		onShutdown = append(onShutdown, redisClient.Close)
	}
	onShutdown = append(onShutdown, pgConn.Close)

	server, err := api.New(cfg, api.Services{
		Authenticator:       authenticator,
		Activity:            activityService,
		Outreach:            outreachService,
		Pitching:            pitchingService,
		Profiles:            profileFetcher,
		GhostedSweepService: ghostedSweepService,
	}, onShutdown...)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn devolve nil quando o cache de perfis está desabilitado ou indisponível
func redisconn(ctx context.Context, cfg config.Redis) *goredis.Client {
	if cfg.URL == "" {
		logrus.Info("REDIS_URL vazio, cache de perfis desabilitado")
		return nil
	}

	client, err := redis.Connect(ctx, cfg.URL)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, cache de perfis desabilitado")
		return nil
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return client
}

// newPublisher usa Kafka quando há brokers configurados; senão apenas registra os eventos no log
func newPublisher(cfg config.Kafka) events.Publisher {
	if len(cfg.Brokers) == 0 {
		logrus.Info("KAFKA_BROKERS vazio, eventos de outreach apenas registrados no log")
		return events.NewLogPublisher(logrus.StandardLogger())
	}

	publisher, err := events.NewKafkaPublisher(cfg.Brokers, cfg.Topic, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o publisher Kafka")
	}

	logrus.WithField("brokers", cfg.Brokers).Info("Publisher Kafka configurado")
	return publisher
}
